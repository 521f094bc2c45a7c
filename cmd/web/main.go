// @title           matchmaker API
// @version         1.0
// @description     Backend for the matrimonial biodata matching platform.
// @contact.name    MatchMaker
// @contact.email   support@matchmaker.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "matchmaker_backend/internal/app"

func main() {
	app.Run()
}
