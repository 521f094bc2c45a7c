package handlers

import "github.com/gin-gonic/gin"

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	BiodataHandler *BiodataHandler
	PremiumHandler *PremiumHandler
	ReviewHandler  *ReviewHandler
	SystemHandler  *SystemHandler
}

// RouteMiddleware bundles the gates handlers attach to their routes.
// Auth verifies the bearer token; Admin additionally re-reads the user's
// role from the store.
type RouteMiddleware struct {
	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
}
