package contextkeys

// Custom key type so context values cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the pool, or a test transaction) is stored.
const DBContextKey = contextKey("db")
