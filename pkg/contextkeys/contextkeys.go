package contextkeys

type contextKey string

// DBContextKey is the gin context key holding the request's *gorm.DB handle.
const DBContextKey = contextKey("db")
