package middleware

// ContextKey keeps request-scoped values from colliding with other packages.
type ContextKey string

const (
	UserIDCtxKey   = ContextKey("user_id")
	UserRoleCtxKey = ContextKey("user_role")
)
