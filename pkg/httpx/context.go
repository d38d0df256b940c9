package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID     ctxKey = "user_id"
	CtxKeyAuthMethod ctxKey = "auth_method"
)

// Authentication method values stored under CtxKeyAuthMethod.
const (
	AuthMethodBearer = "bearer"
	AuthMethodAPIKey = "api_key"
)

// UserIDFromCtx returns the authenticated user's id, or empty when the
// request carried no valid credentials.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// AuthMethodFromCtx returns which credential scheme authenticated the
// request.
func AuthMethodFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAuthMethod).(string); ok {
		return v
	}
	return ""
}
