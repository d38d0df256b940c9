package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sellside/prospectd/pkg/slogx"
)

// ErrTrailingBody reports a request body containing more than one JSON value.
var ErrTrailingBody = errors.New("httpx: trailing data after JSON body")

// Authenticator resolves request credentials to a user id. Exactly one scheme
// is consulted per request, chosen by the Authorization header prefix.
type Authenticator interface {
	// AuthenticateBearer validates a JWT access token.
	AuthenticateBearer(ctx context.Context, token string) (userID string, err error)

	// AuthenticateAPIKey validates a raw API key. The key authenticates only
	// while active and unexpired.
	AuthenticateAPIKey(ctx context.Context, rawKey string) (userID string, err error)
}

// AuthnMiddleware authenticates requests carrying either "Bearer <jwt>" or
// "ApiKey <key>" in the Authorization header. Requests without credentials,
// or with credentials that fail to resolve, are rejected with 401.
func AuthnMiddleware(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			scheme, credential, ok := splitAuthorization(r.Header.Get("Authorization"))
			if !ok {
				writeAuthnError(w, "missing credentials")
				return
			}

			var (
				userID string
				method string
				err    error
			)
			switch scheme {
			case "Bearer":
				userID, err = a.AuthenticateBearer(ctx, credential)
				method = AuthMethodBearer
			case "ApiKey":
				userID, err = a.AuthenticateAPIKey(ctx, credential)
				method = AuthMethodAPIKey
			default:
				writeAuthnError(w, "unsupported authorization scheme")
				return
			}
			if err != nil {
				log.Warn("authentication failed", "scheme", scheme, "err", err)
				writeAuthnError(w, "invalid credentials")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyAuthMethod, method)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireBearer rejects requests that authenticated with anything other than
// a bearer token. API keys must not mint or revoke API keys.
func RequireBearer() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if AuthMethodFromCtx(r.Context()) != AuthMethodBearer {
				writeAuthnError(w, "bearer token required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func splitAuthorization(header string) (scheme, credential string, ok bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "", false
	}
	scheme, credential, found := strings.Cut(header, " ")
	credential = strings.TrimSpace(credential)
	if !found || credential == "" {
		return "", "", false
	}
	return scheme, credential, true
}

// RFC 6750-style error response for failed authentication.
func writeAuthnError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
