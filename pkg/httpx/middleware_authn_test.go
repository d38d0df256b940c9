package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	bearerUser string
	apiKeyUser string
}

func (f *fakeAuthenticator) AuthenticateBearer(ctx context.Context, token string) (string, error) {
	if token == "good-token" && f.bearerUser != "" {
		return f.bearerUser, nil
	}
	return "", errors.New("bad token")
}

func (f *fakeAuthenticator) AuthenticateAPIKey(ctx context.Context, rawKey string) (string, error) {
	if rawKey == "good-key" && f.apiKeyUser != "" {
		return f.apiKeyUser, nil
	}
	return "", errors.New("bad key")
}

func authnProbe(t *testing.T) (http.Handler, *string, *string) {
	t.Helper()

	var gotUser, gotMethod string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromCtx(r.Context())
		gotMethod = AuthMethodFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, &gotUser, &gotMethod
}

func TestAuthnMiddlewareBearer(t *testing.T) {
	t.Parallel()

	probe, gotUser, gotMethod := authnProbe(t)
	handler := Chain(probe, AuthnMiddleware(&fakeAuthenticator{bearerUser: "u1"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "u1", *gotUser)
	require.Equal(t, AuthMethodBearer, *gotMethod)
}

func TestAuthnMiddlewareAPIKey(t *testing.T) {
	t.Parallel()

	probe, gotUser, gotMethod := authnProbe(t)
	handler := Chain(probe, AuthnMiddleware(&fakeAuthenticator{apiKeyUser: "u2"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "ApiKey good-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "u2", *gotUser)
	require.Equal(t, AuthMethodAPIKey, *gotMethod)
}

func TestAuthnMiddlewareRejects(t *testing.T) {
	t.Parallel()

	probe, _, _ := authnProbe(t)
	handler := Chain(probe, AuthnMiddleware(&fakeAuthenticator{bearerUser: "u1", apiKeyUser: "u2"}))

	cases := map[string]string{
		"no header":          "",
		"wrong bearer token": "Bearer nope",
		"wrong api key":      "ApiKey nope",
		"unknown scheme":     "Basic dXNlcjpwYXNz",
		"scheme only":        "Bearer",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestRequireBearerBlocksAPIKeys(t *testing.T) {
	t.Parallel()

	probe, _, _ := authnProbe(t)
	handler := Chain(probe,
		AuthnMiddleware(&fakeAuthenticator{bearerUser: "u1", apiKeyUser: "u2"}),
		RequireBearer(),
	)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "ApiKey good-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
