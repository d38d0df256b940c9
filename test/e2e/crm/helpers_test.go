package crm_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	httpapi "github.com/sellside/prospectd/internal/crm/http"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/internal/crm/store/drivers/sqlite"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/jwtx"
	"github.com/sellside/prospectd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// captureSender records outbound mail so tests can read verification codes
// and reset tokens without a mailbox.
type captureSender struct {
	mu     sync.Mutex
	codes  map[string]string
	tokens map[string]string
}

func newCaptureSender() *captureSender {
	return &captureSender{
		codes:  make(map[string]string),
		tokens: make(map[string]string),
	}
}

func (s *captureSender) SendVerificationCode(_ context.Context, email, _, code string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *captureSender) SendPasswordReset(_ context.Context, email, _, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[email] = token
	return nil
}

func (s *captureSender) code(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[email]
}

// setupServer wires a complete service against a throwaway database and
// serves it over httptest. Returns the base URL and the mail capture.
func setupServer(t *testing.T) (string, *captureSender) {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSigner(priv)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "prospectd-test", Level: "error", Format: "text"})
	sender := newCaptureSender()

	authService := &service.AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: jwtx.NewVerifier(signer.PublicKey(), "e2e-issuer"),
		Mail:     sender,
		Issuer:   "e2e-issuer",
	}

	router := httpapi.NewRouter("test", st, logger)
	router.AuthService = authService
	router.CRMService = &service.CRMService{Store: st}
	router.DashboardService = &service.DashboardService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv.URL, sender
}

// signupAndLogin walks a fresh account through signup, verification and
// login, leaving the client authenticated.
func signupAndLogin(t *testing.T, client *crmsdk.Client, sender *captureSender, email string) {
	t.Helper()
	ctx := t.Context()

	_, err := client.Signup(ctx, crmsdk.SignupRequest{
		Email:    email,
		Password: "correct-horse-battery",
		Name:     "E2E User",
	})
	require.NoError(t, err)

	require.NoError(t, client.VerifyCode(ctx, email, sender.code(email)))

	_, err = client.Login(ctx, email, "correct-horse-battery")
	require.NoError(t, err)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var apiErr *crmsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
}
