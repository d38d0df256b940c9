package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/internal/crm/store/drivers/sqlite"
	"github.com/sellside/prospectd/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// recordingSender captures outbound mail so tests can read the codes and
// tokens that would have been emailed.
type recordingSender struct {
	mu     sync.Mutex
	codes  map[string]string
	tokens map[string]string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{
		codes:  make(map[string]string),
		tokens: make(map[string]string),
	}
}

func (s *recordingSender) SendVerificationCode(_ context.Context, email, _, code string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *recordingSender) SendPasswordReset(_ context.Context, email, _, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[email] = token
	return nil
}

func (s *recordingSender) lastCode(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[email]
}

func (s *recordingSender) lastToken(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[email]
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestAuthService(t *testing.T) (*AuthService, *recordingSender) {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSigner(priv)
	require.NoError(t, err)

	sender := newRecordingSender()
	svc := &AuthService{
		Store:    newTestStore(t),
		Signer:   signer,
		Verifier: jwtx.NewVerifier(signer.PublicKey(), "test-issuer"),
		Mail:     sender,
		Issuer:   "test-issuer",
	}
	return svc, sender
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	expiresAt, err := svc.Signup(ctx, "alice@example.com", "hunter2hunter2", "Alice")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	code := sender.lastCode("alice@example.com")
	require.Len(t, code, 6)

	// Login is rejected while the account is unverified.
	_, _, err = svc.Login(ctx, "alice@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.VerifyCode(ctx, "alice@example.com", code))

	token, ttl, err := svc.Login(ctx, "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, ttl)

	userID, err := svc.AuthenticateBearer(ctx, token)
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.True(t, user.Verified)
}

func TestSignupEmailNormalization(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "  Bob@Example.COM ", "hunter2hunter2", "Bob")
	require.NoError(t, err)

	code := sender.lastCode("bob@example.com")
	require.NotEmpty(t, code)
	require.NoError(t, svc.VerifyCode(ctx, "BOB@example.com", code))

	_, _, err = svc.Login(ctx, "bob@EXAMPLE.com", "hunter2hunter2")
	require.NoError(t, err)
}

func TestSignupConflicts(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "carol@example.com", "hunter2hunter2", "Carol")
	require.NoError(t, err)
	firstCode := sender.lastCode("carol@example.com")

	// Re-signup before verification re-issues the code instead of failing.
	_, err = svc.Signup(ctx, "carol@example.com", "hunter2hunter2", "Carol")
	require.NoError(t, err)
	secondCode := sender.lastCode("carol@example.com")
	require.NotEmpty(t, secondCode)

	if firstCode != secondCode {
		// The stale code must no longer verify.
		require.ErrorIs(t, svc.VerifyCode(ctx, "carol@example.com", firstCode), ErrInvalidCode)
	}
	require.NoError(t, svc.VerifyCode(ctx, "carol@example.com", secondCode))

	// A verified email is a hard conflict.
	_, err = svc.Signup(ctx, "carol@example.com", "different-password", "Carol Again")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyCodeFailureModes(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	require.ErrorIs(t, svc.VerifyCode(ctx, "ghost@example.com", "123456"), store.ErrNotFound)

	_, err := svc.Signup(ctx, "dave@example.com", "hunter2hunter2", "Dave")
	require.NoError(t, err)
	code := sender.lastCode("dave@example.com")

	require.ErrorIs(t, svc.VerifyCode(ctx, "dave@example.com", "000000"), ErrInvalidCode)

	// The right code still works after wrong attempts.
	require.NoError(t, svc.VerifyCode(ctx, "dave@example.com", code))

	// The code is single-use.
	require.ErrorIs(t, svc.VerifyCode(ctx, "dave@example.com", code), ErrAlreadyVerified)
}

func TestVerifyCodeConcurrentAttempts(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "judy@example.com", "hunter2hunter2", "Judy")
	require.NoError(t, err)
	code := sender.lastCode("judy@example.com")

	// Several clients race to redeem the same code. The conditional consume
	// must let exactly one through.
	const n = 4
	var wg sync.WaitGroup
	results := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.VerifyCode(ctx, "judy@example.com", code)
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrInvalidCode) && !errors.Is(err, ErrAlreadyVerified) {
			t.Fatalf("unexpected verify error: %v", err)
		}
	}
	require.Equal(t, 1, successes, "the code is redeemable exactly once")

	user, err := svc.Store.Users().GetUserByEmail(ctx, "judy@example.com")
	require.NoError(t, err)
	require.True(t, user.Verified)
}

func TestSignupConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	// Two signups for the same address race. Both succeed (re-signup before
	// verification re-issues the code) and leave a single account behind
	// whose latest code verifies.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Signup(ctx, "kim@example.com", "hunter2hunter2", "Kim")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}

	_, err := svc.ResendCode(ctx, "kim@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "kim@example.com", sender.lastCode("kim@example.com")))
}

func TestVerifyCodeExpired(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "erin@example.com", "hunter2hunter2", "Erin")
	require.NoError(t, err)
	code := sender.lastCode("erin@example.com")

	user, err := svc.Store.Users().GetUserByEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Store.Users().UpdateOTP(ctx, user.ID, code, time.Now().UTC().Add(-time.Minute)))

	require.ErrorIs(t, svc.VerifyCode(ctx, "erin@example.com", code), ErrCodeExpired)

	// Resend issues a fresh, valid code.
	_, err = svc.ResendCode(ctx, "erin@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "erin@example.com", sender.lastCode("erin@example.com")))

	_, err = svc.ResendCode(ctx, "erin@example.com")
	require.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "frank@example.com", "hunter2hunter2", "Frank")
	require.NoError(t, err)

	// Unknown email, wrong password, and unverified account must be
	// indistinguishable.
	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "frank@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "frank@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.VerifyCode(ctx, "frank@example.com", sender.lastCode("frank@example.com")))
	_, _, err = svc.Login(ctx, "frank@example.com", "hunter2hunter2")
	require.NoError(t, err)
}

func TestAPIKeyLifecycle(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "grace@example.com", "hunter2hunter2", "Grace")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "grace@example.com", sender.lastCode("grace@example.com")))

	user, err := svc.Store.Users().GetUserByEmail(ctx, "grace@example.com")
	require.NoError(t, err)

	key, expiresAt, err := svc.GenerateAPIKey(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, key)
	require.True(t, expiresAt.After(time.Now().Add(89*24*time.Hour)))

	gotID, err := svc.AuthenticateAPIKey(ctx, key)
	require.NoError(t, err)
	require.Equal(t, user.ID, gotID)

	// Regenerating replaces the old key.
	newKey, _, err := svc.GenerateAPIKey(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, key, newKey)

	_, err = svc.AuthenticateAPIKey(ctx, key)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.AuthenticateAPIKey(ctx, newKey)
	require.NoError(t, err)

	// Revocation takes effect immediately.
	require.NoError(t, svc.RevokeAPIKey(ctx, user.ID))
	_, err = svc.AuthenticateAPIKey(ctx, newKey)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAPIKeyExpiryCheckedAtUse(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "heidi@example.com", "hunter2hunter2", "Heidi")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "heidi@example.com", sender.lastCode("heidi@example.com")))

	user, err := svc.Store.Users().GetUserByEmail(ctx, "heidi@example.com")
	require.NoError(t, err)

	svc.APIKeyTTL = -time.Hour // already expired when minted
	key, _, err := svc.GenerateAPIKey(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.AuthenticateAPIKey(ctx, key)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()

	svc, sender := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "ivan@example.com", "old-password-1", "Ivan")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyCode(ctx, "ivan@example.com", sender.lastCode("ivan@example.com")))

	// Unknown emails get the same silent success.
	require.NoError(t, svc.RequestReset(ctx, "nobody@example.com"))
	require.Empty(t, sender.lastToken("nobody@example.com"))

	require.NoError(t, svc.RequestReset(ctx, "ivan@example.com"))
	resetToken := sender.lastToken("ivan@example.com")
	require.NotEmpty(t, resetToken)

	// An access token must not pass as a reset token.
	accessToken, _, err := svc.Login(ctx, "ivan@example.com", "old-password-1")
	require.NoError(t, err)
	require.ErrorIs(t, svc.ResetPassword(ctx, accessToken, "new-password-1"), ErrInvalidToken)

	require.NoError(t, svc.ResetPassword(ctx, resetToken, "new-password-1"))

	_, _, err = svc.Login(ctx, "ivan@example.com", "old-password-1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "ivan@example.com", "new-password-1")
	require.NoError(t, err)

	// A reset token must not pass as an access token.
	_, err = svc.AuthenticateBearer(ctx, resetToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}
