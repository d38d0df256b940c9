package crm_test

import (
	"net/http"
	"testing"

	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/stretchr/testify/require"
)

// TestAuthAndAPIKeyLifecycle walks the full credential story: signup, email
// verification, login, key issuance, key use, and revocation.
func TestAuthAndAPIKeyLifecycle(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	const email = "lifecycle@example.com"

	_, err := client.Signup(ctx, crmsdk.SignupRequest{
		Email:    email,
		Password: "correct-horse-battery",
		Name:     "Lifecycle",
	})
	require.NoError(t, err)

	// Login before verification fails like any bad credential.
	_, err = client.Login(ctx, email, "correct-horse-battery")
	requireStatus(t, err, http.StatusUnauthorized)

	code := sender.code(email)
	require.NotEmpty(t, code)
	require.NoError(t, client.VerifyCode(ctx, email, code))

	// The code is single-use: a second attempt conflicts.
	requireStatus(t, client.VerifyCode(ctx, email, code), http.StatusConflict)

	login, err := client.Login(ctx, email, "correct-horse-battery")
	require.NoError(t, err)
	require.Equal(t, "Bearer", login.TokenType)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, email, me.Email)

	// Mint a key with the bearer token, then use only the key.
	keyResp, err := client.GenerateAPIKey(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, keyResp.APIKey)

	client.UseAPIKey(keyResp.APIKey)
	meViaKey, err := client.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, me.ID, meViaKey.ID)

	// An API key must not be able to mint or revoke keys.
	_, err = client.GenerateAPIKey(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
	requireStatus(t, client.RevokeAPIKey(ctx), http.StatusUnauthorized)

	// Back on the bearer token, revoke; the key dies immediately.
	client.UseToken(login.Token)
	require.NoError(t, client.RevokeAPIKey(ctx))

	client.UseAPIKey(keyResp.APIKey)
	_, err = client.Me(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	// The bearer token still works.
	client.UseToken(login.Token)
	_, err = client.Me(ctx)
	require.NoError(t, err)
}

// TestDealCascadeOverHTTP exercises the conditional upward cascade end to
// end: removing deals one by one, checking the prospect survives until its
// last deal goes, and that revenue tracks completed payments.
func TestDealCascadeOverHTTP(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	signupAndLogin(t, client, sender, "cascade@example.com")

	prospect, err := client.CreateProspect(ctx, crmsdk.Prospect{
		Name:  "Pied Piper",
		Email: "richard@piedpiper.example.com",
	})
	require.NoError(t, err)

	d1, err := client.CreateDeal(ctx, crmsdk.Deal{ProspectID: prospect.ID, DealValue: 50})
	require.NoError(t, err)
	d2, err := client.CreateDeal(ctx, crmsdk.Deal{ProspectID: prospect.ID, DealValue: 30})
	require.NoError(t, err)

	_, err = client.CreatePayment(ctx, crmsdk.Payment{DealID: d1.ID, Amount: 50, Method: "stripe", Status: "completed"})
	require.NoError(t, err)
	_, err = client.CreatePayment(ctx, crmsdk.Payment{DealID: d2.ID, Amount: 30, Method: "manual", Status: "completed"})
	require.NoError(t, err)

	_, err = client.CreateInteraction(ctx, crmsdk.Interaction{
		ProspectID: prospect.ID,
		Channel:    "email",
		Type:       "outbound",
		Content:    "demo follow-up",
	})
	require.NoError(t, err)

	dash, err := client.DashboardData(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 80.0, dash.Counts.Revenue)
	require.Equal(t, 1, dash.Counts.Prospects)
	require.Equal(t, 2, dash.Counts.Deals)

	// First deal gone: prospect survives, its payment is gone.
	require.NoError(t, client.DeleteDeal(ctx, d1.ID))

	_, err = client.GetProspect(ctx, prospect.ID)
	require.NoError(t, err)

	dash, err = client.DashboardData(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 30.0, dash.Counts.Revenue)
	require.Equal(t, 1, dash.Counts.Deals)

	// Last deal gone: the prospect and its interactions go with it.
	require.NoError(t, client.DeleteDeal(ctx, d2.ID))

	_, err = client.GetProspect(ctx, prospect.ID)
	requireStatus(t, err, http.StatusNotFound)

	interactions, err := client.ListInteractions(ctx)
	require.NoError(t, err)
	require.Empty(t, interactions)

	dash, err = client.DashboardData(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 0.0, dash.Counts.Revenue)
	require.Equal(t, 0, dash.Counts.Prospects)
	require.Empty(t, dash.Prospects)
}

func TestProspectDeleteCascadesOverHTTP(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	signupAndLogin(t, client, sender, "prospect-delete@example.com")

	prospect, err := client.CreateProspect(ctx, crmsdk.Prospect{Name: "Hooli", Email: "gavin@hooli.example.com"})
	require.NoError(t, err)
	deal, err := client.CreateDeal(ctx, crmsdk.Deal{ProspectID: prospect.ID, DealValue: 1000})
	require.NoError(t, err)
	_, err = client.CreatePayment(ctx, crmsdk.Payment{DealID: deal.ID, Amount: 500, Method: "api", Status: "pending"})
	require.NoError(t, err)

	require.NoError(t, client.DeleteProspect(ctx, prospect.ID))

	deals, err := client.ListDeals(ctx)
	require.NoError(t, err)
	require.Empty(t, deals)

	payments, err := client.ListPayments(ctx)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestRejectionsOverHTTP(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	// Everything behind authentication 401s without credentials.
	_, err := client.ListProspects(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
	_, err = client.DashboardData(ctx, 5)
	requireStatus(t, err, http.StatusUnauthorized)

	signupAndLogin(t, client, sender, "rejections@example.com")

	// Validation failures are 400s.
	_, err = client.CreateProspect(ctx, crmsdk.Prospect{Email: "no-name@example.com"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = client.CreateProspect(ctx, crmsdk.Prospect{Name: "x", Email: "x@y.com", Status: "bogus"})
	requireStatus(t, err, http.StatusBadRequest)

	// Missing rows and dangling parents are 404s.
	_, err = client.GetProspect(ctx, "01JCZX5N3VQW8YT2M4E6R7K9AB")
	requireStatus(t, err, http.StatusNotFound)

	_, err = client.CreateDeal(ctx, crmsdk.Deal{ProspectID: "01JCZX5N3VQW8YT2M4E6R7K9AB", DealValue: 1})
	requireStatus(t, err, http.StatusNotFound)

	// Duplicate verified signup conflicts.
	_, err = client.Signup(ctx, crmsdk.SignupRequest{
		Email:    "rejections@example.com",
		Password: "another-password-1",
		Name:     "Dup",
	})
	requireStatus(t, err, http.StatusConflict)
}

// TestAddBusinessOverHTTP checks the composite create: one call seeds a
// prospect plus its starter interaction, deal and payment.
func TestAddBusinessOverHTTP(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	signupAndLogin(t, client, sender, "business@example.com")

	biz, err := client.AddBusiness(ctx, crmsdk.Prospect{
		Name:  "Raviga",
		Email: "peter@raviga.example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, biz.ProspectID)
	require.NotEmpty(t, biz.InteractionID)
	require.NotEmpty(t, biz.DealID)
	require.NotEmpty(t, biz.PaymentID)
	require.Equal(t, "Business created with default records", biz.Message)

	businesses, err := client.ListBusinesses(ctx)
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	require.Equal(t, biz.ProspectID, businesses[0].ID)

	deal, err := client.GetDeal(ctx, biz.DealID)
	require.NoError(t, err)
	require.Equal(t, "initiated", deal.Stage)
	require.Equal(t, 0.0, deal.DealValue)

	// The seeded outreach has not been attempted, so it stays out of the
	// attempted count and the pending payment contributes no revenue.
	dash, err := client.DashboardData(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, 1, dash.Counts.Prospects)
	require.Equal(t, 1, dash.Counts.Deals)
	require.Equal(t, 0, dash.Counts.InteractionsAttempted)
	require.Equal(t, 0.0, dash.Counts.Revenue)

	// A PUT can raise the value and drop it back to zero.
	value := 250.0
	updated, err := client.UpdateDeal(ctx, biz.DealID, crmsdk.DealUpdate{DealValue: &value})
	require.NoError(t, err)
	require.Equal(t, 250.0, updated.DealValue)

	value = 0
	updated, err = client.UpdateDeal(ctx, biz.DealID, crmsdk.DealUpdate{DealValue: &value})
	require.NoError(t, err)
	require.Equal(t, 0.0, updated.DealValue)
	require.Equal(t, "initiated", updated.Stage, "untouched fields survive")
}

// TestDashboardCountHandling checks the recent-prospect count parameter:
// out-of-range values clamp, non-integers are rejected.
func TestDashboardCountHandling(t *testing.T) {
	t.Parallel()

	baseURL, sender := setupServer(t)
	client := crmsdk.NewClient(baseURL)
	ctx := t.Context()

	signupAndLogin(t, client, sender, "dashboard@example.com")

	for _, name := range []string{"alpha", "beta", "gamma"} {
		_, err := client.CreateProspect(ctx, crmsdk.Prospect{
			Name:  name,
			Email: name + "@prospects.example.com",
		})
		require.NoError(t, err)
	}

	dash, err := client.DashboardData(ctx, 500)
	require.NoError(t, err, "oversized count clamps instead of failing")
	require.Len(t, dash.Prospects, 3)

	dash, err = client.DashboardData(ctx, 0)
	require.NoError(t, err)
	require.Len(t, dash.Prospects, 1, "count clamps up to 1")

	dash, err = client.DashboardData(ctx, -7)
	require.NoError(t, err)
	require.Len(t, dash.Prospects, 1)

	// A count that is not a number at all is still a client error. The SDK
	// only sends integers, so issue the request by hand.
	login, err := client.Login(ctx, "dashboard@example.com", "correct-horse-battery")
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/crm/dashboard-data?count=many", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	baseURL, _ := setupServer(t)
	client := crmsdk.NewClient(baseURL)

	health, err := client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
