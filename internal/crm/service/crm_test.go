package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/cryptox"
	"github.com/sellside/prospectd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store, email string) string {
	t.Helper()

	hash, err := cryptox.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Verified:     true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u.ID
}

func newTestCRMService(t *testing.T) (*CRMService, string) {
	t.Helper()

	st := newTestStore(t)
	return &CRMService{Store: st}, seedUser(t, st, "owner@example.com")
}

func mustCreateProspect(t *testing.T, svc *CRMService, userID, name string) domain.Prospect {
	t.Helper()

	p, err := svc.CreateProspect(context.Background(), domain.Prospect{
		UserID: userID,
		Name:   name,
		Email:  name + "@prospects.example.com",
	})
	require.NoError(t, err)
	return p
}

func mustCreateDeal(t *testing.T, svc *CRMService, userID, prospectID string, value float64) domain.Deal {
	t.Helper()

	d, err := svc.CreateDeal(context.Background(), domain.Deal{
		UserID:     userID,
		ProspectID: prospectID,
		DealValue:  value,
	})
	require.NoError(t, err)
	return d
}

func mustCreatePayment(t *testing.T, svc *CRMService, userID, dealID string, amount float64, status string) domain.Payment {
	t.Helper()

	p, err := svc.CreatePayment(context.Background(), domain.Payment{
		UserID: userID,
		DealID: dealID,
		Amount: amount,
		Method: "stripe",
		Status: status,
	})
	require.NoError(t, err)
	return p
}

func mustCreateInteraction(t *testing.T, svc *CRMService, userID, prospectID string) domain.Interaction {
	t.Helper()

	in, err := svc.CreateInteraction(context.Background(), domain.Interaction{
		UserID:     userID,
		ProspectID: prospectID,
		Channel:    "email",
		Type:       "outbound",
		Content:    "intro mail",
	})
	require.NoError(t, err)
	return in
}

func TestProspectCRUD(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	p := mustCreateProspect(t, svc, userID, "acme")
	require.Equal(t, "new", p.Status, "status defaults to new")
	require.NotEmpty(t, p.ID)

	score := 7
	status := "qualified"
	updated, err := svc.UpdateProspect(ctx, userID, p.ID, ProspectPatch{
		Status:    &status,
		PainScore: &score,
	})
	require.NoError(t, err)
	require.Equal(t, "qualified", updated.Status)
	require.Equal(t, 7, *updated.PainScore)
	require.Equal(t, "acme", updated.Name, "unset fields keep their value")
	require.NotNil(t, updated.UpdatedAt)

	list, err := svc.ListProspects(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUpdateAppliesZeroValues(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	p := mustCreateProspect(t, svc, userID, "acme")
	d := mustCreateDeal(t, svc, userID, p.ID, 500)
	pay := mustCreatePayment(t, svc, userID, d.ID, 500, "completed")

	in, err := svc.CreateInteraction(ctx, domain.Interaction{
		UserID:     userID,
		ProspectID: p.ID,
		Channel:    "email",
		Type:       "outbound",
		Content:    "followup",
		Success:    true,
	})
	require.NoError(t, err)

	// Zero and false carried in a patch are real updates, not "unchanged".
	zero := 0.0
	deal, err := svc.UpdateDeal(ctx, userID, d.ID, DealPatch{DealValue: &zero})
	require.NoError(t, err)
	require.Equal(t, 0.0, deal.DealValue)
	require.Equal(t, "initiated", deal.Stage, "absent fields keep their value")

	payment, err := svc.UpdatePayment(ctx, userID, pay.ID, PaymentPatch{Amount: &zero})
	require.NoError(t, err)
	require.Equal(t, 0.0, payment.Amount)
	require.Equal(t, "completed", payment.Status)

	success := false
	updated, err := svc.UpdateInteraction(ctx, userID, in.ID, InteractionPatch{Success: &success})
	require.NoError(t, err)
	require.False(t, updated.Success)
	require.Equal(t, "followup", updated.Content)

	// And the flipped flag is what the store reports back.
	got, err := svc.GetInteraction(ctx, userID, in.ID)
	require.NoError(t, err)
	require.False(t, got.Success)

	attempts := 0
	updated, err = svc.UpdateInteraction(ctx, userID, in.ID, InteractionPatch{AttemptNumber: &attempts})
	require.NoError(t, err)
	require.Equal(t, 0, updated.AttemptNumber)

	// An empty patch leaves everything alone.
	samePay, err := svc.UpdatePayment(ctx, userID, pay.ID, PaymentPatch{})
	require.NoError(t, err)
	require.Equal(t, 0.0, samePay.Amount)
	require.Equal(t, "completed", samePay.Status)
}

func TestProspectValidation(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	_, err := svc.CreateProspect(ctx, domain.Prospect{UserID: userID, Email: "x@y.com"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProspect(ctx, domain.Prospect{UserID: userID, Name: "x", Email: "x@y.com", Status: "bogus"})
	require.ErrorIs(t, err, ErrValidation)

	score := 11
	_, err = svc.CreateProspect(ctx, domain.Prospect{UserID: userID, Name: "x", Email: "x@y.com", PainScore: &score})
	require.ErrorIs(t, err, ErrValidation)
}

func TestChildRowsRequireExistingParents(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	_, err := svc.CreateDeal(ctx, domain.Deal{UserID: userID, ProspectID: idx.New().String()})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.CreatePayment(ctx, domain.Payment{
		UserID: userID, DealID: idx.New().String(), Amount: 10, Method: "manual",
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.CreateInteraction(ctx, domain.Interaction{
		UserID: userID, ProspectID: idx.New().String(), Channel: "email", Type: "outbound",
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeletePaymentTouchesNothingElse(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	p := mustCreateProspect(t, svc, userID, "acme")
	d := mustCreateDeal(t, svc, userID, p.ID, 100)
	pay := mustCreatePayment(t, svc, userID, d.ID, 100, "completed")

	require.NoError(t, svc.DeletePayment(ctx, userID, pay.ID))

	// Deal and prospect survive; a deal with zero payments is valid.
	_, err := svc.GetDeal(ctx, userID, d.ID)
	require.NoError(t, err)
	_, err = svc.GetProspect(ctx, userID, p.ID)
	require.NoError(t, err)

	payments, err := svc.ListPayments(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestDeleteDealCascade(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	prospect := mustCreateProspect(t, svc, userID, "acme")
	d1 := mustCreateDeal(t, svc, userID, prospect.ID, 50)
	d2 := mustCreateDeal(t, svc, userID, prospect.ID, 30)
	mustCreatePayment(t, svc, userID, d1.ID, 50, "completed")
	mustCreatePayment(t, svc, userID, d2.ID, 30, "completed")
	mustCreateInteraction(t, svc, userID, prospect.ID)

	dash := &DashboardService{Store: svc.Store}
	counts, err := dash.Counts(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 80.0, counts.Revenue)

	// Deleting d1 removes its payment but the prospect still has d2.
	require.NoError(t, svc.DeleteDeal(ctx, userID, d1.ID))

	_, err = svc.GetProspect(ctx, userID, prospect.ID)
	require.NoError(t, err)

	payments, err := svc.ListPayments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, d2.ID, payments[0].DealID)

	counts, err = dash.Counts(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 30.0, counts.Revenue)

	// Deleting the last deal takes the prospect and its interactions down.
	require.NoError(t, svc.DeleteDeal(ctx, userID, d2.ID))

	_, err = svc.GetProspect(ctx, userID, prospect.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	interactions, err := svc.ListInteractions(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, interactions)

	payments, err = svc.ListPayments(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestConcurrentDealDeletes(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	prospect := mustCreateProspect(t, svc, userID, "acme")

	const n = 8
	deals := make([]domain.Deal, n)
	for i := range deals {
		deals[i] = mustCreateDeal(t, svc, userID, prospect.ID, 10)
		mustCreatePayment(t, svc, userID, deals[i].ID, 10, "completed")
	}

	// All deletes run at once. Each cascade is a write transaction, so this
	// exercises writer contention on the shared database file.
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, d := range deals {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.DeleteDeal(ctx, userID, d.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// The last cascade took the prospect with it; nothing is left behind.
	_, err := svc.GetProspect(ctx, userID, prospect.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	remaining, err := svc.ListDeals(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	payments, err := svc.ListPayments(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, payments)
}

func TestDeleteDealKeepsProspectWithoutDeals(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	// A prospect that never had this deal's siblings: deleting its only deal
	// removes the prospect too, but a prospect created without deals is
	// untouched by other users' deletes.
	withDeal := mustCreateProspect(t, svc, userID, "withdeal")
	noDeal := mustCreateProspect(t, svc, userID, "nodeal")
	d := mustCreateDeal(t, svc, userID, withDeal.ID, 10)

	require.NoError(t, svc.DeleteDeal(ctx, userID, d.ID))

	_, err := svc.GetProspect(ctx, userID, withDeal.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.GetProspect(ctx, userID, noDeal.ID)
	require.NoError(t, err)
}

func TestDeleteProspectCascadesEverything(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	target := mustCreateProspect(t, svc, userID, "target")
	bystander := mustCreateProspect(t, svc, userID, "bystander")

	d1 := mustCreateDeal(t, svc, userID, target.ID, 50)
	d2 := mustCreateDeal(t, svc, userID, target.ID, 30)
	keep := mustCreateDeal(t, svc, userID, bystander.ID, 99)
	mustCreatePayment(t, svc, userID, d1.ID, 50, "completed")
	mustCreatePayment(t, svc, userID, d2.ID, 30, "pending")
	keepPay := mustCreatePayment(t, svc, userID, keep.ID, 99, "completed")
	mustCreateInteraction(t, svc, userID, target.ID)
	keepIn := mustCreateInteraction(t, svc, userID, bystander.ID)

	require.NoError(t, svc.DeleteProspect(ctx, userID, target.ID))

	_, err := svc.GetProspect(ctx, userID, target.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	deals, err := svc.ListDeals(ctx, userID)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	require.Equal(t, keep.ID, deals[0].ID)

	payments, err := svc.ListPayments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, keepPay.ID, payments[0].ID)

	interactions, err := svc.ListInteractions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	require.Equal(t, keepIn.ID, interactions[0].ID)
}

func TestDeleteInteractionNoCascade(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	p := mustCreateProspect(t, svc, userID, "acme")
	in := mustCreateInteraction(t, svc, userID, p.ID)

	require.NoError(t, svc.DeleteInteraction(ctx, userID, in.ID))

	_, err := svc.GetProspect(ctx, userID, p.ID)
	require.NoError(t, err)
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()

	svc, owner := newTestCRMService(t)
	stranger := seedUser(t, svc.Store, "stranger@example.com")
	ctx := context.Background()

	p := mustCreateProspect(t, svc, owner, "private")
	d := mustCreateDeal(t, svc, owner, p.ID, 10)

	// Another user's rows behave as missing.
	_, err := svc.GetProspect(ctx, stranger, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, svc.DeleteProspect(ctx, stranger, p.ID), store.ErrNotFound)
	require.ErrorIs(t, svc.DeleteDeal(ctx, stranger, d.ID), store.ErrNotFound)

	_, err = svc.CreateDeal(ctx, domain.Deal{UserID: stranger, ProspectID: p.ID})
	require.ErrorIs(t, err, store.ErrNotFound, "cannot attach a deal to someone else's prospect")

	// And the owner's data is untouched by the attempts.
	_, err = svc.GetProspect(ctx, owner, p.ID)
	require.NoError(t, err)

	list, err := svc.ListProspects(ctx, stranger)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAddBusinessSeedsDefaults(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	biz, err := svc.AddBusiness(ctx, domain.Prospect{
		UserID: userID,
		Name:   "acme",
		Email:  "acme@prospects.example.com",
	})
	require.NoError(t, err)

	require.Equal(t, "new", biz.Prospect.Status)

	require.Equal(t, biz.Prospect.ID, biz.Interaction.ProspectID)
	require.Equal(t, "email", biz.Interaction.Channel)
	require.Equal(t, "outbound", biz.Interaction.Type)
	require.Equal(t, 0, biz.Interaction.AttemptNumber, "seeded outreach has not been attempted yet")
	require.Equal(t, "Initial outreach", biz.Interaction.Content)

	require.Equal(t, biz.Prospect.ID, biz.Deal.ProspectID)
	require.Equal(t, "initiated", biz.Deal.Stage)
	require.Equal(t, 0.0, biz.Deal.DealValue)

	require.Equal(t, biz.Deal.ID, biz.Payment.DealID)
	require.Equal(t, "manual", biz.Payment.Method)
	require.Equal(t, "pending", biz.Payment.Status)
	require.Equal(t, 0.0, biz.Payment.Amount)

	// All four rows landed.
	_, err = svc.GetProspect(ctx, userID, biz.Prospect.ID)
	require.NoError(t, err)
	_, err = svc.GetDeal(ctx, userID, biz.Deal.ID)
	require.NoError(t, err)
	_, err = svc.GetPayment(ctx, userID, biz.Payment.ID)
	require.NoError(t, err)
	_, err = svc.GetInteraction(ctx, userID, biz.Interaction.ID)
	require.NoError(t, err)

	// Attempt number 0 means the seeded outreach stays out of the attempted
	// count until someone actually reaches out.
	dash := &DashboardService{Store: svc.Store}
	counts, err := dash.Counts(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 1, counts.Prospects)
	require.Equal(t, 1, counts.Deals)
	require.Equal(t, 0, counts.InteractionsAttempted)
	require.Equal(t, 0.0, counts.Revenue)
}

func TestAddBusinessRejectsInvalidProspect(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()

	_, err := svc.AddBusiness(ctx, domain.Prospect{UserID: userID, Email: "no-name@x.com"})
	require.ErrorIs(t, err, ErrValidation)

	// Nothing was persisted.
	prospects, err := svc.ListProspects(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, prospects)

	deals, err := svc.ListDeals(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, deals)
}

func TestDashboardCountsAndRecent(t *testing.T) {
	t.Parallel()

	svc, userID := newTestCRMService(t)
	ctx := context.Background()
	dash := &DashboardService{Store: svc.Store}

	p1, err := svc.CreateProspect(ctx, domain.Prospect{
		UserID: userID, Name: "p1", Email: "p1@x.com",
	})
	require.NoError(t, err)
	p2 := mustCreateProspect(t, svc, userID, "p2")

	d := mustCreateDeal(t, svc, userID, p1.ID, 100)
	mustCreatePayment(t, svc, userID, d.ID, 60, "completed")
	mustCreatePayment(t, svc, userID, d.ID, 40, "pending") // excluded from revenue
	mustCreateInteraction(t, svc, userID, p1.ID)
	mustCreateInteraction(t, svc, userID, p2.ID)

	counts, err := dash.Counts(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, counts.Prospects)
	require.Equal(t, 1, counts.Deals)
	require.Equal(t, 2, counts.InteractionsAttempted)
	require.Equal(t, 60.0, counts.Revenue)

	recent, err := dash.RecentProspects(ctx, userID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, p2.ID, recent[0].ID, "newest prospect first")
}
