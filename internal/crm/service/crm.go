package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/idx"
	"github.com/sellside/prospectd/pkg/slogx"
)

// ErrValidation wraps all input validation failures; handlers map it to a
// 400 response carrying the wrapped detail.
var ErrValidation = errors.New("validation")

// CRMService owns the prospect hierarchy: prospects, their deals, the deals'
// payments, and the prospects' interactions. Every read and write is scoped
// to the calling user; rows owned by someone else behave as missing.
type CRMService struct {
	Store store.Store
}

// Patch types carry partial updates. A nil field leaves the stored value
// unchanged, so zero is a settable value rather than shorthand for "absent".

type ProspectPatch struct {
	Name      *string
	Email     *string
	Website   *string
	Phone     *string
	Pain      *string
	PainScore *int
	Status    *string
}

type DealPatch struct {
	DealValue   *float64
	Stage       *string
	StageReason *string
}

type PaymentPatch struct {
	Amount *float64
	Method *string
	Status *string
}

type InteractionPatch struct {
	Channel       *string
	Type          *string
	AttemptNumber *int
	Content       *string
	ResponseType  *string
	Success       *bool
}

// ---- Prospects ----

func (s *CRMService) CreateProspect(ctx context.Context, p domain.Prospect) (domain.Prospect, error) {
	if err := validateProspect(&p); err != nil {
		return domain.Prospect{}, err
	}

	p.ID = idx.New().String()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil

	if err := s.Store.Prospects().CreateProspect(ctx, p); err != nil {
		return domain.Prospect{}, err
	}
	return p, nil
}

func (s *CRMService) GetProspect(ctx context.Context, userID, id string) (domain.Prospect, error) {
	return s.Store.Prospects().GetProspect(ctx, userID, id)
}

func (s *CRMService) ListProspects(ctx context.Context, userID string) ([]domain.Prospect, error) {
	return s.Store.Prospects().ListProspects(ctx, userID)
}

func (s *CRMService) UpdateProspect(ctx context.Context, userID, id string, patch ProspectPatch) (domain.Prospect, error) {
	current, err := s.Store.Prospects().GetProspect(ctx, userID, id)
	if err != nil {
		return domain.Prospect{}, err
	}

	applyProspectPatch(&current, patch)
	if err := validateProspect(&current); err != nil {
		return domain.Prospect{}, err
	}

	if err := s.Store.Prospects().UpdateProspect(ctx, current); err != nil {
		return domain.Prospect{}, err
	}
	now := time.Now().UTC()
	current.UpdatedAt = &now
	return current, nil
}

// DeleteProspect removes a prospect and everything beneath it: payments of
// its deals, the deals themselves, and its interactions, all in one
// transaction.
func (s *CRMService) DeleteProspect(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Prospects().GetProspect(ctx, userID, id); err != nil {
			return err
		}

		// Bottom-up: payments, then deals, then interactions, then the row.
		if err := tx.Payments().DeletePaymentsByProspect(ctx, userID, id); err != nil {
			return err
		}
		if err := tx.Deals().DeleteDealsByProspect(ctx, userID, id); err != nil {
			return err
		}
		if err := tx.Interactions().DeleteInteractionsByProspect(ctx, userID, id); err != nil {
			return err
		}
		if err := tx.Prospects().DeleteProspect(ctx, userID, id); err != nil {
			return err
		}

		l.Info("prospect deleted", slog.String("prospect_id", id))
		return nil
	})
}

// ---- Deals ----

func (s *CRMService) CreateDeal(ctx context.Context, d domain.Deal) (domain.Deal, error) {
	if err := validateDeal(&d); err != nil {
		return domain.Deal{}, err
	}

	// The parent prospect must exist and belong to the same user.
	if _, err := s.Store.Prospects().GetProspect(ctx, d.UserID, d.ProspectID); err != nil {
		return domain.Deal{}, err
	}

	d.ID = idx.New().String()
	d.CreatedAt = time.Now().UTC()
	d.UpdatedAt = nil

	if err := s.Store.Deals().CreateDeal(ctx, d); err != nil {
		return domain.Deal{}, err
	}
	return d, nil
}

func (s *CRMService) GetDeal(ctx context.Context, userID, id string) (domain.Deal, error) {
	return s.Store.Deals().GetDeal(ctx, userID, id)
}

func (s *CRMService) ListDeals(ctx context.Context, userID string) ([]domain.Deal, error) {
	return s.Store.Deals().ListDeals(ctx, userID)
}

func (s *CRMService) UpdateDeal(ctx context.Context, userID, id string, patch DealPatch) (domain.Deal, error) {
	current, err := s.Store.Deals().GetDeal(ctx, userID, id)
	if err != nil {
		return domain.Deal{}, err
	}

	applyDealPatch(&current, patch)
	if err := validateDeal(&current); err != nil {
		return domain.Deal{}, err
	}

	if err := s.Store.Deals().UpdateDeal(ctx, current); err != nil {
		return domain.Deal{}, err
	}
	now := time.Now().UTC()
	current.UpdatedAt = &now
	return current, nil
}

// DeleteDeal removes a deal and its payments. When the parent prospect is
// left with no remaining deals, the prospect and its interactions are
// removed too. The whole cascade runs in one transaction.
func (s *CRMService) DeleteDeal(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		deal, err := tx.Deals().GetDeal(ctx, userID, id)
		if err != nil {
			return err
		}

		if err := tx.Payments().DeletePaymentsByDeal(ctx, userID, id); err != nil {
			return err
		}
		if err := tx.Deals().DeleteDeal(ctx, userID, id); err != nil {
			return err
		}

		remaining, err := tx.Deals().CountDealsByProspect(ctx, userID, deal.ProspectID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		// Last deal gone: the prospect goes with it.
		if err := tx.Interactions().DeleteInteractionsByProspect(ctx, userID, deal.ProspectID); err != nil {
			return err
		}
		if err := tx.Prospects().DeleteProspect(ctx, userID, deal.ProspectID); err != nil {
			return err
		}

		l.Info("deal cascade removed orphaned prospect",
			slog.String("deal_id", id),
			slog.String("prospect_id", deal.ProspectID),
		)
		return nil
	})
}

// ---- Payments ----

func (s *CRMService) CreatePayment(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	if err := validatePayment(&p); err != nil {
		return domain.Payment{}, err
	}

	if _, err := s.Store.Deals().GetDeal(ctx, p.UserID, p.DealID); err != nil {
		return domain.Payment{}, err
	}

	p.ID = idx.New().String()
	p.CreatedAt = time.Now().UTC()

	if err := s.Store.Payments().CreatePayment(ctx, p); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

func (s *CRMService) GetPayment(ctx context.Context, userID, id string) (domain.Payment, error) {
	return s.Store.Payments().GetPayment(ctx, userID, id)
}

func (s *CRMService) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	return s.Store.Payments().ListPayments(ctx, userID)
}

func (s *CRMService) UpdatePayment(ctx context.Context, userID, id string, patch PaymentPatch) (domain.Payment, error) {
	current, err := s.Store.Payments().GetPayment(ctx, userID, id)
	if err != nil {
		return domain.Payment{}, err
	}

	applyPaymentPatch(&current, patch)
	if err := validatePayment(&current); err != nil {
		return domain.Payment{}, err
	}

	if err := s.Store.Payments().UpdatePayment(ctx, current); err != nil {
		return domain.Payment{}, err
	}
	return current, nil
}

// DeletePayment removes a single payment. Deals and prospects are never
// touched: a deal with zero payments is a valid state.
func (s *CRMService) DeletePayment(ctx context.Context, userID, id string) error {
	return s.Store.Payments().DeletePayment(ctx, userID, id)
}

// ---- Interactions ----

func (s *CRMService) CreateInteraction(ctx context.Context, in domain.Interaction) (domain.Interaction, error) {
	// A new interaction without an explicit attempt number counts as the
	// first attempt. Zero stays meaningful for updates (not yet attempted).
	if in.AttemptNumber == 0 {
		in.AttemptNumber = 1
	}
	if err := validateInteraction(&in); err != nil {
		return domain.Interaction{}, err
	}

	if _, err := s.Store.Prospects().GetProspect(ctx, in.UserID, in.ProspectID); err != nil {
		return domain.Interaction{}, err
	}

	in.ID = idx.New().String()
	in.CreatedAt = time.Now().UTC()

	if err := s.Store.Interactions().CreateInteraction(ctx, in); err != nil {
		return domain.Interaction{}, err
	}
	return in, nil
}

func (s *CRMService) GetInteraction(ctx context.Context, userID, id string) (domain.Interaction, error) {
	return s.Store.Interactions().GetInteraction(ctx, userID, id)
}

func (s *CRMService) ListInteractions(ctx context.Context, userID string) ([]domain.Interaction, error) {
	return s.Store.Interactions().ListInteractions(ctx, userID)
}

func (s *CRMService) UpdateInteraction(ctx context.Context, userID, id string, patch InteractionPatch) (domain.Interaction, error) {
	current, err := s.Store.Interactions().GetInteraction(ctx, userID, id)
	if err != nil {
		return domain.Interaction{}, err
	}

	applyInteractionPatch(&current, patch)
	if err := validateInteraction(&current); err != nil {
		return domain.Interaction{}, err
	}

	if err := s.Store.Interactions().UpdateInteraction(ctx, current); err != nil {
		return domain.Interaction{}, err
	}
	return current, nil
}

// DeleteInteraction removes a single interaction; nothing cascades.
func (s *CRMService) DeleteInteraction(ctx context.Context, userID, id string) error {
	return s.Store.Interactions().DeleteInteraction(ctx, userID, id)
}

// ---- Businesses ----

// Business groups the records seeded by AddBusiness.
type Business struct {
	Prospect    domain.Prospect
	Interaction domain.Interaction
	Deal        domain.Deal
	Payment     domain.Payment
}

// AddBusiness creates a prospect together with its starter records in one
// transaction: an outreach interaction with attempt_number 0 (not yet
// attempted), a zero-value initiated deal, and a pending manual payment.
func (s *CRMService) AddBusiness(ctx context.Context, p domain.Prospect) (Business, error) {
	if err := validateProspect(&p); err != nil {
		return Business{}, err
	}

	now := time.Now().UTC()
	p.ID = idx.New().String()
	p.CreatedAt = now
	p.UpdatedAt = nil

	in := domain.Interaction{
		ID:            idx.New().String(),
		UserID:        p.UserID,
		ProspectID:    p.ID,
		Channel:       "email",
		Type:          "outbound",
		AttemptNumber: 0,
		Content:       "Initial outreach",
		CreatedAt:     now,
	}
	d := domain.Deal{
		ID:          idx.New().String(),
		UserID:      p.UserID,
		ProspectID:  p.ID,
		DealValue:   0,
		Stage:       "initiated",
		StageReason: "New business created",
		CreatedAt:   now,
	}
	pay := domain.Payment{
		ID:        idx.New().String(),
		UserID:    p.UserID,
		DealID:    d.ID,
		Amount:    0,
		Method:    "manual",
		Status:    "pending",
		CreatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Prospects().CreateProspect(ctx, p); err != nil {
			return err
		}
		if err := tx.Interactions().CreateInteraction(ctx, in); err != nil {
			return err
		}
		if err := tx.Deals().CreateDeal(ctx, d); err != nil {
			return err
		}
		return tx.Payments().CreatePayment(ctx, pay)
	})
	if err != nil {
		return Business{}, err
	}
	return Business{Prospect: p, Interaction: in, Deal: d, Payment: pay}, nil
}

// ---- validation / change application ----

func validateProspect(p *domain.Prospect) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)

	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if p.Status == "" {
		p.Status = "new"
	}
	if !domain.ValidProspectStatus(p.Status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, p.Status)
	}
	if p.PainScore != nil && (*p.PainScore < 0 || *p.PainScore > 10) {
		return fmt.Errorf("%w: pain_score must be between 0 and 10", ErrValidation)
	}
	return nil
}

func validateDeal(d *domain.Deal) error {
	if d.ProspectID == "" {
		return fmt.Errorf("%w: prospect_id is required", ErrValidation)
	}
	if d.Stage == "" {
		d.Stage = "initiated"
	}
	if !domain.ValidDealStage(d.Stage) {
		return fmt.Errorf("%w: invalid stage %q", ErrValidation, d.Stage)
	}
	if d.DealValue < 0 {
		return fmt.Errorf("%w: deal_value must not be negative", ErrValidation)
	}
	return nil
}

func validatePayment(p *domain.Payment) error {
	if p.DealID == "" {
		return fmt.Errorf("%w: deal_id is required", ErrValidation)
	}
	if p.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if !domain.ValidPaymentMethod(p.Method) {
		return fmt.Errorf("%w: invalid method %q", ErrValidation, p.Method)
	}
	if p.Status == "" {
		p.Status = "pending"
	}
	if !domain.ValidPaymentStatus(p.Status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, p.Status)
	}
	return nil
}

func validateInteraction(in *domain.Interaction) error {
	if in.ProspectID == "" {
		return fmt.Errorf("%w: prospect_id is required", ErrValidation)
	}
	if !domain.ValidInteractionChannel(in.Channel) {
		return fmt.Errorf("%w: invalid channel %q", ErrValidation, in.Channel)
	}
	if !domain.ValidInteractionType(in.Type) {
		return fmt.Errorf("%w: invalid type %q", ErrValidation, in.Type)
	}
	if in.ResponseType != "" && !domain.ValidInteractionResponse(in.ResponseType) {
		return fmt.Errorf("%w: invalid response_type %q", ErrValidation, in.ResponseType)
	}
	if in.AttemptNumber < 0 {
		return fmt.Errorf("%w: attempt_number must not be negative", ErrValidation)
	}
	return nil
}

func applyProspectPatch(dst *domain.Prospect, p ProspectPatch) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Website != nil {
		dst.Website = *p.Website
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Pain != nil {
		dst.Pain = *p.Pain
	}
	if p.PainScore != nil {
		dst.PainScore = p.PainScore
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

func applyDealPatch(dst *domain.Deal, p DealPatch) {
	if p.DealValue != nil {
		dst.DealValue = *p.DealValue
	}
	if p.Stage != nil {
		dst.Stage = *p.Stage
	}
	if p.StageReason != nil {
		dst.StageReason = *p.StageReason
	}
}

func applyPaymentPatch(dst *domain.Payment, p PaymentPatch) {
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.Method != nil {
		dst.Method = *p.Method
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

func applyInteractionPatch(dst *domain.Interaction, p InteractionPatch) {
	if p.Channel != nil {
		dst.Channel = *p.Channel
	}
	if p.Type != nil {
		dst.Type = *p.Type
	}
	if p.AttemptNumber != nil {
		dst.AttemptNumber = *p.AttemptNumber
	}
	if p.Content != nil {
		dst.Content = *p.Content
	}
	if p.ResponseType != nil {
		dst.ResponseType = *p.ResponseType
	}
	if p.Success != nil {
		dst.Success = *p.Success
	}
}
