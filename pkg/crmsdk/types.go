package crmsdk

import "time"

// ============================================================================
// Auth payloads
// ============================================================================

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignupResponse reports when the emailed verification code expires.
type SignupResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResendCodeRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the signed access token. TokenType is always
// "Bearer".
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type RequestResetRequest struct {
	Email string `json:"email"`
}

type RequestResetResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// MeResponse identifies the authenticated user.
type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// APIKeyResponse returns the plaintext key exactly once; only its hash is
// stored server-side.
type APIKeyResponse struct {
	APIKey    string    `json:"api_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// CRM payloads
// ============================================================================

type Prospect struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Website   string     `json:"website,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Pain      string     `json:"pain,omitempty"`
	PainScore *int       `json:"pain_score,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Deal struct {
	ID          string     `json:"id"`
	ProspectID  string     `json:"prospect_id"`
	DealValue   float64    `json:"deal_value"`
	Stage       string     `json:"stage"`
	StageReason string     `json:"stage_reason,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Payment struct {
	ID        string    `json:"id"`
	DealID    string    `json:"deal_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Interaction struct {
	ID            string    `json:"id"`
	ProspectID    string    `json:"prospect_id"`
	Channel       string    `json:"channel"`
	Type          string    `json:"type"`
	AttemptNumber int       `json:"attempt_number"`
	Content       string    `json:"content"`
	ResponseType  string    `json:"response_type,omitempty"`
	Success       bool      `json:"success"`
	CreatedAt     time.Time `json:"created_at"`
}

// Update payloads distinguish absent fields from zero values: only fields
// present in the JSON body are applied, so 0 and false are settable.

type ProspectUpdate struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Website   *string `json:"website,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Pain      *string `json:"pain,omitempty"`
	PainScore *int    `json:"pain_score,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type DealUpdate struct {
	DealValue   *float64 `json:"deal_value,omitempty"`
	Stage       *string  `json:"stage,omitempty"`
	StageReason *string  `json:"stage_reason,omitempty"`
}

type PaymentUpdate struct {
	Amount *float64 `json:"amount,omitempty"`
	Method *string  `json:"method,omitempty"`
	Status *string  `json:"status,omitempty"`
}

type InteractionUpdate struct {
	Channel       *string `json:"channel,omitempty"`
	Type          *string `json:"type,omitempty"`
	AttemptNumber *int    `json:"attempt_number,omitempty"`
	Content       *string `json:"content,omitempty"`
	ResponseType  *string `json:"response_type,omitempty"`
	Success       *bool   `json:"success,omitempty"`
}

// BusinessResponse reports the records seeded by the add-business composite
// create: a prospect plus its starter interaction, deal and payment.
type BusinessResponse struct {
	ProspectID    string `json:"prospect_id"`
	InteractionID string `json:"interaction_id"`
	DealID        string `json:"deal_id"`
	PaymentID     string `json:"payment_id"`
	Message       string `json:"message"`
}

// DashboardCounts are the headline metrics. Revenue is the sum of completed
// payment amounts for the authenticated user.
type DashboardCounts struct {
	Prospects             int     `json:"prospects"`
	Deals                 int     `json:"deals"`
	InteractionsAttempted int     `json:"interactions_attempted"`
	Revenue               float64 `json:"revenue"`
}

type DashboardResponse struct {
	User      MeResponse      `json:"user"`
	Counts    DashboardCounts `json:"counts"`
	Prospects []Prospect      `json:"recent_prospects"`
}

// HealthResponse is returned by the health and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
