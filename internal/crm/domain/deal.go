package domain

import (
	"slices"
	"time"
)

// DealStages are the allowed negotiation stages for a deal.
var DealStages = []string{"initiated", "negotiating", "closed", "won", "lost"}

// Deal always references an existing Prospect. Deleting a deal removes its
// payments; if the parent prospect is left with no deals, the prospect and
// its interactions go too.
type Deal struct {
	ID          string
	UserID      string
	ProspectID  string
	DealValue   float64
	Stage       string
	StageReason string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func ValidDealStage(s string) bool { return slices.Contains(DealStages, s) }
