package domain

import (
	"slices"
	"time"
)

// ProspectStatuses are the allowed pipeline states for a prospect.
var ProspectStatuses = []string{"new", "contacted", "qualified", "not_qualified", "won", "lost"}

// Prospect is the root of the CRM hierarchy. Deleting a prospect removes
// everything beneath it: deals, their payments, and interactions.
type Prospect struct {
	ID        string
	UserID    string // owning tenant
	Name      string
	Email     string
	Website   string
	Phone     string
	Pain      string
	PainScore *int // 0..10, nullable
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func ValidProspectStatus(s string) bool { return slices.Contains(ProspectStatuses, s) }
