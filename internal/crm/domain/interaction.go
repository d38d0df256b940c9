package domain

import (
	"slices"
	"time"
)

var (
	// InteractionChannels are the contact channels tracked per prospect.
	InteractionChannels = []string{"email", "phone", "sms"}

	// InteractionTypes distinguish who initiated the touchpoint.
	InteractionTypes = []string{"outbound", "inbound"}

	// InteractionResponses are the observed prospect reactions.
	InteractionResponses = []string{"opened", "clicked", "replied", "ignored"}
)

// Interaction always references an existing Prospect.
type Interaction struct {
	ID            string
	UserID        string
	ProspectID    string
	Channel       string
	Type          string
	AttemptNumber int
	Content       string
	ResponseType  string
	Success       bool
	CreatedAt     time.Time
}

func ValidInteractionChannel(s string) bool  { return slices.Contains(InteractionChannels, s) }
func ValidInteractionType(s string) bool     { return slices.Contains(InteractionTypes, s) }
func ValidInteractionResponse(s string) bool { return slices.Contains(InteractionResponses, s) }
