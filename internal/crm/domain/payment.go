package domain

import (
	"slices"
	"time"
)

var (
	// PaymentMethods are the accepted payment channels.
	PaymentMethods = []string{"stripe", "api", "manual"}

	// PaymentStatuses are the payment settlement states. Only completed
	// payments count toward revenue.
	PaymentStatuses = []string{"pending", "completed"}
)

// PaymentStatusCompleted is the status summed into revenue.
const PaymentStatusCompleted = "completed"

// Payment always references an existing Deal.
type Payment struct {
	ID        string
	UserID    string
	DealID    string
	Amount    float64
	Method    string
	Status    string
	CreatedAt time.Time
}

func ValidPaymentMethod(s string) bool { return slices.Contains(PaymentMethods, s) }
func ValidPaymentStatus(s string) bool { return slices.Contains(PaymentStatuses, s) }
