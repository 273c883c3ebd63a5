package models

import "fmt"

// CanonicalPayment is the event-kind-independent record a Notification
// normalizes into. Customer fields are best effort: issuance prefers a
// placeholder name and empty email/phone over rejecting the payment.
type CanonicalPayment struct {
	PaymentID string
	OrderID   string
	Amount    int64
	CreatedAt int64
	Name      string
	Email     string
	Phone     string
	Item      string
}

func (p *CanonicalPayment) Validate() error {
	if p.PaymentID == "" {
		return fmt.Errorf("payment ID is required")
	}
	if p.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}
