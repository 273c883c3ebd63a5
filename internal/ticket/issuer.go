package ticket

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/shopspring/decimal"
)

const idSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var minorUnitsPerRupee = decimal.NewFromInt(100)

// Issue builds the Ticket for a normalized payment: a fresh ticket ID, the
// amount converted from paise to a fixed 2-decimal rupee string, and the
// purchase date truncated to the UTC calendar day of the payment's
// created_at timestamp.
func Issue(p *models.CanonicalPayment) *models.Ticket {
	return &models.Ticket{
		TicketID:      NewID(),
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		ItemPurchased: p.Item,
		PrizePaid:     FormatAmount(p.Amount),
		DatePurchased: time.Unix(p.CreatedAt, 0).UTC().Format("2006-01-02"),
	}
}

// NewID returns a ticket ID of the form TKT-<epoch-millis>-<6 chars>.
// The time+random scheme keeps compatibility with tickets already stored
// and printed; it is not collision-proof in theory, but the suffix space
// per millisecond makes collisions a non-concern at event scale.
func NewID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))]
	}
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), suffix)
}

// FormatAmount converts an integer minor-unit amount into a major-unit
// string with exactly two decimals, e.g. 50000 -> "500.00".
func FormatAmount(minorUnits int64) string {
	return decimal.NewFromInt(minorUnits).Div(minorUnitsPerRupee).StringFixed(2)
}
