package models

// Ticket is the issued entry record. It is written once per processed
// notification and never updated; the same value renders the confirmation
// email and the QR credential.
type Ticket struct {
	TicketID      string `json:"ticket_id" gorm:"primaryKey;column:ticket_id"`
	PaymentID     string `json:"payment_id" gorm:"column:payment_id"`
	OrderID       string `json:"order_id" gorm:"column:order_id"`
	Name          string `json:"name" gorm:"column:name"`
	Email         string `json:"email" gorm:"column:email"`
	Phone         string `json:"phone" gorm:"column:phone"`
	ItemPurchased string `json:"item_purchased" gorm:"column:item_purchased"`
	PrizePaid     string `json:"prize_paid" gorm:"column:prize_paid"`
	DatePurchased string `json:"date_purchased" gorm:"column:date_purchased"`
}

func (Ticket) TableName() string {
	return "ticket_details"
}
