package models

type EventKind int

const (
	EventUnsupported EventKind = iota
	EventPaymentLinkPaid
	EventPaymentCaptured
	EventOrderPaid
)

const (
	EventNamePaymentLinkPaid = "payment_link.paid"
	EventNamePaymentCaptured = "payment.captured"
	EventNameOrderPaid       = "order.paid"
)

// SupportedEvents lists the event names the webhook processes, in the order
// they are advertised in "event not handled" responses.
var SupportedEvents = []string{
	EventNamePaymentLinkPaid,
	EventNamePaymentCaptured,
	EventNameOrderPaid,
}

func ParseEventKind(event string) EventKind {
	switch event {
	case EventNamePaymentLinkPaid:
		return EventPaymentLinkPaid
	case EventNamePaymentCaptured:
		return EventPaymentCaptured
	case EventNameOrderPaid:
		return EventOrderPaid
	default:
		return EventUnsupported
	}
}

// Notification is the inbound webhook envelope from the payment gateway.
// The payload carries at most one entity per wrapper; which wrappers are
// present depends on the event kind.
type Notification struct {
	Event   string  `json:"event"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	PaymentLink *PaymentLinkWrapper `json:"payment_link,omitempty"`
	Payment     *PaymentWrapper     `json:"payment,omitempty"`
	Order       *OrderWrapper       `json:"order,omitempty"`
}

type PaymentLinkWrapper struct {
	Entity *PaymentLinkEntity `json:"entity"`
}

type PaymentWrapper struct {
	Entity *PaymentEntity `json:"entity"`
}

type OrderWrapper struct {
	Entity *OrderEntity `json:"entity"`
}

type PaymentLinkEntity struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Description string    `json:"description,omitempty"`
	Customer    *Customer `json:"customer,omitempty"`
}

type PaymentEntity struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"order_id,omitempty"`
	Amount    int64        `json:"amount"`
	Currency  string       `json:"currency,omitempty"`
	Status    string       `json:"status,omitempty"`
	Method    string       `json:"method,omitempty"`
	Email     string       `json:"email,omitempty"`
	Contact   *ContactInfo `json:"contact,omitempty"`
	Notes     *Notes       `json:"notes,omitempty"`
	CreatedAt int64        `json:"created_at"`
}

type OrderEntity struct {
	ID              string           `json:"id"`
	Amount          int64            `json:"amount"`
	Notes           *Notes           `json:"notes,omitempty"`
	CustomerDetails *CustomerDetails `json:"customer_details,omitempty"`
}

type Customer struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CustomerDetails struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Notes is the gateway's free-form key/value bag; only the keys the checkout
// pages actually set are modelled.
type Notes struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	Item        string `json:"item,omitempty"`
}
