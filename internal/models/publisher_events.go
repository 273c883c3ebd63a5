package models

import "time"

const TicketIssuedEventTopic = "tickets.issued"

// TicketIssuedEvent is the best-effort fanout published after a ticket has
// been persisted and delivered. Consumers must not rely on exactly-once
// delivery; the webhook response does not wait on publish success.
type TicketIssuedEvent struct {
	TicketID  string    `json:"ticket_id"`
	PaymentID string    `json:"payment_id"`
	Event     string    `json:"event"`
	Amount    string    `json:"amount"`
	Email     string    `json:"email"`
	TraceID   string    `json:"trace_id"`
	IssuedAt  time.Time `json:"issued_at"`
}
