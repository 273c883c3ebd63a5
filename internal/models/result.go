package models

type WebhookStatus string

const (
	StatusSuccess WebhookStatus = "success"
	StatusIgnored WebhookStatus = "ignored"
)

// WebhookResult is the outcome of one processed notification. Error exits
// (bad signature, malformed payload, processing failure) travel as errors
// instead; a WebhookResult always maps to HTTP 200.
type WebhookResult struct {
	Status   WebhookStatus `json:"status"`
	Message  string        `json:"message"`
	TicketID string        `json:"ticket_id,omitempty"`
}
