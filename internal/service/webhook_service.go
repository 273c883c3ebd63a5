package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/metrics"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/normalizer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/signature"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/ticket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidSignature rejects a request whose HMAC does not match the
// configured webhook secret.
var ErrInvalidSignature = errors.New("invalid signature")

// TicketRepo persists issued tickets.
type TicketRepo interface {
	Create(ctx context.Context, ticket *models.Ticket) error
}

// Publisher fans ticket events out to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TicketMailer delivers the confirmation email with the rendered QR code.
type TicketMailer interface {
	SendTicket(ctx context.Context, ticket *models.Ticket, qrPNG []byte) error
}

// CredentialEncoder produces the opaque token embedded in the QR code.
type CredentialEncoder interface {
	Encode(ticketID, email string) (string, error)
}

// QRRenderer renders a token into a scannable PNG.
type QRRenderer interface {
	Render(token string) ([]byte, error)
}

// WebhookService sequences one notification through verification,
// normalization, ticket issuance, QR generation, persistence, email and
// event fanout. The steps after normalization are not atomic: a persisted
// ticket whose email failed stays persisted, the request fails, and the
// operator resolves it from the logs.
type WebhookService struct {
	Secret     string
	Normalizer *normalizer.Normalizer
	Repo       TicketRepo
	Encoder    CredentialEncoder
	Renderer   QRRenderer
	Mailer     TicketMailer
	Publisher  Publisher
}

func NewWebhookService(
	secret string,
	norm *normalizer.Normalizer,
	repo TicketRepo,
	encoder CredentialEncoder,
	renderer QRRenderer,
	mailer TicketMailer,
	publisher Publisher,
) *WebhookService {
	return &WebhookService{
		Secret:     secret,
		Normalizer: norm,
		Repo:       repo,
		Encoder:    encoder,
		Renderer:   renderer,
		Mailer:     mailer,
		Publisher:  publisher,
	}
}

// Process handles one raw webhook delivery. It returns a WebhookResult for
// the 200 outcomes (processed or ignored) and an error otherwise; the
// handler maps ErrInvalidSignature and normalizer.ErrPayloadInvalid to 400
// and everything else to 500.
func (s *WebhookService) Process(ctx context.Context, rawBody []byte, providedSignature string) (*models.WebhookResult, error) {
	start := time.Now()
	defer func() {
		metrics.ProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if !signature.Verify(rawBody, providedSignature, s.Secret) {
		logrus.Error("Invalid webhook signature")
		metrics.PayloadsRejectedTotal.Inc()
		return nil, ErrInvalidSignature
	}

	var note models.Notification
	if err := json.Unmarshal(rawBody, &note); err != nil {
		metrics.PayloadsRejectedTotal.Inc()
		return nil, fmt.Errorf("%w: malformed JSON body", normalizer.ErrPayloadInvalid)
	}

	logrus.WithField("event", note.Event).Info("Webhook event received")

	canonical, err := s.Normalizer.Normalize(&note)
	if err != nil {
		switch {
		case errors.Is(err, normalizer.ErrEventUnsupported):
			logrus.WithField("event", note.Event).Warn("Unsupported event type")
			metrics.EventsIgnoredTotal.Inc()
			return &models.WebhookResult{
				Status:  models.StatusIgnored,
				Message: fmt.Sprintf("Event %s not handled. Supported events: %s", note.Event, strings.Join(models.SupportedEvents, ", ")),
			}, nil
		case errors.Is(err, normalizer.ErrEventFiltered):
			logrus.Warn("Payment link ID mismatch")
			metrics.EventsIgnoredTotal.Inc()
			return &models.WebhookResult{
				Status:  models.StatusIgnored,
				Message: "Different payment link ID",
			}, nil
		default:
			logrus.WithField("event", note.Event).Errorf("Invalid payload: %s", err.Error())
			metrics.PayloadsRejectedTotal.Inc()
			return nil, err
		}
	}

	issued := ticket.Issue(canonical)

	logrus.WithFields(logrus.Fields{
		"ticket_id":  issued.TicketID,
		"payment_id": issued.PaymentID,
		"amount":     issued.PrizePaid,
		"email":      issued.Email,
	}).Info("Processing payment for ticket")

	if err := s.processTicket(ctx, issued); err != nil {
		metrics.ProcessingFailuresTotal.Inc()
		logrus.WithField("ticket_id", issued.TicketID).Errorf("Error processing ticket: %s", err.Error())
		return nil, err
	}

	s.publishIssued(ctx, &note, issued)

	metrics.TicketsProcessedTotal.Inc()
	logrus.WithFields(logrus.Fields{
		"ticket_id": issued.TicketID,
		"customer":  issued.Name,
	}).Info("Ticket processed successfully")

	return &models.WebhookResult{
		Status:   models.StatusSuccess,
		Message:  "Ticket processed successfully",
		TicketID: issued.TicketID,
	}, nil
}

// processTicket runs the side-effecting steps in the order the original
// pipeline established: QR first, then the insert, then the email.
func (s *WebhookService) processTicket(ctx context.Context, issued *models.Ticket) error {
	token, err := s.Encoder.Encode(issued.TicketID, issued.Email)
	if err != nil {
		return err
	}

	qrPNG, err := s.Renderer.Render(token)
	if err != nil {
		return err
	}
	logrus.WithField("ticket_id", issued.TicketID).Info("QR code generated successfully")

	if err := s.Repo.Create(ctx, issued); err != nil {
		return err
	}
	logrus.WithField("ticket_id", issued.TicketID).Info("Ticket stored in database")

	if issued.Email == "" {
		logrus.WithField("ticket_id", issued.TicketID).Warn("No email address found, skipping email send")
		return nil
	}

	if err := s.Mailer.SendTicket(ctx, issued, qrPNG); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"ticket_id": issued.TicketID,
		"email":     issued.Email,
	}).Info("Ticket email sent")

	return nil
}

// publishIssued is fire-and-forget: a broker outage must never turn a
// processed ticket into a failed webhook.
func (s *WebhookService) publishIssued(ctx context.Context, note *models.Notification, issued *models.Ticket) {
	if s.Publisher == nil {
		return
	}

	event := models.TicketIssuedEvent{
		TicketID:  issued.TicketID,
		PaymentID: issued.PaymentID,
		Event:     note.Event,
		Amount:    issued.PrizePaid,
		Email:     issued.Email,
		TraceID:   uuid.New().String(),
		IssuedAt:  time.Now().UTC(),
	}

	if err := s.Publisher.Publish(ctx, models.TicketIssuedEventTopic, event); err != nil {
		logrus.WithField("ticket_id", issued.TicketID).Errorf("Failed to publish ticket issued event: %s", err.Error())
	}
}
