package normalizer

import (
	"errors"
	"fmt"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
)

const defaultItemDescription = "iPOP Event Ticket"

var (
	// ErrEventUnsupported and ErrEventFiltered both mean "respond 200 and do
	// nothing"; the gateway retries delivery on anything else.
	ErrEventUnsupported = errors.New("event not supported")
	ErrEventFiltered    = errors.New("different payment link ID")

	// ErrPayloadInvalid means a required sub-entity is missing; the caller
	// responds 400 before any side effect happens.
	ErrPayloadInvalid = errors.New("invalid payload")
)

// Normalizer maps the three supported notification shapes into a
// CanonicalPayment. When TargetPaymentLinkID is set, payment_link.paid
// events for any other link are filtered out.
type Normalizer struct {
	TargetPaymentLinkID string
}

func New(targetPaymentLinkID string) *Normalizer {
	return &Normalizer{TargetPaymentLinkID: targetPaymentLinkID}
}

// Normalize dispatches on the event kind and resolves payment, customer and
// item description with the checkout pages' fallback chains. Whenever a
// payment ID is present the result is a usable CanonicalPayment; missing
// customer fields degrade to placeholders instead of failing.
func (n *Normalizer) Normalize(note *models.Notification) (*models.CanonicalPayment, error) {
	var (
		payment  *models.PaymentEntity
		customer models.Customer
		item     string
	)

	switch models.ParseEventKind(note.Event) {
	case models.EventPaymentLinkPaid:
		if note.Payload.PaymentLink == nil || note.Payload.PaymentLink.Entity == nil {
			return nil, fmt.Errorf("%w: payment_link.entity missing", ErrPayloadInvalid)
		}
		link := note.Payload.PaymentLink.Entity
		if n.TargetPaymentLinkID != "" && link.ID != n.TargetPaymentLinkID {
			return nil, ErrEventFiltered
		}
		payment = paymentEntity(note)
		if link.Customer != nil {
			customer = *link.Customer
		}
		item = firstNonEmpty(link.Description, defaultItemDescription)

	case models.EventPaymentCaptured:
		payment = paymentEntity(note)
		if payment == nil {
			return nil, fmt.Errorf("%w: payment.entity missing", ErrPayloadInvalid)
		}
		customer = customerFromPayment(payment)
		item = firstNonEmpty(notesDescription(payment.Notes), defaultItemDescription)

	case models.EventOrderPaid:
		if note.Payload.Order == nil || note.Payload.Order.Entity == nil {
			return nil, fmt.Errorf("%w: order.entity missing", ErrPayloadInvalid)
		}
		order := note.Payload.Order.Entity
		payment = paymentEntity(note)
		customer = customerFromOrder(order)
		item = firstNonEmpty(notesDescription(order.Notes), notesItem(order.Notes), defaultItemDescription)

	default:
		return nil, fmt.Errorf("%w: %s", ErrEventUnsupported, note.Event)
	}

	if payment == nil || payment.ID == "" {
		return nil, fmt.Errorf("%w: payment information not found", ErrPayloadInvalid)
	}

	canonical := &models.CanonicalPayment{
		PaymentID: payment.ID,
		OrderID:   firstNonEmpty(payment.OrderID, payment.ID),
		Amount:    payment.Amount,
		CreatedAt: payment.CreatedAt,
		Name:      firstNonEmpty(customer.Name, "Customer"),
		Email:     customer.Email,
		Phone:     customer.Contact,
		Item:      item,
	}
	if err := canonical.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadInvalid, err.Error())
	}
	return canonical, nil
}

func paymentEntity(note *models.Notification) *models.PaymentEntity {
	if note.Payload.Payment == nil {
		return nil
	}
	return note.Payload.Payment.Entity
}

func customerFromPayment(p *models.PaymentEntity) models.Customer {
	var contactName, contactPhone string
	if p.Contact != nil {
		contactName = p.Contact.Name
		contactPhone = p.Contact.Phone
	}
	var notes models.Notes
	if p.Notes != nil {
		notes = *p.Notes
	}
	return models.Customer{
		Name:    firstNonEmpty(notes.Name, contactName),
		Email:   firstNonEmpty(p.Email, notes.Email),
		Contact: firstNonEmpty(contactPhone, notes.Phone),
	}
}

func customerFromOrder(o *models.OrderEntity) models.Customer {
	var details models.CustomerDetails
	if o.CustomerDetails != nil {
		details = *o.CustomerDetails
	}
	var notes models.Notes
	if o.Notes != nil {
		notes = *o.Notes
	}
	return models.Customer{
		Name:    firstNonEmpty(notes.Name, details.Name),
		Email:   firstNonEmpty(details.Email, notes.Email),
		Contact: firstNonEmpty(details.Contact, notes.Phone),
	}
}

func notesDescription(n *models.Notes) string {
	if n == nil {
		return ""
	}
	return n.Description
}

func notesItem(n *models.Notes) string {
	if n == nil {
		return ""
	}
	return n.Item
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
