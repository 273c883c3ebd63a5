package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/config"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"gopkg.in/gomail.v2"
)

const qrAttachmentName = "ticket-qr.png"

var ticketTemplate = template.Must(template.New("ticket").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
  .ticket-info { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
  .info-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
  .label { font-weight: bold; color: #667eea; }
  .qr-container { text-align: center; margin: 30px 0; }
  .qr-code { max-width: 300px; border: 4px solid #667eea; border-radius: 10px; }
  .important { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; }
  .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>🎉 Your Ticket is Confirmed!</h1>
    <p>Thank you for your purchase</p>
  </div>
  <div class="content">
    <div class="ticket-info">
      <h2 style="color: #667eea; margin-top: 0;">Ticket Details</h2>
      <div class="info-row"><span class="label">Ticket ID:</span><span>{{.Ticket.TicketID}}</span></div>
      <div class="info-row"><span class="label">Name:</span><span>{{.Ticket.Name}}</span></div>
      <div class="info-row"><span class="label">Email:</span><span>{{.Ticket.Email}}</span></div>
      <div class="info-row"><span class="label">Phone:</span><span>{{.Ticket.Phone}}</span></div>
      <div class="info-row"><span class="label">Item:</span><span>{{.Ticket.ItemPurchased}}</span></div>
      <div class="info-row"><span class="label">Amount Paid:</span><span>₹{{.Ticket.PrizePaid}}</span></div>
      <div class="info-row"><span class="label">Payment ID:</span><span>{{.Ticket.PaymentID}}</span></div>
      <div class="info-row"><span class="label">Date:</span><span>{{.Ticket.DatePurchased}}</span></div>
    </div>
    <div class="important">
      <strong>⚠️ Important:</strong> Please save this QR code. You'll need to show it at the event entrance.
    </div>
    <div class="qr-container">
      <h3 style="color: #667eea;">Your Entry QR Code</h3>
      <img src="cid:{{.QRName}}" alt="Ticket QR Code" class="qr-code" />
      <p style="color: #666; margin-top: 10px;">Show this QR code at the venue</p>
    </div>
    <div class="footer">
      <p>If you have any questions, please contact us at {{.From}}</p>
      <p>© {{.Year}} iPOP Event. All rights reserved.</p>
    </div>
  </div>
</div>
</body>
</html>`))

// Mailer sends ticket confirmations over SMTP with the QR image embedded
// inline. A new dialer connection is made per send; at webhook volume there
// is nothing to pool.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	sender string
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Address, cfg.Password),
		from:   cfg.Address,
		sender: cfg.Sender,
	}
}

// SendTicket delivers the confirmation email. The caller skips the call for
// tickets without an email address; here an empty recipient is an error.
func (m *Mailer) SendTicket(ctx context.Context, ticket *models.Ticket, qrPNG []byte) error {
	if ticket.Email == "" {
		return fmt.Errorf("ticket %s has no email address", ticket.TicketID)
	}

	var body bytes.Buffer
	err := ticketTemplate.Execute(&body, struct {
		Ticket *models.Ticket
		QRName string
		From   string
		Year   int
	}{ticket, qrAttachmentName, m.from, time.Now().Year()})
	if err != nil {
		return fmt.Errorf("error rendering ticket email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.sender)
	msg.SetHeader("To", ticket.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Your iPOP Event Ticket - %s", ticket.TicketID))
	msg.SetBody("text/html", body.String())
	msg.Embed(qrAttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qrPNG)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending ticket email: %w", err)
	}
	return nil
}
