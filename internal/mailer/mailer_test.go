package mailer_test

import (
	"context"
	"testing"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/config"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/mailer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSendTicket_NoEmailIsAnError(t *testing.T) {
	m := mailer.New(config.SMTP{Host: "localhost", Port: 2525, Address: "tickets@example.com"})

	err := m.SendTicket(context.Background(), &models.Ticket{TicketID: "TKT-1-AAAAAA"}, []byte("png"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no email address")
}
