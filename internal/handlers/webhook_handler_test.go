package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/handlers"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/handlers/mocks"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/logbuffer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/normalizer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(h *handlers.WebhookHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers.CORS())
	r.Any("/api/razorpay-webhook", h.Webhook)
	r.Any("/api/logs", h.LogsView)
	r.Any("/api/test-webhook", h.TestWebhook)
	return r
}

func TestWebhook_ProcessedResponse(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "pl_RZdy0gwoRRyEDB")

	body := []byte(`{"event":"payment.captured","payload":{}}`)
	mockService.EXPECT().
		Process(mock.Anything, body, "sig-value").
		Return(&models.WebhookResult{
			Status:   models.StatusSuccess,
			Message:  "Ticket processed successfully",
			TicketID: "TKT-1700000000000-AB12CD",
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader(body))
	req.Header.Set(handlers.SignatureHeader, "sig-value")
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.WebhookResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "TKT-1700000000000-AB12CD", resp.TicketID)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebhook_IgnoredResponse(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	mockService.EXPECT().
		Process(mock.Anything, mock.Anything, "").
		Return(&models.WebhookResult{Status: models.StatusIgnored, Message: "Event refund.processed not handled"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader([]byte(`{"event":"refund.processed"}`)))
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ignored"`)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	mockService.EXPECT().
		Process(mock.Anything, mock.Anything, "bad").
		Return(nil, service.ErrInvalidSignature).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(handlers.SignatureHeader, "bad")
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid signature")
}

func TestWebhook_InvalidPayload(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	mockService.EXPECT().
		Process(mock.Anything, mock.Anything, "").
		Return(nil, fmt.Errorf("%w: order.entity missing", normalizer.ErrPayloadInvalid)).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader([]byte(`{"event":"order.paid"}`)))
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order.entity missing")
}

func TestWebhook_ProcessingFailure(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	mockService.EXPECT().
		Process(mock.Anything, mock.Anything, "").
		Return(nil, errors.New("smtp connection refused")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader([]byte(`{"event":"order.paid"}`)))
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "smtp connection refused")
}

func TestWebhook_OptionsPreflight(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	req := httptest.NewRequest(http.MethodOptions, "/api/razorpay-webhook", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), handlers.SignatureHeader)
	mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_StatusProbe(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	logs := logbuffer.New(10)
	logs.Add("info", "warm start", nil)
	h := handlers.NewWebhookHandler(mockService, logs, "")

	req := httptest.NewRequest(http.MethodGet, "/api/razorpay-webhook", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Webhook endpoint is active")
	assert.Contains(t, w.Body.String(), `"totalLogs":1`)
	mockService.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogsView(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	logs := logbuffer.New(10)
	logs.Add("success", "Ticket stored in database", map[string]interface{}{"ticket_id": "TKT-1-AAAAAA"})
	h := handlers.NewWebhookHandler(mockService, logs, "")

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ticket stored in database")
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestLogsView_MethodNotAllowed(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	req := httptest.NewRequest(http.MethodDelete, "/api/logs", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestTestWebhook_BuildsFixtureAndProcesses(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "pl_RZdy0gwoRRyEDB")

	var forwarded []byte
	mockService.EXPECT().
		Process(mock.Anything, mock.AnythingOfType("[]uint8"), "test_signature").
		Run(func(ctx context.Context, rawBody []byte, providedSignature string) {
			forwarded = rawBody
		}).
		Return(&models.WebhookResult{Status: models.StatusSuccess, TicketID: "TKT-1-CCCCCC"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/test-webhook", bytes.NewReader([]byte(`{"name":"Asha","amount":25000}`)))
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TKT-1-CCCCCC")

	var note models.Notification
	assert.NoError(t, json.Unmarshal(forwarded, &note))
	assert.Equal(t, models.EventNamePaymentLinkPaid, note.Event)
	assert.Equal(t, "pl_RZdy0gwoRRyEDB", note.Payload.PaymentLink.Entity.ID)
	assert.Equal(t, "Asha", note.Payload.PaymentLink.Entity.Customer.Name)
	assert.Equal(t, "test@example.com", note.Payload.PaymentLink.Entity.Customer.Email, "email defaulted")
	assert.Equal(t, int64(25000), note.Payload.Payment.Entity.Amount)
}

func TestTestWebhook_MethodNotAllowed(t *testing.T) {
	mockService := mocks.NewMockWebhookProcessor(t)
	h := handlers.NewWebhookHandler(mockService, logbuffer.New(10), "")

	req := httptest.NewRequest(http.MethodGet, "/api/test-webhook", nil)
	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
