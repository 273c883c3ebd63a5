package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/logbuffer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/metrics"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/normalizer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SignatureHeader is the gateway's authentication header.
const SignatureHeader = "x-razorpay-signature"

// WebhookProcessor runs one raw notification through the issuance pipeline.
type WebhookProcessor interface {
	Process(ctx context.Context, rawBody []byte, providedSignature string) (*models.WebhookResult, error)
}

type WebhookHandler struct {
	Service             WebhookProcessor
	Logs                *logbuffer.Buffer
	TargetPaymentLinkID string
}

func NewWebhookHandler(s WebhookProcessor, logs *logbuffer.Buffer, targetPaymentLinkID string) *WebhookHandler {
	return &WebhookHandler{Service: s, Logs: logs, TargetPaymentLinkID: targetPaymentLinkID}
}

// CORS mirrors the headers the original deployment sent on every response;
// the dashboard that polls /api/logs is served from a different origin.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		c.Header("Access-Control-Allow-Headers", "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version, "+SignatureHeader)
		c.Next()
	}
}

// ANY /api/razorpay-webhook
//
// OPTIONS answers the CORS preflight, POST processes a notification, and
// every other method serves as a liveness probe so the endpoint can be
// checked from a browser.
func (h *WebhookHandler) Webhook(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodPost:
		h.processWebhook(c)
	default:
		logrus.WithField("method", c.Request.Method).Info("Webhook status check - endpoint is active")
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"message":    "Webhook endpoint is active",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"totalLogs":  h.Logs.Len(),
			"recentLogs": h.Logs.Recent(5),
		})
	}
}

func (h *WebhookHandler) processWebhook(c *gin.Context) {
	metrics.WebhookRequestsTotal.Inc()

	rawBody, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}

	result, err := h.Service.Process(c.Request.Context(), rawBody, c.GetHeader(SignatureHeader))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *WebhookHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
	case errors.Is(err, normalizer.ErrPayloadInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	default:
		// The raw error lands in the response for the operator's benefit;
		// the endpoint is admin-facing enough that leaking it is accepted.
		logrus.Errorf("Webhook processing error: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}

// ANY /api/logs
func (h *WebhookHandler) LogsView(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodGet:
		entries := h.Logs.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"logs":      entries,
			"count":     len(entries),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}

type testWebhookRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Amount int64  `json:"amount"`
}

// ANY /api/test-webhook
//
// Builds the canonical payment_link.paid fixture and runs it through the
// real pipeline. With a webhook secret configured the fixture fails the
// signature check, just like the hosted version did.
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
	case http.MethodPost:
		var req testWebhookRequest
		_ = c.ShouldBindJSON(&req)
		if req.Name == "" {
			req.Name = "Test User"
		}
		if req.Email == "" {
			req.Email = "test@example.com"
		}
		if req.Phone == "" {
			req.Phone = "+919876543210"
		}
		if req.Amount == 0 {
			req.Amount = 50000
		}

		body, err := json.Marshal(h.fixtureNotification(req))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Test failed", "message": err.Error()})
			return
		}

		result, err := h.Service.Process(c.Request.Context(), body, "test_signature")
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
}

func (h *WebhookHandler) fixtureNotification(req testWebhookRequest) *models.Notification {
	now := time.Now()
	nonce := strconv.FormatInt(now.UnixNano(), 36)
	return &models.Notification{
		Event: models.EventNamePaymentLinkPaid,
		Payload: models.Payload{
			PaymentLink: &models.PaymentLinkWrapper{
				Entity: &models.PaymentLinkEntity{
					ID:          h.TargetPaymentLinkID,
					Amount:      req.Amount,
					Currency:    "INR",
					Description: "iPOP Event Ticket",
					Customer: &models.Customer{
						Name:    req.Name,
						Email:   req.Email,
						Contact: req.Phone,
					},
				},
			},
			Payment: &models.PaymentWrapper{
				Entity: &models.PaymentEntity{
					ID:        "pay_TEST" + nonce,
					OrderID:   "order_TEST" + nonce,
					Amount:    req.Amount,
					Currency:  "INR",
					Status:    "captured",
					Method:    "upi",
					CreatedAt: now.Unix(),
				},
			},
		},
	}
}
