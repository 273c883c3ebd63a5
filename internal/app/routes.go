package app

import (
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.WebhookHandler) {
	api := a.Router.Group("/api")
	api.Any("/razorpay-webhook", h.Webhook)
	api.Any("/logs", h.LogsView)
	api.Any("/test-webhook", h.TestWebhook)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
