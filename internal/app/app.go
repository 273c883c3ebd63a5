package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/config"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/credential"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/handlers"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/logbuffer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/mailer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/metrics"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/models"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/normalizer"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/publisher"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/qr"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/repository/postgres"
	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	logBuffer := logbuffer.New(logbuffer.DefaultCapacity)
	logrus.AddHook(logbuffer.NewHook(logBuffer))

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Ticket{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.Register()

	ticketRepo := postgres.New(db)
	encoder := credential.New(cfg.Crypto.EncryptionKey, cfg.Crypto.EncryptionIV)
	renderer := qr.NewRenderer()
	ticketMailer := mailer.New(cfg.SMTP)

	var eventPublisher service.Publisher
	if cfg.Kafka.Brokers != "" {
		eventPublisher = publisher.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			strings.Split(cfg.Kafka.PublishTopic, ","),
			cfg.Kafka.GetRetryConfig(),
		)
	} else {
		logrus.Info("No Kafka brokers configured, ticket event fanout disabled")
	}

	webhookService := service.NewWebhookService(
		cfg.Webhook.Secret,
		normalizer.New(cfg.Webhook.TargetPaymentLinkID),
		ticketRepo,
		encoder,
		renderer,
		ticketMailer,
		eventPublisher,
	)
	webhookHandler := handlers.NewWebhookHandler(webhookService, logBuffer, cfg.Webhook.TargetPaymentLinkID)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.Router.Use(handlers.CORS())
	a.RegisterRoutes(webhookHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
