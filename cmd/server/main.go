package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adornia-be/internal/alert"
	"adornia-be/internal/cart"
	"adornia-be/internal/catalog"
	"adornia-be/internal/checkout"
	"adornia-be/internal/config"
	"adornia-be/internal/db"
	"adornia-be/internal/email"
	"adornia-be/internal/httpapi"
	"adornia-be/internal/inventory"
	"adornia-be/internal/logger"
	"adornia-be/internal/order"
	"adornia-be/internal/payment"
	"adornia-be/internal/session"
	"adornia-be/internal/subscribe"
	"adornia-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	rdb := db.InitRedis(cfg)
	defer rdb.Close()

	// The alert queue is optional infrastructure. Without a broker the
	// store still sells; reconciliation failures land in the logs instead.
	var alerts alert.Publisher
	if cfg.AmqpURL != "" {
		p, err := alert.NewAMQPPublisher(cfg.AmqpURL)
		if err != nil {
			logger.L().Warn("amqp unavailable, falling back to log alerts", zap.Error(err))
			alerts = alert.NewNoopPublisher()
		} else {
			alerts = p
			defer p.Close()
		}
	} else {
		alerts = alert.NewNoopPublisher()
	}

	catalogClient := catalog.NewClient(cfg.ContentAPIBaseURL, cfg.ContentDataset, cfg.ContentToken)
	gateway := payment.NewPaystackGateway(cfg.PaystackSecretKey)
	mailer := email.NewHTTPMailer(cfg.MailAPIKey, cfg.MailFrom)
	emails := email.NewSender(mailer, cfg.BusinessEmail, cfg.StoreBaseURL)

	orderRepo := order.NewRepository(database)
	subscribeRepo := subscribe.NewRepository(database)
	subscribeSvc := subscribe.NewService(subscribeRepo, emails)

	checkoutSvc := checkout.NewService(
		checkout.NewDraftStore(rdb),
		inventory.NewValidator(catalogClient),
		inventory.NewReconciler(catalogClient),
		gateway,
		orderRepo,
		emails,
		alerts,
		email.BankDetails{
			BankName:      cfg.BankName,
			AccountName:   cfg.BankAccountName,
			AccountNumber: cfg.BankAccountNumber,
		},
	)

	handlers := httpapi.NewHandlers(
		catalogClient,
		cart.NewStore(),
		wishlist.NewStore(),
		checkout.NewContactStore(),
		session.NewManager(cfg.SessionSecret),
		checkoutSvc,
		emails,
		subscribeSvc,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: httpapi.NewRouter(handlers),
	}

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}
