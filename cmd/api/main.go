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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/imobi/internal/config"
	"github.com/xavierca1/imobi/internal/infra/database"
	"github.com/xavierca1/imobi/internal/infra/http/handlers"
	"github.com/xavierca1/imobi/internal/infra/integration/whatsapp"
	"github.com/xavierca1/imobi/internal/infra/mail"
	"github.com/xavierca1/imobi/internal/infra/queue"
	"github.com/xavierca1/imobi/internal/infra/worker"
	"github.com/xavierca1/imobi/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ configuração inválida: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("❌ erro ao criar logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("❌ erro ao conectar no banco", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("❌ erro nas migrações", zap.Error(err))
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatal("❌ erro ao conectar no RabbitMQ", zap.Error(err))
	}
	defer rabbitMQ.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	followUpRepo := database.NewFollowUpRepository(db)
	tenantRepo := database.NewTenantRepository(db)
	provider := usecase.RepositoryProvider{
		Leads:      leadRepo,
		Visits:     database.NewVisitRepository(db),
		Contracts:  database.NewContractRepository(db),
		Properties: database.NewPropertyRepository(db),
		FollowUps:  followUpRepo,
	}

	// 2. Integrações
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppURL, cfg.WhatsAppToken, cfg.WhatsAppPhoneID, logger)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	producer := queue.NewProducer(rabbitMQ.Ch)

	// 3. UseCases
	dashboardUC := usecase.NewGetDashboardUseCase(provider, provider, logger)
	createFollowUpUC := usecase.NewCreateFollowUpUseCase(followUpRepo, leadRepo, logger)
	completeFollowUpUC := usecase.NewCompleteFollowUpUseCase(followUpRepo, logger)
	remindersUC := usecase.NewSendRemindersUseCase(dashboardUC, whatsappClient, database.NewReminderLogRepository(db), logger)

	// 4. Workers. Banco e RabbitMQ só fecham depois que todos retornam.
	digestWorker := worker.NewDigestWorker(tenantRepo, dashboardUC, producer, cfg.DigestInterval, logger)
	processor := worker.NewAlertProcessor(mailSender, remindersUC, cfg.DashboardURL, logger)
	consumer := queue.NewConsumer(rabbitMQ.Ch, processor, logger)
	commissionLimiter := handlers.NewRateLimiter(60, time.Minute)

	workers := startBackground(ctx,
		digestWorker.Start,
		func(ctx context.Context) {
			if err := consumer.Start(ctx, queue.QueueName); err != nil {
				logger.Error("❌ consumidor parou", zap.Error(err))
			}
		},
		commissionLimiter.Run,
	)

	// 5. Router
	router := handlers.Router{
		AllowedOrigins:    cfg.AllowedOrigins,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
		CommissionLimiter: commissionLimiter,
		Health:            handlers.NewHealthHandler(db, rabbitMQ.Conn),
		Dashboard:         handlers.NewDashboardHandler(dashboardUC),
		FollowUps:         handlers.NewFollowUpHandler(followUpRepo, createFollowUpUC, completeFollowUpUC, logger),
		Collections:       handlers.NewCollectionsHandler(provider, logger),
		Commission:        handlers.NewCommissionHandler(),
		Webhook:           handlers.NewWhatsAppWebhookHandler(cfg.WebhookSecret, cfg.VerifyToken, logger),
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("🔥 Server Imobi rodando", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.Env))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("⚠️ encerrando", zap.String("signal", sig.String()))
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("❌ erro no servidor", zap.Error(err))
		}
	}

	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ erro no shutdown", zap.Error(err))
	}

	_ = workers.Wait()
	logger.Info("✅ workers encerrados")
}

// startBackground roda cada tarefa numa goroutine própria; o Wait do grupo
// retorna quando todas saírem.
func startBackground(ctx context.Context, tasks ...func(context.Context)) *errgroup.Group {
	g := new(errgroup.Group)
	for _, task := range tasks {
		g.Go(func() error {
			task(ctx)
			return nil
		})
	}
	return g
}
