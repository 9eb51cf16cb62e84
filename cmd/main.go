package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-expense-tracker/internal/database"
	"github.com/sbilibin2017/gw-expense-tracker/internal/facades"
	"github.com/sbilibin2017/gw-expense-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/notify"
	"github.com/sbilibin2017/gw-expense-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
	"github.com/sbilibin2017/gw-expense-tracker/internal/tokens"
	"github.com/sbilibin2017/gw-expense-tracker/internal/view"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-expense-tracker/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-expense-tracker API
// @version 1.0.0
// @description Personal finance tracker: expenses, income, summaries and exports
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name gw_session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, mail dispatcher and both servers.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Apply migrations
	if err := database.RunMigrations(cfg.PostgresDSN()); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for ledger events
	var events services.KafkaWriter
	if brokers := kafkaBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
		logger.Log.Infow("Ledger events enabled", "brokers", brokers, "topic", cfg.KafkaTopic)
	}

	// Mail dispatcher
	var sender notify.Sender = notify.LogSender{}
	if cfg.SMTPHost != "" {
		sender = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	dispatcher := notify.NewDispatcher(sender, cfg.MailWorkers, cfg.MailQueueSize, 30*time.Second)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			logger.Log.Errorw("mail dispatcher stopped with error", "error", err)
		}
	}()

	// PDF converter
	pdf := facades.NewGotenbergPDFFacade(cfg.GotenbergURL, nil)
	if err := pdf.Ping(ctx); err != nil {
		logger.Log.Warnw("PDF export unavailable", "error", err)
	}

	// Tokens and sessions
	activationTokens := tokens.NewActivationGenerator(cfg.TokenSecret)
	resetTokens := tokens.NewPasswordResetGenerator(cfg.TokenSecret, cfg.ResetTokenTTL)
	signer := jwt.New(jwt.WithSecretKey(cfg.SessionSecret), jwt.WithExpiration(cfg.SessionTTL))
	sessionManager := sessions.NewManager(rdb, signer, cfg.SessionTTL, cfg.SecureCookies)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	txReadRepo := repositories.NewTransactionReadRepository(db, middlewares.GetTxFromContext)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	categoryRepo := repositories.NewCategoryReadRepository(db)
	categoryCache := repositories.NewCategoryCacheRepository(rdb, cfg.CategoryCacheTTL)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, activationTokens, resetTokens, dispatcher, cfg.PublicURL)
	ledgerService := services.NewLedgerService(txReadRepo, txWriteRepo, categoryRepo, categoryCache, events)
	exportService := services.NewExportService(txReadRepo, pdf)
	preferenceService := services.NewPreferenceService(preferenceRepo)

	engine, err := view.NewEngine()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	r := newRouter(routerDeps{
		production:  cfg.Production,
		db:          db,
		sessions:    sessionManager,
		users:       userReadRepo,
		auth:        authService,
		ledger:      ledgerService,
		exports:     exportService,
		preferences: preferenceService,
		renderer:    engine,
		swaggerURL:  cfg.PublicURL + "/swagger/doc.json",
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctxShutdown)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// kafkaBrokers drops blank entries left by an empty KAFKA_BROKERS value.
func kafkaBrokers(raw []string) []string {
	brokers := make([]string, 0, len(raw))
	for _, b := range raw {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
