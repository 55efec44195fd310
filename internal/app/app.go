package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/memory"
	mongoadapter "github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/mongo"
	natsadapter "github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/nats"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/payment"
	redisadapter "github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/redis"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/adapter/tasks"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/clock"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/platform/tracer"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/port/rest"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/router"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/seed"
	"github.com/hibiken/asynq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	server         *rest.Server
	services       *Services
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	natsConn       *nats.Conn
	enqueuer       *tasks.Enqueuer
	taskServer     *asynq.Server
	tracerProvider *sdktrace.TracerProvider
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logCfg := logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	}
	appLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s, Storage: %s", cfg.Env, cfg.HTTP.Port, cfg.Storage.Driver)

	application := &App{cfg: cfg, log: appLogger}
	application.tracerProvider = tracer.InitTracer(cfg.ServiceName, cfg.Tracing.OTLPEndpoint, appLogger)

	if cfg.Storage.Mirror || cfg.Cart.Driver == "redis" || cfg.Tasks.Enabled {
		appLogger.Info("Initializing Redis client...")
		application.redisClient, err = redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Errorf("Failed to initialize Redis client: %v", err)
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		appLogger.Info("Redis client initialized successfully")
	}

	var mirror repository.Mirror
	if cfg.Storage.Mirror {
		mirror = redisadapter.NewMirror(application.redisClient)
	}
	store := memory.NewStore(mirror, appLogger.With("component", "store"))
	if err := store.Bootstrap(ctx, seed.Initial()); err != nil {
		return nil, fmt.Errorf("failed to bootstrap store: %w", err)
	}
	appLogger.Info("In-memory store bootstrapped")

	infra := Infra{
		Store:   store,
		Clock:   clock.New(),
		Metrics: metrics.NewMetricsManager(cfg.ServiceName),
	}
	infra.Gateway = payment.NewSimulatedGateway(cfg.Payment.Latency, infra.Clock, appLogger.With("component", "payment"))

	if cfg.Storage.Driver == config.StorageMongo {
		if err := application.initMongo(ctx, &infra); err != nil {
			return nil, err
		}
	}

	if cfg.Cart.Driver == "redis" {
		infra.Carts = redisadapter.NewCartRepository(application.redisClient)
	} else {
		infra.Carts = memory.NewCartRepository()
	}
	appLogger.Infof("CartRepository initialized (%s)", cfg.Cart.Driver)

	infra.Publisher = natsadapter.NewNoopPublisher()
	if cfg.NATS.Enabled {
		application.natsConn, err = natsadapter.Connect(cfg.NATS, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		infra.Publisher, err = natsadapter.NewNATSPublisher(application.natsConn, cfg.NATS.SubjectPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		appLogger.Info("NATS publisher initialized")
	}

	if cfg.SMTP.Host != "" {
		infra.Email, err = email.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
	} else {
		appLogger.Warn("SMTP host not configured, receipts will only be logged")
		infra.Email = email.NewLogSender(cfg.SMTP.SenderEmail, appLogger)
	}

	if cfg.MinIO.Endpoint != "" {
		photos, err := s3.NewS3Storage(ctx, cfg.MinIO, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
		}
		infra.Photos = photos
	}

	if cfg.Tasks.Enabled {
		opt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
		application.enqueuer = tasks.NewEnqueuer(opt, appLogger)
		application.taskServer = tasks.NewServer(opt, cfg.Tasks.Concurrency, appLogger)
		infra.Receipts = application.enqueuer
	}

	application.services = NewServices(infra, cfg, appLogger)

	mux := router.New(application.services.Handlers(cfg, appLogger), infra.Metrics, cfg.Auth.JWTSecret, appLogger.Desugar())
	application.server = rest.NewServer(
		appLogger,
		cfg.HTTP.Port,
		cfg.HTTP.ReadTimeout,
		cfg.HTTP.WriteTimeout,
		cfg.HTTP.IdleTimeout,
		cfg.HTTP.TimeoutGraceful,
		mux,
	)
	appLogger.Info("HTTP server instance created")

	return application, nil
}

// initMongo swaps the conversation store for MongoDB, seeding an empty
// collection from the same initial data as the in-memory store.
func (a *App) initMongo(ctx context.Context, infra *Infra) error {
	a.log.Info("Initializing MongoDB client...")
	client, err := mongoadapter.NewClient(ctx, a.cfg.MongoDB)
	if err != nil {
		a.log.Errorf("Failed to initialize MongoDB client: %v", err)
		return fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	a.mongoClient = client

	repo := mongoadapter.NewConversationRepository(client, a.cfg.MongoDB, a.log.With("component", "mongo"))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	if err := repo.SeedIfEmpty(ctx, seed.Initial().Conversations); err != nil {
		return fmt.Errorf("failed to seed conversations: %w", err)
	}
	infra.Conversations = repo
	a.log.Info("MongoDB conversation repository initialized")
	return nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
	a.log.Info("HTTP server started in a goroutine")

	if a.taskServer != nil {
		processor := tasks.NewTaskProcessor(a.services.Receipts, a.log.With("component", "tasks"))
		if err := a.taskServer.Start(processor.Mux()); err != nil {
			a.log.Errorf("Failed to start task server: %v", err)
		} else {
			a.log.Info("Task server started")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	}

	if a.taskServer != nil {
		a.taskServer.Shutdown()
		a.log.Info("Task server stopped")
	}
	if a.enqueuer != nil {
		if err := a.enqueuer.Close(); err != nil {
			a.log.Errorf("Error closing task client: %v", err)
		}
	}

	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			a.log.Errorf("Error draining NATS connection: %v", err)
		}
	}

	a.log.Info("Closing database connections...")

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed successfully")
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}

	if err := a.tracerProvider.Shutdown(shutdownCtx); err != nil {
		a.log.Errorf("Error shutting down tracer provider: %v", err)
	}

	a.log.Info("Application shut down successfully")
	logger.Sync(a.log)
}
