package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"fluxera.app/api/common/id"
	"fluxera.app/api/common/logger"
	"fluxera.app/api/common/otel"
	"fluxera.app/api/core/config"
	"fluxera.app/api/core/db"
	"fluxera.app/api/internal/cache"
	"fluxera.app/api/internal/docgen"
	"fluxera.app/api/internal/http/middleware"
	httprouter "fluxera.app/api/internal/http/router"
	"fluxera.app/api/internal/service"
	"fluxera.app/api/internal/source"
	"fluxera.app/api/internal/storage"
	"fluxera.app/api/internal/store"
)

const sessionSweepInterval = time.Hour

func main() {
	fmt.Printf("%s\n", banner)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "fluxera api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	stores := store.NewStores(database.Queries())

	deps := service.Dependencies{
		Identity: service.NewWorkOSProvider(cfg.WorkOS),
		Sources:  source.NewClient(cfg.Source.Timeout),
	}

	if cfg.Redis.Enabled() {
		redisClient, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		deps.SessionCache = cache.NewSessionCache(redisClient, cfg.Redis.CacheTTL)
		slog.InfoContext(ctx, "redis connected", "session_cache_ttl", cfg.Redis.CacheTTL)
	} else {
		slog.InfoContext(ctx, "session cache disabled (no redis url configured)")
	}

	if cfg.Storage.Enabled() {
		deps.Images = storage.NewClient(cfg.Storage)
		slog.InfoContext(ctx, "image storage configured", "bucket", cfg.Storage.Bucket)
	} else {
		slog.WarnContext(ctx, "image storage disabled, workspace images will be ignored")
	}

	var assistant docgen.Assistant
	if cfg.OpenAI.Enabled() {
		assistant, err = docgen.NewOpenAIAssistant(docgen.AssistantConfig{
			APIKey:      cfg.OpenAI.APIKey,
			BaseURL:     cfg.OpenAI.BaseURL,
			AssistantID: cfg.OpenAI.AssistantID,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to create documentation assistant", "error", err)
			os.Exit(1)
		}
	} else {
		slog.WarnContext(ctx, "documentation assistant disabled (no OPENAI_API_KEY)")
	}
	docCfg := docgen.DefaultConfig()
	docCfg.PollInterval = cfg.OpenAI.PollInterval
	docCfg.Timeout = cfg.OpenAI.Timeout
	docCfg.MaxAttempts = cfg.OpenAI.MaxAttempts
	deps.Docs = docgen.NewPipeline(assistant, docCfg)

	services := service.NewServices(stores, service.NewTxRunner(database), deps, cfg)

	go sweepSessions(ctx, stores.Sessions(), sessionSweepInterval)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Documentation runs poll for up to 30s per attempt across 3 attempts.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// sweepSessions deletes expired sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, sessions store.SessionStore, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.DeleteExpired(ctx)
			if err != nil {
				slog.WarnContext(ctx, "failed to sweep expired sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.InfoContext(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 8 << 20

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DashboardURL: cfg.DashboardURL,
		IsProduction: cfg.IsProduction(),
	})

	return router
}

const banner = `
███████╗██╗     ██╗   ██╗██╗  ██╗███████╗██████╗  █████╗ 
██╔════╝██║     ██║   ██║╚██╗██╔╝██╔════╝██╔══██╗██╔══██╗
█████╗  ██║     ██║   ██║ ╚███╔╝ █████╗  ██████╔╝███████║
██╔══╝  ██║     ██║   ██║ ██╔██╗ ██╔══╝  ██╔══██╗██╔══██║
██║     ███████╗╚██████╔╝██╔╝ ██╗███████╗██║  ██║██║  ██║
╚═╝     ╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝
`
