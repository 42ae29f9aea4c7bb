package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"speed/internal/config"
	"speed/internal/infra/adapter/persistence"
	"speed/internal/infra/db"
	"speed/internal/infra/events"
	"speed/internal/observability/logging"
	"speed/internal/observability/tracing"
	"speed/internal/resilience/circuitbreaker"
	artUC "speed/internal/usecase/article"
	"speed/internal/usecase/workflow"

	hhttp "speed/internal/handler/http"
	"speed/internal/handler/http/analyst"
	"speed/internal/handler/http/article"
	hauth "speed/internal/handler/http/auth"
	"speed/internal/handler/http/moderator"
	"speed/internal/handler/http/requestid"
	authservice "speed/internal/service/auth"

	_ "speed/docs" // swagger docs
)

// @title           SPEED API
// @version         1.0
// @description     Software engineering evidence database.
// @description     Submissions are moderated, analysed and then published as articles.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	secCfg, err := config.LoadSecurityConfig(os.Getenv("SECURITY_CONFIG"))
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	publisher := events.New(events.LoadConfigFromEnv())
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", slog.Any("error", err))
		}
	}()

	auth, err := setupAuth(logger, secCfg)
	if err != nil {
		logger.Error("authentication setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	stores, err := persistence.NewStores(database, db.Driver())
	if err != nil {
		logger.Error("failed to create stores", slog.Any("error", err))
		os.Exit(1)
	}

	components := setupServer(logger, serverDeps{
		DB:        database,
		Version:   getVersion(),
		Stores:    stores,
		Publisher: publisher,
		Security:  secCfg,
		Auth:      auth,
	})
	runServer(logger, components)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database, db.Driver()); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// authSetup is nil when authentication is disabled.
type authSetup struct {
	Service *authservice.AuthService
	Secret  []byte
	TTL     time.Duration
}

// setupAuth validates the configured accounts and the JWT secret.
// A broken admin account is fatal; other roles are disabled with a warning.
func setupAuth(logger *slog.Logger, cfg *config.SecurityConfig) (*authSetup, error) {
	if !cfg.AuthEnabled() {
		logger.Warn("authentication is DISABLED - every endpoint is public")
		return nil, nil
	}
	secret, err := cfg.JWTSecret()
	if err != nil {
		return nil, err
	}
	accounts, err := hauth.ValidateAccounts(
		hauth.LoadAccounts(os.Getenv),
		cfg.GetMinPasswordLength(),
		cfg.GetWeakPasswords(),
		logger,
	)
	if err != nil {
		return nil, err
	}

	provider := hauth.NewEnvProvider(accounts, cfg.GetMinPasswordLength(), cfg.GetWeakPasswords())
	logger.Info("authentication enabled",
		slog.Any("roles", provider.Roles()),
		slog.Duration("token_ttl", cfg.TokenTTL()))
	return &authSetup{
		Service: authservice.NewAuthService(provider, cfg.GetPublicEndpoints()),
		Secret:  secret,
		TTL:     cfg.TokenTTL(),
	}, nil
}

type serverDeps struct {
	DB        *sql.DB
	Version   string
	Stores    persistence.Stores
	Publisher events.Publisher
	Security  *config.SecurityConfig
	Auth      *authSetup
}

// ServerComponents holds the handler plus the limiters whose buckets need
// periodic cleanup.
type ServerComponents struct {
	Handler  http.Handler
	Limiters map[string]*hhttp.RateLimiter
	IdleTTL  time.Duration
}

// setupServer registers every route and wraps the mux in the middleware chain.
func setupServer(logger *slog.Logger, deps serverDeps) *ServerComponents {
	queries := &artUC.Service{Repo: deps.Stores.Articles}
	wf := &workflow.Service{
		Queue:    deps.Stores.Queue,
		Articles: deps.Stores.Articles,
		Rejected: deps.Stores.Rejected,
		Events:   deps.Publisher,
	}

	rl := deps.Security.RateLimit()
	limiters := map[string]*hhttp.RateLimiter{}
	var submitLimit, globalLimit hhttp.Middleware
	if rl.Enabled {
		submit := hhttp.NewRateLimiter(rl.SubmitRPS, rl.SubmitBurst, rl.IdleTTL)
		global := hhttp.NewRateLimiter(rl.GlobalRPS, rl.GlobalBurst, rl.IdleTTL)
		limiters["submit"], limiters["global"] = submit, global
		submitLimit, globalLimit = submit.Limit, global.Limit
		logger.Info("rate limiting initialized",
			slog.Float64("global_rps", rl.GlobalRPS),
			slog.Int("global_burst", rl.GlobalBurst),
			slog.Float64("submit_rps", rl.SubmitRPS),
			slog.Int("submit_burst", rl.SubmitBurst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	var breakers []*circuitbreaker.CircuitBreaker
	if kp, ok := deps.Publisher.(*events.KafkaPublisher); ok {
		breakers = append(breakers, kp.Breaker())
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:           deps.DB,
		Version:      deps.Version,
		RateLimiters: limiters,
		Breakers:     breakers,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: deps.DB})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	article.Register(mux, queries, wf, submitLimit)
	moderator.Register(mux, wf)
	analyst.Register(mux, wf, submitLimit)

	var handler http.Handler = mux
	if deps.Auth != nil {
		var token http.Handler = &hauth.TokenHandler{
			Service: deps.Auth.Service,
			Secret:  deps.Auth.Secret,
			TTL:     deps.Auth.TTL,
		}
		// ブルートフォース対策: トークン発行は投稿と同じ厳しい制限
		if submitLimit != nil {
			token = submitLimit(token)
		}
		mux.Handle("POST /auth/token", token)
		handler = hauth.Authz(deps.Auth.Service, deps.Auth.Secret)(mux)
	}

	chain := []hhttp.Middleware{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
		hhttp.CORS(deps.Security.AllowedOrigins()),
		hhttp.LimitRequestBody(hhttp.MaxRequestBodyBytes),
	}
	if globalLimit != nil {
		chain = append(chain, globalLimit)
	}

	return &ServerComponents{
		Handler:  hhttp.Chain(handler, chain...),
		Limiters: limiters,
		IdleTTL:  rl.IdleTTL,
	}
}

// runServer serves on :8080 (PORT overrides) until SIGINT or SIGTERM.
func runServer(logger *slog.Logger, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for name, rl := range components.Limiters {
		go rl.StartCleanup(ctx, components.IdleTTL, name)
	}

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
