package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-exchange-ledger/config"
	httpHandler "asset-exchange-ledger/internal/adapter/http/handler"
	pgStorage "asset-exchange-ledger/internal/adapter/storage/postgres"
	redisStorage "asset-exchange-ledger/internal/adapter/storage/redis"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/internal/platform/metrics"
	"asset-exchange-ledger/internal/service"
	"asset-exchange-ledger/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Asset Exchange Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Prometheus instruments
	appMetrics := metrics.New()

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	roleRepo := pgStorage.NewRoleRepo(pool)
	singleRepo := pgStorage.NewSingleUnitRepo(pool)
	multiRepo := pgStorage.NewMultiUnitRepo(pool)
	listingRepo := pgStorage.NewListingRepo(pool)
	stakeRepo := pgStorage.NewStakeRepo(pool)
	tokenRepo := pgStorage.NewTokenRepo(pool)
	eventRepo := metrics.InstrumentEventRepo(pgStorage.NewEventRepo(pool), appMetrics)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	listingCache := redisStorage.NewListingCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	clock := service.NewClock()

	// Initialize business services
	accessSvc := service.NewAccessService(roleRepo, transactor, log)
	singleSvc := service.NewSingleCollectionService(accessSvc, singleRepo, eventRepo, transactor, clock, log)
	multiSvc := service.NewMultiCollectionService(accessSvc, multiRepo, eventRepo, transactor, clock, log)
	marketSvc := service.NewMarketplaceService(
		accessSvc,
		singleSvc,
		multiSvc,
		listingRepo,
		eventRepo,
		tokenRepo,
		listingCache,
		transactor,
		cfg.Ledger.MarketplaceAddress,
		clock,
		log,
	)
	stakingSvc := service.NewStakingService(
		accessSvc,
		singleSvc,
		stakeRepo,
		eventRepo,
		tokenRepo,
		transactor,
		cfg.Ledger.StakingAddress,
		cfg.Ledger.RewardRatePerSecond,
		clock,
		log,
	)
	orchestratorSvc := service.NewOrchestratorService(
		accessSvc,
		singleSvc,
		multiSvc,
		marketSvc,
		stakingSvc,
		eventRepo,
		transactor,
		cfg.Ledger.OrchestratorAddress,
		log,
	)
	tokenLedgerSvc := service.NewTokenLedgerService(tokenRepo, transactor, log)
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc, log)
	eventSvc := service.NewEventService(eventRepo)

	// Seed roles, pause flags, and the reward treasury. Idempotent.
	if err := bootstrapLedger(ctx, cfg, accessSvc, tokenRepo, transactor, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap ledger state")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:         authSvc,
		TokenSvc:        tokenSvc,
		AccessSvc:       accessSvc,
		SingleSvc:       singleSvc,
		MultiSvc:        multiSvc,
		MarketplaceSvc:  marketSvc,
		StakingSvc:      stakingSvc,
		OrchestratorSvc: orchestratorSvc,
		TokenLedgerSvc:  tokenLedgerSvc,
		EventSvc:        eventSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:         appMetrics,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// bootstrapLedger grants the admin every role, seeds the pause flags, and
// funds the reward treasury with the initial supply. The supply mint only
// runs while the treasury is empty, so restarts never inflate it.
func bootstrapLedger(
	ctx context.Context,
	cfg *config.Config,
	accessSvc ports.AccessService,
	token ports.PaymentToken,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) error {
	if err := accessSvc.Bootstrap(ctx, cfg.Ledger.AdminAddress); err != nil {
		return fmt.Errorf("bootstrap access registry: %w", err)
	}

	if cfg.Ledger.InitialSupply == 0 {
		return nil
	}

	balance, err := token.BalanceOf(ctx, cfg.Ledger.StakingAddress)
	if err != nil {
		return fmt.Errorf("check treasury balance: %w", err)
	}
	if balance > 0 {
		return nil
	}

	tx, err := transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin supply mint: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := token.Mint(ctx, tx, cfg.Ledger.StakingAddress, cfg.Ledger.InitialSupply); err != nil {
		return fmt.Errorf("mint treasury supply: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit supply mint: %w", err)
	}

	log.Info().
		Uint64("amount", cfg.Ledger.InitialSupply).
		Str("treasury", cfg.Ledger.StakingAddress).
		Msg("reward treasury funded")
	return nil
}
