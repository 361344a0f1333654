package handler

import (
	"asset-exchange-ledger/internal/adapter/http/middleware"
	redisStore "asset-exchange-ledger/internal/adapter/storage/redis"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/internal/platform/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc         ports.AuthService
	TokenSvc        ports.TokenService
	AccessSvc       ports.AccessService
	SingleSvc       ports.SingleCollectionService
	MultiSvc        ports.MultiCollectionService
	MarketplaceSvc  ports.MarketplaceService
	StakingSvc      ports.StakingService
	OrchestratorSvc ports.OrchestratorService
	TokenLedgerSvc  ports.TokenLedgerService
	EventSvc        ports.EventService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Metrics         *metrics.Metrics // nil = metrics disabled
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.Metrics != nil {
		r.Use(middleware.Observe(deps.Metrics))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	singleHandler := NewSingleCollectionHandler(deps.SingleSvc)
	single := v1.Group("/single", jwtAuth)
	{
		single.POST("/mint", rl("collection"), singleHandler.Mint)
		single.GET("/owned", rl("read"), singleHandler.Owned)
		single.GET("/:id", rl("read"), singleHandler.Get)
		single.GET("/:id/owner", rl("read"), singleHandler.Owner)
		single.POST("/:id/burn", rl("collection"), singleHandler.Burn)
		single.PUT("/:id/metadata", rl("collection"), singleHandler.SetMetadata)
		single.POST("/:id/approve", rl("collection"), singleHandler.Approve)
		single.POST("/:id/transfer", rl("collection"), singleHandler.Transfer)
	}

	multiHandler := NewMultiCollectionHandler(deps.MultiSvc)
	multi := v1.Group("/multi", jwtAuth)
	{
		multi.POST("/mint", rl("collection"), multiHandler.Mint)
		multi.POST("/approval", rl("collection"), multiHandler.SetApproval)
		multi.GET("/:id", rl("read"), multiHandler.Get)
		multi.GET("/:id/balance", rl("read"), multiHandler.Balance)
		multi.POST("/:id/burn", rl("collection"), multiHandler.Burn)
		multi.PUT("/:id/metadata", rl("collection"), multiHandler.SetMetadata)
		multi.PUT("/:id/price", rl("collection"), multiHandler.SetPrice)
		multi.POST("/:id/transfer", rl("collection"), multiHandler.Transfer)
	}

	marketHandler := NewMarketplaceHandler(deps.MarketplaceSvc)
	market := v1.Group("/market", jwtAuth)
	{
		market.GET("/listings", rl("read"), marketHandler.Listings)
		market.POST("/listings", rl("market"), marketHandler.ListForSale)
		market.POST("/buy", rl("market_buy"), marketHandler.Buy)
	}

	stakingHandler := NewStakingHandler(deps.StakingSvc)
	staking := v1.Group("/staking", jwtAuth)
	{
		staking.POST("/stake", rl("staking"), stakingHandler.Stake)
		staking.POST("/unstake", rl("staking"), stakingHandler.Unstake)
		staking.POST("/claim", rl("staking"), stakingHandler.Claim)
		staking.GET("/stakes", rl("read"), stakingHandler.Stakes)
	}

	swapHandler := NewSwapHandler(deps.OrchestratorSvc)
	swap := v1.Group("/swap", jwtAuth)
	{
		swap.POST("/single", rl("swap"), swapHandler.SwapSingle)
		swap.POST("/multi", rl("swap"), swapHandler.SwapMulti)
		swap.POST("/cross", rl("swap"), swapHandler.SwapCross)
		swap.POST("/stake", rl("staking"), swapHandler.Stake)
		swap.POST("/claim", rl("staking"), swapHandler.Claim)
		swap.POST("/list", rl("market"), swapHandler.ListForSale)
	}

	adminHandler := NewAdminHandler(deps.AccessSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/roles/grant", rl("admin"), adminHandler.GrantRole)
		admin.POST("/roles/revoke", rl("admin"), adminHandler.RevokeRole)
		admin.GET("/roles/check", rl("read"), adminHandler.CheckRole)
		admin.POST("/pause", rl("admin"), adminHandler.Pause)
		admin.POST("/unpause", rl("admin"), adminHandler.Unpause)
		admin.GET("/paused/:component", rl("read"), adminHandler.PauseStatus)
	}

	tokenHandler := NewTokenHandler(deps.TokenLedgerSvc)
	token := v1.Group("/token", jwtAuth)
	{
		token.POST("/approve", rl("token"), tokenHandler.Approve)
		token.POST("/transfer", rl("token"), tokenHandler.Transfer)
		token.GET("/balance", rl("read"), tokenHandler.Balance)
		token.GET("/allowance/:spender", rl("read"), tokenHandler.Allowance)
	}

	eventHandler := NewEventHandler(deps.EventSvc)
	events := v1.Group("/events", jwtAuth)
	{
		events.GET("", rl("read"), eventHandler.List)
	}

	return r
}
