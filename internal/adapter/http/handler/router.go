package handler

import (
	"net/http"

	"roundup-saver/internal/adapter/http/middleware"
	"roundup-saver/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies; the largest valid body is a week_start.
const maxBodyBytes = 64 << 10

// MetricsExporter records per-request metrics and serves them.
type MetricsExporter interface {
	middleware.HTTPRecorder
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AccountSvc     ports.AccountService
	RoundUpSvc     ports.RoundUpService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        MetricsExporter // nil = no /metrics
	OpenAPISpec    []byte          // nil = no /swagger
	Mode           string          // gin mode: debug, release, test
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	switch deps.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(deps.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if deps.OpenAPISpec != nil {
		swagger := NewSwaggerHandler(deps.OpenAPISpec)
		r.GET("/swagger", swagger.UI)
		r.GET("/swagger/spec", swagger.Spec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	accountHandler := NewAccountHandler(deps.AccountSvc)
	roundUpHandler := NewRoundUpHandler(deps.RoundUpSvc)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/overview", rl(middleware.GroupRead), accountHandler.Overview)
		v1.GET("/account-holder", rl(middleware.GroupRead), accountHandler.AccountHolder)
		v1.GET("/accounts", rl(middleware.GroupRead), accountHandler.ListAccounts)
	}

	account := v1.Group("/accounts/:accountId")
	{
		account.GET("/roundup", rl(middleware.GroupRead), roundUpHandler.Summary)
		account.POST("/roundup/transfer", rl(middleware.GroupTransfer), roundUpHandler.Transfer)
		account.GET("/transfers", rl(middleware.GroupRead), roundUpHandler.ListTransfers)
	}

	return r
}
