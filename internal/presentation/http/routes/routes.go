package routes

import (
	"time"

	"github.com/flukesan/POS-System/internal/config"
	"github.com/flukesan/POS-System/internal/presentation/http/handler"
	"github.com/flukesan/POS-System/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order       *handler.OrderHandler
	Payment     *handler.PaymentHandler
	Credit      *handler.CreditHandler
	BankAccount *handler.BankAccountHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		orders := v1.Group("/orders")
		{
			orders.POST("", h.Order.Create)
			orders.GET("", h.Order.List)
			orders.GET("/:id", h.Order.Get)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/initiate", h.Payment.Initiate)
			payments.POST("/confirm", h.Payment.Confirm)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("/:id/credit", h.Credit.Summary)
			customers.GET("/:id/credit/transactions", h.Credit.ListTransactions)
			customers.POST("/:id/credit/payments", h.Credit.RecordPayment)
		}

		v1.GET("/bank-accounts", h.BankAccount.List)
	}

	return router
}
