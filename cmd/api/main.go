package main

import (
	"log"

	"github.com/flukesan/POS-System/internal/application/service"
	"github.com/flukesan/POS-System/internal/config"
	"github.com/flukesan/POS-System/internal/infrastructure/database"
	"github.com/flukesan/POS-System/internal/infrastructure/repository"
	"github.com/flukesan/POS-System/internal/presentation/http/handler"
	"github.com/flukesan/POS-System/internal/presentation/http/routes"
	"github.com/flukesan/POS-System/pkg/refgen"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Payment); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	refs := refgen.New()
	pricingService := service.NewPricingService(productRepo)
	orderService := service.NewOrderService(uow, orderRepo, customerRepo, pricingService, refs)
	creditService := service.NewCreditService(uow, customerRepo, creditRepo)
	paymentService := service.NewPaymentService(uow, creditService, refs)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:       handler.NewOrderHandler(orderService),
		Payment:     handler.NewPaymentHandler(paymentService, bankAccountRepo),
		Credit:      handler.NewCreditHandler(creditService),
		BankAccount: handler.NewBankAccountHandler(bankAccountRepo),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
