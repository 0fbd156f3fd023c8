package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/api/route"
	"github.com/hugohenrick/pos-ceramica/internal/adapter/repository"
	"github.com/hugohenrick/pos-ceramica/internal/infrastructure/database"
	"github.com/hugohenrick/pos-ceramica/internal/service"
	"github.com/hugohenrick/pos-ceramica/pkg/auth"
	"github.com/hugohenrick/pos-ceramica/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Aplicar migrações pendentes na subida, salvo quando desativado
	if os.Getenv("SKIP_MIGRATIONS") != "true" {
		if err := database.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Repositórios de consulta
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	stockLogRepo := repository.NewStockLogRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	accountTxRepo := repository.NewAccountTransactionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	heldRepo := repository.NewHeldInvoiceRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	returnRepo := repository.NewSalesReturnRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	expenseCategoryRepo := repository.NewExpenseCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	authLogRepo := repository.NewAuthLogRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Orquestrador transacional: toda escrita que toca saldo passa aqui
	ledgerStore := repository.NewPostgresLedgerStore(db)
	txService := service.NewTransactionService(ledgerStore, heldRepo, serviceConfigFromEnv(), log)

	// Controllers
	authController := controller.NewAuthController(userRepo, authLogRepo, jwtService, log)
	userController := controller.NewUserController(userRepo, authLogRepo, log)
	productController := controller.NewProductController(productRepo, stockLogRepo, txService, log)
	categoryController := controller.NewCategoryController(categoryRepo, log)
	customerController := controller.NewCustomerController(customerRepo, ledgerRepo, txService, log)
	supplierController := controller.NewSupplierController(supplierRepo, ledgerRepo, txService, log)
	accountController := controller.NewAccountController(accountRepo, accountTxRepo, txService, log)
	saleController := controller.NewSaleController(saleRepo, txService, log)
	purchaseController := controller.NewPurchaseController(purchaseRepo, txService, log)
	returnController := controller.NewSalesReturnController(returnRepo, txService, log)
	quotationController := controller.NewQuotationController(quotationRepo, productRepo, txService, log)
	expenseController := controller.NewExpenseController(expenseRepo, expenseCategoryRepo, txService, log)
	settingsController := controller.NewSettingsController(settingsRepo, log)

	// Router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, authController)
	route.SetupUserRoutes(api, userController)
	route.SetupProductRoutes(api, productController)
	route.SetupCategoryRoutes(api, categoryController)
	route.SetupCustomerRoutes(api, customerController)
	route.SetupSupplierRoutes(api, supplierController)
	route.SetupAccountRoutes(api, accountController)
	route.SetupSaleRoutes(api, saleController)
	route.SetupPurchaseRoutes(api, purchaseController)
	route.SetupReturnRoutes(api, returnController)
	route.SetupQuotationRoutes(api, quotationController)
	route.SetupExpenseRoutes(api, expenseController)
	route.SetupSettingsRoutes(api, settingsController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// serviceConfigFromEnv monta a configuração do orquestrador a partir do
// ambiente, mantendo os padrões da loja quando nada é definido
func serviceConfigFromEnv() service.Config {
	cfg := service.DefaultConfig()
	if os.Getenv("ALLOW_NEGATIVE_STOCK") == "false" {
		cfg.AllowNegativeStock = false
	}
	if os.Getenv("ENFORCE_CREDIT_LIMIT") == "true" {
		cfg.EnforceCreditLimit = true
	}
	return cfg
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
