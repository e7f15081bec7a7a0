package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/handler"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/middleware"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/ws"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto migrate (use a dedicated migration tool in production)
	db.AutoMigrate(&model.Product{}, &model.Purchase{}, &model.Sale{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	reportRepo := repository.NewReportRepo(db)
	userRepo := repository.NewUserRepo(db)

	productService := service.NewProductService(productRepo, reportRepo, wsHub)
	ledgerService := service.NewLedgerService(productRepo, purchaseRepo, saleRepo, db, wsHub)
	reportService := service.NewReportService(reportRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory App v1.0",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Product routes (mutations require admin)
	protected.Get("/products", productHandler.List)
	protected.Get("/products/export/csv", productHandler.ExportCSV)
	protected.Get("/products/alerts/low-stock", productHandler.LowStock)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", middleware.RequireRole(model.RoleAdmin), productHandler.Create)
	protected.Put("/products/:id", middleware.RequireRole(model.RoleAdmin), productHandler.Update)
	protected.Delete("/products/:id", middleware.RequireRole(model.RoleAdmin), productHandler.Delete)

	// Ledger routes
	protected.Get("/purchases", ledgerHandler.ListPurchases)
	protected.Post("/purchases", ledgerHandler.CreatePurchase)
	protected.Get("/purchases/:id", ledgerHandler.GetPurchase)
	protected.Get("/sales", ledgerHandler.ListSales)
	protected.Post("/sales", ledgerHandler.CreateSale)
	protected.Get("/sales/:id", ledgerHandler.GetSale)

	// Report routes
	protected.Get("/reports/summary", reportHandler.Summary)
	protected.Get("/reports/monthly-sales", reportHandler.MonthlySales)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Name:  "Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s (admin)", email)
	}
}
