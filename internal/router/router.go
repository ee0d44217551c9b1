package router

import (
	"os"
	"strings"
	"time"

	"girvi-backend/internal/cache"
	"girvi-backend/internal/handlers"
	"girvi-backend/internal/ledger"
	"girvi-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules. Safe to call
// more than once; gin keeps a single validator engine.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("materialtype", func(fl validator.FieldLevel) bool {
			return ledger.ValidMaterialType(fl.Field().String())
		})
	}
}

// New builds the gin engine with every route mounted. The rate cache is
// injected so tests can hand in their own instance.
func New(rateCache *cache.ResponseCache) *gin.Engine {
	RegisterValidators()

	r := gin.Default()

	allowedOrigin := os.Getenv("FRONTEND_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigin, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)
	r.Static("/uploads", "./uploads")

	// Open only for bootstrapping the first admin; keep it off in production
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
	}

	rates := handlers.NewRateHandler(rateCache)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/logout", handlers.Logout)

		// STAFF & ADMIN
		api.POST("/customers", handlers.CreateCustomer)
		api.GET("/customers", handlers.GetAllCustomers)
		api.GET("/customers/:id/girvi", handlers.GetGirviByCustomer)
		api.GET("/customers/:id/sales", handlers.GetSalesByCustomer)
		api.DELETE("/customers/:id", handlers.RemoveCustomer)

		api.GET("/firms", handlers.GetAllFirms)
		api.GET("/firms/:id/customers", handlers.GetCustomersByFirm)

		api.GET("/categories", handlers.GetAllCategories)

		api.GET("/stock", handlers.GetAllStock)
		api.GET("/stock/category/:id", handlers.GetStockByCategory)
		api.GET("/stock/firm/:id", handlers.GetStockByFirm)
		api.GET("/stock/type/:type", handlers.GetStockByType)

		api.GET("/raw-materials", handlers.GetAllRawMaterials)

		api.GET("/daily-rates", rates.GetAllDailyRates)
		api.GET("/daily-rates/today", rates.GetTodayDailyRate)

		api.POST("/girvi", handlers.CreateGirvi)
		api.GET("/girvi", handlers.GetAllGirvi)
		api.DELETE("/girvi/:id", handlers.RemoveGirvi)

		api.POST("/sales", handlers.CreateSale)
		api.GET("/sales", handlers.GetAllSales)
		api.DELETE("/sales/:id", handlers.RemoveSale)

		api.POST("/payments", handlers.CreatePayment)
		api.GET("/payments", handlers.GetAllPayments)

		api.POST("/udhar", handlers.CreateUdhar)
		api.GET("/udhar", handlers.GetAllUdhar)
		api.GET("/udhar/:id/balance", handlers.GetUdharBalance)
		api.POST("/udhar/:id/settlements", handlers.CreateSettlement)
		api.GET("/udhar/:id/settlements", handlers.GetSettlements)

		api.GET("/dashboard/metrics", handlers.GetDashboardMetrics)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/users", handlers.GetAllUsers)
			admin.DELETE("/users/:id", handlers.RemoveUser)

			admin.POST("/firms", handlers.CreateFirm)
			admin.DELETE("/firms/:id", handlers.RemoveFirm)

			admin.POST("/categories", handlers.CreateCategory)
			admin.DELETE("/categories/:id", handlers.RemoveCategory)

			admin.POST("/stock", handlers.CreateStock)
			admin.DELETE("/stock/:id", handlers.RemoveStock)

			admin.POST("/raw-materials", handlers.CreateRawMaterial)
			admin.PUT("/raw-materials/:id/restock", handlers.RestockRawMaterial)
			admin.DELETE("/raw-materials/:id", handlers.RemoveRawMaterial)

			admin.POST("/daily-rates", rates.CreateDailyRate)

			admin.POST("/upload", handlers.UploadImage)
		}
	}

	return r
}
