// Package router wires services, controllers and middleware into the gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/dao"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options configures the HTTP layer
type Options struct {
	JWTSecret string
	// Logger receives one line per request. Nil disables request logging.
	Logger *logrus.Logger
	// Swagger mounts the API docs under /swagger
	Swagger bool
}

func init() {
	// numbers in DTO bodies keep their exact textual value
	binding.EnableDecoderUseNumber = true
	if err := validation.Register(); err != nil {
		panic(err)
	}
}

// New builds the router over an already migrated database
func New(db *gorm.DB, opts Options) *gin.Engine {
	store := dao.NewStore(db)

	pizzaController := controllers.NewPizzaController(services.NewPizzaService(store))
	ingredientController := controllers.NewIngredientController(services.NewIngredientService(store))
	userService := services.NewUserService(store)
	authController := controllers.NewAuthController(userService, opts.JWTSecret)
	userController := controllers.NewUserController(userService)
	orderController := controllers.NewOrderController(services.NewOrderService(store))
	reportController := controllers.NewReportController(services.NewReportService(store))
	clientController := controllers.NewClientController(services.NewClientService(db))
	oauthService := auth.NewOAuthService(db, opts.JWTSecret)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}

	authenticated := middleware.OAuth2Auth([]byte(opts.JWTSecret))
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router.GET("/health", healthCheckHandler)

	// OAuth2 endpoints live at the root, as registered clients expect
	oauth := router.Group("/oauth")
	{
		oauth.POST("/token", oauthService.HandleToken)
		oauth.GET("/authorize", authenticated, oauthService.HandleAuthorize)
	}

	v1 := router.Group("/api/v1")
	{
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		// Public catalog
		v1.GET("/pizzas", pizzaController.GetAllPizzas)
		v1.GET("/pizzas/popular", reportController.PopularPizzas)
		v1.GET("/pizzas/by-price", reportController.PizzasByPrice)
		v1.GET("/pizzas/:id", pizzaController.GetPizzaByID)
		v1.GET("/ingredients", ingredientController.ListIngredients)

		// Protected routes (requires a valid bearer token)
		protectedApi := v1.Group("")
		protectedApi.Use(authenticated)
		{
			protectedApi.POST("/orders", orderController.CreateOrder)
			protectedApi.GET("/orders", orderController.ListOrders)
			protectedApi.GET("/orders/:id", orderController.GetOrder)
			protectedApi.DELETE("/orders/:id", orderController.CancelOrder)
			protectedApi.PUT("/orders/:id", orderController.UpdateOrderStatus)

			protectedApi.GET("/users/me", userController.GetProfile)
			protectedApi.PUT("/users/me", userController.UpdateProfile)

			protectedApi.POST("/clients", clientController.CreateClient)
			protectedApi.GET("/clients", clientController.ListClients)
			protectedApi.DELETE("/clients/:id", clientController.DeleteClient)

			adminApi := protectedApi.Group("")
			adminApi.Use(adminOnly)
			{
				adminApi.POST("/pizzas", pizzaController.CreatePizza)
				adminApi.PUT("/pizzas/:id", pizzaController.UpdatePizza)
				adminApi.DELETE("/pizzas/:id", pizzaController.DeletePizza)

				adminApi.POST("/ingredients", ingredientController.CreateIngredient)
				adminApi.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)

				adminApi.GET("/orders/stats", reportController.OrderStats)
				adminApi.GET("/orders/recent", reportController.RecentOrders)
				adminApi.GET("/users/active", reportController.ActiveUsers)
			}
		}
	}

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-pizza-orders",
	})
}
