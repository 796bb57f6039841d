package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"grain-api/internal/cache"
	"grain-api/internal/handlers"
	"grain-api/internal/middleware"
	"grain-api/internal/models"
	"grain-api/internal/repository"
)

// Dependencies agrupa lo que necesitan los handlers
type Dependencies struct {
	Store          repository.DocumentStore
	Cache          *cache.Cache
	Logger         *zap.Logger
	DatabaseURLSet bool
}

// NewRouter arma el engine con middlewares, CORS abierto y todas las rutas
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger), middleware.Logger(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(router, deps)
	return router
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	handlers.RegisterValidators()

	h := handlers.NewDocumentHandler(deps.Store, deps.Cache, deps.Logger)
	diag := handlers.NewDiagnosticsHandler(deps.Store, deps.DatabaseURLSet)

	router.GET("/", handlers.Root)
	router.GET("/test", diag.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/hello", handlers.Hello)

		api.POST("/products", handlers.Create[models.GrainProduct](h))
		api.GET("/products", h.List(models.GrainProductCollection, handlers.DefaultProductLimit))

		api.POST("/inquiries", handlers.Create[models.Inquiry](h))
		api.GET("/inquiries", h.List(models.InquiryCollection, handlers.DefaultInquiryLimit))

		api.POST("/services", handlers.Create[models.PhotographyService](h))
		api.GET("/services", h.List(models.PhotographyServiceCollection, handlers.DefaultServiceLimit))
		api.POST("/services/seed", h.SeedServices)

		api.POST("/bookings", handlers.Create[models.Booking](h))
		api.GET("/bookings", h.List(models.BookingCollection, handlers.DefaultBookingLimit))
	}
}
