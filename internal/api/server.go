package api

import (
	"fmt"
	"log"
	"net/http"

	"bioskop/internal/cache"
	"bioskop/internal/config"
	"bioskop/internal/database"
	"bioskop/internal/handlers"
	"bioskop/internal/messaging"
	"bioskop/internal/middleware"
	"bioskop/internal/repository"
	"bioskop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the HTTP API together: database, broker, cache, repositories,
// services and routes.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	cacheClient, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient, cfg.CatalogRefDate)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.cache, s.config.CatalogCacheTTL)

	api := s.router.Group("/api")
	{
		// Catalog endpoints
		movies := api.Group("/movies")
		{
			movies.GET("/now-playing", h.NowPlaying)
			movies.GET("/:code", h.GetMovie)
		}
		api.GET("/schedules/:code/seats", h.GetSeatMap)

		// Cart endpoints
		cart := api.Group("/cart")
		{
			cart.POST("", h.AddToCart)
			cart.GET("/:member", h.GetCart)
			cart.DELETE("/:id", h.RemoveCartItem)
		}

		// Checkout and order endpoints
		api.POST("/checkout", h.Checkout)
		orders := api.Group("/orders")
		{
			orders.GET("/:code", h.GetOrder)
			orders.GET("/:code/qr", h.GetOrderQR)
		}

		// Back-office endpoints
		admin := api.Group("/admin")
		{
			adminMovies := admin.Group("/movies")
			{
				adminMovies.GET("", h.ListMovies)
				adminMovies.POST("", h.CreateMovie)
				adminMovies.PUT("/:id", h.UpdateMovie)
				adminMovies.DELETE("/:id", h.DeleteMovie)
			}

			adminStudios := admin.Group("/studios")
			{
				adminStudios.GET("", h.ListStudios)
				adminStudios.POST("", h.CreateStudio)
				adminStudios.PUT("/:id", h.UpdateStudio)
				adminStudios.DELETE("/:id", h.DeleteStudio)
			}

			adminMembers := admin.Group("/memberships")
			{
				adminMembers.GET("", h.ListMembers)
				adminMembers.POST("", h.CreateMember)
				adminMembers.PUT("/:id", h.UpdateMember)
				adminMembers.DELETE("/:id", h.DeleteMember)
			}

			adminSchedules := admin.Group("/schedules")
			{
				adminSchedules.GET("", h.ListSchedules)
				adminSchedules.POST("", h.CreateSchedule)
				adminSchedules.PUT("/:code", h.UpdateSchedule)
				adminSchedules.DELETE("/:code", h.DeleteSchedule)
			}
		}

		// Reporting endpoints
		reports := api.Group("/reports")
		{
			reports.GET("/movies/daily", h.DailyReport)
			reports.GET("/movies/weekly", h.WeeklyReport)
			reports.GET("/movies/monthly", h.MonthlyReport)
			reports.GET("/genres", h.GenreReport)
			reports.GET("/payment-methods", h.PaymentMethodReport)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "bioskop-api",
		"version": "1.0.0",
	})
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter returns the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup releases external connections.
func (s *Server) Cleanup() {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Failed to close NATS connection: %v", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}
}
