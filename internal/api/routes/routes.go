package routes

import (
	"knockout-tournament-backend/internal/api/handlers"
	"knockout-tournament-backend/internal/api/middleware"
	"knockout-tournament-backend/internal/config"
	"knockout-tournament-backend/internal/metrics"
	"knockout-tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the services the HTTP layer is built on
type Dependencies struct {
	Tournament service.TournamentServiceInterface
	Teams      service.TeamServiceInterface
	// Metrics is nil when the /metrics endpoint is disabled
	Metrics *metrics.Metrics
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Tournament, Version)
	tournamentHandler := handlers.NewTournamentHandler(deps.Tournament)
	teamHandler := handlers.NewTeamHandler(deps.Teams)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled && deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Write endpoints share a per-client budget
	writes := func(c *gin.Context) { c.Next() }
	if cfg.RateLimitRPS > 0 {
		writes = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware()
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Tournament routes
		tournament := v1.Group("/tournament")
		{
			tournament.GET("", tournamentHandler.GetState)
			tournament.GET("/export", tournamentHandler.Export)
			tournament.POST("/bracket", writes, tournamentHandler.GenerateBracket)
			tournament.PUT("/matches/:id/score", writes, tournamentHandler.SetScore)
			tournament.POST("/matches/:id/confirm", writes, tournamentHandler.ConfirmResult)
			tournament.POST("/reset", writes, tournamentHandler.Reset)
			tournament.POST("/import", writes, tournamentHandler.Import)
			tournament.POST("/archive", writes, tournamentHandler.ArchiveSnapshot)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", writes, teamHandler.CreateTeam)
			teams.PUT("/:id", writes, teamHandler.UpdateTeam)
			teams.DELETE("/:id", writes, teamHandler.DeleteTeam)
			teams.POST("/:id/players", writes, teamHandler.AddPlayer)
			teams.DELETE("/:id/players/:playerId", writes, teamHandler.RemovePlayer)
		}
	}

	return router
}
