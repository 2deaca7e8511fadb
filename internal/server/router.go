package server

import (
	"log"
	"net/http"
	"time"

	"databridge-api/internal/auth"
	"databridge-api/internal/config"
	"databridge-api/internal/handlers"
	"databridge-api/internal/middleware"
	"databridge-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	DB       *gorm.DB
	Tokens   *auth.TokenService
	Notifier services.Notifier
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[%s] panic: %v", middleware.GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsCfg))

	jobSvc := services.NewJobService(deps.DB)
	appSvc := services.NewApplicationService(deps.DB, deps.Notifier, cfg.CompanyName, cfg.MeetLink)
	contactSvc := services.NewContactService(deps.DB)

	authH := handlers.NewAuthHandler(auth.NewVerifier(deps.DB), deps.Tokens, services.NewStatsService(deps.DB))
	jobH := handlers.NewJobHandler(jobSvc)
	appH := handlers.NewApplicationHandler(appSvc)
	contactH := handlers.NewContactHandler(contactSvc)

	requireAuth := middleware.RequireAuth(deps.Tokens)

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/login", authH.Login)
	api.GET("/auth/me", requireAuth, authH.Me)
	api.GET("/admin/stats", requireAuth, authH.DashboardStats)

	// JOBS: reads are public
	api.GET("/jobs", jobH.List)
	api.GET("/jobs/:id", jobH.Get)
	api.POST("/jobs", requireAuth, jobH.Create)
	api.PUT("/jobs/:id", requireAuth, jobH.Update)
	api.DELETE("/jobs/:id", requireAuth, jobH.Delete)

	// APPLICATIONS: submission is public
	api.POST("/applications", appH.Create)
	api.GET("/applications", requireAuth, appH.List)
	api.GET("/applications/:id", requireAuth, appH.Get)
	api.PATCH("/applications/:id/status", requireAuth, appH.UpdateStatus)

	// CONTACT: submission is public
	api.POST("/contact", contactH.Create)
	api.GET("/contact", requireAuth, contactH.List)
	api.GET("/contact/:id", requireAuth, contactH.Get)
	api.PATCH("/contact/:id/status", requireAuth, contactH.UpdateStatus)

	// HEALTHCHECK
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found"})
	})

	return r
}
