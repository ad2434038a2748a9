package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/golfclub/registry/config"
	"github.com/golfclub/registry/internal/member"
	"github.com/golfclub/registry/internal/middleware"
	"github.com/golfclub/registry/internal/tournament"
	"github.com/golfclub/registry/pkg/validator"
)

// SetupRoutes builds the gin engine and wires every feature's routes under
// /api. The database handle and config are passed down explicitly; nothing
// here reaches for globals.
func SetupRoutes(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL, "http://localhost:8080", "https://golfclub.com"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	validator.RegisterCustomValidations()

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "golf club registry", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	member.MemberRoutes(api, db)
	tournament.TournamentRoutes(api, db)

	return r
}
