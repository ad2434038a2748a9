package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/golfclub/registry/config"
	_ "github.com/golfclub/registry/docs"
	"github.com/golfclub/registry/internal/member"
	"github.com/golfclub/registry/internal/tournament"
	"github.com/golfclub/registry/pkg/logger"
	"github.com/golfclub/registry/routes"
)

// @title Golf Club Registry API
// @version 1.0
// @description Membership and tournament registry for a golf club.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The tournament_members join table comes from the many2many mapping.
	if err := db.AutoMigrate(&member.Member{}, &tournament.Tournament{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	r := routes.SetupRoutes(db, cfg, zapLogger)

	zapLogger.Info("Starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
