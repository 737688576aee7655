package main

import (
	"context"
	"log"

	"github.com/DhavalSuthar-24/squadhub/config"
	_ "github.com/DhavalSuthar-24/squadhub/docs"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"github.com/DhavalSuthar-24/squadhub/internal/registration"
	"github.com/DhavalSuthar-24/squadhub/internal/squad"
	"github.com/DhavalSuthar-24/squadhub/internal/storage"
	"github.com/DhavalSuthar-24/squadhub/internal/tournament"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/routes"
)

// @title SquadHub REST API
// @version 1.0
// @description Squad membership and tournament registration service.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &player.Profile{},
		&squad.Squad{}, &squad.Member{}, &squad.Invite{}, &squad.JoinRequest{}, &squad.LeaveRequest{},
		&tournament.OrganizerProfile{}, &tournament.Tournament{},
		&registration.Registration{}, &registration.RosterEntry{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	var assets storage.AssetStore = storage.Disabled{}
	if cfg.StorageEnabled() {
		store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			Bucket:          cfg.Storage.Bucket,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("Failed to configure asset storage: %v", err)
		}
		assets = store
	} else {
		log.Println("Asset storage not configured, logo uploads are disabled")
	}

	r := routes.SetupRoutes(config.DB, cfg, assets)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
