package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/squadhub/config"
	"github.com/DhavalSuthar-24/squadhub/internal/auth"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/middleware"
	"github.com/DhavalSuthar-24/squadhub/internal/player"
	"github.com/DhavalSuthar-24/squadhub/internal/registration"
	"github.com/DhavalSuthar-24/squadhub/internal/squad"
	"github.com/DhavalSuthar-24/squadhub/internal/storage"
	"github.com/DhavalSuthar-24/squadhub/internal/tournament"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config, assets storage.AssetStore) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "squadhub", "env": cfg.App.Env, "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := user.NewRepository(db)
	authMW := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, users)
	txOpts := database.TxOptions(cfg.DB.TxIsolation)
	logger := slog.Default()

	authService := auth.NewService(users, auth.TokenConfig{
		Secret:        cfg.JWT.AccessTokenSecret,
		Issuer:        cfg.JWT.Issuer,
		ExpiryMinutes: cfg.JWT.AccessTokenExpiryMinutes,
	})
	playerService := player.NewService(player.NewRepository(db, player.UserVerifier))
	squadService := squad.NewService(squad.NewRepository(db), assets, squad.Options{
		TxOptions:      txOpts,
		DefaultMinSize: cfg.Squad.DefaultMinSize,
		DefaultMaxSize: cfg.Squad.DefaultMaxSize,
		MaxCapacity:    cfg.Squad.MaxCapacity,
		Logger:         logger,
	})
	tournamentService := tournament.NewService(tournament.NewRepository(db), tournament.Options{
		TxOptions:           txOpts,
		DefaultMinSquadSize: cfg.Squad.DefaultMinSize,
		DefaultMaxSquadSize: cfg.Squad.DefaultMaxSize,
		Logger:              logger,
	})
	registrationService := registration.NewService(registration.NewRepository(db), registration.Options{
		TxOptions: txOpts,
		Logger:    logger,
	})

	// API routes
	api := r.Group("/api")
	auth.AuthRoutes(api, authService, authMW)
	player.PlayerRoutes(api, playerService, authMW)
	squad.SquadRoutes(api, squadService, authMW)
	tournament.TournamentRoutes(api, tournamentService, authMW)
	registration.RegistrationRoutes(api, registrationService, authMW)

	return r
}
