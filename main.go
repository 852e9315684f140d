// File: main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"courtside/config"
	"courtside/controllers"
	"courtside/logger"
	"courtside/middleware"
	"courtside/services"
	"courtside/store"
)

func main() {
	logger.InitLogger()
	logger.Info.Println("[main] starting courtside API")

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Error.Println("[main] JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := store.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		logger.Error.Printf("[main] database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ApplySchema(); err != nil {
		logger.Error.Printf("[main] schema setup failed: %v", err)
		os.Exit(1)
	}

	router, err := buildRouter(cfg, db)
	if err != nil {
		logger.Error.Printf("[main] startup failed: %v", err)
		os.Exit(1)
	}

	logger.Info.Printf("[main] listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error.Printf("[main] server stopped: %v", err)
		os.Exit(1)
	}
}

// buildRouter wires repositories, services and controllers onto a gin
// engine. Split out of main so startup failures are testable.
func buildRouter(cfg config.Config, db *store.Database) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	teamRepo := store.NewTeamRepository(db)
	playerRepo := store.NewPlayerRepository(db)
	staffRepo := store.NewStaffRepository(db)
	gameRepo := store.NewGameRepository(db)
	userRepo := store.NewUserRepository(db)

	teamService := services.NewTeamService(teamRepo)
	playerService := services.NewPlayerService(playerRepo, teamService)
	staffService := services.NewStaffService(staffRepo)
	gameService := services.NewGameService(gameRepo, teamService)
	userService := services.NewUserService(userRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTLifetime)
	authService := services.NewAuthService(userRepo, tokenService)

	if err := seedAdmin(cfg, userService); err != nil {
		return nil, fmt.Errorf("seeding admin account: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	staffPhotos, playerPhotos, err := buildPhotoStorage(cfg, router)
	if err != nil {
		return nil, fmt.Errorf("configuring photo storage: %w", err)
	}

	healthController := controllers.NewHealthController(db)
	publicController := controllers.NewPublicController(teamService, playerService, gameService, staffService)
	authController := controllers.NewAuthController(authService)
	teamController := controllers.NewAdminTeamController(teamService)
	playerController := controllers.NewAdminPlayerController(playerService, playerPhotos)
	staffController := controllers.NewAdminStaffController(staffService, staffPhotos)
	gameController := controllers.NewAdminGameController(gameService)

	router.GET("/health", healthController.Health)
	router.POST("/auth/login", authController.Login)

	public := router.Group("/public")
	{
		public.GET("/teams", publicController.GetTeams)
		public.GET("/teams/:teamId/players", publicController.GetPlayersByTeam)
		public.GET("/games", publicController.GetFullSchedule)
		public.GET("/games/upcoming", publicController.GetUpcomingGames)
		public.GET("/games/recent", publicController.GetRecentGames)
		public.GET("/staff", publicController.GetStaff)
		public.GET("/staff/:id", publicController.GetStaffMember)
	}

	admin := router.Group("/admin", middleware.AuthRequired(authService))
	{
		admin.GET("/teams", teamController.ListTeams)
		admin.GET("/teams/:id", teamController.GetTeam)
		admin.POST("/teams", teamController.CreateTeam)
		admin.PUT("/teams/:id", teamController.UpdateTeam)
		admin.DELETE("/teams/:id", teamController.DeleteTeam)

		admin.GET("/players/team/:teamId", playerController.ListPlayersByTeam)
		admin.POST("/players", playerController.CreatePlayer)
		admin.PUT("/players/:id", playerController.UpdatePlayer)
		admin.DELETE("/players/:id", playerController.DeletePlayer)
		admin.POST("/players/photo", playerController.UploadPhoto)

		admin.GET("/staff", staffController.ListStaff)
		admin.POST("/staff", staffController.CreateStaff)
		admin.PUT("/staff/:id", staffController.UpdateStaff)
		admin.DELETE("/staff/:id", staffController.DeleteStaff)
		admin.POST("/staff/photo", staffController.UploadPhoto)

		admin.GET("/games", gameController.ListGames)
		admin.POST("/games", gameController.CreateGame)
		admin.PUT("/games/:id", gameController.UpdateGame)
		admin.DELETE("/games/:id", gameController.DeleteGame)
	}

	return router, nil
}

// buildPhotoStorage selects the storage backend from configuration.
// Local storage also mounts the upload directories as static routes so
// the returned URLs resolve.
func buildPhotoStorage(cfg config.Config, router *gin.Engine) (staff, player services.PhotoStorage, err error) {
	switch cfg.StorageBackend {
	case config.StorageLocal:
		router.Static("/uploads/staff", cfg.StaffUploadDir)
		router.Static("/uploads/players", cfg.PlayerUploadDir)
		return services.NewLocalPhotoStorage(cfg.StaffUploadDir, "/uploads/staff"),
			services.NewLocalPhotoStorage(cfg.PlayerUploadDir, "/uploads/players"), nil
	case config.StorageS3:
		client, err := services.NewS3Client(cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretAccessKey)
		if err != nil {
			return nil, nil, err
		}
		staff, err := services.NewS3PhotoStorage(client, cfg.S3Bucket, cfg.S3Region, cfg.StaffPrefix, cfg.S3PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		player, err := services.NewS3PhotoStorage(client, cfg.S3Bucket, cfg.S3Region, cfg.PlayerPrefix, cfg.S3PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return staff, player, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// seedAdmin makes sure the bootstrap admin account exists. Runs are
// idempotent so restarts never duplicate the account.
func seedAdmin(cfg config.Config, users *services.UserService) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn.Println("[main] no admin credentials configured, skipping seed")
		return nil
	}
	_, err := users.CreateUserIfNotExists(context.Background(), cfg.AdminFullName, cfg.AdminEmail, cfg.AdminPassword)
	return err
}
