package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/fitdetector-backend/internal/db"
	"github.com/yungbote/fitdetector-backend/internal/handlers"
	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/middleware"
	"github.com/yungbote/fitdetector-backend/internal/repos"
	"github.com/yungbote/fitdetector-backend/internal/server"
	"github.com/yungbote/fitdetector-backend/internal/services"
	"github.com/yungbote/fitdetector-backend/internal/utils"
)

func main() {
	mode := utils.GetEnv("APP_ENV", "development", nil)
	baseLog, err := logger.New(mode)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer baseLog.Sync()

	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "", baseLog)
	if jwtSecretKey == "" {
		baseLog.Fatal("JWT_SECRET_KEY is required")
	}
	accessTTL := time.Duration(utils.GetEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 15, baseLog)) * time.Minute
	refreshTTL := time.Duration(utils.GetEnvAsInt("REFRESH_TOKEN_TTL_HOURS", 24*7, baseLog)) * time.Hour
	allowedOrigins := strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000", baseLog), ",")
	port := utils.GetEnv("PORT", "8080", baseLog)

	postgresService, err := db.NewPostgresService(baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize Postgres", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		baseLog.Fatal("Failed to migrate Postgres tables", "error", err)
	}
	gormDB := postgresService.DB()

	userRepo := repos.NewUserRepo(gormDB, baseLog)
	userTokenRepo := repos.NewUserTokenRepo(gormDB, baseLog)
	celebrityRepo := repos.NewCelebrityRepo(gormDB, baseLog)
	outfitRepo := repos.NewOutfitRepo(gormDB, baseLog)
	clothingRepo := repos.NewClothingRepo(gormDB, baseLog)
	ratingRepo := repos.NewRatingRepo(gormDB, baseLog)
	followRepo := repos.NewFollowRepo(gormDB, baseLog)

	bucketService, err := services.NewBucketService(baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize bucket service", "error", err)
	}

	authService := services.NewAuthService(gormDB, baseLog, userRepo, userTokenRepo, jwtSecretKey, accessTTL, refreshTTL)
	userService := services.NewUserService(gormDB, baseLog, userRepo)
	celebrityService := services.NewCelebrityService(gormDB, baseLog, celebrityRepo, outfitRepo, followRepo)
	outfitService := services.NewOutfitService(gormDB, baseLog, outfitRepo, celebrityRepo, clothingRepo, ratingRepo, followRepo)
	ratingService := services.NewRatingService(gormDB, baseLog, outfitRepo, ratingRepo, celebrityRepo)
	clothingService := services.NewClothingService(gormDB, baseLog, clothingRepo, outfitRepo)
	imageService := services.NewImageService(baseLog, bucketService)

	authMiddleware := middleware.NewAuthMiddleware(baseLog, authService)

	router := server.NewRouter(server.RouterConfig{
		HealthcheckHandler: handlers.NewHealthcheckHandler(),
		AuthHandler:        handlers.NewAuthHandler(baseLog, authService),
		UserHandler:        handlers.NewUserHandler(baseLog, userService),
		CelebrityHandler:   handlers.NewCelebrityHandler(baseLog, celebrityService),
		OutfitHandler:      handlers.NewOutfitHandler(baseLog, outfitService, ratingService),
		ClothingHandler:    handlers.NewClothingHandler(baseLog, clothingService),
		ImageHandler:       handlers.NewImageHandler(baseLog, imageService),
		AuthMiddleware:     authMiddleware,
		AllowedOrigins:     allowedOrigins,
	})

	baseLog.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		baseLog.Fatal("Server exited", "error", err)
	}
}
