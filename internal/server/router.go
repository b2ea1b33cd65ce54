package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/fitdetector-backend/internal/handlers"
	"github.com/yungbote/fitdetector-backend/internal/middleware"
)

type RouterConfig struct {
	HealthcheckHandler *handlers.HealthcheckHandler
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	CelebrityHandler   *handlers.CelebrityHandler
	OutfitHandler      *handlers.OutfitHandler
	ClothingHandler    *handlers.ClothingHandler
	ImageHandler       *handlers.ImageHandler
	AuthMiddleware     *middleware.AuthMiddleware
	AllowedOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthcheck", cfg.HealthcheckHandler.Healthcheck)

	public := router.Group("/")
	{
		public.POST("/register", cfg.AuthHandler.Register)
		public.POST("/login", cfg.AuthHandler.Login)
		public.GET("/celebrities/search", cfg.CelebrityHandler.Search)
		public.GET("/outfits/recent", cfg.OutfitHandler.GetRecent)
	}

	// Reads that enrich their payload when a valid token is present but
	// never require one.
	optional := router.Group("/")
	optional.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		optional.GET("/celebrities/:id", cfg.CelebrityHandler.GetByID)
		optional.GET("/outfits/:id", cfg.OutfitHandler.GetByID)
	}

	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/refresh", cfg.AuthHandler.Refresh)
		protected.POST("/logout", cfg.AuthHandler.Logout)
		protected.GET("/user", cfg.UserHandler.GetMe)

		protected.POST("/celebrities/:id/follow", cfg.CelebrityHandler.Follow)
		protected.POST("/celebrities/:id/unfollow", cfg.CelebrityHandler.Unfollow)
		protected.GET("/celebrities/following", cfg.CelebrityHandler.Following)

		protected.POST("/outfits", cfg.OutfitHandler.Create)
		protected.DELETE("/outfits/:id", cfg.OutfitHandler.Delete)
		protected.POST("/outfits/:id/ratings", cfg.OutfitHandler.SubmitRating)
		protected.GET("/outfits/mine", cfg.OutfitHandler.ListMine)

		protected.POST("/clothing", cfg.ClothingHandler.Create)
		protected.POST("/images", cfg.ImageHandler.Upload)
	}

	return router
}
