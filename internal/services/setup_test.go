package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/repos"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

// testEnv wires every service against an in-memory sqlite database so
// the transactional flows run for real.
type testEnv struct {
	db               *gorm.DB
	userRepo         repos.UserRepo
	userTokenRepo    repos.UserTokenRepo
	celebrityRepo    repos.CelebrityRepo
	outfitRepo       repos.OutfitRepo
	clothingRepo     repos.ClothingRepo
	ratingRepo       repos.RatingRepo
	followRepo       repos.FollowRepo
	authService      AuthService
	userService      UserService
	celebrityService CelebrityService
	outfitService    OutfitService
	ratingService    RatingService
	clothingService  ClothingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Celebrity{},
		&types.Outfit{},
		&types.Clothing{},
		&types.OutfitRating{},
		&types.Follow{},
	))

	baseLog, err := logger.New("development")
	require.NoError(t, err)

	userRepo := repos.NewUserRepo(gormDB, baseLog)
	userTokenRepo := repos.NewUserTokenRepo(gormDB, baseLog)
	celebrityRepo := repos.NewCelebrityRepo(gormDB, baseLog)
	outfitRepo := repos.NewOutfitRepo(gormDB, baseLog)
	clothingRepo := repos.NewClothingRepo(gormDB, baseLog)
	ratingRepo := repos.NewRatingRepo(gormDB, baseLog)
	followRepo := repos.NewFollowRepo(gormDB, baseLog)

	return &testEnv{
		db:               gormDB,
		userRepo:         userRepo,
		userTokenRepo:    userTokenRepo,
		celebrityRepo:    celebrityRepo,
		outfitRepo:       outfitRepo,
		clothingRepo:     clothingRepo,
		ratingRepo:       ratingRepo,
		followRepo:       followRepo,
		authService:      NewAuthService(gormDB, baseLog, userRepo, userTokenRepo, "test-secret", 15*time.Minute, 24*time.Hour),
		userService:      NewUserService(gormDB, baseLog, userRepo),
		celebrityService: NewCelebrityService(gormDB, baseLog, celebrityRepo, outfitRepo, followRepo),
		outfitService:    NewOutfitService(gormDB, baseLog, outfitRepo, celebrityRepo, clothingRepo, ratingRepo, followRepo),
		ratingService:    NewRatingService(gormDB, baseLog, outfitRepo, ratingRepo, celebrityRepo),
		clothingService:  NewClothingService(gormDB, baseLog, clothingRepo, outfitRepo),
	}
}

func (env *testEnv) seedUser(t *testing.T, email string) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "hashed",
		Name:     "Test User",
	}
	require.NoError(t, env.userRepo.Create(context.Background(), nil, user))
	return user
}

func (env *testEnv) seedOutfit(t *testing.T, userID uuid.UUID, celebrityName string) *types.Outfit {
	t.Helper()
	outfit, err := env.outfitService.Create(context.Background(), userID, celebrityName, fmt.Sprintf("https://cdn.example.com/%s.jpg", uuid.New()), "", "")
	require.NoError(t, err)
	return outfit
}
