package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/repos"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 10
)

type RatingService interface {
	SubmitRating(ctx context.Context, raterID, outfitID uuid.UUID, value int) (*types.OutfitRating, error)
}

type ratingService struct {
	db            *gorm.DB
	log           *logger.Logger
	outfitRepo    repos.OutfitRepo
	ratingRepo    repos.RatingRepo
	celebrityRepo repos.CelebrityRepo
}

func NewRatingService(db *gorm.DB, log *logger.Logger, outfitRepo repos.OutfitRepo, ratingRepo repos.RatingRepo, celebrityRepo repos.CelebrityRepo) RatingService {
	serviceLog := log.With("service", "RatingService")
	return &ratingService{
		db:            db,
		log:           serviceLog,
		outfitRepo:    outfitRepo,
		ratingRepo:    ratingRepo,
		celebrityRepo: celebrityRepo,
	}
}

// SubmitRating persists the rating and refreshes both cached means inside
// one transaction: rating row, then the outfit mean, then the mean of the
// outfit's celebrity. Either all three land or none of them do.
func (rs *ratingService) SubmitRating(ctx context.Context, raterID, outfitID uuid.UUID, value int) (*types.OutfitRating, error) {
	if raterID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("rating requires an authenticated user"))
	}
	if value < MinRatingValue || value > MaxRatingValue {
		return nil, apierr.InvalidInput(fmt.Errorf("rating value must be between %d and %d, got %d", MinRatingValue, MaxRatingValue, value))
	}

	rating := &types.OutfitRating{
		ID:       uuid.New(),
		OutfitID: outfitID,
		UserID:   raterID,
		Value:    value,
	}

	if err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		outfit, err := rs.outfitRepo.GetByID(ctx, tx, outfitID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound(fmt.Errorf("outfit %s does not exist", outfitID))
			}
			return fmt.Errorf("failed to load outfit: %w", err)
		}
		if err := rs.ratingRepo.Create(ctx, tx, rating); err != nil {
			return fmt.Errorf("failed to create rating: %w", err)
		}
		if err := rs.outfitRepo.RecomputeRating(ctx, tx, outfit.ID); err != nil {
			return fmt.Errorf("failed to recompute outfit rating: %w", err)
		}
		if err := rs.celebrityRepo.RecomputeRating(ctx, tx, outfit.CelebrityID); err != nil {
			return fmt.Errorf("failed to recompute celebrity rating: %w", err)
		}
		return nil
	}); err != nil {
		rs.log.Warn("SubmitRating failed", "outfit_id", outfitID, "error", err)
		return nil, err
	}
	return rating, nil
}
