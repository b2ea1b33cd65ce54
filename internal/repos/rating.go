package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type RatingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rating *types.OutfitRating) error
	GetLatestByOutfitAndUser(ctx context.Context, tx *gorm.DB, outfitID, userID uuid.UUID) (*types.OutfitRating, error)
	CountByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (int64, error)
	DeleteByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error
}

type ratingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRatingRepo(db *gorm.DB, baseLog *logger.Logger) RatingRepo {
	repoLog := baseLog.With("repo", "RatingRepo")
	return &ratingRepo{db: db, log: repoLog}
}

func (rr *ratingRepo) Create(ctx context.Context, tx *gorm.DB, rating *types.OutfitRating) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Create(rating).Error
}

// GetLatestByOutfitAndUser returns (nil, nil) when the user has not rated
// the outfit. Repeat ratings accumulate, so "latest" is by creation time.
func (rr *ratingRepo) GetLatestByOutfitAndUser(ctx context.Context, tx *gorm.DB, outfitID, userID uuid.UUID) (*types.OutfitRating, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.OutfitRating
	if err := transaction.WithContext(ctx).
		Where("outfit_id = ? AND user_id = ?", outfitID, userID).
		Order("created_at DESC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (rr *ratingRepo) CountByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.OutfitRating{}).
		Where("outfit_id = ?", outfitID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *ratingRepo) DeleteByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Where("outfit_id = ?", outfitID).
		Delete(&types.OutfitRating{}).Error
}
