package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type ClothingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, clothing *types.Clothing) error
	ListByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) ([]*types.Clothing, error)
	DeleteByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error
}

type clothingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClothingRepo(db *gorm.DB, baseLog *logger.Logger) ClothingRepo {
	repoLog := baseLog.With("repo", "ClothingRepo")
	return &clothingRepo{db: db, log: repoLog}
}

func (clr *clothingRepo) Create(ctx context.Context, tx *gorm.DB, clothing *types.Clothing) error {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}
	return transaction.WithContext(ctx).Create(clothing).Error
}

func (clr *clothingRepo) ListByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) ([]*types.Clothing, error) {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}
	var results []*types.Clothing
	if err := transaction.WithContext(ctx).
		Where("outfit_id = ?", outfitID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (clr *clothingRepo) DeleteByOutfit(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = clr.db
	}
	return transaction.WithContext(ctx).
		Where("outfit_id = ?", outfitID).
		Delete(&types.Clothing{}).Error
}
