package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type OutfitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) error
	GetByID(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (*types.Outfit, error)
	GetByIDFull(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (*types.Outfit, error)
	ListRecent(ctx context.Context, tx *gorm.DB) ([]*types.Outfit, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Outfit, error)
	ListByCelebrityIDs(ctx context.Context, tx *gorm.DB, celebrityIDs []uuid.UUID) ([]*types.Outfit, error)
	CountByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error
	RecomputeRating(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error
}

type outfitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOutfitRepo(db *gorm.DB, baseLog *logger.Logger) OutfitRepo {
	repoLog := baseLog.With("repo", "OutfitRepo")
	return &outfitRepo{db: db, log: repoLog}
}

func (or *outfitRepo) Create(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Create(outfit).Error
}

func (or *outfitRepo) GetByID(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var result types.Outfit
	if err := transaction.WithContext(ctx).
		Where("id = ?", outfitID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (or *outfitRepo) GetByIDFull(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) (*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var result types.Outfit
	if err := transaction.WithContext(ctx).
		Preload("Celebrity").
		Preload("User").
		Preload("Clothing").
		Where("id = ?", outfitID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (or *outfitRepo) ListRecent(ctx context.Context, tx *gorm.DB) ([]*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Outfit
	if err := transaction.WithContext(ctx).
		Preload("Celebrity").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *outfitRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Outfit
	if err := transaction.WithContext(ctx).
		Preload("Celebrity").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *outfitRepo) ListByCelebrityIDs(ctx context.Context, tx *gorm.DB, celebrityIDs []uuid.UUID) ([]*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Outfit
	if len(celebrityIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Preload("Celebrity").
		Where("celebrity_id IN ?", celebrityIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *outfitRepo) CountByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Outfit{}).
		Where("celebrity_id = ?", celebrityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (or *outfitRepo) Delete(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", outfitID).
		Delete(&types.Outfit{}).Error
}

// RecomputeRating rewrites the cached outfit mean from the live rating
// rows in a single statement, so interleaved raters can never overwrite
// each other with a stale application-side average.
func (or *outfitRepo) RecomputeRating(ctx context.Context, tx *gorm.DB, outfitID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Exec(`
		UPDATE outfit
		SET rating = (SELECT AVG(value) FROM outfit_rating WHERE outfit_id = ?)
		WHERE id = ?
	`, outfitID, outfitID).Error
}
