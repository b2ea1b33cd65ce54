package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type FollowRepo interface {
	Create(ctx context.Context, tx *gorm.DB, userID, celebrityID uuid.UUID) (*types.Follow, error)
	GetByUserAndCelebrity(ctx context.Context, tx *gorm.DB, userID, celebrityID uuid.UUID) (*types.Follow, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, followID uuid.UUID) error
	DeleteByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Follow, error)
	CountByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (int64, error)
}

type followRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFollowRepo(db *gorm.DB, baseLog *logger.Logger) FollowRepo {
	repoLog := baseLog.With("repo", "FollowRepo")
	return &followRepo{db: db, log: repoLog}
}

// Create is idempotent: the composite unique index on (user_id,
// celebrity_id) plus OnConflict DoNothing means a repeat follow returns
// the existing edge instead of erroring or duplicating.
func (fr *followRepo) Create(ctx context.Context, tx *gorm.DB, userID, celebrityID uuid.UUID) (*types.Follow, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	candidate := &types.Follow{ID: uuid.New(), UserID: userID, CelebrityID: celebrityID}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "celebrity_id"}},
			DoNothing: true,
		}).
		Create(candidate).Error; err != nil {
		return nil, err
	}
	return fr.GetByUserAndCelebrity(ctx, transaction, userID, celebrityID)
}

// GetByUserAndCelebrity returns (nil, nil) when no edge exists.
func (fr *followRepo) GetByUserAndCelebrity(ctx context.Context, tx *gorm.DB, userID, celebrityID uuid.UUID) (*types.Follow, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Follow
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND celebrity_id = ?", userID, celebrityID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (fr *followRepo) DeleteByID(ctx context.Context, tx *gorm.DB, followID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", followID).
		Delete(&types.Follow{}).Error
}

func (fr *followRepo) DeleteByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).
		Where("celebrity_id = ?", celebrityID).
		Delete(&types.Follow{}).Error
}

func (fr *followRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Follow, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Follow
	if err := transaction.WithContext(ctx).
		Preload("Celebrity").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *followRepo) CountByCelebrity(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Follow{}).
		Where("celebrity_id = ?", celebrityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
