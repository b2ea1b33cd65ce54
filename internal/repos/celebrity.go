package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type CelebrityRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (*types.Celebrity, error)
	GetByIDWithOutfits(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (*types.Celebrity, error)
	UpsertByName(ctx context.Context, tx *gorm.DB, name string) (*types.Celebrity, error)
	SearchByName(ctx context.Context, tx *gorm.DB, query string) ([]*types.Celebrity, error)
	Delete(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error
	RecomputeRating(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error
}

type celebrityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCelebrityRepo(db *gorm.DB, baseLog *logger.Logger) CelebrityRepo {
	repoLog := baseLog.With("repo", "CelebrityRepo")
	return &celebrityRepo{db: db, log: repoLog}
}

func (cr *celebrityRepo) GetByID(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (*types.Celebrity, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.Celebrity
	if err := transaction.WithContext(ctx).
		Where("id = ?", celebrityID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *celebrityRepo) GetByIDWithOutfits(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) (*types.Celebrity, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.Celebrity
	if err := transaction.WithContext(ctx).
		Preload("Outfits", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", celebrityID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertByName resolves a celebrity by exact name, creating the row if it
// does not exist yet. The unique index on name plus OnConflict DoNothing
// makes concurrent creates of the same name converge on a single row.
func (cr *celebrityRepo) UpsertByName(ctx context.Context, tx *gorm.DB, name string) (*types.Celebrity, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	candidate := &types.Celebrity{ID: uuid.New(), Name: name}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(candidate).Error; err != nil {
		return nil, err
	}
	var result types.Celebrity
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *celebrityRepo) SearchByName(ctx context.Context, tx *gorm.DB, query string) ([]*types.Celebrity, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Celebrity
	if err := transaction.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *celebrityRepo) Delete(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", celebrityID).
		Delete(&types.Celebrity{}).Error
}

// RecomputeRating rewrites the cached celebrity mean from the live outfit
// rows in a single statement. AVG skips null outfit ratings and yields
// null when none are rated, which is exactly the cached-column contract.
func (cr *celebrityRepo) RecomputeRating(ctx context.Context, tx *gorm.DB, celebrityID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Exec(`
		UPDATE celebrity
		SET rating = (SELECT AVG(rating) FROM outfit WHERE celebrity_id = ?)
		WHERE id = ?
	`, celebrityID, celebrityID).Error
}
