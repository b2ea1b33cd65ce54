package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/repos"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

// OutfitDetail is the read shape for a single outfit. MyRating and
// Following are populated only for authenticated callers.
type OutfitDetail struct {
	Outfit      *types.Outfit `json:"outfit"`
	RatingCount int64         `json:"rating_count"`
	MyRating    *int          `json:"rating,omitempty"`
	Following   *bool         `json:"following,omitempty"`
}

type OutfitService interface {
	Create(ctx context.Context, userID uuid.UUID, celebrityName, image, description, source string) (*types.Outfit, error)
	Delete(ctx context.Context, userID, outfitID uuid.UUID) error
	GetRecent(ctx context.Context) ([]*types.Outfit, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Outfit, error)
	GetByID(ctx context.Context, outfitID, callerID uuid.UUID) (*OutfitDetail, error)
}

type outfitService struct {
	db            *gorm.DB
	log           *logger.Logger
	outfitRepo    repos.OutfitRepo
	celebrityRepo repos.CelebrityRepo
	clothingRepo  repos.ClothingRepo
	ratingRepo    repos.RatingRepo
	followRepo    repos.FollowRepo
}

func NewOutfitService(
	db *gorm.DB,
	log *logger.Logger,
	outfitRepo repos.OutfitRepo,
	celebrityRepo repos.CelebrityRepo,
	clothingRepo repos.ClothingRepo,
	ratingRepo repos.RatingRepo,
	followRepo repos.FollowRepo,
) OutfitService {
	serviceLog := log.With("service", "OutfitService")
	return &outfitService{
		db:            db,
		log:           serviceLog,
		outfitRepo:    outfitRepo,
		celebrityRepo: celebrityRepo,
		clothingRepo:  clothingRepo,
		ratingRepo:    ratingRepo,
		followRepo:    followRepo,
	}
}

// Create resolves the celebrity by exact name (creating it if missing)
// and attaches the new outfit to it, all in one transaction. Empty
// description/source are stored as null rather than empty strings.
func (os *outfitService) Create(ctx context.Context, userID uuid.UUID, celebrityName, image, description, source string) (*types.Outfit, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("submitting an outfit requires an authenticated user"))
	}
	celebrityName = strings.TrimSpace(celebrityName)
	if celebrityName == "" {
		return nil, apierr.InvalidInput(fmt.Errorf("celebrity name is required"))
	}
	if strings.TrimSpace(image) == "" {
		return nil, apierr.InvalidInput(fmt.Errorf("an outfit image is required"))
	}

	outfit := &types.Outfit{
		ID:          uuid.New(),
		UserID:      userID,
		Image:       image,
		Description: nilIfEmpty(description),
		Source:      nilIfEmpty(source),
	}

	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		celebrity, err := os.celebrityRepo.UpsertByName(ctx, tx, celebrityName)
		if err != nil {
			return fmt.Errorf("failed to resolve celebrity %q: %w", celebrityName, err)
		}
		outfit.CelebrityID = celebrity.ID
		if err := os.outfitRepo.Create(ctx, tx, outfit); err != nil {
			return fmt.Errorf("failed to create outfit: %w", err)
		}
		outfit.Celebrity = celebrity
		return nil
	}); err != nil {
		os.log.Warn("Create outfit failed", "celebrity_name", celebrityName, "error", err)
		return nil, err
	}
	return outfit, nil
}

// Delete removes an outfit and everything hanging off it. Only the
// submitting user may delete. If the celebrity has no outfits left the
// celebrity row (and its follow edges) go too; otherwise the celebrity
// mean is recomputed since the deleted outfit may have carried a rating.
func (os *outfitService) Delete(ctx context.Context, userID, outfitID uuid.UUID) error {
	if userID == uuid.Nil {
		return apierr.Unauthorized(fmt.Errorf("deleting an outfit requires an authenticated user"))
	}
	if err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		outfit, err := os.outfitRepo.GetByID(ctx, tx, outfitID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound(fmt.Errorf("outfit %s does not exist", outfitID))
			}
			return fmt.Errorf("failed to load outfit: %w", err)
		}
		if outfit.UserID != userID {
			return apierr.Unauthorized(fmt.Errorf("only the submitting user may delete an outfit"))
		}
		if err := os.clothingRepo.DeleteByOutfit(ctx, tx, outfitID); err != nil {
			return fmt.Errorf("failed to delete outfit clothing: %w", err)
		}
		if err := os.ratingRepo.DeleteByOutfit(ctx, tx, outfitID); err != nil {
			return fmt.Errorf("failed to delete outfit ratings: %w", err)
		}
		if err := os.outfitRepo.Delete(ctx, tx, outfitID); err != nil {
			return fmt.Errorf("failed to delete outfit: %w", err)
		}
		remaining, err := os.outfitRepo.CountByCelebrity(ctx, tx, outfit.CelebrityID)
		if err != nil {
			return fmt.Errorf("failed to count remaining outfits: %w", err)
		}
		if remaining == 0 {
			if err := os.followRepo.DeleteByCelebrity(ctx, tx, outfit.CelebrityID); err != nil {
				return fmt.Errorf("failed to delete follow edges: %w", err)
			}
			if err := os.celebrityRepo.Delete(ctx, tx, outfit.CelebrityID); err != nil {
				return fmt.Errorf("failed to delete orphaned celebrity: %w", err)
			}
			return nil
		}
		if err := os.celebrityRepo.RecomputeRating(ctx, tx, outfit.CelebrityID); err != nil {
			return fmt.Errorf("failed to recompute celebrity rating: %w", err)
		}
		return nil
	}); err != nil {
		os.log.Warn("Delete outfit failed", "outfit_id", outfitID, "error", err)
		return err
	}
	return nil
}

func (os *outfitService) GetRecent(ctx context.Context) ([]*types.Outfit, error) {
	outfits, err := os.outfitRepo.ListRecent(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent outfits: %w", err)
	}
	return outfits, nil
}

func (os *outfitService) ListMine(ctx context.Context, userID uuid.UUID) ([]*types.Outfit, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("listing submissions requires an authenticated user"))
	}
	outfits, err := os.outfitRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outfits for user: %w", err)
	}
	return outfits, nil
}

// GetByID returns the outfit with celebrity, submitter, clothing and
// rating count. callerID == uuid.Nil means an anonymous read; the
// caller-specific fields stay unset in that case.
func (os *outfitService) GetByID(ctx context.Context, outfitID, callerID uuid.UUID) (*OutfitDetail, error) {
	outfit, err := os.outfitRepo.GetByIDFull(ctx, nil, outfitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("outfit %s does not exist", outfitID))
		}
		return nil, fmt.Errorf("failed to load outfit: %w", err)
	}
	ratingCount, err := os.ratingRepo.CountByOutfit(ctx, nil, outfitID)
	if err != nil {
		return nil, fmt.Errorf("failed to count outfit ratings: %w", err)
	}
	detail := &OutfitDetail{Outfit: outfit, RatingCount: ratingCount}
	if callerID == uuid.Nil {
		return detail, nil
	}

	myRating, err := os.ratingRepo.GetLatestByOutfitAndUser(ctx, nil, outfitID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caller rating: %w", err)
	}
	if myRating != nil {
		detail.MyRating = &myRating.Value
	}
	edge, err := os.followRepo.GetByUserAndCelebrity(ctx, nil, callerID, outfit.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow edge: %w", err)
	}
	following := edge != nil
	detail.Following = &following
	return detail, nil
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
