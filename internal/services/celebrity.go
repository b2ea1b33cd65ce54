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

// CelebrityDetail is the read shape for a single celebrity. Following is
// populated only for authenticated callers.
type CelebrityDetail struct {
	Celebrity     *types.Celebrity `json:"celebrity"`
	FollowerCount int64            `json:"follower_count"`
	Following     *bool            `json:"following,omitempty"`
}

// CelebritySummary is one search result with derived counts.
type CelebritySummary struct {
	Celebrity     *types.Celebrity `json:"celebrity"`
	OutfitCount   int64            `json:"outfit_count"`
	FollowerCount int64            `json:"follower_count"`
}

// FollowingFeed is the personalized feed: the celebrities a user follows
// plus their outfits, newest first.
type FollowingFeed struct {
	Celebrities   []*types.Celebrity `json:"celebrities"`
	RecentOutfits []*types.Outfit    `json:"recent_outfits"`
}

type CelebrityService interface {
	GetByID(ctx context.Context, celebrityID, callerID uuid.UUID) (*CelebrityDetail, error)
	Search(ctx context.Context, query string) ([]*CelebritySummary, error)
	Follow(ctx context.Context, userID, celebrityID uuid.UUID) (*types.Follow, error)
	Unfollow(ctx context.Context, userID, celebrityID uuid.UUID) error
	Following(ctx context.Context, userID uuid.UUID) (*FollowingFeed, error)
}

type celebrityService struct {
	db            *gorm.DB
	log           *logger.Logger
	celebrityRepo repos.CelebrityRepo
	outfitRepo    repos.OutfitRepo
	followRepo    repos.FollowRepo
}

func NewCelebrityService(db *gorm.DB, log *logger.Logger, celebrityRepo repos.CelebrityRepo, outfitRepo repos.OutfitRepo, followRepo repos.FollowRepo) CelebrityService {
	serviceLog := log.With("service", "CelebrityService")
	return &celebrityService{
		db:            db,
		log:           serviceLog,
		celebrityRepo: celebrityRepo,
		outfitRepo:    outfitRepo,
		followRepo:    followRepo,
	}
}

func (cs *celebrityService) GetByID(ctx context.Context, celebrityID, callerID uuid.UUID) (*CelebrityDetail, error) {
	celebrity, err := cs.celebrityRepo.GetByIDWithOutfits(ctx, nil, celebrityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound(fmt.Errorf("celebrity %s does not exist", celebrityID))
		}
		return nil, fmt.Errorf("failed to load celebrity: %w", err)
	}
	followerCount, err := cs.followRepo.CountByCelebrity(ctx, nil, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	detail := &CelebrityDetail{Celebrity: celebrity, FollowerCount: followerCount}
	if callerID == uuid.Nil {
		return detail, nil
	}
	edge, err := cs.followRepo.GetByUserAndCelebrity(ctx, nil, callerID, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow edge: %w", err)
	}
	following := edge != nil
	detail.Following = &following
	return detail, nil
}

func (cs *celebrityService) Search(ctx context.Context, query string) ([]*CelebritySummary, error) {
	celebrities, err := cs.celebrityRepo.SearchByName(ctx, nil, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search celebrities: %w", err)
	}
	summaries := make([]*CelebritySummary, 0, len(celebrities))
	for _, celebrity := range celebrities {
		outfitCount, err := cs.outfitRepo.CountByCelebrity(ctx, nil, celebrity.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count outfits: %w", err)
		}
		followerCount, err := cs.followRepo.CountByCelebrity(ctx, nil, celebrity.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count followers: %w", err)
		}
		summaries = append(summaries, &CelebritySummary{
			Celebrity:     celebrity,
			OutfitCount:   outfitCount,
			FollowerCount: followerCount,
		})
	}
	return summaries, nil
}

func (cs *celebrityService) Follow(ctx context.Context, userID, celebrityID uuid.UUID) (*types.Follow, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("following requires an authenticated user"))
	}
	var edge *types.Follow
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.celebrityRepo.GetByID(ctx, tx, celebrityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound(fmt.Errorf("celebrity %s does not exist", celebrityID))
			}
			return fmt.Errorf("failed to load celebrity: %w", err)
		}
		created, err := cs.followRepo.Create(ctx, tx, userID, celebrityID)
		if err != nil {
			return fmt.Errorf("failed to create follow edge: %w", err)
		}
		edge = created
		return nil
	}); err != nil {
		cs.log.Warn("Follow failed", "celebrity_id", celebrityID, "error", err)
		return nil, err
	}
	return edge, nil
}

func (cs *celebrityService) Unfollow(ctx context.Context, userID, celebrityID uuid.UUID) error {
	if userID == uuid.Nil {
		return apierr.Unauthorized(fmt.Errorf("unfollowing requires an authenticated user"))
	}
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge, err := cs.followRepo.GetByUserAndCelebrity(ctx, tx, userID, celebrityID)
		if err != nil {
			return fmt.Errorf("failed to load follow edge: %w", err)
		}
		if edge == nil {
			return apierr.NotFound(fmt.Errorf("no follow edge for celebrity %s", celebrityID))
		}
		if err := cs.followRepo.DeleteByID(ctx, tx, edge.ID); err != nil {
			return fmt.Errorf("failed to delete follow edge: %w", err)
		}
		return nil
	}); err != nil {
		cs.log.Warn("Unfollow failed", "celebrity_id", celebrityID, "error", err)
		return err
	}
	return nil
}

func (cs *celebrityService) Following(ctx context.Context, userID uuid.UUID) (*FollowingFeed, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("the following feed requires an authenticated user"))
	}
	edges, err := cs.followRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	celebrities := make([]*types.Celebrity, 0, len(edges))
	celebrityIDs := make([]uuid.UUID, 0, len(edges))
	for _, edge := range edges {
		if edge.Celebrity == nil {
			continue
		}
		celebrities = append(celebrities, edge.Celebrity)
		celebrityIDs = append(celebrityIDs, edge.CelebrityID)
	}
	recentOutfits, err := cs.outfitRepo.ListByCelebrityIDs(ctx, nil, celebrityIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list outfits for followed celebrities: %w", err)
	}
	return &FollowingFeed{Celebrities: celebrities, RecentOutfits: recentOutfits}, nil
}
