package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
)

func TestFollowLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	edge, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)
	require.Equal(t, follower.ID, edge.UserID)
	require.Equal(t, outfit.CelebrityID, edge.CelebrityID)

	count, err := env.followRepo.CountByCelebrity(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, env.celebrityService.Unfollow(ctx, follower.ID, outfit.CelebrityID))
	count, err = env.followRepo.CountByCelebrity(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestFollowIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	first, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)
	second, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	count, err := env.followRepo.CountByCelebrity(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestFollowMissingCelebrity(t *testing.T) {
	env := newTestEnv(t)
	follower := env.seedUser(t, "follower@example.com")

	_, err := env.celebrityService.Follow(context.Background(), follower.ID, uuid.New())
	require.True(t, apierr.Is(err, apierr.CodeNotFound))
}

func TestUnfollowWithoutEdge(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	err := env.celebrityService.Unfollow(context.Background(), follower.ID, outfit.CelebrityID)
	require.True(t, apierr.Is(err, apierr.CodeNotFound))
}

func TestFollowingFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")

	zendaya := env.seedOutfit(t, owner.ID, "Zendaya")
	env.seedOutfit(t, owner.ID, "Zendaya")
	env.seedOutfit(t, owner.ID, "Rihanna")

	_, err := env.celebrityService.Follow(ctx, follower.ID, zendaya.CelebrityID)
	require.NoError(t, err)

	feed, err := env.celebrityService.Following(ctx, follower.ID)
	require.NoError(t, err)
	require.Len(t, feed.Celebrities, 1)
	require.Equal(t, "Zendaya", feed.Celebrities[0].Name)
	require.Len(t, feed.RecentOutfits, 2)
	for _, o := range feed.RecentOutfits {
		require.Equal(t, zendaya.CelebrityID, o.CelebrityID)
	}
}

func TestFollowingFeedEmpty(t *testing.T) {
	env := newTestEnv(t)
	follower := env.seedUser(t, "follower@example.com")

	feed, err := env.celebrityService.Following(context.Background(), follower.ID)
	require.NoError(t, err)
	require.Empty(t, feed.Celebrities)
	require.Empty(t, feed.RecentOutfits)
}

func TestCelebrityDetailShapes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	_, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)

	anonymous, err := env.celebrityService.GetByID(ctx, outfit.CelebrityID, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), anonymous.FollowerCount)
	require.Nil(t, anonymous.Following)
	require.Len(t, anonymous.Celebrity.Outfits, 1)

	authed, err := env.celebrityService.GetByID(ctx, outfit.CelebrityID, follower.ID)
	require.NoError(t, err)
	require.NotNil(t, authed.Following)
	require.True(t, *authed.Following)

	nonFollower, err := env.celebrityService.GetByID(ctx, outfit.CelebrityID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, nonFollower.Following)
	require.False(t, *nonFollower.Following)
}

func TestCelebritySearchCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")

	outfit := env.seedOutfit(t, owner.ID, "Zendaya")
	env.seedOutfit(t, owner.ID, "Zendaya")
	env.seedOutfit(t, owner.ID, "Rihanna")
	_, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)

	results, err := env.celebrityService.Search(ctx, "Zen")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Zendaya", results[0].Celebrity.Name)
	require.Equal(t, int64(2), results[0].OutfitCount)
	require.Equal(t, int64(1), results[0].FollowerCount)

	none, err := env.celebrityService.Search(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}
