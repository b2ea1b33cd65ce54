package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
)

func TestCreateOutfitCreatesCelebrity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")

	outfit, err := env.outfitService.Create(ctx, submitter.ID, "  Zendaya  ", "https://cdn.example.com/fit.jpg", "met gala look", "https://example.com/article")
	require.NoError(t, err)
	require.NotNil(t, outfit.Celebrity)
	require.Equal(t, "Zendaya", outfit.Celebrity.Name)
	require.NotNil(t, outfit.Description)
	require.Equal(t, "met gala look", *outfit.Description)
	require.NotNil(t, outfit.Source)

	celebrity, err := env.celebrityRepo.GetByID(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.Equal(t, "Zendaya", celebrity.Name)
	require.Nil(t, celebrity.Rating)
}

func TestCreateOutfitReusesCelebrity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	other := env.seedUser(t, "other@example.com")

	first := env.seedOutfit(t, submitter.ID, "Rihanna")
	second := env.seedOutfit(t, other.ID, "Rihanna")
	require.Equal(t, first.CelebrityID, second.CelebrityID)

	celebrities, err := env.celebrityRepo.SearchByName(ctx, nil, "Rihanna")
	require.NoError(t, err)
	require.Len(t, celebrities, 1)
}

func TestCreateOutfitConcurrentSameName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.outfitService.Create(ctx, submitter.ID, "Jane Doe", "https://cdn.example.com/fit.jpg", "", "")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	celebrities, err := env.celebrityRepo.SearchByName(ctx, nil, "Jane Doe")
	require.NoError(t, err)
	require.Len(t, celebrities, 1)

	count, err := env.outfitRepo.CountByCelebrity(ctx, nil, celebrities[0].ID)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)
}

func TestCreateOutfitNullsEmptyOptionalFields(t *testing.T) {
	env := newTestEnv(t)
	submitter := env.seedUser(t, "submitter@example.com")

	outfit, err := env.outfitService.Create(context.Background(), submitter.ID, "A$AP Rocky", "https://cdn.example.com/fit.jpg", "   ", "")
	require.NoError(t, err)
	require.Nil(t, outfit.Description)
	require.Nil(t, outfit.Source)
}

func TestCreateOutfitValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")

	_, err := env.outfitService.Create(ctx, uuid.Nil, "Zendaya", "https://cdn.example.com/fit.jpg", "", "")
	require.True(t, apierr.Is(err, apierr.CodeUnauthorized))

	_, err = env.outfitService.Create(ctx, submitter.ID, "   ", "https://cdn.example.com/fit.jpg", "", "")
	require.True(t, apierr.Is(err, apierr.CodeInvalidInput))

	_, err = env.outfitService.Create(ctx, submitter.ID, "Zendaya", "  ", "", "")
	require.True(t, apierr.Is(err, apierr.CodeInvalidInput))
}

func TestDeleteOutfitOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	stranger := env.seedUser(t, "stranger@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	err := env.outfitService.Delete(ctx, stranger.ID, outfit.ID)
	require.True(t, apierr.Is(err, apierr.CodeUnauthorized))

	_, err = env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.NoError(t, err)

	require.NoError(t, env.outfitService.Delete(ctx, owner.ID, outfit.ID))
	_, err = env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteLastOutfitRemovesCelebrityAndFollows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	follower := env.seedUser(t, "follower@example.com")
	rater := env.seedUser(t, "rater@example.com")

	outfit := env.seedOutfit(t, owner.ID, "Zendaya")
	_, err := env.celebrityService.Follow(ctx, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)
	_, err = env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, 9)
	require.NoError(t, err)

	require.NoError(t, env.outfitService.Delete(ctx, owner.ID, outfit.ID))

	_, err = env.celebrityRepo.GetByID(ctx, nil, outfit.CelebrityID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	edge, err := env.followRepo.GetByUserAndCelebrity(ctx, nil, follower.ID, outfit.CelebrityID)
	require.NoError(t, err)
	require.Nil(t, edge)

	count, err := env.ratingRepo.CountByOutfit(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestDeleteOutfitRecomputesCelebrityMean(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	rater := env.seedUser(t, "rater@example.com")

	keep := env.seedOutfit(t, owner.ID, "Rihanna")
	drop := env.seedOutfit(t, owner.ID, "Rihanna")

	_, err := env.ratingService.SubmitRating(ctx, rater.ID, keep.ID, 10)
	require.NoError(t, err)
	_, err = env.ratingService.SubmitRating(ctx, rater.ID, drop.ID, 2)
	require.NoError(t, err)

	celebrity, err := env.celebrityRepo.GetByID(ctx, nil, keep.CelebrityID)
	require.NoError(t, err)
	require.InDelta(t, 6.0, *celebrity.Rating, 0.0001)

	require.NoError(t, env.outfitService.Delete(ctx, owner.ID, drop.ID))

	celebrity, err = env.celebrityRepo.GetByID(ctx, nil, keep.CelebrityID)
	require.NoError(t, err)
	require.NotNil(t, celebrity.Rating)
	require.InDelta(t, 10.0, *celebrity.Rating, 0.0001)
}

func TestGetOutfitDetailShapes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	rater := env.seedUser(t, "rater@example.com")
	outfit := env.seedOutfit(t, owner.ID, "Zendaya")

	_, err := env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, 8)
	require.NoError(t, err)

	anonymous, err := env.outfitService.GetByID(ctx, outfit.ID, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), anonymous.RatingCount)
	require.Nil(t, anonymous.MyRating)
	require.Nil(t, anonymous.Following)
	require.NotNil(t, anonymous.Outfit.Celebrity)

	authed, err := env.outfitService.GetByID(ctx, outfit.ID, rater.ID)
	require.NoError(t, err)
	require.NotNil(t, authed.MyRating)
	require.Equal(t, 8, *authed.MyRating)
	require.NotNil(t, authed.Following)
	require.False(t, *authed.Following)

	_, err = env.celebrityService.Follow(ctx, rater.ID, outfit.CelebrityID)
	require.NoError(t, err)
	authed, err = env.outfitService.GetByID(ctx, outfit.ID, rater.ID)
	require.NoError(t, err)
	require.True(t, *authed.Following)
}

func TestListRecentAndMineOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedUser(t, "owner@example.com")
	other := env.seedUser(t, "other@example.com")

	env.seedOutfit(t, owner.ID, "Zendaya")
	env.seedOutfit(t, other.ID, "Rihanna")
	env.seedOutfit(t, owner.ID, "Doja Cat")

	recent, err := env.outfitService.GetRecent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	for _, o := range recent {
		require.NotNil(t, o.Celebrity)
	}

	mine, err := env.outfitService.ListMine(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		require.Equal(t, owner.ID, o.UserID)
	}
}
