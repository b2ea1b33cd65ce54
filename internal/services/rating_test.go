package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
)

func TestSubmitRatingUpdatesBothMeans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	raterA := env.seedUser(t, "rater-a@example.com")
	raterB := env.seedUser(t, "rater-b@example.com")

	outfit := env.seedOutfit(t, submitter.ID, "Zendaya")

	celebrity, err := env.celebrityRepo.GetByID(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.Nil(t, celebrity.Rating)
	require.Nil(t, outfit.Rating)

	_, err = env.ratingService.SubmitRating(ctx, raterA.ID, outfit.ID, 8)
	require.NoError(t, err)

	reloaded, err := env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Rating)
	require.InDelta(t, 8.0, *reloaded.Rating, 0.0001)

	celebrity, err = env.celebrityRepo.GetByID(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.NotNil(t, celebrity.Rating)
	require.InDelta(t, 8.0, *celebrity.Rating, 0.0001)

	_, err = env.ratingService.SubmitRating(ctx, raterB.ID, outfit.ID, 6)
	require.NoError(t, err)

	reloaded, err = env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.InDelta(t, 7.0, *reloaded.Rating, 0.0001)

	celebrity, err = env.celebrityRepo.GetByID(ctx, nil, outfit.CelebrityID)
	require.NoError(t, err)
	require.InDelta(t, 7.0, *celebrity.Rating, 0.0001)
}

func TestSubmitRatingCelebrityMeanSpansOutfits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	rater := env.seedUser(t, "rater@example.com")

	first := env.seedOutfit(t, submitter.ID, "Rihanna")
	second := env.seedOutfit(t, submitter.ID, "Rihanna")
	require.Equal(t, first.CelebrityID, second.CelebrityID)

	_, err := env.ratingService.SubmitRating(ctx, rater.ID, first.ID, 10)
	require.NoError(t, err)
	_, err = env.ratingService.SubmitRating(ctx, rater.ID, second.ID, 4)
	require.NoError(t, err)

	celebrity, err := env.celebrityRepo.GetByID(ctx, nil, first.CelebrityID)
	require.NoError(t, err)
	require.NotNil(t, celebrity.Rating)
	require.InDelta(t, 7.0, *celebrity.Rating, 0.0001)
}

func TestSubmitRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	rater := env.seedUser(t, "rater@example.com")
	outfit := env.seedOutfit(t, submitter.ID, "Bad Bunny")

	for _, value := range []int{0, 11, -3} {
		_, err := env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, value)
		require.Error(t, err)
		require.True(t, apierr.Is(err, apierr.CodeInvalidInput), "value %d", value)
	}
	for _, value := range []int{MinRatingValue, MaxRatingValue} {
		_, err := env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, value)
		require.NoError(t, err, "value %d", value)
	}
}

func TestSubmitRatingMissingOutfit(t *testing.T) {
	env := newTestEnv(t)
	rater := env.seedUser(t, "rater@example.com")

	_, err := env.ratingService.SubmitRating(context.Background(), rater.ID, uuid.New(), 5)
	require.Error(t, err)
	require.True(t, apierr.Is(err, apierr.CodeNotFound))
}

func TestSubmitRatingRequiresUser(t *testing.T) {
	env := newTestEnv(t)
	submitter := env.seedUser(t, "submitter@example.com")
	outfit := env.seedOutfit(t, submitter.ID, "Doja Cat")

	_, err := env.ratingService.SubmitRating(context.Background(), uuid.Nil, outfit.ID, 5)
	require.Error(t, err)
	require.True(t, apierr.Is(err, apierr.CodeUnauthorized))
}

func TestSubmitRatingRepeatAccumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	rater := env.seedUser(t, "rater@example.com")
	outfit := env.seedOutfit(t, submitter.ID, "Harry Styles")

	_, err := env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, 4)
	require.NoError(t, err)
	_, err = env.ratingService.SubmitRating(ctx, rater.ID, outfit.ID, 10)
	require.NoError(t, err)

	count, err := env.ratingRepo.CountByOutfit(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	reloaded, err := env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.InDelta(t, 7.0, *reloaded.Rating, 0.0001)
}

func TestSubmitRatingFailureLeavesNoRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submitter := env.seedUser(t, "submitter@example.com")
	rater := env.seedUser(t, "rater@example.com")
	outfit := env.seedOutfit(t, submitter.ID, "Timothee Chalamet")

	_, err := env.ratingService.SubmitRating(ctx, rater.ID, uuid.New(), 5)
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Table("outfit_rating").Count(&count).Error)
	require.Zero(t, count)

	reloaded, err := env.outfitRepo.GetByID(ctx, nil, outfit.ID)
	require.NoError(t, err)
	require.Nil(t, reloaded.Rating)
}
