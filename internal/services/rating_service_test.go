package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService_ScoreBounds(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, NewContentFilter())
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	category := seedCategory(t, db, "Postre")

	tests := []struct {
		score int
		ok    bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
		{-3, false},
	}

	for _, tt := range tests {
		r := createRecipe(t, db, author, category, true, false)
		rater := seedUser(t, db, "Rater", models.TierPublic)

		_, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(tt.score)})
		var count int64
		require.NoError(t, db.Model(&models.Rating{}).Where("recipe_id = ?", r.ID).Count(&count).Error)

		if tt.ok {
			assert.NoError(t, err, "score %d", tt.score)
			assert.EqualValues(t, 1, count)
		} else {
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, "score %d", tt.score)
			assert.Equal(t, "score", verr.Field)
			assert.Zero(t, count)
		}
	}
}

func TestRatingService_RequiresVisibleRecipe(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, nil)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	rater := seedUser(t, db, "Luis", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, true)

	_, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(4)})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(ctx, nil, r.ID, &dto.RatingRequest{Score: ptr(4)})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRatingService_CommentFiltered(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, NewContentFilter())
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	rater := seedUser(t, db, "Luis", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)

	_, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(2), Comment: ptr("qué mierda de receta")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comment", verr.Field)

	rating, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(5), Comment: ptr("  Delicioso  ")})
	require.NoError(t, err)
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "Delicioso", *rating.Comment)
}

func TestRatingService_EverydayCommentsAccepted(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, NewContentFilter())
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	rater := seedUser(t, db, "Luis", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)

	comments := []string{
		"Mmmmmm, delicioso",
		"¡¡¡¡¡Riquísimo!!!!!",
		"La vi en www.recetas.mx y la adapté",
		"No es spam, de verdad la hice",
	}
	for _, c := range comments {
		t.Run(c, func(t *testing.T) {
			rating, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(5), Comment: ptr(c)})
			require.NoError(t, err)
			require.NotNil(t, rating.Comment)
			assert.Equal(t, c, *rating.Comment)
		})
	}
}

func TestRatingService_OwnerOnlyChanges(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, nil)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	rater := seedUser(t, db, "Luis", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)

	rating, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(3)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, author, rating.ID, &dto.RatingRequest{Score: ptr(1)})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, author, rating.ID), ErrForbidden)

	_, err = svc.Update(ctx, rater, rating.ID, &dto.RatingRequest{Score: ptr(9)})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.Update(ctx, rater, rating.ID, &dto.RatingRequest{Score: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Score)

	got, err := svc.Get(ctx, nil, rating.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Score)

	require.NoError(t, svc.Delete(ctx, rater, rating.ID))
	_, err = svc.Get(ctx, nil, rating.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRatingService_ListByRecipe(t *testing.T) {
	db := newDB(t)
	svc := NewRatingService(db, nil)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)

	empty, err := svc.ListByRecipe(ctx, nil, r.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 1; i <= 3; i++ {
		rater := seedUser(t, db, "Rater", models.TierPublic)
		_, err := svc.Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(i)})
		require.NoError(t, err)
	}

	ratings, err := svc.ListByRecipe(ctx, nil, r.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 3)
}
