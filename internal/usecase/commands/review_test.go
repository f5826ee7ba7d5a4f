//go:build unit

package commands_test

import (
	"context"
	"testing"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	carID := uuid.New()

	input := commands.CreateReviewInput{
		CarID:   carID,
		Rating:  5,
		Comment: "Smooth ride, clean car.",
	}

	newFixture := func(completed bool) (*fakeUoW, commands.ReviewCommands) {
		uow := newFakeUoW()
		if completed {
			uow.state.hasCompleted[[2]uuid.UUID{userID, carID}] = true
		}
		return uow, commands.NewReviewCommands(uow, clock.NewMockClock(date(2024, 1, 20)))
	}

	t.Run("accepts a review after a completed rental", func(t *testing.T) {
		uow, cmds := newFixture(true)

		reviewID, err := cmds.Create(ctx, userID, input)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, reviewID)
		require.Len(t, uow.state.reviews, 1)
		assert.Equal(t, 5, uow.state.reviews[0].Rating().Value())
	})

	t.Run("rejects a user without a completed rental", func(t *testing.T) {
		uow, cmds := newFixture(false)

		_, err := cmds.Create(ctx, userID, input)
		require.True(t, errs.Is(err, commands.ErrReviewNotAllowed))
		assert.Empty(t, uow.state.reviews)
	})

	t.Run("rejects a second review of the same car", func(t *testing.T) {
		uow, cmds := newFixture(true)

		_, err := cmds.Create(ctx, userID, input)
		require.NoError(t, err)

		_, err = cmds.Create(ctx, userID, input)
		require.True(t, errs.Is(err, commands.ErrDuplicateReview))
		assert.Len(t, uow.state.reviews, 1)
	})

	t.Run("rejects an invalid rating without touching storage", func(t *testing.T) {
		uow, cmds := newFixture(true)

		bad := input
		bad.Rating = 6
		_, err := cmds.Create(ctx, userID, bad)
		require.True(t, errs.Is(err, commands.ErrInvalidReview))
		assert.Empty(t, uow.state.reviews)
	})

	t.Run("rejects an empty comment", func(t *testing.T) {
		_, cmds := newFixture(true)

		bad := input
		bad.Comment = "   "
		_, err := cmds.Create(ctx, userID, bad)
		require.True(t, errs.Is(err, commands.ErrInvalidReview))
	})
}
