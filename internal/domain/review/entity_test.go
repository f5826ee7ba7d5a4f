//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"car-rental-api/internal/domain/review"
	"car-rental-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent car!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength))
				},
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					b.WithComment(strings.Repeat("a", review.MaxCommentLength+1))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		rv, err := review.NewReview(uuid.New(), uuid.New(), 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)
		require.NotNil(t, rv)

		assert.Equal(t, "Trimmed comment", rv.Comment().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		userID := uuid.New()
		carID := uuid.New()
		now := time.Now()

		review1, err1 := review.NewReview(userID, carID, 5, "Great!", now)
		review2, err2 := review.NewReview(userID, carID, 5, "Great!", now)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
