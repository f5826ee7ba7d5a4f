package commands

import (
	"context"

	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotAllowed = errs.New("no completed rental of this car")
	ErrDuplicateReview  = errs.New("user already reviewed this car")
	ErrInvalidReview    = errs.New("invalid review")
)

type CreateReviewInput struct {
	CarID   uuid.UUID
	Rating  int
	Comment string
}

type ReviewCommands interface {
	// Create admits a review only from a user with a finished rental of the
	// car, at most once per (user, car).
	Create(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, userID uuid.UUID, input CreateReviewInput) (uuid.UUID, error) {
	reviewEntity, err := review.NewReview(userID, input.CarID, input.Rating, input.Comment, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidReview)
	}

	var reviewID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eligible, err := tx.Reservations().HasCompletedFor(ctx, userID, input.CarID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !eligible {
			return ErrReviewNotAllowed
		}

		exists, err := tx.Reviews().ExistsFor(ctx, userID, input.CarID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateReview
		}

		reviewID, err = tx.Reviews().Create(ctx, reviewEntity)
		if err != nil {
			// Unique (user_id, car_id) backstops the check above under races.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateReview)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrCarNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}
