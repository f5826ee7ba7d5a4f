package commands

import (
	"context"
	"log/slog"
	"time"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileResult struct {
	Scanned  int `json:"scanned"`
	Released int `json:"released"`
}

type CompleteElapsedResult struct {
	Completed int `json:"completed"`
}

type MaintenanceCommands interface {
	// ReconcileCarStatuses releases rented cars whose confirmed reservations
	// have all ended. Safe to run repeatedly; a second run is a no-op.
	ReconcileCarStatuses(ctx context.Context) (*ReconcileResult, error)
	// CompleteElapsed moves confirmed reservations past their return date to
	// completed, freeing their cars.
	CompleteElapsed(ctx context.Context) (*CompleteElapsedResult, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (c *maintenanceCommandsImpl) ReconcileCarStatuses(ctx context.Context) (*ReconcileResult, error) {
	ids, err := c.uow.Reads().RentedCarIDs(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &ReconcileResult{Scanned: len(ids)}

	// One short transaction per car keeps lock footprints small; a car freed
	// or re-rented between the listing and its turn is re-checked under lock.
	for _, carID := range ids {
		released, err := c.reconcileCar(ctx, carID)
		if err != nil {
			if errs.Is(err, shared.ErrTxConflict) {
				slog.Warn("skipping car during reconcile after conflict", "car_id", carID)
				continue
			}
			return nil, err
		}
		if released {
			result.Released++
		}
	}
	return result, nil
}

func (c *maintenanceCommandsImpl) reconcileCar(ctx context.Context, carID uuid.UUID) (bool, error) {
	released := false
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		carEntity, err := tx.Cars().FindForUpdate(ctx, carID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !carEntity.IsRented() {
			return nil
		}

		active, err := tx.Reservations().HasActiveAfter(ctx, carID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active {
			return nil
		}

		if err := carEntity.Release(); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Cars().SaveStatus(ctx, carEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		released = true
		return nil
	})
	return released, err
}

func (c *maintenanceCommandsImpl) CompleteElapsed(ctx context.Context) (*CompleteElapsedResult, error) {
	now := c.clock.Now()
	ids, err := c.uow.Reads().ElapsedConfirmedReservationIDs(ctx, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &CompleteElapsedResult{}
	for _, reservationID := range ids {
		completed, err := c.completeReservation(ctx, reservationID, now)
		if err != nil {
			if errs.Is(err, shared.ErrTxConflict) {
				slog.Warn("skipping reservation during completion sweep after conflict", "reservation_id", reservationID)
				continue
			}
			return nil, err
		}
		if completed {
			result.Completed++
		}
	}
	return result, nil
}

func (c *maintenanceCommandsImpl) completeReservation(ctx context.Context, reservationID uuid.UUID, now time.Time) (bool, error) {
	completed := false
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resEntity, err := tx.Reservations().FindForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := resEntity.Complete(now); err != nil {
			// Already cancelled or completed since the listing.
			return nil
		}
		if err := tx.Reservations().SaveStatus(ctx, resEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		carEntity, err := tx.Cars().FindForUpdate(ctx, resEntity.CarID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if carEntity.IsRented() && carEntity.RentedReservationID() != nil && *carEntity.RentedReservationID() == resEntity.ID() {
			if err := carEntity.Release(); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := tx.Cars().SaveStatus(ctx, carEntity); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		completed = true
		return nil
	})
	return completed, err
}
