//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/shared"
	"car-rental-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type reservationFixture struct {
	uow       *fakeUoW
	publisher *fakePublisher
	clock     *clock.MockClock
	commands  commands.ReservationCommands
}

func newReservationFixture() *reservationFixture {
	uow := newFakeUoW()
	publisher := &fakePublisher{}
	clk := clock.NewMockClock(date(2024, 1, 5))
	return &reservationFixture{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		commands: commands.NewReservationCommands(
			uow,
			&fakeReservationQueries{state: uow.state},
			publisher,
			clk,
		),
	}
}

func (f *reservationFixture) seedCar(b *builder.CarBuilder) *car.Car {
	c := b.BuildDomain()
	f.uow.state.cars[c.ID()] = c
	return c
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	input := func(carID uuid.UUID) commands.CreateReservationInput {
		return commands.CreateReservationInput{
			CarID:      carID,
			PickupDate: date(2024, 1, 10),
			ReturnDate: date(2024, 1, 12),
		}
	}

	t.Run("books the car and derives the price", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder().WithPricePerDayCents(5000))

		view, err := f.commands.Create(ctx, userID, input(seeded.ID()))
		require.NoError(t, err)

		assert.Equal(t, int64(10000), view.TotalPriceCents)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, userID, view.UserID)

		stored := f.uow.state.cars[seeded.ID()]
		assert.Equal(t, car.StatusRented, stored.Status())
		require.NotNil(t, stored.RentedReservationID())
		assert.Equal(t, view.ID, *stored.RentedReservationID())

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, shared.BookingEventConfirmed, f.publisher.events[0].Type)
		assert.Equal(t, view.ID, f.publisher.events[0].ReservationID)
	})

	t.Run("rejects a reversed interval before opening a transaction", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder())

		_, err := f.commands.Create(ctx, userID, commands.CreateReservationInput{
			CarID:      seeded.ID(),
			PickupDate: date(2024, 1, 12),
			ReturnDate: date(2024, 1, 10),
		})
		require.True(t, errs.Is(err, commands.ErrInvalidInterval))
		assert.Empty(t, f.uow.state.reservations)
	})

	t.Run("unknown car", func(t *testing.T) {
		f := newReservationFixture()
		_, err := f.commands.Create(ctx, userID, input(uuid.New()))
		require.True(t, errs.Is(err, commands.ErrCarNotFound))
	})

	t.Run("car in maintenance", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder().WithStatus(car.StatusMaintenance))

		_, err := f.commands.Create(ctx, userID, input(seeded.ID()))
		require.True(t, errs.Is(err, commands.ErrCarNotAvailable))
	})

	t.Run("overlapping confirmed reservation", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder())

		existing, err := builder.NewReservationBuilder().
			WithCarID(seeded.ID()).
			WithDates(date(2024, 1, 12), date(2024, 1, 15)).
			BuildDomain()
		require.NoError(t, err)
		f.uow.state.reservations[existing.ID()] = existing

		// Shared boundary day still conflicts.
		_, err = f.commands.Create(ctx, userID, input(seeded.ID()))
		require.True(t, errs.Is(err, commands.ErrReservationConflict))
		assert.Empty(t, f.publisher.events)
	})

	t.Run("a cancelled booking frees the dates for another user", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder().WithPricePerDayCents(5000))
		otherUser := uuid.New()

		first, err := f.commands.Create(ctx, userID, input(seeded.ID()))
		require.NoError(t, err)

		// Identical interval while the first booking holds the car.
		_, err = f.commands.Create(ctx, otherUser, input(seeded.ID()))
		require.True(t, errs.Is(err, commands.ErrCarNotAvailable))

		_, err = f.commands.Cancel(ctx, userID, user.RoleCustomer, first.ID)
		require.NoError(t, err)

		rebooked, err := f.commands.Create(ctx, otherUser, input(seeded.ID()))
		require.NoError(t, err)
		assert.Equal(t, otherUser, rebooked.UserID)
		assert.Equal(t, int64(10000), rebooked.TotalPriceCents)
	})

	t.Run("maps an exhausted transaction retry to a conflict", func(t *testing.T) {
		f := newReservationFixture()
		seeded := f.seedCar(builder.NewCarBuilder())
		f.uow.withinErr = errs.Mark(errs.New("serialization failure"), shared.ErrTxConflict)

		_, err := f.commands.Create(ctx, userID, input(seeded.ID()))
		require.True(t, errs.Is(err, commands.ErrReservationConflict))
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// Books a car through the command so the car holds the reservation.
	book := func(t *testing.T, f *reservationFixture) (carID, reservationID uuid.UUID) {
		t.Helper()
		seeded := f.seedCar(builder.NewCarBuilder())
		view, err := f.commands.Create(ctx, userID, commands.CreateReservationInput{
			CarID:      seeded.ID(),
			PickupDate: date(2024, 1, 10),
			ReturnDate: date(2024, 1, 12),
		})
		require.NoError(t, err)
		return seeded.ID(), view.ID
	}

	t.Run("owner cancels and the car is freed", func(t *testing.T) {
		f := newReservationFixture()
		carID, reservationID := book(t, f)

		view, err := f.commands.Cancel(ctx, userID, user.RoleCustomer, reservationID)
		require.NoError(t, err)

		assert.Equal(t, "cancelled", view.Status)
		assert.Equal(t, car.StatusAvailable, f.uow.state.cars[carID].Status())
		assert.Nil(t, f.uow.state.cars[carID].RentedReservationID())

		require.Len(t, f.publisher.events, 2)
		assert.Equal(t, shared.BookingEventCancelled, f.publisher.events[1].Type)
	})

	t.Run("admin cancels another user's reservation", func(t *testing.T) {
		f := newReservationFixture()
		_, reservationID := book(t, f)

		view, err := f.commands.Cancel(ctx, uuid.New(), user.RoleAdmin, reservationID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
	})

	t.Run("other customer is rejected", func(t *testing.T) {
		f := newReservationFixture()
		carID, reservationID := book(t, f)

		_, err := f.commands.Cancel(ctx, uuid.New(), user.RoleCustomer, reservationID)
		require.True(t, errs.Is(err, commands.ErrNotOwned))
		assert.Equal(t, car.StatusRented, f.uow.state.cars[carID].Status())
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture()
		_, err := f.commands.Cancel(ctx, userID, user.RoleCustomer, uuid.New())
		require.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})

	t.Run("double cancel", func(t *testing.T) {
		f := newReservationFixture()
		_, reservationID := book(t, f)

		_, err := f.commands.Cancel(ctx, userID, user.RoleCustomer, reservationID)
		require.NoError(t, err)

		_, err = f.commands.Cancel(ctx, userID, user.RoleCustomer, reservationID)
		require.True(t, errs.Is(err, commands.ErrInvalidReservationState))
	})

	t.Run("cancelling a non-holding reservation leaves the renter untouched", func(t *testing.T) {
		f := newReservationFixture()

		holder := uuid.New()
		seeded := f.seedCar(builder.NewCarBuilder().AsRentedBy(holder))

		future, err := builder.NewReservationBuilder().
			WithUserID(userID).
			WithCarID(seeded.ID()).
			WithDates(date(2024, 2, 1), date(2024, 2, 3)).
			BuildDomain()
		require.NoError(t, err)
		f.uow.state.reservations[future.ID()] = future

		view, err := f.commands.Cancel(ctx, userID, user.RoleCustomer, future.ID())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)

		stored := f.uow.state.cars[seeded.ID()]
		assert.Equal(t, car.StatusRented, stored.Status())
		require.NotNil(t, stored.RentedReservationID())
		assert.Equal(t, holder, *stored.RentedReservationID())
	})
}
