//go:build unit

package commands_test

import (
	"context"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/reservation"
	"car-rental-api/internal/domain/review"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work shared by the command tests. State survives across
// Within calls so idempotence can be asserted with repeated invocations.

type fakeState struct {
	cars         map[uuid.UUID]*car.Car
	reservations map[uuid.UUID]*reservation.Reservation
	reviews      []*review.Review
	reviewExists map[[2]uuid.UUID]bool
	hasCompleted map[[2]uuid.UUID]bool
	credentials  map[string]*shared.UserCredentials
}

func newFakeState() *fakeState {
	return &fakeState{
		cars:         make(map[uuid.UUID]*car.Car),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		reviewExists: make(map[[2]uuid.UUID]bool),
		hasCompleted: make(map[[2]uuid.UUID]bool),
		credentials:  make(map[string]*shared.UserCredentials),
	}
}

type fakeUoW struct {
	state     *fakeState
	withinErr error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Cars() shared.CarRepository                 { return &fakeCarRepo{state: t.state} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{state: t.state} }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return &fakeReviewRepo{state: t.state} }

type fakeCarRepo struct {
	state *fakeState
}

func (r *fakeCarRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*car.Car, error) {
	c, ok := r.state.cars[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *fakeCarRepo) SaveStatus(_ context.Context, c *car.Car) error {
	r.state.cars[c.ID()] = c
	return nil
}

type fakeReservationRepo struct {
	state *fakeState
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	r.state.reservations[res.ID()] = res
	return res.ID(), nil
}

func (r *fakeReservationRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *fakeReservationRepo) SaveStatus(_ context.Context, res *reservation.Reservation) error {
	r.state.reservations[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) HasOverlap(_ context.Context, carID uuid.UUID, dates reservation.DateRange) (bool, error) {
	for _, res := range r.state.reservations {
		if res.CarID() == carID && res.IsConfirmed() && res.Dates().Overlaps(dates) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) HasActiveAfter(_ context.Context, carID uuid.UUID, now time.Time) (bool, error) {
	for _, res := range r.state.reservations {
		if res.CarID() == carID && res.IsConfirmed() && !res.Dates().Return().Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) HasCompletedFor(_ context.Context, userID, carID uuid.UUID, _ time.Time) (bool, error) {
	return r.state.hasCompleted[[2]uuid.UUID{userID, carID}], nil
}

type fakeReviewRepo struct {
	state *fakeState
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *review.Review) (uuid.UUID, error) {
	key := [2]uuid.UUID{rev.UserID(), rev.CarID()}
	if r.state.reviewExists[key] {
		return uuid.Nil, infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
	}
	r.state.reviews = append(r.state.reviews, rev)
	r.state.reviewExists[key] = true
	return rev.ID(), nil
}

func (r *fakeReviewRepo) ExistsFor(_ context.Context, userID, carID uuid.UUID) (bool, error) {
	return r.state.reviewExists[[2]uuid.UUID{userID, carID}], nil
}

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) RentedCarIDs(_ context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, c := range r.state.cars {
		if c.IsRented() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeReads) ElapsedConfirmedReservationIDs(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, res := range r.state.reservations {
		if res.IsConfirmed() && !res.Dates().Return().After(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	creds, ok := r.state.credentials[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return creds, nil
}

// fakeReservationQueries serves the read-after-write lookup with a canned view.

type fakeReservationQueries struct {
	state *fakeState
}

func (q *fakeReservationQueries) GetByID(ctx context.Context, _ uuid.UUID, _ user.Role, id uuid.UUID) (*queries.ReservationView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *fakeReservationQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	res, ok := q.state.reservations[id]
	if !ok {
		return nil, queries.ErrReservationNotFound
	}
	return &queries.ReservationView{
		ID:              res.ID(),
		CarID:           res.CarID(),
		UserID:          res.UserID(),
		Pickup:          res.Dates().Pickup(),
		Return:          res.Dates().Return(),
		TotalPriceCents: res.TotalPrice().Cents(),
		Status:          res.Status().String(),
	}, nil
}

func (q *fakeReservationQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

type fakePublisher struct {
	events []shared.BookingEvent
}

func (p *fakePublisher) PublishBookingEvent(_ context.Context, event shared.BookingEvent) error {
	p.events = append(p.events, event)
	return nil
}
