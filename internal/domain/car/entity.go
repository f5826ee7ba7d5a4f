package car

import (
	"time"

	"car-rental-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotAvailable = errs.New("car is not available")
	ErrNotRented    = errs.New("car is not rented")
	ErrInvalidPrice = errs.New("price per day must be positive")
)

// Car status is mutated only through Rent/Release/StartMaintenance; a rented
// car records the reservation currently holding it.
type Car struct {
	id                  uuid.UUID
	garageID            uuid.UUID
	make                string
	model               string
	year                int32
	pricePerDayCents    int64
	status              Status
	rentedReservationID *uuid.UUID
	createdAt           time.Time
	updatedAt           time.Time
}

func ReconstructCar(
	id, garageID uuid.UUID,
	make, model string,
	year int32,
	pricePerDayCents int64,
	status Status,
	rentedReservationID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:                  id,
		garageID:            garageID,
		make:                make,
		model:               model,
		year:                year,
		pricePerDayCents:    pricePerDayCents,
		status:              status,
		rentedReservationID: rentedReservationID,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (c *Car) ID() uuid.UUID                      { return c.id }
func (c *Car) GarageID() uuid.UUID                { return c.garageID }
func (c *Car) Make() string                       { return c.make }
func (c *Car) Model() string                      { return c.model }
func (c *Car) Year() int32                        { return c.year }
func (c *Car) PricePerDayCents() int64            { return c.pricePerDayCents }
func (c *Car) Status() Status                     { return c.status }
func (c *Car) RentedReservationID() *uuid.UUID    { return c.rentedReservationID }
func (c *Car) CreatedAt() time.Time               { return c.createdAt }
func (c *Car) UpdatedAt() time.Time               { return c.updatedAt }

func (c *Car) IsAvailable() bool {
	return c.status == StatusAvailable
}

func (c *Car) IsRented() bool {
	return c.status == StatusRented
}

// Rent transitions available -> rented and records the holding reservation.
func (c *Car) Rent(reservationID uuid.UUID) error {
	if c.status != StatusAvailable {
		return ErrNotAvailable
	}
	c.status = StatusRented
	id := reservationID
	c.rentedReservationID = &id
	return nil
}

// Release transitions rented -> available and clears the holding reservation.
func (c *Car) Release() error {
	if c.status != StatusRented {
		return ErrNotRented
	}
	c.status = StatusAvailable
	c.rentedReservationID = nil
	return nil
}

func (c *Car) StartMaintenance() error {
	if c.status == StatusRented {
		return ErrNotAvailable
	}
	c.status = StatusMaintenance
	c.rentedReservationID = nil
	return nil
}
