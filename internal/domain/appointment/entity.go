package appointment

import (
	"errors"
	"fmt"
	"time"

	"petagenda/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPetName     = errors.New("pet name is required")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrAlreadyCompleted = errors.New("appointment is already completed")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Appointment is one materialized occurrence. Generated instances carry the
// owning subscription's ID and a by-value copy of its extras taken at
// generation time; one-off bookings have a nil subscription ID.
type Appointment struct {
	id             uuid.UUID
	subscriptionID *uuid.UUID
	petName        string
	ownerName      string
	scheduledAt    time.Time
	unitPrice      decimal.Decimal
	extras         billing.Snapshot
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAppointment(
	subscriptionID *uuid.UUID,
	petName, ownerName string,
	scheduledAt time.Time,
	unitPrice decimal.Decimal,
	extras billing.Snapshot,
) (*Appointment, error) {
	if petName == "" {
		return nil, ErrEmptyPetName
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Appointment{
		id:             uuid.New(),
		subscriptionID: subscriptionID,
		petName:        petName,
		ownerName:      ownerName,
		scheduledAt:    scheduledAt,
		unitPrice:      unitPrice,
		extras:         extras.Clone(),
		status:         StatusScheduled,
	}, nil
}

func ReconstructAppointment(
	id uuid.UUID,
	subscriptionID *uuid.UUID,
	petName, ownerName string,
	scheduledAt time.Time,
	unitPrice decimal.Decimal,
	extras billing.Snapshot,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:             id,
		subscriptionID: subscriptionID,
		petName:        petName,
		ownerName:      ownerName,
		scheduledAt:    scheduledAt,
		unitPrice:      unitPrice,
		extras:         extras,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (a *Appointment) ReplaceExtras(extras billing.Snapshot) {
	a.extras = extras.Clone()
}

func (a *Appointment) Complete() error {
	if a.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	a.status = StatusCompleted
	return nil
}

// DedupKey identifies an occurrence for duplicate suppression: owning
// subscription plus the scheduled instant truncated to the minute.
func DedupKey(subscriptionID uuid.UUID, scheduledAt time.Time) string {
	return fmt.Sprintf("%s@%d", subscriptionID, scheduledAt.Truncate(time.Minute).Unix())
}

// TotalPrice is the instance's display total: unit price plus its own extras
// surcharge.
func (a *Appointment) TotalPrice() decimal.Decimal {
	return billing.ComposeTotal(a.unitPrice, a.extras, nil)
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) SubscriptionID() *uuid.UUID  { return a.subscriptionID }
func (a *Appointment) PetName() string             { return a.petName }
func (a *Appointment) OwnerName() string           { return a.ownerName }
func (a *Appointment) ScheduledAt() time.Time      { return a.scheduledAt }
func (a *Appointment) UnitPrice() decimal.Decimal  { return a.unitPrice }
func (a *Appointment) Extras() billing.Snapshot    { return a.extras }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }
