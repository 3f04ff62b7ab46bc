package commands

import (
	"context"
	"time"

	"petagenda/internal/domain/appointment"
	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/boarding"
	"petagenda/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExtrasCarrier is the slim write-side row the monthly reset sweeps: any
// persisted record that owns an extras snapshot and a running total.
type ExtrasCarrier struct {
	ID     uuid.UUID
	Extras billing.Snapshot
	Total  decimal.Decimal
}

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *subscription.Subscription) error
	Save(ctx context.Context, sub *subscription.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	// ListExtrasCarriers returns every subscription whose extras snapshot is
	// non-empty, active or not.
	ListExtrasCarriers(ctx context.Context) ([]ExtrasCarrier, error)
	ClearExtras(ctx context.Context, id uuid.UUID, newTotal decimal.Decimal) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	// CreateBatch persists a generation run atomically: either every
	// instance lands or none do.
	CreateBatch(ctx context.Context, appts []*appointment.Appointment) error
	Save(ctx context.Context, appt *appointment.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	// ListBySubscription returns instances ordered by scheduled_at ascending.
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*appointment.Appointment, error)
}

type BoardingRepository interface {
	Create(ctx context.Context, rec *boarding.Record) error
	Save(ctx context.Context, rec *boarding.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*boarding.Record, error)
	// ListActiveExtrasCarriers returns active records of the category whose
	// extras snapshot is non-empty.
	ListActiveExtrasCarriers(ctx context.Context, category boarding.Category) ([]ExtrasCarrier, error)
	ClearExtras(ctx context.Context, id uuid.UUID, newTotal decimal.Decimal) error
}

// ResetCounts aggregates how many records each sweep touched.
type ResetCounts struct {
	Subscriptions int
	Daycare       int
	Hotel         int
}

type ResetMarkerRepository interface {
	// TryClaim inserts the period marker, relying on the period key's unique
	// constraint to make the claim atomic. A duplicate-key failure means
	// another run already owns the period.
	TryClaim(ctx context.Context, periodKey string, claimedAt time.Time) error
	Complete(ctx context.Context, periodKey string, completedAt time.Time, counts ResetCounts, errorList []string) error
}
