package queries

import (
	"context"
	"time"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*AppointmentView, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int32) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*AppointmentView, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int32) ([]*AppointmentView, error)
}

var ErrAppointmentNotFound = errs.New("appointment not found")

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to get appointment")
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*AppointmentView, error) {
	items, err := q.store.ListBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list appointments by subscription")
	}
	return items, nil
}

func (q *appointmentQueriesImpl) ListUpcoming(ctx context.Context, from time.Time, limit int32) ([]*AppointmentView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := q.store.ListUpcoming(ctx, from, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list upcoming appointments")
	}
	return items, nil
}
