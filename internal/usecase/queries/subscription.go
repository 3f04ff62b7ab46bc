package queries

import (
	"context"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubscriptionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
	List(ctx context.Context, activeOnly bool) ([]*SubscriptionListItem, error)
}

type SubscriptionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error)
	List(ctx context.Context, activeOnly bool) ([]*SubscriptionListItem, error)
}

var ErrSubscriptionNotFound = errs.New("subscription not found")

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
}

func NewSubscriptionQueries(store SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store}
}

func (q *subscriptionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SubscriptionView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errs.Wrap(err, "failed to get subscription")
	}
	return view, nil
}

func (q *subscriptionQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*SubscriptionListItem, error) {
	items, err := q.store.List(ctx, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list subscriptions")
	}
	return items, nil
}
