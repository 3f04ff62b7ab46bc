package queries

import (
	"context"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"
)

type ResetMarkerReadStore interface {
	FindByPeriod(ctx context.Context, periodKey string) (*ResetMarkerView, error)
	ListRecent(ctx context.Context, limit int32) ([]*ResetMarkerView, error)
}

type ResetMarkerQueries interface {
	GetByPeriod(ctx context.Context, periodKey string) (*ResetMarkerView, error)
	ListRecent(ctx context.Context, limit int32) ([]*ResetMarkerView, error)
}

var ErrResetMarkerNotFound = errs.New("reset marker not found")

type resetMarkerQueriesImpl struct {
	store ResetMarkerReadStore
}

func NewResetMarkerQueries(store ResetMarkerReadStore) ResetMarkerQueries {
	return &resetMarkerQueriesImpl{store: store}
}

func (q *resetMarkerQueriesImpl) GetByPeriod(ctx context.Context, periodKey string) (*ResetMarkerView, error) {
	view, err := q.store.FindByPeriod(ctx, periodKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResetMarkerNotFound
		}
		return nil, errs.Wrap(err, "failed to get reset marker")
	}
	return view, nil
}

func (q *resetMarkerQueriesImpl) ListRecent(ctx context.Context, limit int32) ([]*ResetMarkerView, error) {
	if limit <= 0 || limit > 100 {
		limit = 12
	}
	items, err := q.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reset markers")
	}
	return items, nil
}
