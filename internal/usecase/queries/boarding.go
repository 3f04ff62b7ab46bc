package queries

import (
	"context"

	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
)

type BoardingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BoardingView, error)
	List(ctx context.Context, category boarding.Category, activeOnly bool) ([]*BoardingView, error)
}

type BoardingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BoardingView, error)
	List(ctx context.Context, category boarding.Category, activeOnly bool) ([]*BoardingView, error)
}

var ErrBoardingNotFound = errs.New("boarding record not found")

type boardingQueriesImpl struct {
	store BoardingReadStore
}

func NewBoardingQueries(store BoardingReadStore) BoardingQueries {
	return &boardingQueriesImpl{store: store}
}

func (q *boardingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BoardingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBoardingNotFound
		}
		return nil, errs.Wrap(err, "failed to get boarding record")
	}
	return view, nil
}

func (q *boardingQueriesImpl) List(ctx context.Context, category boarding.Category, activeOnly bool) ([]*BoardingView, error) {
	items, err := q.store.List(ctx, category, activeOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list boarding records")
	}
	return items, nil
}
