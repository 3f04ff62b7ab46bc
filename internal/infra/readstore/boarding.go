package readstore

import (
	"context"

	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoardingReadStore struct {
	db *pgxpool.Pool
}

func NewBoardingReadStore(db *pgxpool.Pool) *BoardingReadStore {
	return &BoardingReadStore{db: db}
}

const boardingViewSQL = `
	SELECT id, category, pet_name, owner_name, phone,
	       base_price::text, extras, total::text, active, created_at, updated_at
	FROM boarding_records`

func (s *BoardingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BoardingView, error) {
	view, err := scanBoardingView(s.db.QueryRow(ctx, boardingViewSQL+` WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("boarding record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read boarding record", err)
	}
	return view, nil
}

func (s *BoardingReadStore) List(ctx context.Context, category boarding.Category, activeOnly bool) ([]*queries.BoardingView, error) {
	rows, err := s.db.Query(ctx,
		boardingViewSQL+` WHERE category = $1 AND ($2 = false OR active) ORDER BY created_at DESC`,
		category.String(), activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boarding records", err)
	}
	defer rows.Close()

	var views []*queries.BoardingView
	for rows.Next() {
		view, err := scanBoardingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan boarding record", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate boarding records", err)
	}
	return views, nil
}

func scanBoardingView(row pgx.Row) (*queries.BoardingView, error) {
	var (
		view          queries.BoardingView
		basePriceText string
		totalText     string
		extrasJSON    []byte
	)
	err := row.Scan(
		&view.ID, &view.Category, &view.PetName, &view.OwnerName, &view.Phone,
		&basePriceText, &extrasJSON, &totalText, &view.Active,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if view.BasePrice, err = pgconv.DecimalFromText(basePriceText); err != nil {
		return nil, err
	}
	if view.Total, err = pgconv.DecimalFromText(totalText); err != nil {
		return nil, err
	}
	if view.Extras, err = infra.SnapshotFromJSON(extrasJSON); err != nil {
		return nil, err
	}
	return &view, nil
}
