package readstore

import (
	"context"
	"encoding/json"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResetMarkerReadStore struct {
	db *pgxpool.Pool
}

func NewResetMarkerReadStore(db *pgxpool.Pool) *ResetMarkerReadStore {
	return &ResetMarkerReadStore{db: db}
}

const resetMarkerViewSQL = `
	SELECT period_key, status, claimed_at, completed_at,
	       subscriptions_swept, daycare_swept, hotel_swept, errors
	FROM reset_markers`

func (s *ResetMarkerReadStore) FindByPeriod(ctx context.Context, periodKey string) (*queries.ResetMarkerView, error) {
	view, err := scanResetMarkerView(s.db.QueryRow(ctx, resetMarkerViewSQL+` WHERE period_key = $1`, periodKey))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reset marker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reset marker", err)
	}
	return view, nil
}

func (s *ResetMarkerReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.ResetMarkerView, error) {
	rows, err := s.db.Query(ctx,
		resetMarkerViewSQL+` ORDER BY period_key DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reset markers", err)
	}
	defer rows.Close()

	var views []*queries.ResetMarkerView
	for rows.Next() {
		view, err := scanResetMarkerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reset marker", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reset markers", err)
	}
	return views, nil
}

func scanResetMarkerView(row pgx.Row) (*queries.ResetMarkerView, error) {
	var (
		view        queries.ResetMarkerView
		completedAt pgtype.Timestamptz
		errorsJSON  []byte
	)
	err := row.Scan(
		&view.PeriodKey, &view.Status, &view.ClaimedAt, &completedAt,
		&view.SubscriptionsSwept, &view.DaycareSwept, &view.HotelSwept, &errorsJSON,
	)
	if err != nil {
		return nil, err
	}

	view.CompletedAt = pgconv.TimePtrFromPgtype(completedAt)
	if len(errorsJSON) > 0 {
		if err := json.Unmarshal(errorsJSON, &view.Errors); err != nil {
			return nil, err
		}
	}
	return &view, nil
}
