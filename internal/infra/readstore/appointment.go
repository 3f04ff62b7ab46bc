package readstore

import (
	"context"
	"time"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentReadStore struct {
	db *pgxpool.Pool
}

func NewAppointmentReadStore(db *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

const appointmentViewSQL = `
	SELECT id, subscription_id, pet_name, owner_name, scheduled_at,
	       unit_price::text, extras, status, created_at, updated_at
	FROM appointments`

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := scanAppointmentView(s.db.QueryRow(ctx, appointmentViewSQL+` WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read appointment", err)
	}
	return view, nil
}

func (s *AppointmentReadStore) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx,
		appointmentViewSQL+` WHERE subscription_id = $1 ORDER BY scheduled_at ASC`,
		subscriptionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return collectAppointmentViews(rows)
}

func (s *AppointmentReadStore) ListUpcoming(ctx context.Context, from time.Time, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx,
		appointmentViewSQL+` WHERE scheduled_at >= $1 AND status = 'scheduled' ORDER BY scheduled_at ASC LIMIT $2`,
		from, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}
	return collectAppointmentViews(rows)
}

func collectAppointmentViews(rows pgx.Rows) ([]*queries.AppointmentView, error) {
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return views, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var (
		view           queries.AppointmentView
		subscriptionID pgtype.UUID
		unitPriceText  string
		extrasJSON     []byte
	)
	err := row.Scan(
		&view.ID, &subscriptionID, &view.PetName, &view.OwnerName, &view.ScheduledAt,
		&unitPriceText, &extrasJSON, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.SubscriptionID = pgconv.UUIDPtrFromPgtype(subscriptionID)
	if view.UnitPrice, err = pgconv.DecimalFromText(unitPriceText); err != nil {
		return nil, err
	}
	if view.Extras, err = infra.SnapshotFromJSON(extrasJSON); err != nil {
		return nil, err
	}
	return &view, nil
}
