package repository

import (
	"context"
	"log/slog"
	"time"

	"petagenda/internal/domain/appointment"
	"petagenda/internal/domain/billing"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const insertAppointmentSQL = `
	INSERT INTO appointments
		(id, subscription_id, pet_name, owner_name, scheduled_at,
		 unit_price, extras, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	extrasJSON, err := infra.SnapshotToJSON(appt.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode appointment extras", err)
	}

	_, err = r.db.Exec(ctx, insertAppointmentSQL,
		appt.ID(), pgconv.UUIDPtrToPgtype(appt.SubscriptionID()),
		appt.PetName(), appt.OwnerName(), appt.ScheduledAt(),
		appt.UnitPrice().String(), extrasJSON, appt.Status().String(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate appointment occurrence", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("subscription does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

// CreateBatch writes one generation run inside a single transaction so a
// failing insert never leaves a partially generated schedule behind.
func (r *AppointmentRepository) CreateBatch(ctx context.Context, appts []*appointment.Appointment) error {
	if len(appts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback appointment batch", "error", rollbackErr)
		}
	}()

	for _, appt := range appts {
		extrasJSON, err := infra.SnapshotToJSON(appt.Extras())
		if err != nil {
			return infra.WrapRepoErr("failed to encode appointment extras", err)
		}
		_, err = tx.Exec(ctx, insertAppointmentSQL,
			appt.ID(), pgconv.UUIDPtrToPgtype(appt.SubscriptionID()),
			appt.PetName(), appt.OwnerName(), appt.ScheduledAt(),
			appt.UnitPrice().String(), extrasJSON, appt.Status().String(),
		)
		if err != nil {
			if pgconv.IsUniqueViolation(err) {
				return infra.WrapRepoErr("duplicate appointment occurrence", err, infra.KindDuplicateKey)
			}
			return infra.WrapRepoErr("failed to create appointment", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit appointment batch", err)
	}
	return nil
}

func (r *AppointmentRepository) Save(ctx context.Context, appt *appointment.Appointment) error {
	extrasJSON, err := infra.SnapshotToJSON(appt.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode appointment extras", err)
	}

	const q = `
		UPDATE appointments
		SET scheduled_at = $2, unit_price = $3, extras = $4, status = $5,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		appt.ID(), appt.ScheduledAt(), appt.UnitPrice().String(),
		extrasJSON, appt.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	const q = `
		SELECT id, subscription_id, pet_name, owner_name, scheduled_at,
		       unit_price::text, extras, status, created_at, updated_at
		FROM appointments
		WHERE id = $1`

	appt, err := scanAppointment(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	return appt, nil
}

func (r *AppointmentRepository) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*appointment.Appointment, error) {
	const q = `
		SELECT id, subscription_id, pet_name, owner_name, scheduled_at,
		       unit_price::text, extras, status, created_at, updated_at
		FROM appointments
		WHERE subscription_id = $1
		ORDER BY scheduled_at ASC`

	rows, err := r.db.Query(ctx, q, subscriptionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var appts []*appointment.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return appts, nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id                   uuid.UUID
		subscriptionID       pgtype.UUID
		petName, ownerName   string
		scheduledAt          time.Time
		unitPriceText        string
		extrasJSON           []byte
		status               string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &subscriptionID, &petName, &ownerName, &scheduledAt,
		&unitPriceText, &extrasJSON, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	unitPrice, err := pgconv.DecimalFromText(unitPriceText)
	if err != nil {
		return nil, err
	}
	var extras billing.Snapshot
	if extras, err = infra.SnapshotFromJSON(extrasJSON); err != nil {
		return nil, err
	}

	return appointment.ReconstructAppointment(
		id, pgconv.UUIDPtrFromPgtype(subscriptionID),
		petName, ownerName, scheduledAt, unitPrice, extras,
		appointment.Status(status), createdAt, updatedAt,
	), nil
}
