package repository

import (
	"context"
	"time"

	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type BoardingRepository struct {
	db *pgxpool.Pool
}

func NewBoardingRepository(db *pgxpool.Pool) *BoardingRepository {
	return &BoardingRepository{db: db}
}

func (r *BoardingRepository) Create(ctx context.Context, rec *boarding.Record) error {
	extrasJSON, err := infra.SnapshotToJSON(rec.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode boarding extras", err)
	}

	const q = `
		INSERT INTO boarding_records
			(id, category, pet_name, owner_name, phone,
			 base_price, extras, total, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(ctx, q,
		rec.ID(), rec.Category().String(), rec.PetName(), rec.OwnerName(), rec.Phone(),
		rec.BasePrice().String(), extrasJSON, rec.Total().String(), rec.IsActive(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("boarding record already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create boarding record", err)
	}
	return nil
}

func (r *BoardingRepository) Save(ctx context.Context, rec *boarding.Record) error {
	extrasJSON, err := infra.SnapshotToJSON(rec.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode boarding extras", err)
	}

	const q = `
		UPDATE boarding_records
		SET pet_name = $2, owner_name = $3, phone = $4,
		    base_price = $5, extras = $6, total = $7, active = $8,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		rec.ID(), rec.PetName(), rec.OwnerName(), rec.Phone(),
		rec.BasePrice().String(), extrasJSON, rec.Total().String(), rec.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save boarding record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("boarding record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BoardingRepository) FindByID(ctx context.Context, id uuid.UUID) (*boarding.Record, error) {
	const q = `
		SELECT id, category, pet_name, owner_name, phone,
		       base_price::text, extras, total::text, active, created_at, updated_at
		FROM boarding_records
		WHERE id = $1`

	var (
		recID                      uuid.UUID
		category                   string
		petName, ownerName, phone  string
		basePriceText, totalText   string
		extrasJSON                 []byte
		active                     bool
		createdAt, updatedAt       time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&recID, &category, &petName, &ownerName, &phone,
		&basePriceText, &extrasJSON, &totalText, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("boarding record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find boarding record", err)
	}

	basePrice, err := pgconv.DecimalFromText(basePriceText)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode base price", err)
	}
	total, err := pgconv.DecimalFromText(totalText)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode total", err)
	}
	extras, err := infra.SnapshotFromJSON(extrasJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode boarding extras", err)
	}

	return boarding.ReconstructRecord(
		recID, boarding.Category(category), petName, ownerName, phone,
		basePrice, extras, total, active, createdAt, updatedAt,
	), nil
}

func (r *BoardingRepository) ListActiveExtrasCarriers(ctx context.Context, category boarding.Category) ([]commands.ExtrasCarrier, error) {
	const q = `
		SELECT id, extras, total::text
		FROM boarding_records
		WHERE category = $1 AND active AND extras <> '{}'::jsonb`

	rows, err := r.db.Query(ctx, q, category.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boarding extras carriers", err)
	}
	defer rows.Close()

	var carriers []commands.ExtrasCarrier
	for rows.Next() {
		var (
			id         uuid.UUID
			extrasJSON []byte
			totalText  string
		)
		if err := rows.Scan(&id, &extrasJSON, &totalText); err != nil {
			return nil, infra.WrapRepoErr("failed to scan boarding extras carrier", err)
		}
		extras, err := infra.SnapshotFromJSON(extrasJSON)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode boarding extras", err)
		}
		total, err := pgconv.DecimalFromText(totalText)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode boarding total", err)
		}
		carriers = append(carriers, commands.ExtrasCarrier{ID: id, Extras: extras, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate boarding extras carriers", err)
	}
	return carriers, nil
}

func (r *BoardingRepository) ClearExtras(ctx context.Context, id uuid.UUID, newTotal decimal.Decimal) error {
	const q = `
		UPDATE boarding_records
		SET extras = '{}'::jsonb, total = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, newTotal.String())
	if err != nil {
		return infra.WrapRepoErr("failed to clear boarding extras", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("boarding record not found", nil, infra.KindNotFound)
	}
	return nil
}
