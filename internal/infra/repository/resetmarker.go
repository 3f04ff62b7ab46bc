package repository

import (
	"context"
	"encoding/json"
	"time"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResetMarkerRepository struct {
	db *pgxpool.Pool
}

func NewResetMarkerRepository(db *pgxpool.Pool) *ResetMarkerRepository {
	return &ResetMarkerRepository{db: db}
}

// TryClaim atomically claims the period: the primary key on period_key
// turns two concurrent claimants into one winner and one duplicate-key
// error, closing the check-then-write window.
func (r *ResetMarkerRepository) TryClaim(ctx context.Context, periodKey string, claimedAt time.Time) error {
	const q = `
		INSERT INTO reset_markers (period_key, status, claimed_at)
		VALUES ($1, 'running', $2)`

	_, err := r.db.Exec(ctx, q, periodKey, claimedAt)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("reset period already claimed", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to claim reset period", err)
	}
	return nil
}

func (r *ResetMarkerRepository) Complete(ctx context.Context, periodKey string, completedAt time.Time, counts commands.ResetCounts, errorList []string) error {
	if errorList == nil {
		errorList = []string{}
	}
	errorsJSON, err := json.Marshal(errorList)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reset errors", err)
	}

	const q = `
		UPDATE reset_markers
		SET status = 'completed', completed_at = $2,
		    subscriptions_swept = $3, daycare_swept = $4, hotel_swept = $5,
		    errors = $6
		WHERE period_key = $1`

	tag, err := r.db.Exec(ctx, q, periodKey, completedAt,
		counts.Subscriptions, counts.Daycare, counts.Hotel, errorsJSON)
	if err != nil {
		return infra.WrapRepoErr("failed to complete reset marker", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reset marker not found", nil, infra.KindNotFound)
	}
	return nil
}
