package readstore

import (
	"context"

	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionReadStore struct {
	db *pgxpool.Pool
}

func NewSubscriptionReadStore(db *pgxpool.Pool) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: db}
}

func (s *SubscriptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubscriptionView, error) {
	const q = `
		SELECT id, pet_name, owner_name, address, phone,
		       rule_kind, anchor_weekday, anchor_day, hour_of_day,
		       period_price::text, extras, total::text, active, created_at, updated_at
		FROM subscriptions
		WHERE id = $1`

	var (
		view            queries.SubscriptionView
		periodPriceText string
		totalText       string
		extrasJSON      []byte
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.PetName, &view.OwnerName, &view.Address, &view.Phone,
		&view.RuleKind, &view.AnchorWeekday, &view.AnchorDay, &view.HourOfDay,
		&periodPriceText, &extrasJSON, &totalText, &view.Active,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read subscription", err)
	}

	if view.PeriodPrice, err = pgconv.DecimalFromText(periodPriceText); err != nil {
		return nil, infra.WrapRepoErr("failed to decode period price", err)
	}
	if view.Total, err = pgconv.DecimalFromText(totalText); err != nil {
		return nil, infra.WrapRepoErr("failed to decode total", err)
	}
	if view.Extras, err = infra.SnapshotFromJSON(extrasJSON); err != nil {
		return nil, infra.WrapRepoErr("failed to decode extras", err)
	}
	return &view, nil
}

func (s *SubscriptionReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.SubscriptionListItem, error) {
	const q = `
		SELECT id, pet_name, owner_name, rule_kind,
		       period_price::text, total::text, active
		FROM subscriptions
		WHERE ($1 = false OR active)
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}
	defer rows.Close()

	var items []*queries.SubscriptionListItem
	for rows.Next() {
		var (
			item            queries.SubscriptionListItem
			periodPriceText string
			totalText       string
		)
		if err := rows.Scan(&item.ID, &item.PetName, &item.OwnerName, &item.RuleKind,
			&periodPriceText, &totalText, &item.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscription", err)
		}
		if item.PeriodPrice, err = pgconv.DecimalFromText(periodPriceText); err != nil {
			return nil, infra.WrapRepoErr("failed to decode period price", err)
		}
		if item.Total, err = pgconv.DecimalFromText(totalText); err != nil {
			return nil, infra.WrapRepoErr("failed to decode total", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscriptions", err)
	}
	return items, nil
}
