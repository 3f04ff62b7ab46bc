package repository

import (
	"context"
	"time"

	"petagenda/internal/domain/recurrence"
	"petagenda/internal/domain/subscription"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/pgconv"
	"petagenda/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	extrasJSON, err := infra.SnapshotToJSON(sub.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode subscription extras", err)
	}

	const q = `
		INSERT INTO subscriptions
			(id, pet_name, owner_name, address, phone,
			 rule_kind, anchor_weekday, anchor_day, hour_of_day,
			 period_price, extras, total, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	rule := sub.Rule()
	_, err = r.db.Exec(ctx, q,
		sub.ID(), sub.PetName(), sub.OwnerName(), sub.Address(), sub.Phone(),
		rule.Kind.String(), rule.AnchorWeekday, rule.AnchorDay, rule.HourOfDay,
		sub.PeriodPrice().String(), extrasJSON, sub.Total().String(), sub.IsActive(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("subscription already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	extrasJSON, err := infra.SnapshotToJSON(sub.Extras())
	if err != nil {
		return infra.WrapRepoErr("failed to encode subscription extras", err)
	}

	const q = `
		UPDATE subscriptions
		SET pet_name = $2, owner_name = $3, address = $4, phone = $5,
		    rule_kind = $6, anchor_weekday = $7, anchor_day = $8, hour_of_day = $9,
		    period_price = $10, extras = $11, total = $12, active = $13,
		    updated_at = now()
		WHERE id = $1`

	rule := sub.Rule()
	tag, err := r.db.Exec(ctx, q,
		sub.ID(), sub.PetName(), sub.OwnerName(), sub.Address(), sub.Phone(),
		rule.Kind.String(), rule.AnchorWeekday, rule.AnchorDay, rule.HourOfDay,
		sub.PeriodPrice().String(), extrasJSON, sub.Total().String(), sub.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save subscription", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	const q = `
		SELECT id, pet_name, owner_name, address, phone,
		       rule_kind, anchor_weekday, anchor_day, hour_of_day,
		       period_price::text, extras, active, created_at, updated_at
		FROM subscriptions
		WHERE id = $1`

	var (
		subID                                 uuid.UUID
		petName, ownerName, address, phone    string
		ruleKind                              string
		anchorWeekday, anchorDay, hourOfDay   int
		periodPriceText                       string
		extrasJSON                            []byte
		active                                bool
		createdAt, updatedAt                  time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&subID, &petName, &ownerName, &address, &phone,
		&ruleKind, &anchorWeekday, &anchorDay, &hourOfDay,
		&periodPriceText, &extrasJSON, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}

	periodPrice, err := pgconv.DecimalFromText(periodPriceText)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode period price", err)
	}
	extras, err := infra.SnapshotFromJSON(extrasJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode subscription extras", err)
	}

	return subscription.ReconstructSubscription(
		subID, petName, ownerName, address, phone,
		recurrence.Rule{
			Kind:          recurrence.Kind(ruleKind),
			AnchorWeekday: anchorWeekday,
			AnchorDay:     anchorDay,
			HourOfDay:     hourOfDay,
		},
		periodPrice, extras, active, createdAt, updatedAt,
	), nil
}

func (r *SubscriptionRepository) ListExtrasCarriers(ctx context.Context) ([]commands.ExtrasCarrier, error) {
	const q = `
		SELECT id, extras, total::text
		FROM subscriptions
		WHERE extras <> '{}'::jsonb`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscription extras carriers", err)
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
			return nil, infra.WrapRepoErr("failed to scan subscription extras carrier", err)
		}
		extras, err := infra.SnapshotFromJSON(extrasJSON)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode subscription extras", err)
		}
		total, err := pgconv.DecimalFromText(totalText)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode subscription total", err)
		}
		carriers = append(carriers, commands.ExtrasCarrier{ID: id, Extras: extras, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscription extras carriers", err)
	}
	return carriers, nil
}

func (r *SubscriptionRepository) ClearExtras(ctx context.Context, id uuid.UUID, newTotal decimal.Decimal) error {
	const q = `
		UPDATE subscriptions
		SET extras = '{}'::jsonb, total = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, newTotal.String())
	if err != nil {
		return infra.WrapRepoErr("failed to clear subscription extras", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}
