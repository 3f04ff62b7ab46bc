package commands

import (
	"context"

	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/recurrence"
	"petagenda/internal/domain/subscription"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSubscriptionParams struct {
	PetName     string
	OwnerName   string
	Address     string
	Phone       string
	Rule        recurrence.Rule
	PeriodPrice decimal.Decimal
	Extras      billing.Snapshot
}

// UpdateSubscriptionParams carries the editable fields; nil means unchanged.
type UpdateSubscriptionParams struct {
	PeriodPrice *decimal.Decimal
	Rule        *recurrence.Rule
	Address     *string
	Phone       *string
}

type SubscriptionCommands interface {
	Create(ctx context.Context, params CreateSubscriptionParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateSubscriptionParams) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error)
}

type subscriptionCommandsImpl struct {
	subscriptionRepo SubscriptionRepository
}

func NewSubscriptionCommands(subscriptionRepo SubscriptionRepository) SubscriptionCommands {
	return &subscriptionCommandsImpl{subscriptionRepo: subscriptionRepo}
}

func (c *subscriptionCommandsImpl) Create(ctx context.Context, params CreateSubscriptionParams) (uuid.UUID, error) {
	extras, err := billing.Sanitize(params.Extras)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	sub, err := subscription.NewSubscription(
		params.PetName,
		params.OwnerName,
		params.Address,
		params.Phone,
		params.Rule,
		params.PeriodPrice,
		extras,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	if err := c.subscriptionRepo.Create(ctx, sub); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sub.ID(), nil
}

func (c *subscriptionCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateSubscriptionParams) error {
	sub, err := c.findSubscription(ctx, id)
	if err != nil {
		return err
	}

	if params.PeriodPrice != nil {
		if err := sub.ChangePeriodPrice(*params.PeriodPrice); err != nil {
			return errs.Mark(err, ErrValidation)
		}
	}
	if params.Rule != nil {
		if err := sub.ChangeRule(*params.Rule); err != nil {
			return errs.Mark(err, ErrValidation)
		}
	}
	if params.Address != nil {
		sub.ChangeAddress(*params.Address)
	}
	if params.Phone != nil {
		sub.ChangePhone(*params.Phone)
	}

	if err := c.subscriptionRepo.Save(ctx, sub); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *subscriptionCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	sub, err := c.findSubscription(ctx, id)
	if err != nil {
		return err
	}
	if err := sub.Deactivate(); err != nil {
		return errs.Mark(err, ErrValidation)
	}
	if err := c.subscriptionRepo.Save(ctx, sub); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *subscriptionCommandsImpl) ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error) {
	sub, err := c.findSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := applyExtrasAction(sub.Extras(), action)
	if err != nil {
		return nil, err
	}
	sub.ReplaceExtras(next)

	if err := c.subscriptionRepo.Save(ctx, sub); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}

func (c *subscriptionCommandsImpl) findSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, err := c.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sub, nil
}
