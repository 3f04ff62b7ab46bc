package commands

import (
	"context"

	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBoardingParams struct {
	Category  boarding.Category
	PetName   string
	OwnerName string
	Phone     string
	BasePrice decimal.Decimal
}

type BoardingCommands interface {
	Create(ctx context.Context, params CreateBoardingParams) (uuid.UUID, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error)
}

type boardingCommandsImpl struct {
	boardingRepo BoardingRepository
}

func NewBoardingCommands(boardingRepo BoardingRepository) BoardingCommands {
	return &boardingCommandsImpl{boardingRepo: boardingRepo}
}

func (c *boardingCommandsImpl) Create(ctx context.Context, params CreateBoardingParams) (uuid.UUID, error) {
	rec, err := boarding.NewRecord(
		params.Category,
		params.PetName,
		params.OwnerName,
		params.Phone,
		params.BasePrice,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	if err := c.boardingRepo.Create(ctx, rec); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rec.ID(), nil
}

func (c *boardingCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	rec, err := c.findRecord(ctx, id)
	if err != nil {
		return err
	}
	if err := rec.Deactivate(); err != nil {
		return errs.Mark(err, ErrValidation)
	}
	if err := c.boardingRepo.Save(ctx, rec); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// ApplyExtras mutates the record's snapshot and recomputes its running
// total from the entries' own stored values (the ad-hoc valuation, not the
// reset catalog).
func (c *boardingCommandsImpl) ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error) {
	rec, err := c.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := applyExtrasAction(rec.Extras(), action)
	if err != nil {
		return nil, err
	}
	rec.ReplaceExtras(next)

	if err := c.boardingRepo.Save(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}

func (c *boardingCommandsImpl) findRecord(ctx context.Context, id uuid.UUID) (*boarding.Record, error) {
	rec, err := c.boardingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBoardingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rec, nil
}
