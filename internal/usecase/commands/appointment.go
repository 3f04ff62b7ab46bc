package commands

import (
	"context"
	"time"

	"petagenda/internal/domain/appointment"
	"petagenda/internal/domain/billing"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAppointmentParams describes a one-off booking made directly by
// staff. SubscriptionID stays nil for walk-ins.
type CreateAppointmentParams struct {
	SubscriptionID *uuid.UUID
	PetName        string
	OwnerName      string
	ScheduledAt    time.Time
	UnitPrice      decimal.Decimal
}

type AppointmentCommands interface {
	CreateOneOff(ctx context.Context, params CreateAppointmentParams) (uuid.UUID, error)
	Complete(ctx context.Context, id uuid.UUID) error
	ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error)
}

type appointmentCommandsImpl struct {
	appointmentRepo AppointmentRepository
}

func NewAppointmentCommands(appointmentRepo AppointmentRepository) AppointmentCommands {
	return &appointmentCommandsImpl{appointmentRepo: appointmentRepo}
}

func (c *appointmentCommandsImpl) CreateOneOff(ctx context.Context, params CreateAppointmentParams) (uuid.UUID, error) {
	appt, err := appointment.NewAppointment(
		params.SubscriptionID,
		params.PetName,
		params.OwnerName,
		params.ScheduledAt,
		params.UnitPrice,
		billing.Snapshot{},
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	if err := c.appointmentRepo.Create(ctx, appt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateAppointment)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return appt.ID(), nil
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, id uuid.UUID) error {
	appt, err := c.findAppointment(ctx, id)
	if err != nil {
		return err
	}
	if err := appt.Complete(); err != nil {
		return errs.Mark(err, ErrValidation)
	}
	if err := c.appointmentRepo.Save(ctx, appt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *appointmentCommandsImpl) ApplyExtras(ctx context.Context, id uuid.UUID, action ExtrasAction) (billing.Snapshot, error) {
	appt, err := c.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := applyExtrasAction(appt.Extras(), action)
	if err != nil {
		return nil, err
	}
	appt.ReplaceExtras(next)

	if err := c.appointmentRepo.Save(ctx, appt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}

func (c *appointmentCommandsImpl) findAppointment(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := c.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return appt, nil
}
