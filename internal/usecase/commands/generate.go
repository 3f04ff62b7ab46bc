package commands

import (
	"context"
	"log/slog"
	"time"

	"petagenda/internal/domain/appointment"
	"petagenda/internal/domain/recurrence"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/clock"
	"petagenda/internal/pkg/config"
	"petagenda/internal/pkg/errs"

	"github.com/google/uuid"
)

// GenerateResult reports one generation run. CapHit means the safety valve
// terminated the unroll early; the instances emitted up to that point are
// still persisted.
type GenerateResult struct {
	Created int
	CapHit  bool
}

type AppointmentGenerator interface {
	GenerateAppointments(ctx context.Context, subscriptionID uuid.UUID) (*GenerateResult, error)
}

type appointmentGeneratorImpl struct {
	subscriptionRepo SubscriptionRepository
	appointmentRepo  AppointmentRepository
	clock            clock.Clock
	location         *time.Location
	horizonYears     int
	stepCap          int
}

func NewAppointmentGenerator(
	subscriptionRepo SubscriptionRepository,
	appointmentRepo AppointmentRepository,
	clk clock.Clock,
	cfg config.SchedulerConfig,
) (AppointmentGenerator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &appointmentGeneratorImpl{
		subscriptionRepo: subscriptionRepo,
		appointmentRepo:  appointmentRepo,
		clock:            clk,
		location:         loc,
		horizonYears:     cfg.HorizonYears,
		stepCap:          cfg.GenerationCap,
	}, nil
}

// GenerateAppointments unrolls the subscription's recurrence rule into
// concrete instances through the horizon year, pricing each one and skipping
// occurrences already persisted. The whole run is written atomically.
func (g *appointmentGeneratorImpl) GenerateAppointments(ctx context.Context, subscriptionID uuid.UUID) (*GenerateResult, error) {
	sub, err := g.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Deactivated clients keep their history but never gain new instances.
	if !sub.IsActive() {
		return &GenerateResult{}, nil
	}

	rule := sub.Rule()
	if ruleErr := rule.Validate(); ruleErr != nil {
		return nil, errs.Mark(ruleErr, ErrValidation)
	}

	existing, err := g.appointmentRepo.ListBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[appointment.DedupKey(subscriptionID, a.ScheduledAt())] = struct{}{}
	}

	now := g.clock.Now().In(g.location)
	var cursor time.Time
	if len(existing) > 0 {
		last := existing[len(existing)-1].ScheduledAt().In(g.location)
		cursor = recurrence.Next(rule, last)
	} else {
		cursor = recurrence.FirstOnOrAfter(rule, now)
	}

	// The horizon is year-granular: the entire final matched year is
	// included, and generation stops at the first occurrence beyond it.
	horizonYear := now.Year() + g.horizonYears
	unitPrice := sub.UnitPrice()

	var batch []*appointment.Appointment
	capHit := false
	for steps := 0; cursor.Year() <= horizonYear; steps++ {
		if steps >= g.stepCap {
			capHit = true
			slog.Warn("appointment generation hit the step cap",
				"subscription_id", subscriptionID,
				"cap", g.stepCap,
				"generated", len(batch))
			break
		}

		key := appointment.DedupKey(subscriptionID, cursor)
		if _, dup := seen[key]; !dup {
			subID := subscriptionID
			appt, apptErr := appointment.NewAppointment(&subID, sub.PetName(), sub.OwnerName(), cursor, unitPrice, sub.Extras())
			if apptErr != nil {
				return nil, errs.Mark(apptErr, ErrValidation)
			}
			batch = append(batch, appt)
			seen[key] = struct{}{}
		}
		cursor = recurrence.Next(rule, cursor)
	}

	if len(batch) > 0 {
		if err := g.appointmentRepo.CreateBatch(ctx, batch); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return &GenerateResult{Created: len(batch), CapHit: capHit}, nil
}
