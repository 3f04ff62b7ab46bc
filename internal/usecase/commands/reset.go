package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/clock"
	"petagenda/internal/pkg/config"
	"petagenda/internal/pkg/errs"
)

const periodKeyLayout = "2006-01"

// ResetReport describes one reset tick. Skipped runs touched nothing:
// either the tick fired outside the first day of the month (or before the
// enforcement start), or another run already claimed the period.
type ResetReport struct {
	PeriodKey  string
	Skipped    bool
	SkipReason string
	Counts     ResetCounts
	Errors     []string
}

// MonthlyResetScheduler clears the extras of every billable entity once per
// calendar month, deducting the catalog (flat-tariff) value of the cleared
// extras from each record's total. At-most-once per period is enforced by a
// durable marker row claimed with a unique-constraint insert.
type MonthlyResetScheduler interface {
	RunMonthlyReset(ctx context.Context) (*ResetReport, error)
}

type monthlyResetImpl struct {
	subscriptionRepo   SubscriptionRepository
	boardingRepo       BoardingRepository
	markerRepo         ResetMarkerRepository
	clock              clock.Clock
	location           *time.Location
	enforcementStart   time.Time
	subscriptionTariff billing.Tariff
	daycareTariff      billing.Tariff
	hotelTariff        billing.Tariff
}

func NewMonthlyResetScheduler(
	subscriptionRepo SubscriptionRepository,
	boardingRepo BoardingRepository,
	markerRepo ResetMarkerRepository,
	clk clock.Clock,
	schedulerCfg config.SchedulerConfig,
	tariffCfg config.TariffConfig,
) (MonthlyResetScheduler, error) {
	loc, err := schedulerCfg.Location()
	if err != nil {
		return nil, err
	}
	subscriptionTariff, err := billing.ParseTariff(tariffCfg.Subscription)
	if err != nil {
		return nil, err
	}
	daycareTariff, err := billing.ParseTariff(tariffCfg.Daycare)
	if err != nil {
		return nil, err
	}
	hotelTariff, err := billing.ParseTariff(tariffCfg.Hotel)
	if err != nil {
		return nil, err
	}
	return &monthlyResetImpl{
		subscriptionRepo:   subscriptionRepo,
		boardingRepo:       boardingRepo,
		markerRepo:         markerRepo,
		clock:              clk,
		location:           loc,
		enforcementStart:   schedulerCfg.ResetEnforcementStart,
		subscriptionTariff: subscriptionTariff,
		daycareTariff:      daycareTariff,
		hotelTariff:        hotelTariff,
	}, nil
}

// RunMonthlyReset is evaluated on demand (application start or an explicit
// tick), not on a timer thread.
func (m *monthlyResetImpl) RunMonthlyReset(ctx context.Context) (*ResetReport, error) {
	now := m.clock.Now().In(m.location)
	periodKey := now.Format(periodKeyLayout)

	if now.Day() != 1 || now.Before(m.enforcementStart) {
		return &ResetReport{PeriodKey: periodKey, Skipped: true, SkipReason: "not due"}, nil
	}

	if err := m.markerRepo.TryClaim(ctx, periodKey, now); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return &ResetReport{PeriodKey: periodKey, Skipped: true, SkipReason: "already ran this period"}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	report := &ResetReport{PeriodKey: periodKey}

	report.Counts.Subscriptions = m.sweepSubscriptions(ctx, report)
	report.Counts.Daycare = m.sweepBoarding(ctx, report, boarding.CategoryDaycare, m.daycareTariff)
	report.Counts.Hotel = m.sweepBoarding(ctx, report, boarding.CategoryHotel, m.hotelTariff)

	// The marker is finalized even after partial failure: a bad record must
	// not cause the whole sweep to repeat next tick and double-deduct the
	// records that did succeed.
	if err := m.markerRepo.Complete(ctx, periodKey, m.clock.Now().In(m.location), report.Counts, report.Errors); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("monthly extras reset completed",
		"period", periodKey,
		"subscriptions", report.Counts.Subscriptions,
		"daycare", report.Counts.Daycare,
		"hotel", report.Counts.Hotel,
		"errors", len(report.Errors))

	return report, nil
}

func (m *monthlyResetImpl) sweepSubscriptions(ctx context.Context, report *ResetReport) int {
	rows, err := m.subscriptionRepo.ListExtrasCarriers(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("subscriptions: list: %v", err))
		return 0
	}

	count := 0
	for _, row := range rows {
		if row.Extras.IsEmpty() {
			continue
		}
		value := billing.TariffValue(row.Extras, m.subscriptionTariff)
		if err := m.subscriptionRepo.ClearExtras(ctx, row.ID, billing.ApplyReset(row.Total, value)); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("subscriptions: %s: %v", row.ID, err))
			continue
		}
		count++
	}
	return count
}

func (m *monthlyResetImpl) sweepBoarding(ctx context.Context, report *ResetReport, category boarding.Category, tariff billing.Tariff) int {
	rows, err := m.boardingRepo.ListActiveExtrasCarriers(ctx, category)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: list: %v", category, err))
		return 0
	}

	count := 0
	for _, row := range rows {
		if row.Extras.IsEmpty() {
			continue
		}
		value := billing.TariffValue(row.Extras, tariff)
		if err := m.boardingRepo.ClearExtras(ctx, row.ID, billing.ApplyReset(row.Total, value)); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %s: %v", category, row.ID, err))
			continue
		}
		count++
	}
	return count
}
