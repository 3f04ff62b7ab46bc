//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/boarding"
	"petagenda/internal/infra"
	"petagenda/internal/pkg/clock"
	"petagenda/internal/pkg/config"
	"petagenda/internal/usecase/commands"
	commandsmock "petagenda/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resetMocks struct {
	subRepo      *commandsmock.MockSubscriptionRepository
	boardingRepo *commandsmock.MockBoardingRepository
	markerRepo   *commandsmock.MockResetMarkerRepository
}

func newResetScheduler(t *testing.T, ctrl *gomock.Controller, now time.Time) (commands.MonthlyResetScheduler, resetMocks) {
	t.Helper()
	m := resetMocks{
		subRepo:      commandsmock.NewMockSubscriptionRepository(ctrl),
		boardingRepo: commandsmock.NewMockBoardingRepository(ctrl),
		markerRepo:   commandsmock.NewMockResetMarkerRepository(ctrl),
	}
	scheduler, err := commands.NewMonthlyResetScheduler(
		m.subRepo, m.boardingRepo, m.markerRepo,
		clock.NewFixedClock(now),
		config.SchedulerConfig{
			TimeZone:              "UTC",
			ResetEnforcementStart: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		config.TariffConfig{
			Subscription: map[string]string{billing.KeyPernoite: "50"},
			Daycare:      map[string]string{billing.KeyPernoite: "50"},
			Hotel:        map[string]string{billing.KeyPernoite: "60"},
		},
	)
	require.NoError(t, err)
	return scheduler, m
}

func TestRunMonthlyReset(t *testing.T) {
	firstOfMonth := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	pernoiteOn := billing.Snapshot{
		billing.KeyPernoite: {Enabled: true, Value: "70"},
	}

	t.Run("sweeps carriers and deducts the catalog value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, m := newResetScheduler(t, ctrl, firstOfMonth)

		subID := uuid.New()
		hotelID := uuid.New()

		m.markerRepo.EXPECT().TryClaim(gomock.Any(), "2026-02", gomock.Any()).Return(nil)
		m.subRepo.EXPECT().ListExtrasCarriers(gomock.Any()).Return(
			[]commands.ExtrasCarrier{{ID: subID, Extras: pernoiteOn, Total: decimal.RequireFromString("500")}}, nil)
		// The deduction uses the tariff price, not the entry's stored 70.
		m.subRepo.EXPECT().ClearExtras(gomock.Any(), subID, decimal.RequireFromString("450")).Return(nil)

		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryDaycare).Return(nil, nil)
		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryHotel).Return(
			[]commands.ExtrasCarrier{{ID: hotelID, Extras: pernoiteOn, Total: decimal.RequireFromString("300")}}, nil)
		m.boardingRepo.EXPECT().ClearExtras(gomock.Any(), hotelID, decimal.RequireFromString("240")).Return(nil)

		m.markerRepo.EXPECT().Complete(gomock.Any(), "2026-02", gomock.Any(),
			commands.ResetCounts{Subscriptions: 1, Daycare: 0, Hotel: 1}, gomock.Len(0)).Return(nil)

		report, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Skipped)
		assert.Equal(t, "2026-02", report.PeriodKey)
		assert.Equal(t, commands.ResetCounts{Subscriptions: 1, Hotel: 1}, report.Counts)
		assert.Empty(t, report.Errors)
	})

	t.Run("skips when not the first of the month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, _ := newResetScheduler(t, ctrl, firstOfMonth.AddDate(0, 0, 1))

		report, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Skipped)
		assert.Equal(t, "not due", report.SkipReason)
	})

	t.Run("skips before the enforcement start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, _ := newResetScheduler(t, ctrl,
			time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC))

		report, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Skipped)
		assert.Equal(t, "not due", report.SkipReason)
	})

	t.Run("skips when another run already claimed the period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, m := newResetScheduler(t, ctrl, firstOfMonth)

		m.markerRepo.EXPECT().TryClaim(gomock.Any(), "2026-02", gomock.Any()).Return(
			infra.WrapRepoErr("reset period already claimed", nil, infra.KindDuplicateKey))

		report, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Skipped)
		assert.Equal(t, "already ran this period", report.SkipReason)
	})

	t.Run("a failing record does not stop the sweep and the marker still lands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, m := newResetScheduler(t, ctrl, firstOfMonth)

		badID := uuid.New()
		goodID := uuid.New()

		m.markerRepo.EXPECT().TryClaim(gomock.Any(), "2026-02", gomock.Any()).Return(nil)
		m.subRepo.EXPECT().ListExtrasCarriers(gomock.Any()).Return(
			[]commands.ExtrasCarrier{
				{ID: badID, Extras: pernoiteOn, Total: decimal.RequireFromString("100")},
				{ID: goodID, Extras: pernoiteOn, Total: decimal.RequireFromString("200")},
			}, nil)
		m.subRepo.EXPECT().ClearExtras(gomock.Any(), badID, gomock.Any()).Return(errors.New("connection reset"))
		m.subRepo.EXPECT().ClearExtras(gomock.Any(), goodID, decimal.RequireFromString("150")).Return(nil)

		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryDaycare).Return(nil, nil)
		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryHotel).Return(nil, nil)

		m.markerRepo.EXPECT().Complete(gomock.Any(), "2026-02", gomock.Any(),
			commands.ResetCounts{Subscriptions: 1}, gomock.Len(1)).Return(nil)

		report, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Counts.Subscriptions)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], badID.String())
	})

	t.Run("deduction floors at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduler, m := newResetScheduler(t, ctrl, firstOfMonth)

		subID := uuid.New()

		m.markerRepo.EXPECT().TryClaim(gomock.Any(), "2026-02", gomock.Any()).Return(nil)
		m.subRepo.EXPECT().ListExtrasCarriers(gomock.Any()).Return(
			[]commands.ExtrasCarrier{{ID: subID, Extras: pernoiteOn, Total: decimal.RequireFromString("30")}}, nil)
		m.subRepo.EXPECT().ClearExtras(gomock.Any(), subID, decimal.Zero).Return(nil)

		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryDaycare).Return(nil, nil)
		m.boardingRepo.EXPECT().ListActiveExtrasCarriers(gomock.Any(), boarding.CategoryHotel).Return(nil, nil)
		m.markerRepo.EXPECT().Complete(gomock.Any(), "2026-02", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := scheduler.RunMonthlyReset(context.Background())
		require.NoError(t, err)
	})
}
