package bootstrap

import (
	"context"
	"log/slog"

	"petagenda/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(runStartupReset),
)

// runStartupReset evaluates the monthly reset once on application start.
// The scheduler itself decides whether the tick is due; a failed tick is
// logged but never blocks startup, the next start or a manual trigger will
// retry the period.
func runStartupReset(lc fx.Lifecycle, scheduler commands.MonthlyResetScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context is canceled once boot finishes, so the tick
			// runs on its own context.
			go func() {
				report, err := scheduler.RunMonthlyReset(context.Background())
				if err != nil {
					slog.Error("startup monthly reset failed", "error", err)
					return
				}
				if report.Skipped {
					slog.Info("startup monthly reset skipped",
						"period", report.PeriodKey, "reason", report.SkipReason)
				}
			}()
			return nil
		},
	})
}
