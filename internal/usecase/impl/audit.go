package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/config"
	"atlas/internal/usecase"

	"go.uber.org/fx"
)

// RegisterOverlapAudit schedules the periodic overlap sweep. Overlapping
// territories are legal and resolved by humans raising priorities; the sweep
// only surfaces them. Disabled when audit.interval is zero.
func RegisterOverlapAudit(lc fx.Lifecycle, territoryUC usecase.TerritoryUsecase, cfg *config.Config, logger *slog.Logger) {
	if cfg.Audit == nil || cfg.Audit.Interval <= 0 {
		logger.Info("overlap audit disabled")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runOverlapAudit(ctx, done, territoryUC, cfg.Audit.Interval, logger)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}

func runOverlapAudit(ctx context.Context, done chan<- struct{}, territoryUC usecase.TerritoryUsecase, interval time.Duration, logger *slog.Logger) {
	defer close(done)

	logger.Info("overlap audit started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("overlap audit stopped")

			return
		case <-ticker.C:
			sweepOverlaps(ctx, territoryUC, logger)
		}
	}
}

// sweepOverlaps recomputes the global overlap report once and logs it.
func sweepOverlaps(ctx context.Context, territoryUC usecase.TerritoryUsecase, logger *slog.Logger) {
	report, err := territoryUC.AllOverlaps(ctx, -1)
	if err != nil {
		logger.Error("overlap audit sweep failed", "error", err)

		return
	}

	if report.Total == 0 {
		logger.Debug("overlap audit clean")

		return
	}

	top := report.Pairs[0]
	logger.Warn("overlapping territories detected",
		"pairs", report.Total,
		"top_first", top.First.TerritoryName,
		"top_second", top.Second.TerritoryName,
		"top_area", top.OverlapArea,
		"same_priority", top.SamePriority)
}
