package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tinyplayerss/hyteserve/internal/source"
	"github.com/tinyplayerss/hyteserve/internal/state"
)

const defaultAuxInterval = 5 * time.Minute

// StartAuxRefresher launches a background goroutine that refreshes the
// auxiliary feeds (keyword aggregate, per-category counters, social panel)
// at a fixed cadence. It returns immediately.
func StartAuxRefresher(ctx context.Context, store *state.Store, client *source.Client, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultAuxInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refreshAux(ctx, store, client, logger)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refreshAux recomputes the aggregate and social sections. The aggregate
// already tolerates per-source failures, so the only hard failure here is
// the social link list itself; the previous panel is kept in that case.
func refreshAux(ctx context.Context, store *state.Store, client *source.Client, logger *zap.Logger) {
	agg := client.FetchAggregate(ctx)
	store.SetAggregate(agg)
	logger.Debug("aggregate refreshed",
		zap.Int("keywords", len(agg.Keywords)), zap.Int("categories", len(agg.Counts)))

	links, err := client.FetchSocialLinks(ctx)
	if err != nil {
		logger.Warn("social links refresh failed", zap.Error(err))
		return
	}
	store.SetSocial(client.FetchSocialCounts(ctx, links))
}
