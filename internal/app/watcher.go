package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/tinyplayerss/hyteserve/internal/source"
	"github.com/tinyplayerss/hyteserve/internal/state"
)

// StartWatcher watches the local data directory and reloads state when a
// catalog file changes on disk. Only meaningful for local roots; the caller
// must not start it for remote ones.
func StartWatcher(ctx context.Context, store *state.Store, client *source.Client, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(client.Dir()); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				handleDataChange(ctx, store, client, logger, filepath.Base(event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("data directory watch error", zap.Error(err))
			}
		}
	}()
	return nil
}

func handleDataChange(ctx context.Context, store *state.Store, client *source.Client, logger *zap.Logger, file string) {
	src, ok := source.ByFile(file)
	if !ok {
		return
	}
	logger.Info("catalog file changed on disk", zap.String("file", file))

	// Reload the visible catalog only when the changed file backs it; the
	// aggregate covers every source either way.
	if store.Snapshot().Source.File == src.File {
		items, err := client.FetchCatalog(ctx, src)
		store.SetCatalog(src, items, err)
		if err != nil {
			logger.Warn("catalog reload failed",
				zap.String("source", src.Name), zap.Error(err))
		}
	}
	store.SetAggregate(client.FetchAggregate(ctx))
}
