package generator

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fincal-labs/fincal-cli/internal/logger"
)

// debounce batches bursts of collector writes into one regeneration.
const debounce = 2 * time.Second

// Watch regenerates the tree whenever the active collection directory
// changes, until the context is cancelled. One initial run happens up front.
func (g *Generator) Watch(ctx context.Context) error {
	if _, err := g.Run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(g.activeDir()); err != nil {
		return err
	}
	logger.Info().Str("dir", g.activeDir()).Msg("watching for collector updates")

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")

		case <-pending:
			if _, err := g.Run(); err != nil {
				logger.Error().Err(err).Msg("regeneration failed")
			}
		}
	}
}
