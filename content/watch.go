package content

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ConfigWatcher watches a RegistryConfig YAML file for changes, reloading
// it and invoking onReload with the parsed config. It watches the
// containing directory and filters events down to the one path, which
// catches editors that replace the file via rename-over rather than an
// in-place write.
type ConfigWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(RegistryConfig)
	log      *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewConfigWatcher builds a watcher for the YAML file at path.
func NewConfigWatcher(path string, log *zap.Logger, onReload func(RegistryConfig)) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &ConfigWatcher{
		path:     path,
		watcher:  w,
		onReload: onReload,
		log:      log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine. It is non-blocking.
func (cw *ConfigWatcher) Start(ctx context.Context) {
	go cw.run(ctx)
}

// Stop stops the watcher and waits for the run loop to exit.
func (cw *ConfigWatcher) Stop() {
	close(cw.stopCh)
	<-cw.doneCh
	cw.watcher.Close()
}

func (cw *ConfigWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopCh:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(cw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadRegistryConfig(cw.path)
			if err != nil {
				cw.log.Warn("registry config reload failed", zap.String("path", cw.path), zap.Error(err))
				continue
			}
			cw.log.Info("registry config reloaded", zap.String("path", cw.path), zap.Int("bundles", len(cfg.Bundles)))
			cw.onReload(cfg)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("registry config watch error", zap.Error(err))
		}
	}
}
