package repl

import (
	"context"
	"sync"

	"github.com/yndnr/otpowner/internal/infra/confloader"
	"github.com/yndnr/otpowner/internal/storage/registry"
	"github.com/yndnr/otpowner/internal/storage/source"
)

// watchTable warns once per distinct content when the loaded local table
// changes on disk. The loaded snapshot is never replaced.
func (s *Session) watchTable(ctx context.Context) (stop func()) {
	location := s.reg.Location()
	if source.IsS3(location) {
		return func() {}
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(s.log))
	if err != nil {
		s.log.Warn("table watcher unavailable", "error", err)
		return func() {}
	}
	if err := w.Watch(location); err != nil {
		w.Stop()
		return func() {}
	}

	loaded := s.reg.Fingerprint()
	var (
		mu   sync.Mutex
		last = loaded
	)
	w.OnChange(func(path string) {
		reg, err := registry.LoadSource(ctx, source.File{}, path, s.opts.RegistryOptions...)
		if err != nil {
			s.log.Debug("changed table not readable", "path", path, "error", err)
			return
		}

		mu.Lock()
		defer mu.Unlock()
		fp := reg.Fingerprint()
		if fp == last {
			return
		}
		last = fp
		if fp != loaded {
			s.log.Warn("table changed on disk; restart to use the new content",
				"path", path, "rows", reg.Len())
		}
	})

	w.StartAsync(ctx)
	return func() { w.Stop() }
}
