package ucum

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
	"github.com/sambeau/ucum/pkg/ucum/engine"
)

// System is the embeddable unit-conversion façade: a catalog.Table
// wrapped in an atomic.Pointer so WatchOverlay can publish a freshly
// merged table without taking a lock, and an engine.Engine rebuilt
// alongside it on every publish.
type System struct {
	tab     atomic.Pointer[catalog.Table]
	eng     atomic.Pointer[engine.Engine]
	log     Logger
	watcher *fsnotify.Watcher
}

// New builds a System over the compiled-in builtin catalog.
func New(log Logger) *System {
	if log == nil {
		log = NullLogger()
	}
	s := &System{log: log}
	s.publish(catalog.Builtin())
	return s
}

// NewFromOverlay builds a System over the builtin catalog merged with
// the YAML overlay at path.
func NewFromOverlay(path string, log Logger) (*System, error) {
	s := New(log)
	if err := s.loadOverlay(path); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *System) loadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading overlay %s: %w", path, err)
	}
	merged, err := catalog.LoadOverlay(catalog.Builtin(), data)
	if err != nil {
		return fmt.Errorf("parsing overlay %s: %w", path, err)
	}
	s.publish(merged)
	return nil
}

func (s *System) publish(tab *catalog.Table) {
	s.tab.Store(tab)
	s.eng.Store(engine.New(tab))
}

func (s *System) engine() *engine.Engine { return s.eng.Load() }

// Validate parses raw against the currently published catalog.
func (s *System) Validate(raw string) *engine.Result {
	return s.engine().Validate(raw)
}

// ConvertUnitTo converts value from fromRaw into toRaw, bridging a
// mass/substance mismatch with molecularWeight (grams per mole) when
// one is supplied and needed.
func (s *System) ConvertUnitTo(value float64, fromRaw, toRaw string, molecularWeight float64) (float64, *engine.Result) {
	return s.engine().ConvertUnitTo(value, fromRaw, toRaw, molecularWeight)
}

// ConvertToBaseUnits rewrites value, expressed in raw, into its
// coherent base form.
func (s *System) ConvertToBaseUnits(value float64, raw string) (float64, *engine.Result) {
	return s.engine().ConvertToBaseUnits(value, raw)
}

// CheckSynonyms looks raw up as a bare atom and returns its
// descriptive metadata, or nil if raw is not a single known atom.
func (s *System) CheckSynonyms(raw string) *engine.SynonymInfo {
	return s.engine().CheckSynonyms(raw)
}

// WatchOverlay starts an fsnotify watch on path's directory and
// re-publishes a merged catalog whenever the overlay file changes,
// until ctx is cancelled. Reload failures are logged, not fatal: the
// previously published catalog keeps serving requests.
func (s *System) WatchOverlay(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting overlay watcher: %w", err)
	}
	s.watcher = w

	dir := dirOf(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	s.log.LogLine("watching overlay:", path)

	go s.watchLoop(ctx, path)
	return nil
}

func (s *System) watchLoop(ctx context.Context, path string) {
	defer s.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := s.loadOverlay(path); err != nil {
				s.log.LogLine("overlay reload failed:", err)
				continue
			}
			s.log.LogLine("overlay reloaded:", path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.LogLine("overlay watch error:", err)
		}
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
