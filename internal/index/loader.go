package index

import (
	"context"
	"fmt"
	"log/slog"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

// Loader turns a Source into an Index. It never fails: any error is logged
// and degrades to an empty index so searches can report it to the user.
type Loader struct {
	source Source
	bus    eventbus.EventBus
	logger *slog.Logger
}

// NewLoader creates a loader; bus may be nil
func NewLoader(source Source, bus eventbus.EventBus, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, bus: bus, logger: logger}
}

// SourceName returns the name of the wrapped source
func (l *Loader) SourceName() string {
	return l.source.Name()
}

// Load produces the index
func (l *Loader) Load(ctx context.Context) (idx domain.Index) {
	name := l.source.Name()

	defer func() {
		if r := recover(); r != nil {
			l.fail(name, fmt.Errorf("source panic: %v", r))
			idx = domain.NewIndex(name, nil)
		}
	}()

	entries, err := l.source.Load(ctx)
	if err != nil {
		l.fail(name, err)
		return domain.NewIndex(name, nil)
	}

	l.logger.Info("index loaded", "source", name, "entries", len(entries))
	l.publish(domain.IndexLoadedEvent{Source: name, Count: len(entries)})
	return domain.NewIndex(name, entries)
}

// Rebuild discards any cached scan and loads again
func (l *Loader) Rebuild(ctx context.Context) domain.Index {
	if r, ok := l.source.(Resetter); ok {
		r.Reset()
	}
	return l.Load(ctx)
}

func (l *Loader) fail(name string, err error) {
	l.logger.Error("error loading search data", "source", name, "error", err)
	l.publish(domain.IndexLoadFailedEvent{Source: name, Err: err})
}

func (l *Loader) publish(e domain.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}
