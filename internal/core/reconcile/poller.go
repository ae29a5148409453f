package reconcile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/flycatch/DockerManager/internal/core/domain"
	"github.com/flycatch/DockerManager/internal/core/ports"
)

// Event is what one poll tick produces for the renderer. Exactly one of
// Mutations or Err is meaningful: a failed fetch carries the error and
// leaves the rendered state untouched.
type Event struct {
	Mutations []domain.Mutation
	Err       error
}

// Poller owns the fetch-diff-publish cycle. The previous snapshot is held
// by value inside Run's goroutine and replaced only after a successful
// fetch, so no lock is needed and a failed tick cannot corrupt it. Ticks
// are strictly sequential: a slow fetch delays the next tick instead of
// overlapping it.
type Poller struct {
	provider ports.SnapshotProvider
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
}

func NewPoller(provider ports.SnapshotProvider, interval, timeout time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Poller{provider: provider, interval: interval, timeout: timeout, log: log}
}

// Run polls until ctx is cancelled, sending one Event per tick on the
// returned channel. The first fetch happens immediately rather than after
// one full interval. The channel is closed on shutdown; an in-flight fetch
// is abandoned through its per-tick timeout context.
func (p *Poller) Run(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)
	go func() {
		defer close(events)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		previous := domain.NewWorldSnapshot()
		for {
			ev, next := p.tick(ctx, previous)
			previous = next

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}

// tick runs one fetch-diff cycle and returns the event to publish together
// with the snapshot to carry into the next tick.
func (p *Poller) tick(ctx context.Context, previous domain.WorldSnapshot) (Event, domain.WorldSnapshot) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	current, err := p.provider.GetProjectsWithContainers(fetchCtx)
	if err != nil {
		// Recovered locally: keep the previous snapshot, surface a
		// transient notification, try again next tick.
		p.log.Warn().Err(err).Msg("snapshot fetch failed, keeping previous state")
		return Event{Err: err}, previous
	}

	mutations, err := Diff(previous, current)
	if err != nil {
		// Invariant violation in the fetched data. The snapshot is not
		// installed; the tick is skipped entirely.
		p.log.Error().Err(err).Msg("reconciliation skipped")
		return Event{Err: err}, previous
	}

	return Event{Mutations: mutations}, current
}
