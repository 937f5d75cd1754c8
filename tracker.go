package gridsight

import (
	"context"
	"log/slog"

	"github.com/gogpu/gridsight/internal/parallel"
)

// Watcher is something that looks for a target: a position and the
// squared radius it can see.
type Watcher struct {
	Name         string
	Position     Cell
	RangeSquared int
}

// Range returns the watcher's range as a RangeSpec.
func (w Watcher) Range() RangeSpec {
	return RangeSpec{Center: w.Position, RadiusSquared: w.RangeSquared}
}

// Sighting pairs a watcher with its verdict for one target.
type Sighting struct {
	Watcher    Watcher
	Visibility Visibility
}

// Tracker evaluates the sight lines of many watchers to one target in
// parallel.
//
// A Tracker owns a pool of goroutines; call Close when done with it.
// Track may be called from several goroutines at once. The Occluder handed
// to Track is read concurrently and must tolerate that.
type Tracker struct {
	pool *parallel.WorkerPool
}

// NewTracker creates a tracker with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewTracker(workers int) *Tracker {
	t := &Tracker{pool: parallel.NewWorkerPool(workers)}
	Logger().Debug("gridsight: tracker started", slog.Int("workers", t.pool.Workers()))
	return t
}

// Workers returns the number of goroutines evaluating queries.
func (t *Tracker) Workers() int {
	return t.pool.Workers()
}

// Track runs Visible for every watcher against target and returns the
// sightings in watcher order.
//
// ctx is checked once before the batch is queued; single queries are
// short and run to completion.
func (t *Tracker) Track(ctx context.Context, watchers []Watcher, target Cell, occ Occluder, opts ...QueryOption) ([]Sighting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sightings, ok := parallel.Map(t.pool, len(watchers), func(i int) Sighting {
		w := watchers[i]
		return Sighting{
			Watcher:    w,
			Visibility: Visible(w.Position, target, w.RangeSquared, occ, opts...),
		}
	})
	if !ok {
		return nil, ErrTrackerClosed
	}

	log := Logger()
	if log.Enabled(ctx, slog.LevelDebug) {
		for _, s := range sightings {
			log.DebugContext(ctx, "gridsight: sighting",
				slog.String("watcher", s.Watcher.Name),
				slog.String("position", s.Watcher.Position.String()),
				slog.String("target", target.String()),
				slog.Bool("in_range", s.Visibility.InRange),
				slog.Bool("obstructed", s.Visibility.Obstructed))
		}
	}

	return sightings, nil
}

// Close stops the tracker's workers. Close is safe to call multiple times.
func (t *Tracker) Close() {
	if t.pool.IsRunning() {
		Logger().Info("gridsight: tracker closed")
	}
	t.pool.Close()
}
