package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/linkboard/linkboard-api/internal/core/domain"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher persists activity audit records off the request path. A
// fixed set of workers is sharded by user id with consistent hashing,
// so one user's actions are written in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.Activity
	repo    ports.ActivityRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Activity, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Activity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is
// cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an activity without blocking the caller. When the
// shard's buffer is full the record is dropped and logged; the audit
// trail is best-effort and must never slow a request down.
func (d *Dispatcher) Record(activity domain.Activity) {
	select {
	case d.workers[d.shardIndex(activity.UserID)] <- activity:
	default:
		d.log.Warn().
			Str("kind", string(activity.Kind)).
			Str("user_id", activity.UserID).
			Msg("activity buffer full, record dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Activity) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &activity); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(activity.Kind)).
					Int("worker_id", id).
					Msg("failed to persist activity")
			}
		}
	}
}
