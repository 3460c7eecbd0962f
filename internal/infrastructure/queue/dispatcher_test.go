package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

type recordingRepo struct {
	mu         sync.Mutex
	activities []domain.Activity
}

func (r *recordingRepo) Insert(_ context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *recordingRepo) snapshot() []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Activity(nil), r.activities...)
}

func TestDispatcher_PersistsInOrderPerUser(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	kinds := []domain.ActivityKind{
		domain.ActivityUserSignedUp,
		domain.ActivityLinkPosted,
		domain.ActivityVoteCast,
	}
	for _, kind := range kinds {
		d.Record(domain.Activity{Kind: kind, UserID: "user-1", Timestamp: time.Now()})
	}

	deadline := time.After(2 * time.Second)
	for {
		if got := repo.snapshot(); len(got) == len(kinds) {
			for i, kind := range kinds {
				if got[i].Kind != kind {
					t.Fatalf("activity %d: expected %s, got %s", i, kind, got[i].Kind)
				}
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("activities not persisted in time: %d/%d", len(repo.snapshot()), len(kinds))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	// Workers never started: the buffer fills and further records drop
	// instead of blocking the caller.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(domain.Activity{Kind: domain.ActivityVoteCast, UserID: "user-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full buffer")
	}
}
