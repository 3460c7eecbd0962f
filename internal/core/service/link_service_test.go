package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linkboard/linkboard-api/internal/core/domain"
)

func TestLinkService_Post(t *testing.T) {
	links := newStubLinkRepo()
	svc := NewLinkService(links, newStubVoteRepo(), nil, nil, zerolog.Nop())

	link, err := svc.Post(context.Background(), "user1", "https://example.com", "an example")
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if link.ID == "" || link.PostedBy != "user1" || link.URL != "https://example.com" {
		t.Fatalf("unexpected link: %+v", link)
	}
}

func TestLinkService_Post_Unauthenticated(t *testing.T) {
	svc := NewLinkService(newStubLinkRepo(), newStubVoteRepo(), nil, nil, zerolog.Nop())

	if _, err := svc.Post(context.Background(), "", "https://example.com", ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLinkService_Feed_CountsFromVoteSet(t *testing.T) {
	votes := newStubVoteRepo()
	links := newStubLinkRepo("link1")
	svc := NewLinkService(links, votes, nil, nil, zerolog.Nop())

	if _, err := votes.Insert(context.Background(), &domain.Vote{UserID: "a", LinkID: "link1"}); err != nil {
		t.Fatalf("seed vote: %v", err)
	}
	if _, err := votes.Insert(context.Background(), &domain.Vote{UserID: "b", LinkID: "link1"}); err != nil {
		t.Fatalf("seed vote: %v", err)
	}

	items, err := svc.Feed(context.Background(), 10)
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Votes != 2 {
		t.Fatalf("expected 2 votes, got %d", items[0].Votes)
	}
}

func TestLinkService_Feed_ReadThroughCache(t *testing.T) {
	votes := newStubVoteRepo()
	links := newStubLinkRepo("link1")
	scores := newStubScoreCache()
	svc := NewLinkService(links, votes, scores, nil, zerolog.Nop())

	// First read misses the cache and populates it from the vote set.
	if _, err := svc.Feed(context.Background(), 10); err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}
	if count, ok, _ := scores.Get(context.Background(), "link1"); !ok || count != 0 {
		t.Fatalf("expected cached count 0, got %d (present=%v)", count, ok)
	}

	// A cached value wins over the store.
	_ = scores.Set(context.Background(), "link1", 42)
	items, err := svc.Feed(context.Background(), 10)
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}
	if items[0].Votes != 42 {
		t.Fatalf("expected cached 42, got %d", items[0].Votes)
	}
}

func TestLinkService_Feed_StoreFailurePropagates(t *testing.T) {
	links := newStubLinkRepo()
	links.err = domain.ErrStoreUnavailable
	svc := NewLinkService(links, newStubVoteRepo(), nil, nil, zerolog.Nop())

	if _, err := svc.Feed(context.Background(), 10); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
