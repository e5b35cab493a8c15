package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

type recordingService struct {
	mu        sync.Mutex
	delivered []ports.NotificationInput
	done      chan struct{}
	expect    int
}

func newRecordingService(expect int) *recordingService {
	return &recordingService{done: make(chan struct{}), expect: expect}
}

func (s *recordingService) Create(_ context.Context, input ports.NotificationInput) (*domain.Notification, error) {
	s.mu.Lock()
	s.delivered = append(s.delivered, input)
	if len(s.delivered) == s.expect {
		close(s.done)
	}
	s.mu.Unlock()
	return &domain.Notification{UserID: input.UserID, Title: input.Title}, nil
}

func (s *recordingService) List(context.Context, ports.NotificationFilter) ([]domain.Notification, error) {
	return nil, nil
}

func (s *recordingService) Get(context.Context, string) (*domain.Notification, error) {
	return nil, nil
}

func (s *recordingService) MarkRead(context.Context, string) (*domain.Notification, error) {
	return nil, nil
}

func (s *recordingService) MarkAllRead(context.Context, string) error { return nil }

func (s *recordingService) Delete(context.Context, string) error { return nil }

func TestDispatcher_DeliversAll(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Notify(ports.NotificationInput{UserID: "user-1", Title: "a"})
	d.Notify(ports.NotificationInput{UserID: "user-2", Title: "b"})
	d.Notify(ports.NotificationInput{UserID: "user-1", Title: "c"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries, got %d", len(svc.delivered))
	}
}

func TestDispatcher_PerRecipientOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Notify(ports.NotificationInput{UserID: "user-1", Title: string(rune('a' + i))})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries, got %d", len(svc.delivered))
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, input := range svc.delivered {
		if input.Title != string(rune('a'+i)) {
			t.Fatalf("delivery %d out of order: got %q", i, input.Title)
		}
	}
}

func TestDispatcher_StableSharding(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("user-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user-42") != first {
			t.Fatalf("shard index not stable for the same recipient")
		}
	}
}
