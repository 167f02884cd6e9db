package scheduler

import (
	"context"
	"testing"
)

func TestScheduler_Register(t *testing.T) {
	t.Parallel()

	s := NewScheduler(context.Background(), func(ctx context.Context) {})
	if err := s.Register(24); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScheduler_Register_InvalidInterval(t *testing.T) {
	t.Parallel()

	s := NewScheduler(context.Background(), func(ctx context.Context) {})
	if err := s.Register(-1); err == nil {
		t.Fatal("expected error for negative interval, got nil")
	}
}

func TestScheduler_RunNow(t *testing.T) {
	t.Parallel()

	called := 0
	s := NewScheduler(context.Background(), func(ctx context.Context) {
		called++
	})

	s.RunNow()
	if called != 1 {
		t.Errorf("collect was called %d times, expected 1", called)
	}
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	s := NewScheduler(context.Background(), func(ctx context.Context) {})
	s.Start()
	s.Stop()
}
