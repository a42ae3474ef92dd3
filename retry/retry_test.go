package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLinear(t *testing.T) {
	if got := Linear(time.Second, time.Second); got != 2*time.Second {
		t.Errorf("expected 2s, got %s", got)
	}
	if got := Linear(3*time.Second, time.Second); got != 4*time.Second {
		t.Errorf("expected 4s, got %s", got)
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed(10*time.Second, 2*time.Second); got != 2*time.Second {
		t.Errorf("expected 2s, got %s", got)
	}
}

func TestExponential(t *testing.T) {
	if got := Exponential(0, time.Second); got != time.Second {
		t.Errorf("expected 1s for zero current, got %s", got)
	}
	if got := Exponential(2*time.Second, time.Second); got != 4*time.Second {
		t.Errorf("expected 4s, got %s", got)
	}
}

func TestStrategiesAreDeterministic(t *testing.T) {
	for _, s := range []DelayStrategy{Linear, Fixed, Exponential} {
		a := s(3*time.Second, time.Second)
		b := s(3*time.Second, time.Second)
		if a != b {
			t.Errorf("strategy not deterministic: %s vs %s", a, b)
		}
	}
}

func TestPolicy_ShouldContinue(t *testing.T) {
	tests := []struct {
		attempt int
		count   int
		want    bool
	}{
		{0, 0, true},
		{1, 0, false},
		{0, 2, true},
		{1, 2, true},
		{2, 2, true},
		{3, 2, false},
	}
	for _, tt := range tests {
		p := Policy{Count: tt.count}
		if got := p.ShouldContinue(tt.attempt); got != tt.want {
			t.Errorf("ShouldContinue(%d) with count %d: expected %v, got %v",
				tt.attempt, tt.count, tt.want, got)
		}
	}
}

func TestPolicy_NextDelay_DefaultsToLinear(t *testing.T) {
	p := Policy{Count: 3, Delay: time.Second}
	if got := p.NextDelay(time.Second); got != 2*time.Second {
		t.Errorf("expected 2s, got %s", got)
	}
}

func TestPolicy_NextDelay_NonDecreasing(t *testing.T) {
	for _, s := range []DelayStrategy{Linear, Fixed, Exponential} {
		p := Policy{Count: 5, Delay: time.Second, Strategy: s}
		current := time.Second
		for i := 0; i < 5; i++ {
			next := p.NextDelay(current)
			if next < current {
				t.Errorf("delay decreased from %s to %s", current, next)
			}
			current = next
		}
	}
}

func TestPolicy_Validate(t *testing.T) {
	if err := (Policy{Count: 0, Delay: 0}).Validate(); err != nil {
		t.Errorf("no retries should not require a delay: %v", err)
	}
	if err := (Policy{Count: 1, Delay: 100 * time.Millisecond}).Validate(); err == nil {
		t.Error("expected error for sub-second delay with retries enabled")
	}
	if err := (Policy{Count: 1, Delay: time.Second}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCancelled(t *testing.T) {
	ctx := context.Background()
	if Cancelled(ctx, nil) {
		t.Error("expected not cancelled")
	}

	emitter := make(chan struct{})
	if Cancelled(ctx, emitter) {
		t.Error("expected not cancelled with open emitter")
	}
	close(emitter)
	if !Cancelled(ctx, emitter) {
		t.Error("expected cancelled after emitter close")
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if !Cancelled(cancelled, nil) {
		t.Error("expected cancelled context to cancel")
	}
}

func TestWait_Elapses(t *testing.T) {
	start := time.Now()
	if err := Wait(context.Background(), nil, 50*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("wait returned early after %s", elapsed)
	}
}

func TestWait_EmitterClose(t *testing.T) {
	emitter := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(emitter)
	}()

	start := time.Now()
	err := Wait(context.Background(), emitter, 5*time.Second)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("wait did not abort promptly, took %s", elapsed)
	}
}

func TestWait_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Wait(ctx, nil, 5*time.Second)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
