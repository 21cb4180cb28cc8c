package pacer

import (
	"context"
	"testing"
	"time"
)

func TestFixed_ZeroDelayReturnsImmediately(t *testing.T) {
	start := time.Now()
	if err := (Fixed{}).Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("zero-delay Wait took %v", elapsed)
	}
}

func TestFixed_Waits(t *testing.T) {
	start := time.Now()
	if err := (Fixed{Delay: 10 * time.Millisecond}).Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Wait returned after %v, want >= 10ms", elapsed)
	}
}

func TestFixed_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (Fixed{Delay: time.Hour}).Wait(ctx)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestLimiter_AllowsBurst(t *testing.T) {
	l := NewLimiter(1, 2)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 2; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("burst of 2 took %v, want near-instant", elapsed)
	}
}

func TestNop(t *testing.T) {
	if err := (Nop{}).Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
