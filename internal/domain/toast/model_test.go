package toast_test

import (
	"testing"
	"time"

	"turfease/internal/domain/toast"
)

// TestNotifier_ShowDefaults tests the default type and position.
func TestNotifier_ShowDefaults(t *testing.T) {
	n := toast.NewNotifierWithDelay(time.Hour)
	n.Show("Booking successful!", "", "")
	got := n.Current()
	if !got.Show {
		t.Fatal("expected toast to be visible")
	}
	if got.Type != toast.TypeSuccess {
		t.Errorf("type = %q, want success", got.Type)
	}
	if got.Position != toast.PositionTop {
		t.Errorf("position = %q, want top", got.Position)
	}
	if got.Message != "Booking successful!" {
		t.Errorf("message = %q", got.Message)
	}
}

// TestNotifier_AutoDismiss tests that the toast hides after the delay.
func TestNotifier_AutoDismiss(t *testing.T) {
	n := toast.NewNotifierWithDelay(20 * time.Millisecond)
	n.Show("bye", toast.TypeDanger, toast.PositionCenter)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !n.Current().Show {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("toast never auto-dismissed")
}

// TestNotifier_LastCallWins tests the cancel-and-replace timer discipline.
func TestNotifier_LastCallWins(t *testing.T) {
	n := toast.NewNotifierWithDelay(60 * time.Millisecond)
	n.Show("first", toast.TypeSuccess, toast.PositionTop)
	time.Sleep(40 * time.Millisecond)

	// Re-show before the first timer fires: the timer must restart.
	n.Show("second", toast.TypeDanger, toast.PositionCenter)
	time.Sleep(40 * time.Millisecond)

	got := n.Current()
	if !got.Show {
		t.Fatal("second toast dismissed by the first toast's timer")
	}
	if got.Message != "second" || got.Type != toast.TypeDanger || got.Position != toast.PositionCenter {
		t.Errorf("unexpected live toast: %+v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !n.Current().Show {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("replacement toast never auto-dismissed")
}
