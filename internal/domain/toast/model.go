package toast

import (
	"sync"
	"time"
)

// Toast types map onto the alert styles the templates render.
const (
	TypeSuccess = "success"
	TypeDanger  = "danger"
	TypeWarning = "warning"
)

// Positions
const (
	PositionTop    = "top"    // fixed horizontal banner
	PositionCenter = "center" // full-viewport centered overlay
)

// DismissAfter is how long a toast stays visible without a further Show.
const DismissAfter = 3 * time.Second

// Toast is the transient status banner state.
type Toast struct {
	Show     bool
	Type     string
	Message  string
	Position string
}

// Notifier owns at most one live toast. Show cancels the pending dismiss
// timer and schedules a fresh one, so the last call always wins.
type Notifier struct {
	mu      sync.Mutex
	current Toast
	timer   *time.Timer
	delay   time.Duration
}

// NewNotifier creates a Notifier with the standard 3 second auto-dismiss.
func NewNotifier() *Notifier {
	return &Notifier{delay: DismissAfter}
}

// NewNotifierWithDelay creates a Notifier with a custom dismiss delay.
// Intended for use in tests.
func NewNotifierWithDelay(d time.Duration) *Notifier {
	return &Notifier{delay: d}
}

// Show makes the toast visible and restarts the auto-dismiss timer. Empty
// type and position fall back to "success" and "top".
func (n *Notifier) Show(message, typ, position string) {
	if typ == "" {
		typ = TypeSuccess
	}
	if position == "" {
		position = PositionTop
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = Toast{Show: true, Type: typ, Message: message, Position: position}
	n.timer = time.AfterFunc(n.delay, n.dismiss)
}

// Current returns the live toast state.
func (n *Notifier) Current() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current.Show = false
}
