package dashboard

import "errors"

// Panel identifies which dashboard view is active. Exactly one panel (or
// none) is active at a time.
type Panel string

const (
	PanelHome     Panel = ""         // default view, no panel active
	PanelAddForm  Panel = "add-turf" // add-turf form
	PanelAllTurfs Panel = "turfs"
	PanelFeedback Panel = "feedback"
	PanelBookings Panel = "bookings"
)

// ErrUnknownPanel is returned for a panel name outside the known set.
var ErrUnknownPanel = errors.New("unknown dashboard panel")

// ParsePanel maps a panel name to a Panel. The empty string is home.
func ParsePanel(s string) (Panel, error) {
	switch Panel(s) {
	case PanelHome, PanelAddForm, PanelAllTurfs, PanelFeedback, PanelBookings:
		return Panel(s), nil
	default:
		return PanelHome, ErrUnknownPanel
	}
}

// View is the exclusive panel selection: selecting one panel deactivates
// every other, and Reset returns to the home cards.
type View struct {
	active Panel
}

// Select activates the given panel.
func (v *View) Select(p Panel) error {
	if _, err := ParsePanel(string(p)); err != nil {
		return err
	}
	v.active = p
	return nil
}

// Reset returns the dashboard to the home view.
func (v *View) Reset() {
	v.active = PanelHome
}

// Active returns the currently active panel.
func (v *View) Active() Panel { return v.active }

// IsHome reports whether no panel is active.
func (v *View) IsHome() bool { return v.active == PanelHome }
