package dashboard_test

import (
	"errors"
	"testing"

	"turfease/internal/domain/dashboard"
)

// TestParsePanel tests panel name parsing.
func TestParsePanel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    dashboard.Panel
		wantErr bool
	}{
		{"home", "", dashboard.PanelHome, false},
		{"add turf", "add-turf", dashboard.PanelAddForm, false},
		{"all turfs", "turfs", dashboard.PanelAllTurfs, false},
		{"feedback", "feedback", dashboard.PanelFeedback, false},
		{"bookings", "bookings", dashboard.PanelBookings, false},
		{"unknown", "settings", dashboard.PanelHome, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dashboard.ParsePanel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePanel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePanel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestView_ExclusiveSelection tests that selecting a panel deactivates the
// previous one and Reset returns home.
func TestView_ExclusiveSelection(t *testing.T) {
	var v dashboard.View
	if !v.IsHome() {
		t.Fatal("new view must start at home")
	}

	if err := v.Select(dashboard.PanelAllTurfs); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if v.Active() != dashboard.PanelAllTurfs {
		t.Errorf("active = %q, want turfs", v.Active())
	}

	if err := v.Select(dashboard.PanelFeedback); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if v.Active() != dashboard.PanelFeedback {
		t.Errorf("active = %q, want feedback — selection must be exclusive", v.Active())
	}

	if err := v.Select("bogus"); !errors.Is(err, dashboard.ErrUnknownPanel) {
		t.Errorf("Select(bogus) error = %v, want ErrUnknownPanel", err)
	}
	if v.Active() != dashboard.PanelFeedback {
		t.Error("rejected selection must not change the active panel")
	}

	v.Reset()
	if !v.IsHome() {
		t.Error("Reset must return to home")
	}
}
