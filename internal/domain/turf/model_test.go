package turf_test

import (
	"testing"

	"turfease/internal/domain/turf"
)

// TestTurf_Validate tests validation of Turf.
func TestTurf_Validate(t *testing.T) {
	tests := []struct {
		name    string
		turf    turf.Turf
		wantErr bool
	}{
		{
			name:    "valid turf",
			turf:    turf.Turf{ID: "1", Name: "Greenfield Arena", Address: "12 Park Rd", Location: "Northside", Price: 1200},
			wantErr: false,
		},
		{
			name:    "zero price is allowed",
			turf:    turf.Turf{ID: "2", Name: "Free Pitch", Address: "1 Main St", Location: "Central", Price: 0},
			wantErr: false,
		},
		{
			name:    "empty name",
			turf:    turf.Turf{ID: "3", Name: "  ", Address: "1 Main St", Location: "Central", Price: 100},
			wantErr: true,
		},
		{
			name:    "empty address",
			turf:    turf.Turf{ID: "4", Name: "Pitch", Address: "", Location: "Central", Price: 100},
			wantErr: true,
		},
		{
			name:    "empty location",
			turf:    turf.Turf{ID: "5", Name: "Pitch", Address: "1 Main St", Location: "", Price: 100},
			wantErr: true,
		},
		{
			name:    "negative price",
			turf:    turf.Turf{ID: "6", Name: "Pitch", Address: "1 Main St", Location: "Central", Price: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.turf.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Turf.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDefaultSlots tests the generated hourly windows.
func TestDefaultSlots(t *testing.T) {
	slots := turf.DefaultSlots()
	if len(slots) != 16 {
		t.Fatalf("expected 16 default slots, got %d", len(slots))
	}
	if slots[0].StartTime != "06:00" || slots[0].EndTime != "07:00" {
		t.Errorf("first slot = %+v", slots[0])
	}
	if slots[15].StartTime != "21:00" || slots[15].EndTime != "22:00" {
		t.Errorf("last slot = %+v", slots[15])
	}
}

// TestWithSlots tests the nil fallback.
func TestWithSlots(t *testing.T) {
	base := turf.Turf{ID: "1", Name: "Pitch"}
	got := base.WithSlots(nil)
	if len(got.Slots) != 16 {
		t.Errorf("expected default slots, got %d", len(got.Slots))
	}
	if len(base.Slots) != 0 {
		t.Error("WithSlots mutated the receiver")
	}
}
