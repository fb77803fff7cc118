package availability

// Slot is one bookable window of a turf's day.
type Slot struct {
	ID        string
	StartTime string // wall-clock HH:MM
	EndTime   string // wall-clock HH:MM
}

// ComposedTime is the join key between a slot and a booking:
// "{date}T{startTime}:00". Equality is exact string match — no time-zone
// normalization, no format parsing. Producers and consumers must agree on
// this exact composition.
func ComposedTime(date, startTime string) string {
	return date + "T" + startTime + ":00"
}

// Entry is the projection of a booking used for availability checks.
// Date is derived from the composed time by the adapter that produced it.
type Entry struct {
	Turf string
	Date string
	Time string // composed time string
}

// BookedSet holds the composed times already taken for one turf on one date.
type BookedSet map[string]struct{}

// ComputeBookedSet filters bookings to the given turf and date and projects
// them to their composed time values.
// POST: pure function of its three inputs; no network or storage access
func ComputeBookedSet(bookings []Entry, turfName, date string) BookedSet {
	set := make(BookedSet)
	for _, b := range bookings {
		if b.Turf != turfName || b.Date != date {
			continue
		}
		set[b.Time] = struct{}{}
	}
	return set
}

// Contains reports whether the exact composed time string is taken.
func (s BookedSet) Contains(composedTime string) bool {
	_, ok := s[composedTime]
	return ok
}

// IsBooked reports whether the slot is unavailable on the given date.
func (s BookedSet) IsBooked(slot Slot, date string) bool {
	return s.Contains(ComposedTime(date, slot.StartTime))
}
