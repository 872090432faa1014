package booking

import "fmt"

// Offices book on a fixed half-hour grid, 09:00 up to but excluding 17:00.
const (
	gridOpenHour  = 9
	gridCloseHour = 17
)

// SlotGrid returns the canonical bookable slots for any (state, date) cell,
// ascending: 09:00, 09:30, ..., 16:30.
func SlotGrid() []string {
	out := make([]string, 0, (gridCloseHour-gridOpenHour)*2)
	for h := gridOpenHour; h < gridCloseHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return out
}

// Available subtracts booked slots from the canonical grid, preserving grid
// order. Membership is exact string equality; slot strings are opaque cell
// identifiers, not instants.
func Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}
	out := []string{}
	for _, s := range SlotGrid() {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// ValidSlot reports whether s is one of the canonical grid slots.
func ValidSlot(s string) bool {
	for _, g := range SlotGrid() {
		if g == s {
			return true
		}
	}
	return false
}
