package model

import "time"

// Gameweek is one event from the FPL bootstrap data.
type Gameweek struct {
	ID        int
	Name      string
	Deadline  time.Time
	IsCurrent bool
	Finished  bool
}

// CurrentGameweek returns the event flagged is_current, or 0 if none is.
func CurrentGameweek(gws []Gameweek) int {
	for _, gw := range gws {
		if gw.IsCurrent {
			return gw.ID
		}
	}
	return 0
}

// SeasonStarted reports whether the season is underway at time now. If no
// gameweek is current, or the current gameweek is still the first and its
// deadline has not passed, the season has not started yet.
func SeasonStarted(gws []Gameweek, now time.Time) bool {
	if len(gws) == 0 {
		return false
	}
	if current := CurrentGameweek(gws); current > 1 {
		return true
	}
	for _, gw := range gws {
		if gw.ID == 1 {
			return now.After(gw.Deadline)
		}
	}
	return true
}
