package model

import (
	"fmt"
	"sort"
)

const entryURLFormat = "https://fantasy.premierleague.com/entry/%d"

// League is the mini-league metadata from the classic-league standings
// endpoint.
type League struct {
	ID       int
	Name     string
	Managers []LeagueManager
}

// LeagueManager is one entry in the mini-league. Before the season starts the
// FPL API reports members under new_entries rather than standings; both map
// to this type.
type LeagueManager struct {
	EntryID     int
	ManagerName string
	TeamName    string
	Rank        int
	TotalPoints int
}

// EntryURL is the public FPL page for the manager's team.
func (m LeagueManager) EntryURL() string {
	return fmt.Sprintf(entryURLFormat, m.EntryID)
}

// GameweekEntryURL is the manager's team page for a specific gameweek.
func (m LeagueManager) GameweekEntryURL(gw int) string {
	return fmt.Sprintf(entryURLFormat+"/event/%d", m.EntryID, gw)
}

// PastSeason is one row from the entry history "past" list.
type PastSeason struct {
	SeasonName  string
	TotalPoints int
	Rank        int
}

// PreseasonEntry pairs a league member with their most recent finished
// season, if any.
type PreseasonEntry struct {
	Manager    LeagueManager
	LastSeason *PastSeason
}

// Preseason is the snapshot rendered before the first deadline: the league
// roster with everyone's most recent past-season form.
type Preseason struct {
	LeagueName string
	Entries    []PreseasonEntry
}

// RankedByPastPoints orders entries by last-season total, highest first.
// Entries without history sort last, keeping their name order.
func (p *Preseason) RankedByPastPoints() []PreseasonEntry {
	ranked := make([]PreseasonEntry, len(p.Entries))
	copy(ranked, p.Entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].LastSeason, ranked[j].LastSeason
		if a == nil || b == nil {
			return a != nil
		}
		return a.TotalPoints > b.TotalPoints
	})
	return ranked
}

// Champion returns the entry with the best last-season total, or nil when
// nobody has history.
func (p *Preseason) Champion() *PreseasonEntry {
	ranked := p.RankedByPastPoints()
	if len(ranked) == 0 || ranked[0].LastSeason == nil {
		return nil
	}
	return &ranked[0]
}

// AveragePastPoints is the mean of the last-season totals across members
// that have history. Returns 0 when nobody does.
func (p *Preseason) AveragePastPoints() float64 {
	total, n := 0, 0
	for _, e := range p.Entries {
		if e.LastSeason != nil {
			total += e.LastSeason.TotalPoints
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
