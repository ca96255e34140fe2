package model

import "sort"

// CaptainInfo describes the captained player, with points already doubled.
type CaptainInfo struct {
	Name   string
	Club   string
	Points int
	Played bool
}

// ManagerLive is one manager's live scoring detail for the current gameweek.
type ManagerLive struct {
	Manager          LeagueManager
	PointsByPosition map[Position]int
	BenchPoints      int
	TransfersMade    int
	TransferCost     int
	ActiveChip       string
	Captain          *CaptainInfo
	PlayedCount      int
	Squad            []PlayerLine
}

// LivePoints is the headline number for the live tables: starting points by
// position plus bench points, minus any transfer hit.
func (m ManagerLive) LivePoints() int {
	total := 0
	for _, pts := range m.PointsByPosition {
		total += pts
	}
	return total + m.BenchPoints - m.TransferCost
}

// PositionPoints is a template convenience taking the short position form.
func (m ManagerLive) PositionPoints(pos string) int {
	return m.PointsByPosition[Position(pos)]
}

// LiveGameweek is the full snapshot rendered by the live dashboard. Managers
// are ordered by live points, highest first.
type LiveGameweek struct {
	Gameweek int
	Managers []ManagerLive
}

// Leader returns the manager currently topping the gameweek, or nil when the
// league has no standings yet.
func (l *LiveGameweek) Leader() *ManagerLive {
	if len(l.Managers) == 0 {
		return nil
	}
	return &l.Managers[0]
}

// SortManagersByLivePoints orders managers by live points, highest first.
// Ties keep their league-standings order.
func SortManagersByLivePoints(managers []ManagerLive) {
	sort.SliceStable(managers, func(i, j int) bool {
		return managers[i].LivePoints() > managers[j].LivePoints()
	})
}
