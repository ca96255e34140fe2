package model

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SeasonStats is one manager's season-to-date summary built from their
// gameweek history.
type SeasonStats struct {
	Manager      LeagueManager
	TotalPoints  int
	Average      float64
	StdDev       float64 // lower means more consistent
	BestWeek     int
	WorstWeek    int
	WeeklyPoints []int
}

// NewSeasonStats computes the summary statistics for a manager's weekly
// scores. Returns the zero value when weekly is empty; callers skip managers
// with no history.
func NewSeasonStats(manager LeagueManager, weekly []int) SeasonStats {
	s := SeasonStats{
		Manager:      manager,
		TotalPoints:  manager.TotalPoints,
		WeeklyPoints: weekly,
	}
	if len(weekly) == 0 {
		return s
	}

	points := make([]float64, len(weekly))
	s.BestWeek = weekly[0]
	s.WorstWeek = weekly[0]
	for i, p := range weekly {
		points[i] = float64(p)
		if p > s.BestWeek {
			s.BestWeek = p
		}
		if p < s.WorstWeek {
			s.WorstWeek = p
		}
	}
	s.Average = stat.Mean(points, nil)
	s.StdDev = stat.PopStdDev(points, nil)
	return s
}

// WeeklyWinner records who scored the most points in a single gameweek.
type WeeklyWinner struct {
	Gameweek int
	Manager  string
	Points   int
}

// SeasonOverview is the aggregate snapshot for the statistics page.
type SeasonOverview struct {
	Gameweek int
	Managers []SeasonStats
	Winners  []WeeklyWinner
}

// SortByTotalPoints orders the leaderboard by season total, highest first.
func (o *SeasonOverview) SortByTotalPoints() {
	sort.SliceStable(o.Managers, func(i, j int) bool {
		return o.Managers[i].TotalPoints > o.Managers[j].TotalPoints
	})
}

// MostConsistent returns the manager with the lowest standard deviation, or
// nil when there are no stats yet.
func (o *SeasonOverview) MostConsistent() *SeasonStats {
	var best *SeasonStats
	for i := range o.Managers {
		if best == nil || o.Managers[i].StdDev < best.StdDev {
			best = &o.Managers[i]
		}
	}
	return best
}

// HighestSingleWeek returns the manager with the best single-gameweek score,
// or nil when there are no stats yet.
func (o *SeasonOverview) HighestSingleWeek() *SeasonStats {
	var best *SeasonStats
	for i := range o.Managers {
		if best == nil || o.Managers[i].BestWeek > best.BestWeek {
			best = &o.Managers[i]
		}
	}
	return best
}

// WinCounts tallies how many gameweeks each manager has won, ordered most
// wins first. Ties within a gameweek go to the manager listed first in the
// standings, matching the order winners were recorded in.
func (o *SeasonOverview) WinCounts() []WinCount {
	counts := make(map[string]int)
	for _, w := range o.Winners {
		counts[w.Manager]++
	}
	result := make([]WinCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, WinCount{Manager: name, Wins: n})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Wins != result[j].Wins {
			return result[i].Wins > result[j].Wins
		}
		return result[i].Manager < result[j].Manager
	})
	return result
}

type WinCount struct {
	Manager string
	Wins    int
}

// GameweekColumns returns the gameweek numbers the points matrix spans,
// 1 through the longest history seen.
func (o *SeasonOverview) GameweekColumns() []int {
	maxWeeks := 0
	for _, m := range o.Managers {
		if len(m.WeeklyPoints) > maxWeeks {
			maxWeeks = len(m.WeeklyPoints)
		}
	}
	cols := make([]int, maxWeeks)
	for i := range cols {
		cols[i] = i + 1
	}
	return cols
}

// PointsMatrix returns each manager's weekly points padded to the same number
// of gameweeks, for the distribution table. Rows follow the leaderboard
// order; missing weeks are -1 so templates can render them blank.
func (o *SeasonOverview) PointsMatrix() [][]int {
	maxWeeks := 0
	for _, m := range o.Managers {
		if len(m.WeeklyPoints) > maxWeeks {
			maxWeeks = len(m.WeeklyPoints)
		}
	}
	matrix := make([][]int, len(o.Managers))
	for i, m := range o.Managers {
		row := make([]int, maxWeeks)
		for j := range row {
			if j < len(m.WeeklyPoints) {
				row[j] = m.WeeklyPoints[j]
			} else {
				row[j] = -1
			}
		}
		matrix[i] = row
	}
	return matrix
}
