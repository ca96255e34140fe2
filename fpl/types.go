package fpl

import (
	"time"

	"github.com/yucath/fpl-minileague-dashboard/model"
)

// Wire types for the FPL API responses. Only the fields the dashboard uses
// are modeled.

type bootstrapResponse struct {
	Events       []event       `json:"events"`
	Elements     []element     `json:"elements"`
	ElementTypes []elementType `json:"element_types"`
	Teams        []club        `json:"teams"`
}

type event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	IsCurrent    bool   `json:"is_current"`
	Finished     bool   `json:"finished"`
}

type element struct {
	ID          int    `json:"id"`
	WebName     string `json:"web_name"`
	ElementType int    `json:"element_type"`
	Team        int    `json:"team"`
}

type elementType struct {
	ID           int    `json:"id"`
	SingularName string `json:"singular_name"`
}

type club struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Bootstrap is the converted bootstrap-static data: the gameweek calendar
// plus a lookup table of every player in the game.
type Bootstrap struct {
	Gameweeks []model.Gameweek
	Players   map[int]model.Player
}

func (b *bootstrapResponse) toBootstrap() *Bootstrap {
	positions := make(map[int]model.Position, len(b.ElementTypes))
	for _, et := range b.ElementTypes {
		positions[et.ID] = model.ParsePosition(et.SingularName)
	}
	clubs := make(map[int]string, len(b.Teams))
	for _, c := range b.Teams {
		clubs[c.ID] = c.Name
	}

	result := &Bootstrap{
		Gameweeks: make([]model.Gameweek, 0, len(b.Events)),
		Players:   make(map[int]model.Player, len(b.Elements)),
	}
	for _, e := range b.Events {
		result.Gameweeks = append(result.Gameweeks, model.Gameweek{
			ID:        e.ID,
			Name:      e.Name,
			Deadline:  parseDeadline(e.DeadlineTime),
			IsCurrent: e.IsCurrent,
			Finished:  e.Finished,
		})
	}
	for _, e := range b.Elements {
		result.Players[e.ID] = model.Player{
			ID:       e.ID,
			WebName:  e.WebName,
			Position: positions[e.ElementType],
			Club:     clubs[e.Team],
		}
	}
	return result
}

func parseDeadline(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type liveResponse struct {
	Elements []liveElement `json:"elements"`
}

type liveElement struct {
	ID    int `json:"id"`
	Stats struct {
		TotalPoints int `json:"total_points"`
		Minutes     int `json:"minutes"`
	} `json:"stats"`
}

// LiveStats is one player's in-progress scoring for a gameweek.
type LiveStats struct {
	TotalPoints int
	Minutes     int
}

type standingsResponse struct {
	League struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		Results []standingsEntry `json:"results"`
	} `json:"standings"`
	NewEntries struct {
		Results []newEntry `json:"results"`
	} `json:"new_entries"`
}

type standingsEntry struct {
	Entry      int    `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Rank       int    `json:"rank"`
	Total      int    `json:"total"`
}

type newEntry struct {
	Entry           int    `json:"entry"`
	EntryName       string `json:"entry_name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
}

// Standings is the converted classic-league standings response. During the
// season members appear in Managers; before the first deadline the API lists
// them in NewEntries instead.
type Standings struct {
	League     model.League
	NewEntries []model.LeagueManager
}

func (s *standingsResponse) toStandings() *Standings {
	result := &Standings{
		League: model.League{
			ID:   s.League.ID,
			Name: s.League.Name,
		},
	}
	for _, e := range s.Standings.Results {
		result.League.Managers = append(result.League.Managers, model.LeagueManager{
			EntryID:     e.Entry,
			ManagerName: e.PlayerName,
			TeamName:    e.EntryName,
			Rank:        e.Rank,
			TotalPoints: e.Total,
		})
	}
	for _, e := range s.NewEntries.Results {
		result.NewEntries = append(result.NewEntries, model.LeagueManager{
			EntryID:     e.Entry,
			ManagerName: e.PlayerFirstName + " " + e.PlayerLastName,
			TeamName:    e.EntryName,
		})
	}
	return result
}

// Picks is a manager's squad selection for one gameweek.
type Picks struct {
	ActiveChip string `json:"active_chip"`
	Picks      []Pick `json:"picks"`
}

// Pick is one squad slot. Position runs 1-15 with 12-15 on the bench;
// Multiplier is 0 for benched players, 2 for the captain, 3 for a triple
// captain.
type Pick struct {
	Element    int `json:"element"`
	Position   int `json:"position"`
	Multiplier int `json:"multiplier"`
}

// Transfer is one row of a manager's transfer log.
type Transfer struct {
	Event int `json:"event"`
}

type historyResponse struct {
	Current []GameweekScore `json:"current"`
	Past    []pastSeason    `json:"past"`
}

// GameweekScore is one finished (or in-progress) gameweek in an entry's
// season history.
type GameweekScore struct {
	Event  int `json:"event"`
	Points int `json:"points"`
}

type pastSeason struct {
	SeasonName  string `json:"season_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

// EntryHistory is the converted entry history: this season's weekly scores
// plus totals from previous seasons.
type EntryHistory struct {
	Current []GameweekScore
	Past    []model.PastSeason
}

func (h *historyResponse) toHistory() *EntryHistory {
	result := &EntryHistory{Current: h.Current}
	for _, p := range h.Past {
		result.Past = append(result.Past, model.PastSeason{
			SeasonName:  p.SeasonName,
			TotalPoints: p.TotalPoints,
			Rank:        p.Rank,
		})
	}
	return result
}

// MostRecentPast returns the latest finished season, or nil if the entry has
// no history. Season names sort correctly as strings ("2023/24" > "2022/23").
func (h *EntryHistory) MostRecentPast() *model.PastSeason {
	var latest *model.PastSeason
	for i := range h.Past {
		if latest == nil || h.Past[i].SeasonName > latest.SeasonName {
			latest = &h.Past[i]
		}
	}
	return latest
}
