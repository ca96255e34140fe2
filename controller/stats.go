package controller

import (
	"log"
	"sort"

	"github.com/yucath/fpl-minileague-dashboard/model"
)

func (c *controller) SeasonStatistics() (*model.SeasonOverview, error) {
	c.mu.RLock()
	cached, fresh := c.overview, c.clock.Now().Sub(c.overviewAt) < c.ttl
	c.mu.RUnlock()

	if cached != nil && fresh {
		return cached, nil
	}

	overview, err := c.fetchSeasonStatistics()
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.overview = overview
	c.overviewAt = c.clock.Now()
	c.mu.Unlock()
	return overview, nil
}

func (c *controller) fetchSeasonStatistics() (*model.SeasonOverview, error) {
	b, err := c.bootstrap()
	if err != nil {
		return nil, err
	}

	standings, err := c.fpl.Standings(c.leagueID)
	if err != nil {
		return nil, err
	}

	overview := &model.SeasonOverview{
		Gameweek: model.CurrentGameweek(b.Gameweeks),
	}

	// Best score seen per gameweek so far. Ties keep the manager seen first,
	// which is the higher-ranked one in the standings order.
	best := make(map[int]model.WeeklyWinner)

	for _, manager := range standings.League.Managers {
		history, err := c.fpl.History(manager.EntryID)
		if err != nil {
			// Managers whose history cannot be loaded are left off the
			// statistics page rather than failing the whole snapshot.
			log.Printf("error loading history for entry %d: %v", manager.EntryID, err)
			continue
		}
		if len(history.Current) == 0 {
			continue
		}

		weekly := make([]int, 0, len(history.Current))
		for _, gw := range history.Current {
			weekly = append(weekly, gw.Points)
			if w, found := best[gw.Event]; !found || gw.Points > w.Points {
				best[gw.Event] = model.WeeklyWinner{
					Gameweek: gw.Event,
					Manager:  manager.ManagerName,
					Points:   gw.Points,
				}
			}
		}

		overview.Managers = append(overview.Managers, model.NewSeasonStats(manager, weekly))
	}

	for _, w := range best {
		overview.Winners = append(overview.Winners, w)
	}
	sort.Slice(overview.Winners, func(i, j int) bool {
		return overview.Winners[i].Gameweek < overview.Winners[j].Gameweek
	})

	overview.SortByTotalPoints()
	return overview, nil
}
