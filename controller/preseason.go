package controller

import (
	"log"
	"sort"

	"github.com/yucath/fpl-minileague-dashboard/model"
)

func (c *controller) Preseason() (*model.Preseason, error) {
	c.mu.RLock()
	cached, fresh := c.preseason, c.clock.Now().Sub(c.preAt) < c.ttl
	c.mu.RUnlock()

	if cached != nil && fresh {
		return cached, nil
	}

	p, err := c.fetchPreseason()
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.preseason = p
	c.preAt = c.clock.Now()
	c.mu.Unlock()
	return p, nil
}

func (c *controller) fetchPreseason() (*model.Preseason, error) {
	standings, err := c.fpl.Standings(c.leagueID)
	if err != nil {
		return nil, err
	}

	// Before the first deadline the API reports members under new_entries;
	// once standings fill in, use those instead.
	managers := standings.NewEntries
	if len(managers) == 0 {
		managers = standings.League.Managers
	}

	sort.SliceStable(managers, func(i, j int) bool {
		return managers[i].ManagerName < managers[j].ManagerName
	})

	result := &model.Preseason{LeagueName: standings.League.Name}
	for _, manager := range managers {
		entry := model.PreseasonEntry{Manager: manager}

		history, err := c.fpl.History(manager.EntryID)
		if err != nil {
			// Shown as "No Data" rather than failing the page.
			log.Printf("error loading history for entry %d: %v", manager.EntryID, err)
		} else {
			entry.LastSeason = history.MostRecentPast()
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}
