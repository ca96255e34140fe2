package controller

import (
	"log"
	"sort"

	"github.com/yucath/fpl-minileague-dashboard/fpl"
	"github.com/yucath/fpl-minileague-dashboard/model"
)

// pointsPerExtraTransfer is the hit applied once a manager makes more than
// freeTransferLimit transfers in a gameweek.
const (
	pointsPerExtraTransfer = 4
	freeTransferLimit      = 2
	chipFreeHit            = "freehit"
)

func (c *controller) LiveGameweek() (*model.LiveGameweek, error) {
	c.mu.RLock()
	cached, fresh := c.live, c.clock.Now().Sub(c.liveAt) < c.ttl
	c.mu.RUnlock()

	if cached != nil && fresh {
		return cached, nil
	}

	live, err := c.fetchLiveGameweek()
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.live = live
	c.liveAt = c.clock.Now()
	c.mu.Unlock()
	return live, nil
}

func (c *controller) fetchLiveGameweek() (*model.LiveGameweek, error) {
	b, err := c.bootstrap()
	if err != nil {
		return nil, err
	}

	gw := model.CurrentGameweek(b.Gameweeks)
	if gw == 0 {
		gw = 1
	}

	liveStats, err := c.fpl.Live(gw)
	if err != nil {
		return nil, err
	}

	standings, err := c.fpl.Standings(c.leagueID)
	if err != nil {
		return nil, err
	}

	result := &model.LiveGameweek{Gameweek: gw}
	for _, manager := range standings.League.Managers {
		result.Managers = append(result.Managers, c.managerLive(manager, gw, b, liveStats))
	}
	model.SortManagersByLivePoints(result.Managers)

	return result, nil
}

// managerLive builds one manager's live detail. Per-entry fetch failures are
// not fatal for the whole table; the manager is shown with zero points
// instead.
func (c *controller) managerLive(manager model.LeagueManager, gw int, b *fpl.Bootstrap, liveStats map[int]fpl.LiveStats) model.ManagerLive {
	ml := model.ManagerLive{
		Manager:          manager,
		PointsByPosition: emptyPositionPoints(),
	}

	picks, err := c.fpl.Picks(manager.EntryID, gw)
	if err != nil {
		log.Printf("error loading picks for entry %d: %v", manager.EntryID, err)
		return ml
	}
	transfers, err := c.fpl.Transfers(manager.EntryID)
	if err != nil {
		log.Printf("error loading transfers for entry %d: %v", manager.EntryID, err)
		return ml
	}

	ml.ActiveChip = picks.ActiveChip
	for _, t := range transfers {
		if t.Event == gw {
			ml.TransfersMade++
		}
	}
	if picks.ActiveChip != chipFreeHit && ml.TransfersMade > freeTransferLimit {
		ml.TransferCost = ml.TransfersMade * pointsPerExtraTransfer
	}

	for _, pick := range picks.Picks {
		player, found := b.Players[pick.Element]
		if !found {
			continue
		}
		stats, found := liveStats[pick.Element]
		if !found {
			continue
		}

		points := stats.TotalPoints * pick.Multiplier
		played := stats.Minutes > 0
		if played {
			ml.PlayedCount++
		}

		if pick.Position > model.StartingSquadSize {
			ml.BenchPoints += points
		} else {
			ml.PointsByPosition[player.Position] += points
		}

		if pick.Multiplier > 1 {
			ml.Captain = &model.CaptainInfo{
				Name:   player.WebName,
				Club:   player.Club,
				Points: points,
				Played: played,
			}
		}

		ml.Squad = append(ml.Squad, model.PlayerLine{
			Name:      player.WebName,
			Points:    points,
			SquadSlot: pick.Position,
			IsCaptain: pick.Multiplier > 1,
			Played:    played,
		})
	}

	sort.Slice(ml.Squad, func(i, j int) bool {
		return ml.Squad[i].SquadSlot < ml.Squad[j].SquadSlot
	})
	return ml
}

func emptyPositionPoints() map[model.Position]int {
	return map[model.Position]int{
		model.POS_GKP: 0,
		model.POS_DEF: 0,
		model.POS_MID: 0,
		model.POS_FWD: 0,
	}
}
