package controller

import (
	"log"
	"sync"
	"time"
)

// RunPeriodicRefresh keeps the cached snapshots warm so page loads during a
// live gameweek do not wait on the FPL API fan-out.
func (c *controller) RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			c.refresh()
		}
	}
}

// refresh refetches both snapshots regardless of cache age. Failures keep
// the previous snapshot; the next tick tries again.
func (c *controller) refresh() {
	start := time.Now()
	log.Printf("snapshot refresh starting at %v", start.Format(time.DateTime))

	started, _, err := c.SeasonStarted()
	if err != nil {
		log.Printf("error refreshing bootstrap data: %v", err)
		return
	}
	if !started {
		// Before the first deadline only the preseason snapshot is useful.
		if p, err := c.fetchPreseason(); err != nil {
			log.Printf("error refreshing preseason data: %v", err)
		} else {
			c.mu.Lock()
			c.preseason = p
			c.preAt = c.clock.Now()
			c.mu.Unlock()
		}
		return
	}

	if live, err := c.fetchLiveGameweek(); err != nil {
		log.Printf("error refreshing live gameweek: %v", err)
	} else {
		c.mu.Lock()
		c.live = live
		c.liveAt = c.clock.Now()
		c.mu.Unlock()
	}

	if overview, err := c.fetchSeasonStatistics(); err != nil {
		log.Printf("error refreshing season statistics: %v", err)
	} else {
		c.mu.Lock()
		c.overview = overview
		c.overviewAt = c.clock.Now()
		c.mu.Unlock()
	}

	log.Printf("snapshot refresh finished, took %v", time.Since(start))
}
