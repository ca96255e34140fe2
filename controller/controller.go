package controller

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/yucath/fpl-minileague-dashboard/fpl"
	"github.com/yucath/fpl-minileague-dashboard/model"
)

// DefaultCacheTTL matches how long the original dashboard cached FPL
// responses before refetching.
const DefaultCacheTTL = 5 * time.Minute

// C encapsulates business logic without worrying about any web layers
type C interface {
	// SeasonStarted reports whether the season is underway and, if it is,
	// which gameweek is current.
	SeasonStarted() (bool, int, error)

	// LiveGameweek assembles the live standings for the current gameweek:
	// per-manager points split by position, bench points, captain, transfer
	// hits, ordered by live points.
	LiveGameweek() (*model.LiveGameweek, error)

	// SeasonStatistics assembles the season-to-date leaderboard with
	// averages, consistency, best/worst weeks and weekly winners.
	SeasonStatistics() (*model.SeasonOverview, error)

	// Preseason lists league members with their most recent past-season
	// results, for the page shown before the first deadline.
	Preseason() (*model.Preseason, error)

	// LastUpdated is the time of the most recent successful snapshot fetch,
	// zero if nothing has been fetched yet.
	LastUpdated() time.Time

	RunPeriodicRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	fpl      fpl.Client
	leagueID int
	ttl      time.Duration

	mu         sync.RWMutex
	boot       *fpl.Bootstrap
	bootAt     time.Time
	live       *model.LiveGameweek
	liveAt     time.Time
	overview   *model.SeasonOverview
	overviewAt time.Time
	preseason  *model.Preseason
	preAt      time.Time
}

func New(clock clock.Clock, fplClient fpl.Client, leagueID int) (C, error) {
	c := &controller{
		clock:    clock,
		fpl:      fplClient,
		leagueID: leagueID,
		ttl:      DefaultCacheTTL,
	}
	return c, nil
}

// bootstrap returns the cached bootstrap data, refetching once it is older
// than the cache TTL. A fetch failure falls back to the last good copy.
func (c *controller) bootstrap() (*fpl.Bootstrap, error) {
	c.mu.RLock()
	cached, fresh := c.boot, c.clock.Now().Sub(c.bootAt) < c.ttl
	c.mu.RUnlock()

	if cached != nil && fresh {
		return cached, nil
	}

	b, err := c.fpl.Bootstrap()
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.boot = b
	c.bootAt = c.clock.Now()
	c.mu.Unlock()
	return b, nil
}

func (c *controller) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	latest := c.bootAt
	if c.liveAt.After(latest) {
		latest = c.liveAt
	}
	if c.overviewAt.After(latest) {
		latest = c.overviewAt
	}
	if c.preAt.After(latest) {
		latest = c.preAt
	}
	return latest
}

func (c *controller) SeasonStarted() (bool, int, error) {
	b, err := c.bootstrap()
	if err != nil {
		return false, 0, err
	}

	now := c.clock.Now()
	if !model.SeasonStarted(b.Gameweeks, now) {
		return false, 0, nil
	}

	gw := model.CurrentGameweek(b.Gameweeks)
	if gw == 0 {
		gw = 1
	}
	return true, gw, nil
}
