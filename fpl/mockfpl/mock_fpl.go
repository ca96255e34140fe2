package mockfpl

import (
	"github.com/stretchr/testify/mock"
	"github.com/yucath/fpl-minileague-dashboard/fpl"
)

type Client struct {
	mock.Mock
}

func (c *Client) Bootstrap() (*fpl.Bootstrap, error) {
	args := c.Called()

	var res *fpl.Bootstrap
	if args.Get(0) != nil {
		res = args.Get(0).(*fpl.Bootstrap)
	}

	return res, args.Error(1)
}

func (c *Client) Live(gameweek int) (map[int]fpl.LiveStats, error) {
	args := c.Called(gameweek)

	var res map[int]fpl.LiveStats
	if args.Get(0) != nil {
		res = args.Get(0).(map[int]fpl.LiveStats)
	}

	return res, args.Error(1)
}

func (c *Client) Standings(leagueID int) (*fpl.Standings, error) {
	args := c.Called(leagueID)

	var res *fpl.Standings
	if args.Get(0) != nil {
		res = args.Get(0).(*fpl.Standings)
	}

	return res, args.Error(1)
}

func (c *Client) Picks(entryID, gameweek int) (*fpl.Picks, error) {
	args := c.Called(entryID, gameweek)

	var res *fpl.Picks
	if args.Get(0) != nil {
		res = args.Get(0).(*fpl.Picks)
	}

	return res, args.Error(1)
}

func (c *Client) Transfers(entryID int) ([]fpl.Transfer, error) {
	args := c.Called(entryID)

	var res []fpl.Transfer
	if args.Get(0) != nil {
		res = args.Get(0).([]fpl.Transfer)
	}

	return res, args.Error(1)
}

func (c *Client) History(entryID int) (*fpl.EntryHistory, error) {
	args := c.Called(entryID)

	var res *fpl.EntryHistory
	if args.Get(0) != nil {
		res = args.Get(0).(*fpl.EntryHistory)
	}

	return res, args.Error(1)
}
