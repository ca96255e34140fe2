package controller

import (
	"testing"
	"time"

	"github.com/yucath/fpl-minileague-dashboard/fpl"
	"github.com/yucath/fpl-minileague-dashboard/model"
	"github.com/yucath/fpl-minileague-dashboard/testutils"
)

func newTestSetup(t *testing.T) (C, *testutils.TestController) {
	t.Helper()

	testCtrl := testutils.NewTestController()
	t.Cleanup(testCtrl.Close)

	ctrl, err := New(testCtrl.Clock, fpl.NewForTest(testCtrl.FPLURL()), testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl, testCtrl
}

func TestSeasonStarted(t *testing.T) {
	ctrl, _ := newTestSetup(t)

	started, gw, err := ctrl.SeasonStarted()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if !started {
		t.Fatal("expected season to have started")
	}
	if gw != 2 {
		t.Errorf("expected current gameweek 2, got %d", gw)
	}
}

func TestSeasonStarted_preseason(t *testing.T) {
	testCtrl := testutils.NewTestControllerPreseason()
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, fpl.NewForTest(testCtrl.FPLURL()), testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	started, gw, err := ctrl.SeasonStarted()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if started {
		t.Fatal("expected season not to have started")
	}
	if gw != 0 {
		t.Errorf("expected gameweek 0 before the season, got %d", gw)
	}
}

func TestLiveGameweek(t *testing.T) {
	ctrl, _ := newTestSetup(t)

	live, err := ctrl.LiveGameweek()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if live.Gameweek != 2 {
		t.Errorf("expected gameweek 2, got %d", live.Gameweek)
	}
	if len(live.Managers) != 3 {
		t.Fatalf("expected 3 managers, got %d", len(live.Managers))
	}

	expected := []struct {
		manager     string
		livePoints  int
		transfers   int
		cost        int
		bench       int
		playedCount int
		captain     string
		chip        string
	}{
		{manager: "Alice Munro", livePoints: 41, transfers: 0, cost: 0, bench: 0, playedCount: 5, captain: "Salah"},
		{manager: "Carol Reed", livePoints: 31, transfers: 1, cost: 0, bench: 12, playedCount: 5, captain: "", chip: "bboost"},
		{manager: "Bob Paisley", livePoints: 14, transfers: 3, cost: 12, bench: 0, playedCount: 4, captain: "Palmer"},
	}

	for i, e := range expected {
		m := live.Managers[i]
		if m.Manager.ManagerName != e.manager {
			t.Errorf("position %d: expected %s, got %s", i, e.manager, m.Manager.ManagerName)
			continue
		}
		if pts := m.LivePoints(); pts != e.livePoints {
			t.Errorf("%s: expected %d live points, got %d", e.manager, e.livePoints, pts)
		}
		if m.TransfersMade != e.transfers {
			t.Errorf("%s: expected %d transfers, got %d", e.manager, e.transfers, m.TransfersMade)
		}
		if m.TransferCost != e.cost {
			t.Errorf("%s: expected transfer cost %d, got %d", e.manager, e.cost, m.TransferCost)
		}
		if m.BenchPoints != e.bench {
			t.Errorf("%s: expected %d bench points, got %d", e.manager, e.bench, m.BenchPoints)
		}
		if m.PlayedCount != e.playedCount {
			t.Errorf("%s: expected %d played, got %d", e.manager, e.playedCount, m.PlayedCount)
		}
		if e.captain == "" {
			if m.Captain != nil {
				t.Errorf("%s: expected no captain, got %+v", e.manager, m.Captain)
			}
		} else if m.Captain == nil || m.Captain.Name != e.captain {
			t.Errorf("%s: expected captain %s, got %+v", e.manager, e.captain, m.Captain)
		}
		if m.ActiveChip != e.chip {
			t.Errorf("%s: expected chip '%s', got '%s'", e.manager, e.chip, m.ActiveChip)
		}
	}

	// Alice captains Salah: 12 live points doubled.
	alice := live.Managers[0]
	if alice.Captain.Points != 24 {
		t.Errorf("expected captain points 24, got %d", alice.Captain.Points)
	}
	if alice.PointsByPosition[model.POS_MID] != 24 {
		t.Errorf("expected 24 midfield points, got %d", alice.PointsByPosition[model.POS_MID])
	}

	if leader := live.Leader(); leader == nil || leader.Manager.ManagerName != "Alice Munro" {
		t.Errorf("unexpected leader: %+v", leader)
	}
}

func TestSeasonStatistics(t *testing.T) {
	ctrl, _ := newTestSetup(t)

	overview, err := ctrl.SeasonStatistics()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(overview.Managers) != 3 {
		t.Fatalf("expected 3 managers, got %d", len(overview.Managers))
	}

	expected := []struct {
		manager string
		total   int
		average float64
		stddev  float64
		best    int
		worst   int
	}{
		{manager: "Bob Paisley", total: 150, average: 75, stddev: 15, best: 90, worst: 60},
		{manager: "Carol Reed", total: 130, average: 65, stddev: 10, best: 75, worst: 55},
		{manager: "Alice Munro", total: 111, average: 55.5, stddev: 14.5, best: 70, worst: 41},
	}

	for i, e := range expected {
		m := overview.Managers[i]
		if m.Manager.ManagerName != e.manager {
			t.Errorf("position %d: expected %s, got %s", i, e.manager, m.Manager.ManagerName)
			continue
		}
		if m.TotalPoints != e.total {
			t.Errorf("%s: expected total %d, got %d", e.manager, e.total, m.TotalPoints)
		}
		if m.Average != e.average {
			t.Errorf("%s: expected average %f, got %f", e.manager, e.average, m.Average)
		}
		if m.StdDev != e.stddev {
			t.Errorf("%s: expected stddev %f, got %f", e.manager, e.stddev, m.StdDev)
		}
		if m.BestWeek != e.best || m.WorstWeek != e.worst {
			t.Errorf("%s: expected best/worst %d/%d, got %d/%d", e.manager, e.best, e.worst, m.BestWeek, m.WorstWeek)
		}
	}

	expectedWinners := []model.WeeklyWinner{
		{Gameweek: 1, Manager: "Bob Paisley", Points: 90},
		{Gameweek: 2, Manager: "Carol Reed", Points: 75},
	}
	if len(overview.Winners) != len(expectedWinners) {
		t.Fatalf("expected %d winners, got %d", len(expectedWinners), len(overview.Winners))
	}
	for i, e := range expectedWinners {
		if overview.Winners[i] != e {
			t.Errorf("winner %d: expected %+v, got %+v", i, e, overview.Winners[i])
		}
	}

	if mc := overview.MostConsistent(); mc == nil || mc.Manager.ManagerName != "Carol Reed" {
		t.Errorf("unexpected most consistent manager: %+v", mc)
	}
	if hw := overview.HighestSingleWeek(); hw == nil || hw.Manager.ManagerName != "Bob Paisley" {
		t.Errorf("unexpected highest single week: %+v", hw)
	}
}

func TestPreseason(t *testing.T) {
	testCtrl := testutils.NewTestControllerPreseason()
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, fpl.NewForTest(testCtrl.FPLURL()), testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	p, err := ctrl.Preseason()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if p.LeagueName != "Kicking Grass FC League" {
		t.Errorf("unexpected league name: %s", p.LeagueName)
	}
	if len(p.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p.Entries))
	}

	// Sorted alphabetically by manager name.
	if p.Entries[0].Manager.ManagerName != "Dana Scully" {
		t.Errorf("expected Dana Scully first, got %s", p.Entries[0].Manager.ManagerName)
	}
	if p.Entries[0].LastSeason == nil || p.Entries[0].LastSeason.TotalPoints != 1900 {
		t.Errorf("unexpected last season for Dana Scully: %+v", p.Entries[0].LastSeason)
	}
	if p.Entries[1].Manager.ManagerName != "Fox Mulder" {
		t.Errorf("expected Fox Mulder second, got %s", p.Entries[1].Manager.ManagerName)
	}
	if p.Entries[1].LastSeason != nil {
		t.Errorf("expected no last season for Fox Mulder, got %+v", p.Entries[1].LastSeason)
	}

	if avg := p.AveragePastPoints(); avg != 1900 {
		t.Errorf("expected average past points 1900, got %f", avg)
	}
}

func TestPreseason_staleOnError(t *testing.T) {
	testCtrl := testutils.NewTestControllerPreseason()
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, fpl.NewForTest(testCtrl.FPLURL()), testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	first, err := ctrl.Preseason()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// Age the cache past its TTL, then break the upstream. The stale
	// snapshot keeps being served.
	testCtrl.Clock.Add(DefaultCacheTTL + time.Minute)
	testCtrl.Close()

	second, err := ctrl.Preseason()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if first != second {
		t.Error("expected the stale snapshot to be returned on upstream failure")
	}
}

func TestPreseason_cached(t *testing.T) {
	testCtrl := testutils.NewTestControllerPreseason()
	defer testCtrl.Close()

	ctrl, err := New(testCtrl.Clock, fpl.NewForTest(testCtrl.FPLURL()), testutils.LeagueID)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	first, err := ctrl.Preseason()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// Closing the fake server proves the second call never touches it.
	testCtrl.Close()

	second, err := ctrl.Preseason()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if first != second {
		t.Error("expected the cached snapshot to be returned")
	}
}

func TestLastUpdated(t *testing.T) {
	ctrl, testCtrl := newTestSetup(t)

	if !ctrl.LastUpdated().IsZero() {
		t.Error("expected zero LastUpdated before any fetch")
	}

	if _, err := ctrl.LiveGameweek(); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if got := ctrl.LastUpdated(); !got.Equal(testCtrl.Clock.Now()) {
		t.Errorf("expected LastUpdated %v, got %v", testCtrl.Clock.Now(), got)
	}
}

func TestLiveGameweek_cached(t *testing.T) {
	ctrl, testCtrl := newTestSetup(t)

	first, err := ctrl.LiveGameweek()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// Closing the fake server proves the second call never touches it.
	testCtrl.Close()

	second, err := ctrl.LiveGameweek()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if first != second {
		t.Error("expected the cached snapshot to be returned")
	}
}

func TestLiveGameweek_staleOnError(t *testing.T) {
	ctrl, testCtrl := newTestSetup(t)

	first, err := ctrl.LiveGameweek()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// Age the cache past its TTL, then break the upstream. The stale
	// snapshot keeps being served.
	testCtrl.Clock.Add(DefaultCacheTTL + time.Minute)
	testCtrl.Close()

	second, err := ctrl.LiveGameweek()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if first != second {
		t.Error("expected the stale snapshot to be returned on upstream failure")
	}
}
