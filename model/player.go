package model

// Player is the static player data from the FPL bootstrap, keyed by element ID.
type Player struct {
	ID       int
	WebName  string
	Position Position
	Club     string
}

// PlayerLine is one row of a manager's squad for a single gameweek, with the
// live points already multiplied (captains score double, triple captains
// treble).
type PlayerLine struct {
	Name      string
	Points    int
	SquadSlot int // 1-11 starters, 12-15 bench
	IsCaptain bool
	Played    bool
}

func (l PlayerLine) OnBench() bool {
	return l.SquadSlot > StartingSquadSize
}

// Label renders the short form used in the detailed table,
// e.g. "Salah(C)(24)" or "Raya(B)(2)".
func (l PlayerLine) Label() string {
	s := l.Name
	if l.OnBench() {
		s += "(B)"
	}
	if l.IsCaptain {
		s += "(C)"
	}
	return s
}

// StartingSquadSize is the number of starters in an FPL squad. Picks with a
// squad slot beyond it are bench players.
const StartingSquadSize = 11
