package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_GKP     Position = "GKP"
	POS_DEF     Position = "DEF"
	POS_MID     Position = "MID"
	POS_FWD     Position = "FWD"
)

// ParsePosition accepts both the short form ("GKP") and the singular names
// used by the FPL bootstrap data ("Goalkeeper").
func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "gkp", "gk", "goalkeeper":
		return POS_GKP
	case "def", "defender":
		return POS_DEF
	case "mid", "midfielder":
		return POS_MID
	case "fwd", "forward":
		return POS_FWD
	default:
		return POS_UNKNOWN
	}
}

func (p Position) Name() string {
	switch p {
	case POS_GKP:
		return "Goalkeeper"
	case POS_DEF:
		return "Defender"
	case POS_MID:
		return "Midfielder"
	case POS_FWD:
		return "Forward"
	default:
		return "Unknown"
	}
}
