// Package advisor maps heads-up hand strength, board texture and betting
// stage to a discrete action recommendation. The thresholds assume the
// strength metric from the equity package, which counts ties as wins.
package advisor

import (
	"fmt"

	rand "math/rand/v2"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
)

// Stage is the betting stage, derived purely from board length.
type Stage int

const (
	Preflop Stage = iota
	Flop
	Turn
	River
)

func (s Stage) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// StageForBoard derives the stage from the number of community cards.
func StageForBoard(board []deck.Card) Stage {
	switch len(board) {
	case 0:
		return Preflop
	case 3:
		return Flop
	case 4:
		return Turn
	default:
		return River
	}
}

// Action is a discrete recommendation.
type Action int

const (
	Fold Action = iota
	Call
	Raise
	Show
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "FOLD"
	case Call:
		return "CALL"
	case Raise:
		return "RAISE"
	case Show:
		return "SHOW"
	default:
		return "UNKNOWN"
	}
}

// Recommendation is an advisory action with a confidence score, a
// human-readable rationale and the strength value it was derived from.
type Recommendation struct {
	Action       Action
	Confidence   int
	Rationale    string
	HandStrength float64
}

// Recommend estimates heads-up strength for the hole cards on the current
// board and applies the per-stage threshold table. Texture only matters
// postflop.
func Recommend(hole, board []deck.Card, rng *rand.Rand) Recommendation {
	strength := equity.EstimateStrength(hole, board, equity.DefaultStrengthTrials, rng)
	return RecommendWithStrength(strength, ClassifyTexture(board), StageForBoard(board))
}

// RecommendWithStrength applies the threshold table to an already-computed
// strength value. Exposed so callers can reuse a strength estimate across
// surfaces and tests can pin the input.
func RecommendWithStrength(strength float64, texture Texture, stage Stage) Recommendation {
	rec := func(action Action, confidence int, format string, args ...any) Recommendation {
		return Recommendation{
			Action:       action,
			Confidence:   confidence,
			Rationale:    fmt.Sprintf(format, args...),
			HandStrength: strength,
		}
	}

	switch stage {
	case Preflop:
		switch {
		case strength >= 70:
			return rec(Raise, 95, "Premium hand (%.1f%%) - raise aggressively", strength)
		case strength >= 50:
			return rec(Call, 75, "Good hand (%.1f%%) - call to see flop", strength)
		case strength >= 35:
			return rec(Call, 50, "Marginal (%.1f%%) - call cautiously", strength)
		default:
			return rec(Fold, 80, "Weak hand (%.1f%%) - fold", strength)
		}

	case Flop:
		switch {
		case strength >= 80:
			return rec(Raise, 90, "Strong hand (%.1f%%) on %s board - bet for value", strength, texture)
		case strength >= 60:
			if texture == Wet {
				return rec(Call, 70, "Good hand (%.1f%%) on wet board - proceed cautiously", strength)
			}
			return rec(Raise, 75, "Good hand (%.1f%%) - bet for value", strength)
		case strength >= 40:
			return rec(Call, 55, "Drawing hand (%.1f%%) - see turn card", strength)
		default:
			return rec(Fold, 75, "Weak (%.1f%%) - fold", strength)
		}

	case Turn:
		switch {
		case strength >= 75:
			return rec(Raise, 85, "Strong (%.1f%%) - value bet", strength)
		case strength >= 55:
			return rec(Call, 70, "Good hand (%.1f%%) - see river", strength)
		case strength >= 35:
			return rec(Call, 50, "Drawing (%.1f%%) - last card coming", strength)
		default:
			return rec(Fold, 75, "Weak (%.1f%%) - fold", strength)
		}

	default: // river
		switch {
		case strength >= 75:
			return rec(Show, 85, "Strong (%.1f%%) - go to showdown", strength)
		case strength >= 50:
			return rec(Show, 65, "Decent hand (%.1f%%) - showdown", strength)
		default:
			return rec(Fold, 70, "Weak (%.1f%%) - fold if facing bet", strength)
		}
	}
}
