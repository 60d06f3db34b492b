package evaluator

import (
	"fmt"

	"github.com/lox/holdem-advisor/internal/deck"
)

// Category classifies a 5-card hand, ordered from weakest to strongest.
// A royal flush is distinguished from other straight flushes: it is the
// straight flush whose high card is an Ace.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandScore is the totally-ordered rank of a 5-card hand: the category first,
// then up to five tie-breaking ranks compared lexicographically. Grouped ranks
// (quads, trips, pairs) come before kickers; unused positions are zero, which
// never affects ordering because both scores in a comparison fill the same
// positions for equal categories.
type HandScore struct {
	Category  Category
	Tiebreaks [5]deck.Rank
}

// Compare returns 1 if s outranks other, -1 if other outranks s, 0 if equal.
func (s HandScore) Compare(other HandScore) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range s.Tiebreaks {
		if s.Tiebreaks[i] != other.Tiebreaks[i] {
			if s.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats returns true if s strictly outranks other.
func (s HandScore) Beats(other HandScore) bool {
	return s.Compare(other) > 0
}

// String returns the category name with the primary tie-break rank, e.g.
// "Full House (K over 9)" reads better in logs than a raw tuple.
func (s HandScore) String() string {
	switch s.Category {
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", s.Category, s.Tiebreaks[0], s.Tiebreaks[1])
	case TwoPair:
		return fmt.Sprintf("%s (%ss and %ss)", s.Category, s.Tiebreaks[0], s.Tiebreaks[1])
	case RoyalFlush:
		return s.Category.String()
	default:
		return fmt.Sprintf("%s (%s high)", s.Category, s.Tiebreaks[0])
	}
}

// InvalidHandSizeError reports the wrong number of cards passed to an
// evaluator that requires an exact or minimum count.
type InvalidHandSizeError struct {
	Got  int
	Want int
}

func (e *InvalidHandSizeError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", e.Want, e.Got)
}
