package advisor

import "github.com/lox/holdem-advisor/internal/deck"

// Texture describes how likely a flop is to have hit draws and made hands.
type Texture int

const (
	Unknown Texture = iota
	Dry
	Coordinated
	Wet
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "dry"
	case Coordinated:
		return "coordinated"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// ClassifyTexture classifies the flop by suitedness and connectedness.
// Only the first three board cards are considered; boards shorter than a
// flop are Unknown.
//
// Suited: any suit appears at least twice. Connected: with the three ranks
// sorted descending, both adjacent gaps are at most two.
func ClassifyTexture(board []deck.Card) Texture {
	if len(board) < 3 {
		return Unknown
	}
	flop := board[:3]

	var suitCounts [4]int
	for _, card := range flop {
		suitCounts[card.Suit]++
	}
	suited := false
	for _, count := range suitCounts {
		if count >= 2 {
			suited = true
			break
		}
	}

	ranks := [3]deck.Rank{flop[0].Rank, flop[1].Rank, flop[2].Rank}
	if ranks[0] < ranks[1] {
		ranks[0], ranks[1] = ranks[1], ranks[0]
	}
	if ranks[1] < ranks[2] {
		ranks[1], ranks[2] = ranks[2], ranks[1]
	}
	if ranks[0] < ranks[1] {
		ranks[0], ranks[1] = ranks[1], ranks[0]
	}
	connected := ranks[0]-ranks[1] <= 2 && ranks[1]-ranks[2] <= 2

	switch {
	case suited && connected:
		return Wet
	case suited || connected:
		return Coordinated
	default:
		return Dry
	}
}
