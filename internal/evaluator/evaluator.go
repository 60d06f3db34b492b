// Package evaluator scores 5-card poker hands into totally-ordered HandScore
// values and finds the best 5-card hand obtainable from 7 cards. Evaluation is
// pure: no state is held between calls.
//
// Callers are responsible for global card uniqueness; the result of scoring a
// multiset containing repeated cards is unspecified.
package evaluator

import (
	"sort"

	"github.com/lox/holdem-advisor/internal/deck"
)

// rankGroup is a rank together with its multiplicity in the hand.
type rankGroup struct {
	rank  deck.Rank
	count int
}

// Evaluate scores exactly 5 distinct cards.
func Evaluate(cards []deck.Card) (HandScore, error) {
	if len(cards) != 5 {
		return HandScore{}, &InvalidHandSizeError{Got: len(cards), Want: 5}
	}

	sorted := make([]deck.Rank, 5)
	counts := make(map[deck.Rank]int, 5)
	var suitSeen [4]bool
	distinctSuits := 0

	for i, card := range cards {
		sorted[i] = card.Rank
		counts[card.Rank]++
		if !suitSeen[card.Suit] {
			suitSeen[card.Suit] = true
			distinctSuits++
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	isFlush := distinctSuits == 1
	straightHigh := straightHighCard(sorted, len(counts))

	if straightHigh != 0 && isFlush {
		if straightHigh == deck.Ace {
			return HandScore{Category: RoyalFlush, Tiebreaks: [5]deck.Rank{deck.Ace}}, nil
		}
		return HandScore{Category: StraightFlush, Tiebreaks: [5]deck.Rank{straightHigh}}, nil
	}

	// Group ranks by multiplicity, biggest group first, higher rank breaking
	// ties. Flattening the groups yields the tie-break tuple for every
	// non-straight category.
	groups := make([]rankGroup, 0, 5)
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	var tiebreaks [5]deck.Rank
	for i, g := range groups {
		tiebreaks[i] = g.rank
	}

	var category Category
	switch {
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case isFlush:
		category = Flush
		tiebreaks = [5]deck.Rank{sorted[0], sorted[1], sorted[2], sorted[3], sorted[4]}
	case straightHigh != 0:
		category = Straight
		tiebreaks = [5]deck.Rank{straightHigh}
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
		tiebreaks = [5]deck.Rank{sorted[0], sorted[1], sorted[2], sorted[3], sorted[4]}
	}

	return HandScore{Category: category, Tiebreaks: tiebreaks}, nil
}

// straightHighCard returns the high card of the straight formed by the sorted
// (descending) ranks, or 0 when there is none. The wheel A-5-4-3-2 counts as a
// 5-high straight.
func straightHighCard(sorted []deck.Rank, distinct int) deck.Rank {
	if distinct != 5 {
		return 0
	}
	if sorted[0]-sorted[4] == 4 {
		return sorted[0]
	}
	if sorted[0] == deck.Ace && sorted[1] == deck.Five && sorted[4] == deck.Two &&
		sorted[1]-sorted[4] == 3 {
		return deck.Five
	}
	return 0
}

// BestFiveOfSeven enumerates every 5-card subset of the given cards (21 for a
// full 7-card hand) and returns the first maximal subset with its score.
// Which of several score-tied subsets is returned is unspecified.
func BestFiveOfSeven(cards []deck.Card) ([]deck.Card, HandScore, error) {
	if len(cards) < 5 {
		return nil, HandScore{}, &InvalidHandSizeError{Got: len(cards), Want: 5}
	}

	var (
		best      []deck.Card
		bestScore HandScore
		found     bool
		subset    = make([]deck.Card, 5)
	)

	idx := []int{0, 1, 2, 3, 4}
	n := len(cards)
	for {
		for i, j := range idx {
			subset[i] = cards[j]
		}
		score, err := Evaluate(subset)
		if err != nil {
			return nil, HandScore{}, err
		}
		if !found || score.Beats(bestScore) {
			bestScore = score
			best = append(best[:0], subset...)
			found = true
		}

		// Advance to the next combination in lexicographic order.
		i := 4
		for i >= 0 && idx[i] == n-5+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < 5; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return best, bestScore, nil
}
