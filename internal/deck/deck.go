package deck

import rand "math/rand/v2"

// All returns the 52 cards of a standard deck in a fixed order.
func All() []Card {
	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Unseen returns the deck minus every card in the given groups.
func Unseen(known ...[]Card) []Card {
	used := NewCardSet(known...)

	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			if !used.Contains(card) {
				cards = append(cards, card)
			}
		}
	}
	return cards
}

// Sample draws n distinct cards from pool uniformly at random using a partial
// Fisher-Yates shuffle. The pool is reordered in place; the drawn cards occupy
// pool[:n] and are returned as a subslice.
func Sample(pool []Card, n int, rng *rand.Rand) []Card {
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// DealRandom deals n random cards from the deck minus the excluded groups.
// Used to give simulated opponents their hole cards.
func DealRandom(n int, rng *rand.Rand, excluded ...[]Card) []Card {
	pool := Unseen(excluded...)
	dealt := Sample(pool, n, rng)

	out := make([]Card, len(dealt))
	copy(out, dealt)
	return out
}
