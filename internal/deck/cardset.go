package deck

// CardSet represents a set of cards using a bitset for fast membership checks.
// Each card maps to a bit: index = (rank-2)*4 + suit.
type CardSet uint64

func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from slices of cards
func NewCardSet(groups ...[]Card) CardSet {
	var cs CardSet
	for _, cards := range groups {
		for _, card := range cards {
			cs.Add(card)
		}
	}
	return cs
}
