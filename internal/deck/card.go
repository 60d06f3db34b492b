// Package deck provides card values, parsing and unseen-pool helpers for
// Texas Hold'em analysis. Cards are immutable values; a standard deck is the
// set of all 52 (rank, suit) combinations.
package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the single-letter suit symbol used in card tokens
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14) except in the wheel straight.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank symbol
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token for the card (e.g. "AH")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseError reports a malformed card token.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

// ParseCard parses a two-character card token (rank then suit,
// case-insensitive), e.g. "AH", "td", "9s".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &ParseError{Token: token, Reason: "token must be exactly 2 characters"}
	}

	rank, ok := parseRank(token[0])
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", token[0])}
	}

	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit %q", token[1])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of card tokens such as "AhKdQs". Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	stripped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			stripped = append(stripped, s[i])
		}
	}

	if len(stripped)%2 != 0 {
		return nil, &ParseError{Token: s, Reason: "odd number of characters"}
	}

	cards := make([]Card, 0, len(stripped)/2)
	for i := 0; i < len(stripped); i += 2 {
		card, err := ParseCard(string(stripped[i : i+2]))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'H', 'h':
		return Hearts, true
	case 'D', 'd':
		return Diamonds, true
	case 'C', 'c':
		return Clubs, true
	case 'S', 's':
		return Spades, true
	default:
		return 0, false
	}
}
