// Package session owns the mutable state of a step-by-step analysis: the
// hero's hole cards, the dealt opponent hands and the board as it accumulates
// across streets. The engine packages stay stateless; this is the caller that
// threads card sets through them and enforces global card uniqueness.
package session

import (
	"fmt"

	rand "math/rand/v2"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
)

// Session tracks one hero hand against dealt random opponents through the
// streets of a single deal.
type Session struct {
	Hero      []deck.Card
	Opponents [][]deck.Card
	Board     []deck.Card

	rng    *rand.Rand
	trials int
}

// StageReport is the analysis of the current street: multiway equities for
// every seated player and a recommendation for each.
type StageReport struct {
	Stage           advisor.Stage
	Board           []deck.Card
	Equity          equity.Result
	Recommendations []advisor.Recommendation
}

// New starts a session for the given hero hole cards and deals the requested
// number of random opponent hands (1 or 2) from the unseen pool.
func New(hero []deck.Card, opponents int, rng *rand.Rand) (*Session, error) {
	if len(hero) != 2 {
		return nil, fmt.Errorf("hero must have exactly 2 hole cards, got %d", len(hero))
	}
	if err := checkNoDuplicates(hero); err != nil {
		return nil, err
	}
	if opponents < 1 || opponents > 2 {
		return nil, fmt.Errorf("session supports 1 or 2 opponents, got %d", opponents)
	}

	s := &Session{
		Hero:   hero,
		rng:    rng,
		trials: equity.DefaultMultiwayTrials,
	}

	dealt := [][]deck.Card{hero}
	for i := 0; i < opponents; i++ {
		hand := deck.DealRandom(2, rng, dealt...)
		s.Opponents = append(s.Opponents, hand)
		dealt = append(dealt, hand)
	}

	return s, nil
}

// AddBoard appends street cards to the board, rejecting duplicates of any
// known card and boards longer than five cards.
func (s *Session) AddBoard(cards []deck.Card) error {
	if len(s.Board)+len(cards) > 5 {
		return fmt.Errorf("board cannot exceed 5 cards")
	}

	known := deck.NewCardSet(append([][]deck.Card{s.Hero, s.Board}, s.Opponents...)...)
	for _, card := range cards {
		if known.Contains(card) {
			return fmt.Errorf("duplicate card: %s", card)
		}
		known.Add(card)
	}

	s.Board = append(s.Board, cards...)
	return nil
}

// Stage returns the current betting stage.
func (s *Session) Stage() advisor.Stage {
	return advisor.StageForBoard(s.Board)
}

// Analyze computes the stage report for the current board: multiway win/tie
// percentages across all seated players plus a per-player recommendation.
func (s *Session) Analyze() (StageReport, error) {
	hands := append([][]deck.Card{s.Hero}, s.Opponents...)

	result, err := equity.EstimateMultiway(hands, s.Board, s.trials, s.rng)
	if err != nil {
		return StageReport{}, err
	}

	recs := make([]advisor.Recommendation, len(hands))
	for i, hand := range hands {
		recs[i] = advisor.Recommend(hand, s.Board, s.rng)
	}

	board := make([]deck.Card, len(s.Board))
	copy(board, s.Board)

	return StageReport{
		Stage:           s.Stage(),
		Board:           board,
		Equity:          result,
		Recommendations: recs,
	}, nil
}

// CheckDisjoint verifies that no card appears twice across the given groups.
// Exposed for callers validating user-entered hands before invoking the
// engine, which does not police duplicates itself.
func CheckDisjoint(groups ...[]deck.Card) error {
	var all []deck.Card
	for _, g := range groups {
		all = append(all, g...)
	}
	return checkNoDuplicates(all)
}

func checkNoDuplicates(cards []deck.Card) error {
	var seen deck.CardSet
	for _, card := range cards {
		if seen.Contains(card) {
			return fmt.Errorf("duplicate card: %s", card)
		}
		seen.Add(card)
	}
	return nil
}
