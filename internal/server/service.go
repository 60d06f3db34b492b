package server

import (
	"fmt"

	rand "math/rand/v2"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
	"github.com/lox/holdem-advisor/internal/evaluator"
	"github.com/lox/holdem-advisor/internal/session"
)

// AnalysisService dispatches requests to the engine packages. It holds only
// configuration; every call is independent and takes an explicit random
// source so connections cannot contend on shared RNG state.
type AnalysisService struct {
	settings Settings
}

// NewAnalysisService creates a service with the given settings
func NewAnalysisService(settings Settings) *AnalysisService {
	return &AnalysisService{settings: settings}
}

// Evaluate finds the best 5-card hand from the submitted cards
func (s *AnalysisService) Evaluate(req EvaluateData) (*EvaluateResultData, error) {
	cards, err := deck.ParseCards(req.Cards)
	if err != nil {
		return nil, err
	}
	if err := session.CheckDisjoint(cards); err != nil {
		return nil, err
	}

	best, score, err := evaluator.BestFiveOfSeven(cards)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, len(best))
	for i, card := range best {
		tokens[i] = card.String()
	}

	return &EvaluateResultData{
		Best:     tokens,
		Category: score.Category.String(),
	}, nil
}

// Odds estimates multiway win/tie percentages for 2 or 3 hands
func (s *AnalysisService) Odds(req OddsData, rng *rand.Rand) (*OddsResultData, error) {
	hands := make([][]deck.Card, 0, len(req.Hands))
	for i, handStr := range req.Hands {
		hand, err := deck.ParseCards(handStr)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, hand)
	}

	board, err := deck.ParseCards(req.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	if err := session.CheckDisjoint(append(hands, board)...); err != nil {
		return nil, err
	}

	trials := req.Trials
	if trials <= 0 {
		trials = s.settings.EquityTrials
	}

	result, err := equity.EstimateMultiway(hands, board, trials, rng)
	if err != nil {
		return nil, err
	}

	return &OddsResultData{
		WinPct: result.WinPct,
		TiePct: result.TiePct,
		Trials: result.Trials,
	}, nil
}

// Advise produces an action recommendation for the hole cards on the board
func (s *AnalysisService) Advise(req AdviseData, rng *rand.Rand) (*AdviseResultData, error) {
	hole, err := deck.ParseCards(req.Hole)
	if err != nil {
		return nil, fmt.Errorf("hole: %w", err)
	}
	if len(hole) != 2 {
		return nil, fmt.Errorf("hole must contain exactly 2 cards, got %d", len(hole))
	}

	board, err := deck.ParseCards(req.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	if err := session.CheckDisjoint(hole, board); err != nil {
		return nil, err
	}

	strength := equity.EstimateStrength(hole, board, s.settings.StrengthTrials, rng)
	rec := advisor.RecommendWithStrength(strength, advisor.ClassifyTexture(board), advisor.StageForBoard(board))

	return &AdviseResultData{
		Action:     rec.Action.String(),
		Confidence: rec.Confidence,
		Rationale:  rec.Rationale,
		Strength:   rec.HandStrength,
	}, nil
}
