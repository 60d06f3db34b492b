package equity

import (
	"math"
	"testing"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/randutil"
)

func TestEstimateStrengthGuaranteedWinner(t *testing.T) {
	// Hero holds the royal flush on a complete board. No opponent hand can
	// beat or tie it better, and ties count as wins anyway.
	hole := deck.MustParseCards("AhKh")
	board := deck.MustParseCards("QhJhTh2c7d")

	strength := EstimateStrength(hole, board, DefaultStrengthTrials, randutil.New(1))
	if strength != 100.0 {
		t.Errorf("strength = %v, want exactly 100.0", strength)
	}
}

func TestEstimateStrengthInvalidInput(t *testing.T) {
	rng := randutil.New(1)
	tests := []struct {
		name  string
		hole  string
		board string
	}{
		{"no hole cards", "", ""},
		{"one hole card", "Ah", ""},
		{"three hole cards", "AhKhQh", ""},
		{"oversized board", "AhKh", "2c3c4c5c6c7c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateStrength(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.board), 100, rng)
			if got != 0.0 {
				t.Errorf("strength = %v, want 0.0", got)
			}
		})
	}
}

func TestEstimateStrengthRange(t *testing.T) {
	rng := randutil.New(7)
	hands := []string{"AsAd", "AhKh", "7c2d", "9s8s"}

	for _, hand := range hands {
		strength := EstimateStrength(deck.MustParseCards(hand), nil, DefaultStrengthTrials, rng)
		if strength < 0.0 || strength > 100.0 {
			t.Errorf("strength(%s) = %v, out of [0,100]", hand, strength)
		}
	}
}

func TestEstimateStrengthOrdersHands(t *testing.T) {
	// Pocket aces preflop must grade far above seven-deuce offsuit. Seeded so
	// the comparison is stable run to run.
	aces := EstimateStrength(deck.MustParseCards("AsAd"), nil, DefaultStrengthTrials, randutil.New(3))
	trash := EstimateStrength(deck.MustParseCards("7c2d"), nil, DefaultStrengthTrials, randutil.New(3))

	if aces <= trash {
		t.Errorf("aces %.1f should outgrade seven-deuce %.1f", aces, trash)
	}
	if aces < 70 {
		t.Errorf("aces strength = %.1f, expected premium territory", aces)
	}
}

func TestEstimateStrengthDeterministicWithSeed(t *testing.T) {
	hole := deck.MustParseCards("AhKd")
	board := deck.MustParseCards("Td7s8h")

	a := EstimateStrength(hole, board, DefaultStrengthTrials, randutil.New(42))
	b := EstimateStrength(hole, board, DefaultStrengthTrials, randutil.New(42))
	if a != b {
		t.Errorf("same seed gave %v then %v", a, b)
	}
}

func TestEstimateMultiwayValidation(t *testing.T) {
	rng := randutil.New(1)
	hand := func(s string) []deck.Card { return deck.MustParseCards(s) }

	tests := []struct {
		name  string
		hands [][]deck.Card
		board []deck.Card
	}{
		{"one hand", [][]deck.Card{hand("AhKd")}, nil},
		{"four hands", [][]deck.Card{hand("AhKd"), hand("2c2d"), hand("9s8s"), hand("JcJd")}, nil},
		{"short hand", [][]deck.Card{hand("Ah"), hand("2c2d")}, nil},
		{"oversized board", [][]deck.Card{hand("AhKd"), hand("2c2d")}, hand("3h4h5h6h7h8h")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EstimateMultiway(tt.hands, tt.board, 100, rng); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEstimateMultiwayDefaultTrials(t *testing.T) {
	hands := [][]deck.Card{
		deck.MustParseCards("AhKd"),
		deck.MustParseCards("2c2d"),
	}

	result, err := EstimateMultiway(hands, nil, 0, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if result.Trials != DefaultMultiwayTrials {
		t.Errorf("trials = %d, want %d", result.Trials, DefaultMultiwayTrials)
	}
}

func TestEstimateMultiwayCompleteBoard(t *testing.T) {
	// The board is complete so every trial replays the same showdown. Hand 1
	// has a flush, hand 2 trips: hand 1 wins 100% deterministically.
	hands := [][]deck.Card{
		deck.MustParseCards("AsKs"),
		deck.MustParseCards("TdTc"),
	}
	board := deck.MustParseCards("Qs7s2sTh4d")

	result, err := EstimateMultiway(hands, board, 100, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if result.WinPct[0] != 100.0 {
		t.Errorf("flush win = %v, want 100.0", result.WinPct[0])
	}
	if result.WinPct[1] != 0.0 {
		t.Errorf("trips win = %v, want 0.0", result.WinPct[1])
	}
	if result.TiePct != 0.0 {
		t.Errorf("ties = %v, want 0.0", result.TiePct)
	}
}

func TestEstimateMultiwayCompleteBoardTie(t *testing.T) {
	// Both players play the board's broadway straight; every trial ties.
	hands := [][]deck.Card{
		deck.MustParseCards("2h3d"),
		deck.MustParseCards("4c5s"),
	}
	board := deck.MustParseCards("AhKdQcJsTh")

	result, err := EstimateMultiway(hands, board, 100, randutil.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if result.TiePct != 100.0 {
		t.Errorf("ties = %v, want 100.0", result.TiePct)
	}
	if result.WinPct[0] != 0.0 || result.WinPct[1] != 0.0 {
		t.Errorf("wins = %v, want all zero", result.WinPct)
	}
}

func TestEstimateMultiwayPercentagesSum(t *testing.T) {
	hands := [][]deck.Card{
		deck.MustParseCards("AhKd"),
		deck.MustParseCards("2c2d"),
		deck.MustParseCards("9s8s"),
	}

	for _, trials := range []int{200, 2000} {
		result, err := EstimateMultiway(hands, nil, trials, randutil.New(5))
		if err != nil {
			t.Fatal(err)
		}

		total := result.TiePct
		for _, w := range result.WinPct {
			total += w
		}
		if math.Abs(total-100.0) > 1e-9 {
			t.Errorf("trials=%d: percentages sum to %v, want 100", trials, total)
		}
		if len(result.WinPct) != 3 {
			t.Errorf("trials=%d: got %d win slots, want 3", trials, len(result.WinPct))
		}
	}
}

func TestEstimateMultiwayParallelMatchesDistribution(t *testing.T) {
	// Above the parallel threshold the result splits across workers. The
	// estimates should still land near the sequential ones for a lopsided
	// matchup: aces against seven-deuce win well over half the time.
	hands := [][]deck.Card{
		deck.MustParseCards("AsAd"),
		deck.MustParseCards("7c2h"),
	}

	result, err := EstimateMultiway(hands, nil, 4000, randutil.New(9))
	if err != nil {
		t.Fatal(err)
	}
	if result.WinPct[0] < 70.0 {
		t.Errorf("aces win = %.1f%%, expected dominant", result.WinPct[0])
	}
	if result.WinPct[1] > 25.0 {
		t.Errorf("seven-deuce win = %.1f%%, expected dominated", result.WinPct[1])
	}
}
