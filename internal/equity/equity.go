// Package equity estimates win probabilities by Monte Carlo simulation over
// the unseen cards. Both estimators are pure given an explicit random source;
// trials within one call are independent and are parallelized for larger
// trial counts.
package equity

import (
	"fmt"
	"runtime"

	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/evaluator"
	"github.com/lox/holdem-advisor/internal/randutil"
)

const (
	// minStrengthTrials is the floor applied to the heads-up trial count.
	minStrengthTrials = 50

	// DefaultStrengthTrials is the heads-up trial hint used by the advisor.
	DefaultStrengthTrials = 300

	// DefaultMultiwayTrials is the default trial count for multiway equity.
	DefaultMultiwayTrials = 3000

	// parallelThreshold is the trial count above which multiway estimation
	// splits trials across workers.
	parallelThreshold = 500
)

// Result holds per-player win percentages and the tie percentage from a
// multiway estimation. WinPct[i] corresponds to hands[i] as passed in. The
// percentages sum to ~100 within simulation noise, and to exactly 100 when
// the board was already complete.
type Result struct {
	WinPct []float64
	TiePct float64
	Trials int
}

// EstimateStrength estimates the probability that the hole cards beat one
// uniform-random unknown opponent hand over random board completions,
// returned as a percentage in [0,100].
//
// Ties count as wins. This deliberately inflates the number versus true
// equity; the advisor thresholds are tuned against this exact metric.
//
// The trial count is min(trialsHint, max(50, unseen/2)). When fewer than two
// unseen cards remain there is no opponent hand to sample and the hand cannot
// be beaten, so 100.0 is returned immediately.
func EstimateStrength(hole, board []deck.Card, trialsHint int, rng *rand.Rand) float64 {
	if len(hole) != 2 || len(board) > 5 {
		return 0.0
	}

	pool := deck.Unseen(hole, board)
	if len(pool) < 2 {
		return 100.0
	}

	trials := max(minStrengthTrials, len(pool)/2)
	if trialsHint < trials {
		trials = trialsHint
	}
	if trials <= 0 {
		trials = minStrengthTrials
	}

	boardNeeded := 5 - len(board)
	draw := 2 + boardNeeded

	hero := make([]deck.Card, 0, 7)
	opp := make([]deck.Card, 0, 7)

	wins := 0
	for i := 0; i < trials; i++ {
		sampled := deck.Sample(pool, draw, rng)
		oppHole, runout := sampled[:2], sampled[2:]

		hero = append(hero[:0], hole...)
		hero = append(hero, board...)
		hero = append(hero, runout...)

		opp = append(opp[:0], oppHole...)
		opp = append(opp, board...)
		opp = append(opp, runout...)

		_, heroScore, err := evaluator.BestFiveOfSeven(hero)
		if err != nil {
			continue
		}
		_, oppScore, err := evaluator.BestFiveOfSeven(opp)
		if err != nil {
			continue
		}

		if heroScore.Compare(oppScore) >= 0 {
			wins++
		}
	}

	return float64(wins) / float64(trials) * 100.0
}

// EstimateMultiway estimates win and tie percentages for 2 or 3 known hands
// over random completions of the board. A trial is a tie when more than one
// player attains the maximum score; otherwise the unique maximal player is
// credited with the win.
func EstimateMultiway(hands [][]deck.Card, board []deck.Card, trials int, rng *rand.Rand) (Result, error) {
	if len(hands) < 2 || len(hands) > 3 {
		return Result{}, fmt.Errorf("multiway equity requires 2 or 3 hands, got %d", len(hands))
	}
	for i, hand := range hands {
		if len(hand) != 2 {
			return Result{}, fmt.Errorf("hand %d: %w", i+1, &evaluator.InvalidHandSizeError{Got: len(hand), Want: 2})
		}
	}
	if len(board) > 5 {
		return Result{}, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}
	if trials <= 0 {
		trials = DefaultMultiwayTrials
	}

	known := make([][]deck.Card, 0, len(hands)+1)
	known = append(known, hands...)
	known = append(known, board)
	pool := deck.Unseen(known...)

	var wins []int
	var ties int
	if trials >= parallelThreshold {
		wins, ties = runTrialsParallel(hands, board, pool, trials, rng)
	} else {
		wins, ties = runTrials(hands, board, pool, trials, rng)
	}

	result := Result{
		WinPct: make([]float64, len(hands)),
		TiePct: float64(ties) / float64(trials) * 100.0,
		Trials: trials,
	}
	for i, w := range wins {
		result.WinPct[i] = float64(w) / float64(trials) * 100.0
	}
	return result, nil
}

// runTrials runs the sequential Monte Carlo loop over its own copy of the
// unseen pool and returns per-player win counts plus the tie count.
func runTrials(hands [][]deck.Card, board []deck.Card, pool []deck.Card, trials int, rng *rand.Rand) ([]int, int) {
	localPool := make([]deck.Card, len(pool))
	copy(localPool, pool)

	boardNeeded := 5 - len(board)
	wins := make([]int, len(hands))
	ties := 0

	seven := make([]deck.Card, 0, 7)
	scores := make([]evaluator.HandScore, len(hands))

	for i := 0; i < trials; i++ {
		runout := deck.Sample(localPool, boardNeeded, rng)

		for p, hand := range hands {
			seven = append(seven[:0], hand...)
			seven = append(seven, board...)
			seven = append(seven, runout...)
			_, scores[p], _ = evaluator.BestFiveOfSeven(seven)
		}

		best := 0
		tied := false
		for p := 1; p < len(scores); p++ {
			switch scores[p].Compare(scores[best]) {
			case 1:
				best = p
				tied = false
			case 0:
				tied = true
			}
		}

		if tied {
			ties++
		} else {
			wins[best]++
		}
	}

	return wins, ties
}

// runTrialsParallel splits the trials across workers with independently
// derived RNG streams and sums the per-worker counters.
func runTrialsParallel(hands [][]deck.Card, board []deck.Card, pool []deck.Card, trials int, rng *rand.Rand) ([]int, int) {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > trials {
		workers = trials
	}

	type counters struct {
		wins []int
		ties int
	}

	var g errgroup.Group
	results := make([]counters, workers)

	perWorker := trials / workers
	remainder := trials % workers

	for w := 0; w < workers; w++ {
		workerTrials := perWorker
		if w < remainder {
			workerTrials++
		}
		workerSeed := rng.Int64()
		slot := w

		g.Go(func() error {
			workerRng := randutil.New(workerSeed)
			wins, ties := runTrials(hands, board, pool, workerTrials, workerRng)
			results[slot] = counters{wins: wins, ties: ties}
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	wins := make([]int, len(hands))
	ties := 0
	for _, r := range results {
		for i, w := range r.wins {
			wins[i] += w
		}
		ties += r.ties
	}
	return wins, ties
}
