package main

import (
	"fmt"
	"os"
	"strings"

	rand "math/rand/v2"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/deck"
	"github.com/lox/holdem-advisor/internal/equity"
	"github.com/lox/holdem-advisor/internal/evaluator"
	"github.com/lox/holdem-advisor/internal/randutil"
	"github.com/lox/holdem-advisor/internal/server"
	"github.com/lox/holdem-advisor/internal/session"
	"github.com/lox/holdem-advisor/internal/tui"
)

type CLI struct {
	Seed    *int64 `help:"Random seed for reproducible results"`
	Verbose bool   `short:"v" help:"Verbose logging"`

	Odds    OddsCmd    `cmd:"" help:"Estimate win/tie percentages for 2-3 known hands"`
	Advise  AdviseCmd  `cmd:"" help:"Recommend an action for hole cards on a board"`
	Analyze AnalyzeCmd `cmd:"" help:"Interactive step-by-step hand analyzer"`
	Serve   ServeCmd   `cmd:"" help:"Run the WebSocket analysis service"`
}

type OddsCmd struct {
	Hands  []string `arg:"" required:"" help:"Player hands, e.g. 'AhKd' '7s7c'"`
	Board  string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Trials int      `short:"t" default:"3000" help:"Number of Monte Carlo trials"`
}

type AdviseCmd struct {
	Hole  string `arg:"" help:"Your 2 hole cards, e.g. 'AhKd'"`
	Board string `short:"b" help:"Community board cards"`
}

type AnalyzeCmd struct{}

type ServeCmd struct {
	Config string `short:"c" default:"holdem-advisor.hcl" help:"Path to HCL configuration file"`
	Addr   string `short:"a" help:"Address to bind to (overrides config)"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	actionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-advisor"),
		kong.Description("Texas Hold'em equity estimation and action advice"))

	rng := randutil.NewFromTime()
	if cli.Seed != nil {
		rng = randutil.New(*cli.Seed)
	}

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var err error
	switch ctx.Command() {
	case "odds <hands>":
		err = cli.Odds.Run(rng)
	case "advise <hole>":
		err = cli.Advise.Run(rng)
	case "analyze":
		err = tui.Run(rng)
	case "serve":
		err = cli.Serve.Run(cli.Seed)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

func (c *OddsCmd) Run(rng *rand.Rand) error {
	hands := make([][]deck.Card, 0, len(c.Hands))
	for i, handStr := range c.Hands {
		hand, err := deck.ParseCards(handStr)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}

	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(board) > 5 {
		return fmt.Errorf("board cannot have more than 5 cards")
	}

	if err := session.CheckDisjoint(append(hands, board)...); err != nil {
		return err
	}

	result, err := equity.EstimateMultiway(hands, board, c.Trials, rng)
	if err != nil {
		return err
	}

	if len(board) > 0 {
		fmt.Printf("%s %s\n", headerStyle.Render("Board:"), formatCards(board))
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("Equity over %d trials:", result.Trials)))
	for i, hand := range hands {
		line := fmt.Sprintf("  %s  %s", handStyle.Render(formatCards(hand)),
			winStyle.Render(fmt.Sprintf("%5.1f%% win", result.WinPct[i])))
		if len(board) == 5 {
			_, score, _ := evaluator.BestFiveOfSeven(append(append([]deck.Card{}, hand...), board...))
			line += "  " + score.String()
		}
		fmt.Println(line)
	}
	fmt.Printf("  %s\n", tieStyle.Render(fmt.Sprintf("%5.1f%% ties", result.TiePct)))
	return nil
}

func (c *AdviseCmd) Run(rng *rand.Rand) error {
	hole, err := deck.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hole must contain exactly 2 cards, got %d", len(hole))
	}

	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := session.CheckDisjoint(hole, board); err != nil {
		return err
	}

	rec := advisor.Recommend(hole, board, rng)
	stage := advisor.StageForBoard(board)

	fmt.Printf("%s %s", headerStyle.Render("Hand:"), formatCards(hole))
	if len(board) > 0 {
		fmt.Printf("   %s %s", headerStyle.Render("Board:"), formatCards(board))
	}
	fmt.Printf("   (%s)\n", stage)
	fmt.Printf("%s (%d%% confidence)\n", actionStyle.Render(rec.Action.String()), rec.Confidence)
	fmt.Printf("Strength %.1f%% - %s\n", rec.HandStrength, rec.Rationale)
	return nil
}

func (c *ServeCmd) Run(seed *int64) error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		host, port, ok := strings.Cut(c.Addr, ":")
		if !ok {
			return fmt.Errorf("addr must be host:port, got %q", c.Addr)
		}
		cfg.Server.Address = host
		if _, err := fmt.Sscanf(port, "%d", &cfg.Server.Port); err != nil {
			return fmt.Errorf("invalid port %q", port)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parseLogLevel(cfg.Server.LogLevel),
	})

	var seedValue int64
	if seed != nil {
		seedValue = *seed
	}
	srv := server.NewServer(cfg.Server, seedValue, logger)
	return srv.Start()
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func formatCards(cards []deck.Card) string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.String()
	}
	return strings.Join(tokens, " ")
}
