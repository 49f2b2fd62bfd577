package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode     string
	addr     string
	color    string
	opponent string
	depth    int
	budget   time.Duration
	seed     uint64
	setup    string
	out      string
	blackURL string
	whiteURL string
	hook     string
	logLevel string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play, serve, referee or arena")
	flag.StringVar(&cfg.addr, "addr", ":"+meta.AgentPort, "listen address of the agent server")
	flag.StringVar(&cfg.color, "color", "black", "color of the minimax agent")
	flag.StringVar(&cfg.opponent, "opponent", "random", "opponent in play mode: random or minimax")
	flag.IntVar(&cfg.depth, "depth", meta.InitialDepth, "initial search depth")
	flag.DurationVar(&cfg.budget, "budget", meta.TimeBudget, "time budget per move")
	flag.Uint64Var(&cfg.seed, "seed", 1, "seed of the random opponent")
	flag.StringVar(&cfg.setup, "setup", "", "arena setup file (yaml)")
	flag.StringVar(&cfg.out, "out", "results", "arena results directory")
	flag.StringVar(&cfg.blackURL, "black-url", "", "agent server playing black in referee mode")
	flag.StringVar(&cfg.whiteURL, "white-url", "", "agent server playing white in referee mode")
	flag.StringVar(&cfg.hook, "hook", "", "url receiving every update in referee mode")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", cfg.logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func run(cfg config) error {
	switch cfg.mode {
	case "play":
		return play(cfg)
	case "serve":
		color, err := parseColor(cfg.color)
		if err != nil {
			return err
		}
		return agent.StartAgentServer(cfg.addr, func() agent.Agent { return newMinimaxAgent(cfg, color) }, game.DefaultEncoding)
	case "referee":
		return referee(cfg)
	case "arena":
		return arena(cfg)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}

func play(cfg config) error {
	color, err := parseColor(cfg.color)
	if err != nil {
		return err
	}
	me := newMinimaxAgent(cfg, color)

	var opponent agent.Agent
	switch cfg.opponent {
	case "random":
		opponent = agent.NewRandomAgent(color.Opponent(), cfg.seed)
	case "minimax":
		opponent = newMinimaxAgent(cfg, color.Opponent())
	default:
		return fmt.Errorf("unknown opponent %q", cfg.opponent)
	}

	black, white := agent.Agent(me), opponent
	if color == game.White {
		black, white = white, black
	}

	e := engine.NewLocalEngine(black, white)
	e.OnUpdate = newBoardRenderer(os.Stdout).Render
	winner, gameMetric, _ := e.Run()
	fmt.Printf("winner: %s (black %d, white %d) in %s\n", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs, gameMetric.Duration)
	return nil
}

func referee(cfg config) error {
	if cfg.blackURL == "" || cfg.whiteURL == "" {
		return fmt.Errorf("referee mode needs -black-url and -white-url")
	}
	e := engine.NewRemoteEngine(cfg.blackURL, cfg.whiteURL, game.DefaultEncoding, cfg.budget+time.Second)
	render := newBoardRenderer(os.Stdout).Render
	e.OnUpdate = render
	if cfg.hook != "" {
		push := engine.VisualHook(cfg.hook, game.DefaultEncoding)
		e.OnUpdate = func(u gamemaster.Update) {
			render(u)
			push(u)
		}
	}
	winner, gameMetric, _ := e.Run()
	fmt.Printf("winner: %s (black %d, white %d)\n", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	return nil
}

func arena(cfg config) error {
	if cfg.setup == "" {
		return fmt.Errorf("arena mode needs -setup")
	}
	setup, err := experiments.LoadSetup(cfg.setup)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	dir, err := experiments.RunAndStore(ctx, setup, cfg.out)
	if err != nil {
		return err
	}
	log.Info().Msgf("results stored in %s", dir)
	return nil
}

func newMinimaxAgent(cfg config, color game.Color) *agent.MinimaxAgent {
	return agent.NewMinimaxAgent(color,
		agent.WithDepth(cfg.depth),
		agent.WithBudget(cfg.budget),
		agent.WithSearchOptions(searcher.WithMetrics()),
	)
}

func parseColor(s string) (game.Color, error) {
	switch s {
	case "black", "b":
		return game.Black, nil
	case "white", "w":
		return game.White, nil
	}
	return game.Empty, fmt.Errorf("unknown color %q", s)
}
