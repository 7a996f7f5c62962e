package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reversi/config"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/metrics"
	"reversi/player"
	"reversi/ui"
	"reversi/view"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	flagConfig     = flag.String("config", "", "Config file (default: reversi/config.yaml in the XDG config dirs)")
	flagTopology   = flag.String("topology", "", "Board topology (hexagon or square)")
	flagSize       = flag.Int("size", 0, "Board side length")
	flagPlayer1    = flag.String("p1", "", "Player 1 type")
	flagPlayer2    = flag.String("p2", "", "Player 2 type")
	flagDepth      = flag.Int("depth", 0, "Minimax search depth")
	flagOpponent   = flag.String("opponent", "", "Opponent model of minimax players")
	flagTimeout    = flag.Duration("timeout", 0, "Minimax time budget per move")
	flagSeed       = flag.Uint64("seed", 0, "Seed of random players (0 picks one)")
	flagGames      = flag.Int("games", 1, "Number of computer-only games to play")
	flagTUI        = flag.Bool("tui", false, "Show the terminal UI even for computer-only games")
	flagLogLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagLogFile    = flag.String("log-file", "", "Log file used while the terminal UI is open")
	flagMetricsDir = flag.String("metrics-dir", "", "Directory for per-game CSV metrics")
	flagSave       = flag.Bool("save-config", false, "Write the resulting config to the XDG config dir and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *flagSave {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	players, err := newPlayers(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	topology, _ := game.TopologyByName(cfg.Topology)
	p1, p2, empty := cfg.Symbols.Runes()
	symbols := view.Symbols{Player1: p1, Player2: p2, Empty: empty}

	if *flagTUI || players[0].IsHuman() || players[1].IsHuman() {
		closeLog, err := setupLogging(cfg.LogLevel, *flagLogFile, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer closeLog()
		if err := ui.Run(game.NewEngine(topology), cfg.SideLength, players, symbols); err != nil {
			log.Error().Err(err).Msg("Terminal UI failed")
			os.Exit(1)
		}
		return
	}

	closeLog, err := setupLogging(cfg.LogLevel, *flagLogFile, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := runGames(ctx, cfg, topology, players, symbols); err != nil {
		log.Error().Err(err).Msg("Game failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *flagConfig != "" {
		cfg, err = config.LoadFile(*flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// Only flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "topology":
			cfg.Topology = *flagTopology
		case "size":
			cfg.SideLength = *flagSize
		case "p1":
			cfg.Players[0] = *flagPlayer1
		case "p2":
			cfg.Players[1] = *flagPlayer2
		case "depth":
			cfg.Search.Depth = *flagDepth
		case "opponent":
			cfg.Search.Opponent = *flagOpponent
		case "timeout":
			cfg.Search.Timeout = *flagTimeout
		case "seed":
			cfg.Seed = *flagSeed
		case "log-level":
			cfg.LogLevel = *flagLogLevel
		case "metrics-dir":
			cfg.MetricsDir = *flagMetricsDir
		}
	})
	return cfg, cfg.Validate()
}

func newPlayers(cfg *config.Config) ([game.NumPlayers]*player.Player, error) {
	var players [game.NumPlayers]*player.Player
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	for i, kind := range cfg.Players {
		opts := cfg.PlayerOptions()
		// Two random players must not mirror each other
		opts.Seed = seed + uint64(i)
		p, err := player.New(kind, game.Player(i+1), opts)
		if err != nil {
			return players, err
		}
		players[i] = p
	}
	return players, nil
}

// setupLogging points the global logger at the console, or at a file (or
// nowhere) while the terminal UI owns the screen.
func setupLogging(level, file string, tui bool) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)

	if file == "" {
		if tui {
			log.Logger = zerolog.New(io.Discard)
		} else {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

func runGames(ctx context.Context, cfg *config.Config, topology game.Topology, players [game.NumPlayers]*player.Player, symbols view.Symbols) error {
	wins := map[game.Player]int{}
	for i := 0; i < *flagGames; i++ {
		engine := game.NewEngine(topology)
		if err := engine.StartGame(cfg.SideLength, game.NumPlayers); err != nil {
			return err
		}
		text := view.NewText(engine, view.WithSymbols(symbols))
		fmt.Print(text)

		local := gamemaster.NewLocal(engine, players,
			gamemaster.WithMaxTurns(cfg.MaxTurns),
			gamemaster.WithUpdates(func(u gamemaster.Update) {
				if u.Move == nil {
					fmt.Printf("\n%v passes\n", u.Player)
				} else {
					fmt.Printf("\n%v plays %v\n", u.Player, u.Move)
				}
				fmt.Print(text)
			}))

		winner, gameMetric, moveMetrics, err := local.Run(ctx)
		if err != nil {
			return err
		}
		wins[winner]++
		fmt.Println(player.Outcome(engine))

		if cfg.MetricsDir != "" {
			dir := filepath.Join(cfg.MetricsDir, fmt.Sprintf("game-%d", i+1))
			if err := writeMetrics(dir, gameMetric, moveMetrics); err != nil {
				return err
			}
		}
	}
	if *flagGames > 1 {
		log.Info().Msgf("%d games: player 1 won %d, player 2 won %d, %d ties",
			*flagGames, wins[game.Player1], wins[game.Player2], wins[game.NoPlayer])
	}
	return nil
}

func writeMetrics(dir string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteGame(gameMetric); err != nil {
		return err
	}
	if err := writer.WriteMoves(moveMetrics); err != nil {
		return err
	}
	log.Info().Msgf("Metrics written to %s", writer.Dir())
	return nil
}
