package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/engine"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/sound"
	"github.com/vovakirdan/tui-chase/internal/world"
)

const defaultBackend = "tea"

var (
	flagBackend  string
	flagSeed     int64
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
	flagFit      bool
	flagGod      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right  - Turn 45 degrees
  Up/Down     - Speed up / slow down
  N           - Toggle no-clip (walk through walls)
  S           - Toggle the speed limit
  U           - Toggle invincibility
  Q/Esc       - Quit

Difficulty options:
  easy    - Slower enemies, 5 extra health
  normal  - Config values as written
  hard    - Faster enemies, 5 less health

Examples:
  chase play
  chase play --difficulty easy --sound
  chase play --backend tcell --fit
  chase play --seed 42 --log-file chase.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", defaultBackend, "Terminal backend (see 'chase backends')")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the arena to the terminal")
	playCmd.Flags().BoolVar(&flagGod, "god", false, "Start with maximum health")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'chase backends' to see available backends.")
		os.Exit(1)
	}

	res, err := play()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game over!  Score: %d\n", res.Score)
}

// play runs one game. The backend is closed before play returns, so the
// caller can print to a restored terminal.
func play() (engine.Result, error) {
	logger, closeLog, err := newLogger()
	if err != nil {
		return engine.Result{}, err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return engine.Result{}, err
	}

	if flagFit {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			fitArena(&cfg, w, h)
			if err := cfg.Validate(); err != nil {
				return engine.Result{}, fmt.Errorf("terminal too small: %w", err)
			}
		} else {
			logger.Warn("cannot read terminal size, keeping config arena", "err", termErr)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := world.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return engine.Result{}, err
	}
	if err := game.Init(); err != nil {
		return engine.Result{}, err
	}
	if flagGod {
		game.Player().UnlimitedHealth()
	}

	logger.Info("game start",
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height),
		"enemies", len(cfg.Enemies),
		"walls", len(game.Walls()),
		"seed", seed,
		"backend", flagBackend,
	)

	var listeners []engine.Listener
	if flagSound {
		sp := sound.NewPlayer()
		if err := sp.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sp.Close()
			listeners = append(listeners, sp)
		}
	}

	screenW, screenH := game.Snapshot().ScreenSize()
	rc := core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		TickInterval: cfg.TickInterval,
		Seed:         seed,
	}
	backend, err := registry.Create(flagBackend, rc)
	if err != nil {
		return engine.Result{}, err
	}
	if err := startBackend(backend, logger); err != nil {
		return engine.Result{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := engine.New(game, backend, backend, engine.Options{
		Logger:    logger,
		Listeners: listeners,
	})
	res, runErr := driver.Run(ctx)

	if err := backend.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close backend: %w", err)
	}
	return res, runErr
}

// startBackend takes over the terminal. A backend that fails to start is
// closed again so the terminal is restored.
func startBackend(b registry.Backend, logger *log.Logger) error {
	if err := b.Start(); err != nil {
		if closeErr := b.Close(); closeErr != nil {
			logger.Warn("close backend after failed start", "err", closeErr)
		}
		return err
	}
	return nil
}

// newLogger writes to --log-file, or nowhere; the game owns the terminal.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}

// fitArena sizes the arena to a termW x termH terminal, leaving room for the
// HUD and the help footer. A player start outside the new arena moves to its
// center, and pre-placed walls that no longer fit or cover the start are
// dropped.
func fitArena(cfg *config.GameConfig, termW, termH int) {
	w := max(termW, 0)
	h := max(termH-core.HUDRows-1, 0)
	cfg.Arena.Width = uint16(min(w, 0xffff))
	cfg.Arena.Height = uint16(min(h, 0xffff))

	if cfg.Player.X < 1 || cfg.Player.X >= float64(w-1) ||
		cfg.Player.Y < 1 || cfg.Player.Y >= float64(h-1) {
		cfg.Player.X = float64(w / 2)
		cfg.Player.Y = float64(h / 2)
	}

	start := config.WallConfig{X: uint16(cfg.Player.X), Y: uint16(cfg.Player.Y)}
	walls := cfg.Walls[:0]
	for _, wall := range cfg.Walls {
		if int(wall.X) < w && int(wall.Y) < h && wall != start {
			walls = append(walls, wall)
		}
	}
	cfg.Walls = walls
}
