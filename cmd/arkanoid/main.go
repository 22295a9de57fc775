// arkanoid is a single-screen brick breaker.
//
// Usage:
//
//	arkanoid [level-file]
//
// Without a level file the bundled demo level is played. Settings are read
// from ~/.arkanoid/config.yaml or ./configs/arkanoid.yaml when present;
// host.name selects the terminal or the window renderer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"

	// Import hosts to register them
	_ "github.com/vovakirdan/tui-arkanoid/internal/platform/desktop"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid [level-file]",
	Short: "Arkanoid - break all the blocks",
	Long: `Arkanoid is a single-screen brick breaker. Bounce the ball off the
paddle to destroy every block of the level.

A level file is plain text, one row per line. Characters from the symbol
table (see configs/arkanoid.yaml) become blocks; anything else is empty.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Esc        - Quit

Examples:
  arkanoid                    # Play the bundled demo level
  arkanoid levels/level1.txt  # Play a level file`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func runGame(_ *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	grid, err := level.LoadOrDemo(path)
	if err != nil {
		return err
	}

	session, err := arkanoid.New(cfg, grid, arkanoid.WithLogger(logger))
	if err != nil {
		return err
	}

	host, err := registry.Create(cfg)
	if err != nil {
		return err
	}
	logger.Info("starting game", "host", cfg.Host.Name, "level", grid.Source)

	if err := play(session, host); err != nil {
		return err
	}

	logger.Info("game ended", "score", session.Score(), "lives", session.Lives())
	return nil
}

// play runs the session, handing the main goroutine to hosts that need it.
func play(session *arkanoid.Session, host core.Host) error {
	loop := func() error {
		return arkanoid.Run(session, host)
	}

	var err error
	if mh, ok := host.(core.MainThreadHost); ok {
		err = mh.RunMain(loop)
	} else {
		err = loop()
	}
	if err != nil {
		return err
	}

	if th, ok := host.(*tui.Host); ok {
		return th.Err()
	}
	return nil
}

// newLogger builds the logger from config. With the terminal host on an
// interactive stderr and no log file, logs are dropped so they don't tear
// the game screen.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case cfg.Host.Name == tui.HostName && term.IsTerminal(int(os.Stderr.Fd())): //#nosec G115 -- file descriptors fit in int
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           cfg.Level(),
	})
	return logger, closeFn, nil
}
