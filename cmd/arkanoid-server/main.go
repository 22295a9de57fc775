// arkanoid-server serves the game over SSH. Every connection plays its own
// independent game in the terminal renderer.
//
// Usage:
//
//	arkanoid-server [--ssh :23234] [--host-key path] [--idle-timeout 30] [--level file]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagLevel       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid-server",
	Short: "Serve Arkanoid over SSH",
	Long: `Start an SSH server that lets users connect and play Arkanoid.

Each SSH connection gets its own game; nothing is shared between players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arkanoid/host_key

Examples:
  arkanoid-server                           # Listen on :23234, demo level
  arkanoid-server --ssh :2222               # Listen on port 2222
  arkanoid-server --level levels/level1.txt # Serve a level file

Users can connect with:
  ssh localhost -p 23234`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	rootCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	rootCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level file to serve (default: bundled demo)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	// Validate the level once; every session builds its blocks from it
	grid, err := level.LoadOrDemo(flagLevel)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid-ssh",
		Level:           cfg.Level(),
	})

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        cfg,
		Play:        newPlayFunc(cfg, grid, logger),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	logger.Info("serving level", "level", grid.Source, "rows", grid.Height(), "cols", grid.Width())
	return server.ListenAndServe()
}

// newPlayFunc returns the per-connection game runner.
func newPlayFunc(cfg config.Config, grid level.Grid, logger *log.Logger) tui.GameFunc {
	return func(host core.Host, user string) error {
		session, err := arkanoid.New(cfg, grid, arkanoid.WithLogger(logger.With("user", user)))
		if err != nil {
			return err
		}
		if err := arkanoid.Run(session, host); err != nil {
			return err
		}
		logger.Info("game ended", "user", user, "score", session.Score(), "lives", session.Lives())
		return nil
	}
}
