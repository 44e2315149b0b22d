// Command calculator is a four-function calculator with a terminal UI, a
// command line evaluator, and an HTTP API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/logging"
)

// app holds what the commands share after flags and config are loaded.
type app struct {
	cfgPath  string
	logLevel string
	logFile  string

	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer

	// stdin is the command's input. It is a field so tests can replace it.
	stdin    io.Reader
	terminal func() bool
}

func main() {
	a := &app{
		stdin:    os.Stdin,
		terminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
	err := a.root().Execute()
	// PersistentPostRunE is skipped when a command fails.
	a.teardown()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:   "calculator",
		Short: "Four-function calculator",
		Long: "Four-function calculator.\n\n" +
			"Without a command, calculator runs the terminal UI if standard input is a\n" +
			"terminal, and otherwise evaluates each line of standard input.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.terminal() {
				return a.runTUI(cmd, a.cfg.TUI.HistoryRows)
			}
			return a.runEval(cmd, evalOptions{lines: true}, nil)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, or disabled (env "+config.EnvLogLevel+")")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "append logs to this file (env "+config.EnvLogFile+")")

	root.AddCommand(a.evalCmd(), a.keysCmd(), a.tuiCmd(), a.serveCmd())
	return root
}

// setup loads the config and opens the logger. Flags override the config.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	a.cfg = cfg

	// The terminal UI draws on stdout, so it only logs to a file.
	var w io.Writer = cmd.ErrOrStderr()
	if cmd.Name() == "tui" || (cmd.Name() == "calculator" && a.terminal()) {
		w = nil
	}
	l, c, err := logging.New(cfg.Log.Level, cfg.Log.File, w)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.log, a.closer = l, c
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
