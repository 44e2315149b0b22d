package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/tui"
)

func (a *app) tuiCmd() *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("history-rows") {
				rows = a.cfg.TUI.HistoryRows
			}
			return a.runTUI(cmd, rows)
		},
	}
	cmd.Flags().IntVar(&rows, "history-rows", 3, "history entries shown under the display, 0 to 5 (default from config)")
	return cmd
}

func (a *app) runTUI(cmd *cobra.Command, rows int) error {
	m := tui.New(tui.Options{HistoryRows: rows, Logger: a.log})
	a.log.Info().Int("history_rows", rows).Msg("starting terminal calculator")
	st, err := tui.Run(cmd.Context(), m)
	if err != nil {
		return err
	}
	a.log.Info().Int("evaluations", len(st.History)).Msg("terminal calculator closed")
	return nil
}
