package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

func (a *app) keysCmd() *cobra.Command {
	var history, trace bool
	cmd := &cobra.Command{
		Use:   "keys SEQUENCE...",
		Short: "Replay key presses on a fresh calculator",
		Long: "Replay key presses on a fresh calculator and print the display.\n\n" +
			"Keys are 0-9 . + - × ÷ ± % C ⌫ =. Aliases: * or x for ×, / for ÷, n or ~ or +/-\n" +
			"for ±, c or esc for C, < or bs for ⌫, enter for =. Whitespace separates\n" +
			"aliases; other words are read one key per character.",
		Example: "  calculator keys '12+3×4='\n  calculator keys 5 x 2 n enter",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := calculator.ParseKeys(strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := calculator.NewState()
			for _, k := range keys {
				st = st.Apply(k)
				a.log.Debug().Stringer("key", k).Str("expression", st.Expr).Str("display", st.Display).Msg("key")
				if trace {
					fmt.Fprintf(out, "%s\t%s\n", k, st.Display)
				}
			}
			if !trace {
				fmt.Fprintln(out, st.Display)
			}
			if st.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", st.Err)
			}
			if history {
				for _, e := range st.History {
					fmt.Fprintln(out, e)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "print the history after the display, newest first")
	cmd.Flags().BoolVar(&trace, "trace", false, "print each key and the display after it")
	return cmd
}
