package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

type evalOptions struct {
	in    string
	lines bool
	echo  bool
	verb  string
}

func (a *app) evalCmd() *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions",
		Long: "Evaluate each argument as an expression. With no arguments, or with --in,\n" +
			"expressions are read from a file or standard input.",
		Example: "  calculator eval '2+3×4' '10/4'\n  printf '1+1\\n2*3\\n' | calculator eval -n",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.in, "in", "", "input file, or - for stdin (default stdin if no args given)")
	cmd.Flags().BoolVarP(&opts.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	cmd.Flags().BoolVar(&opts.echo, "echo", false, "print each expression in postfix form before its result")
	cmd.Flags().StringVar(&opts.verb, "fmt", "", "result formatting verb, e.g. %.3f (default shortest exact decimal)")
	return cmd
}

// errFailed is returned after printing evaluation errors, so the command
// exits non-zero without printing them again.
var errFailed = errors.New("some expressions failed to evaluate")

func (a *app) runEval(cmd *cobra.Command, opts evalOptions, args []string) error {
	var srcs []string
	in, err := a.infile(opts.in, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		s, err := readExprs(in, opts.lines)
		if c, ok := in.(io.Closer); ok && in != a.stdin {
			c.Close()
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, args...)

	out := cmd.OutOrStdout()
	failed := false
	for _, src := range srcs {
		if opts.echo {
			if e, err := calculator.Parse(src); err == nil {
				fmt.Fprintf(out, "%v : ", e)
			}
		}
		r, err := calculator.Eval(src)
		if err != nil {
			a.log.Debug().Str("expression", src).Stringer("kind", calculator.KindOf(err)).Err(err).Msg("evaluation failed")
			fmt.Fprintf(out, "Error: %v\n", err)
			failed = true
			continue
		}
		a.log.Debug().Str("expression", src).Float64("result", r).Msg("evaluated")
		if opts.verb != "" {
			fmt.Fprintf(out, opts.verb+"\n", r)
		} else {
			fmt.Fprintln(out, calculator.Format(r))
		}
	}
	if failed {
		cmd.SilenceErrors = true
		return errFailed
	}
	return nil
}

// infile opens the input named by the --in flag. If the name is empty and std
// is true, or if the name is -, the input is stdin.
func (a *app) infile(name string, std bool) (io.Reader, error) {
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		return f, nil
	case name == "-", std:
		return a.stdin, nil
	}
	return nil, nil
}

// readExprs reads the input as one expression, or as one per line. Blank lines
// are skipped.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, sc.Err()
}
