package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calcpad/internal/domain"
)

var errSomeFailed = errors.New("one or more expressions did not evaluate")

func evalCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate an expression and print the display value",
		Long: `Evaluate joins its arguments into one expression and prints the result
exactly as the keypad display would show it, or "Error".

With no arguments and input piped on stdin, every non-blank line is
evaluated in turn.`,
		Example: `  calc eval '2 * (3 + 4)'
  calc eval -- -5+3
  printf '1/3\n5/0\n' | calc eval --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			if len(args) > 0 {
				expr := strings.Join(args, " ")
				if strings.TrimSpace(expr) == "" {
					return fmt.Errorf("expression required")
				}
				if !evalOne(out, errOut, expr, explain) {
					return errSomeFailed
				}
				return nil
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return fmt.Errorf("expression required: pass it as arguments or pipe lines on stdin")
			}
			failed := false
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				line := sc.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				if !evalOne(out, errOut, line, explain) {
					failed = true
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			if failed {
				return errSomeFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print why an expression failed to stderr")
	return cmd
}

// evalOne prints the display value for expr and reports success.
func evalOne(out, errOut io.Writer, expr string, explain bool) bool {
	result, err := wire.Evaluator.Evaluate(strings.TrimSpace(expr))
	if err != nil {
		fmt.Fprintln(out, domain.ErrorMarker)
		if explain {
			fmt.Fprintln(errOut, err)
		}
		wire.Logger.Debug("eval failed", "expr", expr, "err", err)
		return false
	}
	fmt.Fprintln(out, result)
	return true
}
