package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"calcpad/internal/domain"
)

func pressCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "press KEY...",
		Short: "Replay keyboard keys and print the display",
		Long: `Press feeds each argument to the keypad as a keyboard key, starting from an
empty display. Keys are the characters 0-9 + - * / ( ) . % and the names
Enter, =, Backspace, Delete and c.`,
		Example: `  calc press 1 2 + 3 0 Enter
  calc press 1 / 0 = 7 --trace`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var buf domain.Buffer
			for _, k := range args {
				next, handled := wire.Keypad.Dispatch(buf, domain.KeyInput(domain.Key(k)))
				if !handled {
					wire.Logger.Warn("key ignored", "key", k)
				}
				buf = next
				if trace {
					fmt.Fprintf(out, "%-10s %s\n", k, buf)
				}
			}
			if !trace {
				fmt.Fprintln(out, buf)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every key")
	return cmd
}
