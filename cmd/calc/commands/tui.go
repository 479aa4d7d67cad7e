package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal keypad",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tui.Run(wire.Keypad)
			return err
		},
	}
}
