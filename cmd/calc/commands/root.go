package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"calcpad/internal/app"
)

var (
	home      string
	remoteURL string
	logLevel  string
	wire      *app.Wire
)

// Execute runs the calc CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calc",
		Short:        "Arithmetic calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".calcpad")
			}
			w, err := app.NewWire(app.Config{
				Home:      home,
				RemoteURL: remoteURL,
				LogLevel:  logLevel,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.calcpad)")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "calcd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(evalCmd(), pressCmd(), tuiCmd(), configCmd())
	return root
}
