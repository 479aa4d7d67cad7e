package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"calcpad/internal/app"
	"calcpad/internal/domain"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change persisted settings",
	}
	cmd.AddCommand(configShowCmd(), configSetCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Settings.LoadSettings()
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set remote_url or log_level (an empty VALUE unsets it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Settings.LoadSettings()
			if err != nil {
				return err
			}
			if err := applySetting(&st, args[0], args[1]); err != nil {
				return err
			}
			if err := wire.Settings.SaveSettings(st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated.\n", args[0])
			return nil
		},
	}
}

func applySetting(st *domain.Settings, key, value string) error {
	switch key {
	case "remote_url":
		st.RemoteURL = value
	case "log_level":
		if value != "" {
			if _, err := app.ParseLevel(value); err != nil {
				return err
			}
		}
		st.LogLevel = value
	default:
		return fmt.Errorf("unknown setting %q (want remote_url or log_level)", key)
	}
	return nil
}
