package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claykit-ui/claykit/internal/config"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Work with YAML theme files",
	}

	cmd.AddCommand(newThemesValidateCmd())
	cmd.AddCommand(newThemesShowCmd())

	return cmd
}

func newThemesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a theme file for parse and validation errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := config.ParseThemeFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%s base)\n", tf.Name, tf.Base)
			return nil
		},
	}
}

func newThemesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the resolved palette of a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := config.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "primary:   %s\n", th.Primary.Hex())
			fmt.Fprintf(out, "secondary: %s\n", th.Secondary.Hex())
			fmt.Fprintf(out, "success:   %s\n", th.Success.Hex())
			fmt.Fprintf(out, "warning:   %s\n", th.Warning.Hex())
			fmt.Fprintf(out, "error:     %s\n", th.Error.Hex())
			fmt.Fprintf(out, "bg:        %s\n", th.BG.Hex())
			fmt.Fprintf(out, "fg:        %s\n", th.FG.Hex())
			fmt.Fprintf(out, "border:    %s\n", th.Border.Hex())
			fmt.Fprintf(out, "muted:     %s\n", th.Muted.Hex())
			return nil
		},
	}
}
