package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/claykit-ui/claykit/internal/gitlog"
	"github.com/claykit-ui/claykit/internal/tui"
)

func newLogCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log [path]",
		Short: "Print recent commits styled with the active theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			th, err := loadTheme(flags)
			if err != nil {
				return err
			}

			commits, err := gitlog.Recent(path, limit)
			if err != nil {
				return err
			}

			styles := tui.NewStyles(th)
			hashStyle := lipgloss.NewStyle().Foreground(tui.TermColor(th.Primary)).Bold(true)

			out := cmd.OutOrStdout()
			for _, c := range commits {
				fmt.Fprintf(out, "%s %s %s\n",
					hashStyle.Render(c.Hash),
					c.Subject,
					styles.Muted.Render(fmt.Sprintf("(%s, %s)", c.Author, c.When.Format("2006-01-02"))),
				)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", historyLimit, "Maximum number of commits to print")

	return cmd
}
