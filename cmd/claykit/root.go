package main

import (
	"github.com/spf13/cobra"

	"github.com/claykit-ui/claykit/internal/config"
	"github.com/claykit-ui/claykit/internal/logger"
	"github.com/claykit-ui/claykit/pkg/theme"
)

type rootFlags struct {
	themePath string
	dark      bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "claykit",
		Short:         "claykit renders a themed widget gallery in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.themePath, "theme", "t", "", "Path to a YAML theme file")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Use the dark preset when no theme file is given")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newLogCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadTheme resolves the active theme from the flags: an explicit file
// wins, otherwise the preset selected by --dark.
func loadTheme(flags *rootFlags) (*theme.Theme, error) {
	if flags.themePath != "" {
		return config.Load(flags.themePath)
	}

	var th theme.Theme
	if flags.dark {
		th = theme.Dark()
	} else {
		th = theme.Light()
	}
	return &th, nil
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}
