package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/claykit-ui/claykit/internal/gitlog"
	"github.com/claykit-ui/claykit/internal/tui"
)

const historyLimit = 20

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Open the interactive widget gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}
}

func runGallery(flags *rootFlags) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	th, err := loadTheme(flags)
	if err != nil {
		return err
	}

	// History is best effort; the gallery works outside a repository.
	commits, err := gitlog.Recent(".", historyLimit)
	if err != nil {
		log.Component("gitlog").Debug(err.Error())
	}

	model := tui.NewModel(th, commits, log)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
