package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show registered games",
	Long:  `Prints the id and title of every game 'bonarun play' accepts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeGameList(cmd.OutOrStdout(), registry.List())
	},
}

var (
	listHeader = lipgloss.NewStyle().Bold(true)
	listHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// writeGameList prints games as two aligned columns.
func writeGameList(w io.Writer, games []registry.GameInfo) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games registered.")
		return err
	}

	idW := runewidth.StringWidth("ID")
	for _, g := range games {
		idW = max(idW, runewidth.StringWidth(g.ID))
	}

	rows := []string{listHeader.Render(runewidth.FillRight("ID", idW) + "  TITLE")}
	for _, g := range games {
		rows = append(rows, runewidth.FillRight(g.ID, idW)+"  "+g.Title)
	}
	rows = append(rows, "", listHint.Render("Start one with 'bonarun play <id>'."))

	for _, r := range rows {
		if _, err := fmt.Fprintln(w, "  "+r); err != nil {
			return err
		}
	}
	return nil
}
