package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// headerStyle for the run banner
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for indexed documents
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for skipped documents
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for failed documents
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the final summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func printIndexed(documentID, path string, sections int) {
	fmt.Printf("%s %s %s\n",
		successStyle.Render("✓"),
		documentID,
		dimStyle.Render(fmt.Sprintf("(%d secciones, %s)", sections, path)))
}

func printSkipped(path string) {
	fmt.Printf("%s %s %s\n", warnStyle.Render("–"), path, dimStyle.Render("(ya indexado)"))
}

func printFailed(path string, err error) {
	fmt.Printf("%s %s %s\n", errorStyle.Render("✗"), path, errorStyle.Render(err.Error()))
}

func printRunSummary(indexed, skipped, failed int, elapsed time.Duration) {
	lines := []string{
		headerStyle.Render("Indexación completada"),
		fmt.Sprintf("Indexados: %s", successStyle.Render(fmt.Sprint(indexed))),
		fmt.Sprintf("Omitidos:  %s", warnStyle.Render(fmt.Sprint(skipped))),
		fmt.Sprintf("Fallidos:  %s", errorStyle.Render(fmt.Sprint(failed))),
		dimStyle.Render(fmt.Sprintf("Duración: %s", elapsed.Round(time.Millisecond))),
	}
	fmt.Println(boxStyle.Render(strings.Join(lines, "\n")))
}
