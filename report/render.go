package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme styles the summary line.
type Theme struct {
	Name    string
	Item    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Icons   Icons
}

type Icons struct {
	Pass string
	Fail string
}

// DefaultTheme returns a colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Item:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Icons:   Icons{Pass: "✓", Fail: "✗"},
	}
}

// PlainTheme returns a theme without colors, for logs and pipes.
func PlainTheme() Theme {
	return Theme{
		Name:    "plain",
		Item:    lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Failure: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Icons:   Icons{Pass: "+", Fail: "x"},
	}
}

// Render returns the one line summary of t.
func Render(t *Totals, theme Theme) string {
	icon, iconStyle := theme.Icons.Pass, theme.Success
	if t.Failed()+t.Exception() > 0 {
		icon, iconStyle = theme.Icons.Fail, theme.Error
	}

	parts := []string{
		iconStyle.Render(icon) + " " + theme.Item.Render(t.Item),
		theme.Success.Render(fmt.Sprintf("passed %d (%.2f%%)", t.Passed(), t.PercentagePassed())),
		theme.Failure.Render(fmt.Sprintf("failed %d (%.2f%%)", t.Failed(), t.PercentageFailed())),
		theme.Error.Render(fmt.Sprintf("exception %d (%.2f%%)", t.Exception(), t.PercentageException())),
		theme.Muted.Render(fmt.Sprintf("total %d", t.Total())),
	}

	return strings.Join(parts, "  ")
}

// RenderBook renders every item of b followed by their sum.
func RenderBook(b *Book, theme Theme) string {
	var lines []string
	for _, t := range b.All() {
		lines = append(lines, Render(t, theme))
	}

	lines = append(lines, Render(b.Sum("all"), theme))

	return strings.Join(lines, "\n")
}
