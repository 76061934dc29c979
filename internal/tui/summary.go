package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// RenderSummary formats a run summary for the given mode. Interactive output
// is a bordered panel; otherwise one plain line per table.
func RenderSummary(summary ecomload.Summary, mode Mode) string {
	if mode == ModeInteractive {
		return renderStyled(summary)
	}
	return renderPlain(summary)
}

// RenderError formats a failed run for the given mode.
func RenderError(err error, mode Mode) string {
	if mode == ModeInteractive {
		return ErrorStyle.Render(SymbolCross+" "+err.Error()) + "\n"
	}
	return "Error: " + err.Error() + "\n"
}

func renderPlain(summary ecomload.Summary) string {
	var b strings.Builder
	for _, t := range summary.Tables {
		fmt.Fprintf(&b, "%s -> %s: %d rows\n", t.Source.File, t.Source.Table, t.Rows)
	}
	fmt.Fprintf(&b, "Total: %d rows into %s in %s\n", summary.TotalRows(), summary.DBPath, roundDuration(summary.Duration))
	return b.String()
}

func renderStyled(summary ecomload.Summary) string {
	labels := make([]string, len(summary.Tables))
	counts := make([]string, len(summary.Tables))
	labelWidth, countWidth := 0, len("rows")
	for i, t := range summary.Tables {
		labels[i] = fmt.Sprintf("%s %s %s", t.Source.File, SymbolArrowRight, t.Source.Table)
		counts[i] = fmt.Sprintf("%d", t.Rows)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
		countWidth = max(countWidth, len(counts[i]))
	}

	lines := []string{TitleStyle.Render("Load summary")}
	for i := range labels {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Width(labelWidth+2).Render(labels[i]),
			CountStyle.Width(countWidth).Render(counts[i]),
		))
	}
	lines = append(lines,
		HelpStyle.Render(fmt.Sprintf("%d rows into %s in %s", summary.TotalRows(), summary.DBPath, roundDuration(summary.Duration))),
		HelpStyle.UnsetMarginTop().Render("run "+summary.RunID.String()),
	)

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n" +
		SuccessStyle.Render(SymbolCheck+" "+ecomload.SuccessMessage) + "\n"
}

func roundDuration(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(10 * time.Millisecond)
}
