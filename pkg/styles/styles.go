package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinematch/pkg/types"
)

var defaultStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F45E6E"))

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6ef4a1"))

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6EC4F4"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

func render(style string, text string) string {
	switch style {
	case "error":
		return errorStyle.Render(text)
	case "success":
		return successStyle.Render(text)
	case "info":
		return infoStyle.Render(text)
	default:
		return defaultStyle.Render(text)
	}
}

func PrintFS(style string, text string, a ...interface{}) {
	fmt.Println(render(style, fmt.Sprintf(text, a...)))
}

func SprintfS(style string, format string, a ...interface{}) string {
	return render(style, fmt.Sprintf(format, a...))
}

// RecTable renders a ranked recommendation list as a plain aligned table.
func RecTable(recs []types.Rec) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %8s  %-8s  %s", "#", "score", "movieId", "title")))
	b.WriteByte('\n')
	for i, r := range recs {
		title := r.Title
		if title == "" {
			title = "<untitled>"
		}
		fmt.Fprintf(&b, "%4d  %8.4f  %-8d  %s\n", i+1, r.Score, r.MovieID, title)
	}
	return b.String()
}

// BenchTable renders a worker sweep as a workers/ms/speedup table.
func BenchTable(rows []types.BenchRow) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s  %12s  %8s", "workers", "ms", "speedup")))
	b.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&b, "%8d  %12d  %8.2f\n", r.Workers, r.Millis, r.Speedup)
	}
	return b.String()
}
