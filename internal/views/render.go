package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	mainPaneWidth = 62
	sidePaneWidth = 42
)

// AppData is the full frame of the tracker: header, the active money
// pane, an optional side pane (palette/help), the toast banner for
// due bills, and the status/footer lines.
type AppData struct {
	Header        string
	MainPane      string
	SidePane      string
	StatusLine    string
	StatusIsError bool
	Toasts        string
	Footer        string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mainStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(mainPaneWidth)
	sideStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(sidePaneWidth)
	toastStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).Foreground(lipgloss.Color("11"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

func RenderApp(data AppData) string {
	row := mainStyle.Render(data.MainPane)
	if data.SidePane != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, sideStyle.Render(data.SidePane))
	}

	status := statusStyle.Render(data.StatusLine)
	if data.StatusIsError {
		status = errorStyle.Render("error: " + data.StatusLine)
	}

	lines := []string{headerStyle.Render(data.Header), row}
	if data.Toasts != "" {
		lines = append(lines, toastStyle.Render(data.Toasts))
	}
	lines = append(lines, status)
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md wrapped to the side pane width. The raw
// text is a usable fallback when the terminal renderer cannot be
// built.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(sidePaneWidth-4),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
