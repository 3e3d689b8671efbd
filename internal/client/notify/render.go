package notify

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672")).Bold(true)
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var icons = map[Kind]string{
	KindSuccess: "✓",
	KindInfo:    "•",
	KindWarning: "!",
	KindError:   "✗",
}

func styleFor(k Kind) lipgloss.Style {
	switch k {
	case KindSuccess:
		return successStyle
	case KindWarning:
		return warningStyle
	case KindError:
		return errorStyle
	default:
		return infoStyle
	}
}

// Render formats notifications as toast lines, one per notification.
func Render(items []Notification) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range items {
		icon, ok := icons[n.Kind]
		if !ok {
			icon = icons[KindInfo]
		}
		b.WriteString(timeStyle.Render(n.At.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(styleFor(n.Kind).Render(icon + " " + n.Message))
		b.WriteString("\n")
	}
	return b.String()
}
