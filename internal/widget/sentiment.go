package widget

import (
	"customer-feedback/internal/data/entity"

	"github.com/charmbracelet/lipgloss"
)

// Badge is how a sentiment is shown: a label plus a CSS class for the web pages and a
// lipgloss style for the terminal report.
type Badge struct {
	Label string
	Class string
	Style lipgloss.Style
}

var (
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#16A34A")).Padding(0, 1)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Background(lipgloss.Color("#E5E7EB")).Padding(0, 1)
	destructiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#DC2626")).Padding(0, 1)
)

func SentimentBadge(s entity.Sentiment) Badge {
	switch s {
	case entity.SentimentPositive:
		return Badge{Label: "Positive", Class: "badge-success", Style: successStyle}
	case entity.SentimentNegative:
		return Badge{Label: "Negative", Class: "badge-destructive", Style: destructiveStyle}
	case entity.SentimentNeutral:
		return Badge{Label: "Neutral", Class: "badge-muted", Style: mutedStyle}
	default:
		return Badge{Label: string(s), Class: "badge-muted", Style: mutedStyle}
	}
}

// Render draws the badge for a terminal.
func (b Badge) Render() string {
	return b.Style.Render(b.Label)
}
