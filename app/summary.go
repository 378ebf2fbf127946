package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/netviz/engine"
)

// Summary is the end-of-run report printed by hosts
type Summary struct {
	Frames    uint64
	Elapsed   time.Duration
	Epoch     int
	Loss      float64
	Accuracy  float64
	Data      uint64
	Gradients uint64
}

// SummaryOf captures e's counters
func SummaryOf(e *engine.Engine) Summary {
	return Summary{
		Frames:    e.Frame(),
		Elapsed:   e.Elapsed(),
		Epoch:     e.Metrics.Epoch,
		Loss:      e.Metrics.Loss,
		Accuracy:  e.Metrics.Accuracy,
		Data:      e.Delivered(engine.PacketData),
		Gradients: e.Delivered(engine.PacketGradient),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818CF8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A5B4FC")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E7FF"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(0, 1)
)

// Render formats the summary as a bordered table
func (s Summary) Render(title string) string {
	rows := [][2]string{
		{"frames", fmt.Sprintf("%d", s.Frames)},
		{"elapsed", s.Elapsed.Round(time.Millisecond).String()},
		{"epoch", fmt.Sprintf("%d", s.Epoch)},
		{"loss", fmt.Sprintf("%.4f", s.Loss)},
		{"accuracy", fmt.Sprintf("%.1f%%", s.Accuracy*100)},
		{"data", fmt.Sprintf("%d", s.Data)},
		{"gradients", fmt.Sprintf("%d", s.Gradients)},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
