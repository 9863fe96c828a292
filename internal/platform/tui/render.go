package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snooker/internal/snooker"
)

// ballStyles maps each ball to a lipgloss style in its table color.
var ballStyles = map[snooker.Ball]lipgloss.Style{
	snooker.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	snooker.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	snooker.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2")),
	snooker.Brown:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("94")),
	snooker.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
	snooker.Pink:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("218")),
	snooker.Black:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(28).
			Align(lipgloss.Center)

	selectedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("229"))

	nameStyle  = lipgloss.NewStyle().Bold(true)
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	foulStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// renderBall renders a ball value as a colored chip.
func renderBall(b snooker.Ball) string {
	style, ok := ballStyles[b]
	if !ok {
		return b.String()
	}
	return style.Render(" " + strconv.Itoa(b.Value()) + " ")
}

// renderBallRow renders the 1-7 legend, dimming balls that are off the table.
func renderBallRow(f snooker.Frame) string {
	chips := make([]string, 0, 7)
	for b := snooker.Red; b <= snooker.Black; b++ {
		if !ballOnTable(f, b) {
			chips = append(chips, dimStyle.Render(" "+strconv.Itoa(b.Value())+" "))
			continue
		}
		chips = append(chips, renderBall(b))
	}
	return strings.Join(chips, " ")
}

// ballOnTable reports whether b can still be potted in sequence.
func ballOnTable(f snooker.Frame, b snooker.Ball) bool {
	if b == snooker.Red {
		return f.RedsLeft > 0
	}
	if !f.OnColors {
		return true
	}
	return b.ColorIndex() >= f.NextColor
}

// phaseLabel describes the table phase.
func phaseLabel(f snooker.Frame) string {
	if !f.OnColors {
		return "Reds left: " + strconv.Itoa(f.RedsLeft)
	}
	if next, ok := f.NextBall(); ok {
		return "Colors: next " + next.String()
	}
	return "Table clear"
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
