package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Supercharge theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconChart   = "📊"
	IconScroll  = "📜"
	IconSun     = "🌞"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// CategoryStyles maps each routine category to a stable color so charts and
// lists stay readable across commands.
var CategoryStyles = map[string]lipgloss.Style{
	"learning": lipgloss.NewStyle().Foreground(cPrimary),
	"sport":    lipgloss.NewStyle().Foreground(cGood),
	"work":     lipgloss.NewStyle().Foreground(cWarn),
	"leisure":  lipgloss.NewStyle().Foreground(cAccent),
	"personal": lipgloss.NewStyle().Foreground(cGold),
}

func CategoryStyle(cat string) lipgloss.Style {
	if st, ok := CategoryStyles[cat]; ok {
		return st
	}
	return Muted
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TierIcon decorates achievement tiers.
func TierIcon(tier string) string {
	switch tier {
	case "bronze":
		return "🥉"
	case "silver":
		return "🥈"
	case "gold":
		return "🥇"
	case "platinum":
		return "💎"
	default:
		return IconTrophy
	}
}

// ProgressBar renders a fixed-width [####----] bar.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
