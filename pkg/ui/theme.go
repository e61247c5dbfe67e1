// Package ui holds the lipgloss styles of the farmctl output.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconField  = "🌾"
	IconTask   = "📋"
	IconDone   = "✅"
	IconReport = "📊"
	IconSeed   = "🌱"
	IconWarn   = "⚠️"
	IconError  = "❌"
)

var (
	cPrimary = lipgloss.Color("28")  // green
	cAccent  = lipgloss.Color("214") // harvest orange
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("220")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Priority colours a task priority.
func Priority(p string) string {
	switch strings.ToLower(p) {
	case "high":
		return Bad.Render(p)
	case "medium":
		return Warn.Render(p)
	default:
		return Muted.Render(p)
	}
}

// Bar renders a percentage as a fixed-width bar.
func Bar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	n := pct * width / 100
	return Good.Render(strings.Repeat("█", n)) + Muted.Render(strings.Repeat("░", width-n))
}
