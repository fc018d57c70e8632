package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/crackodile/crackodile/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailPaneBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	emptyTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Background(lipgloss.Color("235")).
			Padding(1, 4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	candidateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	verdictCrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	verdictWeakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	verdictFairStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	verdictStrongStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// verdictText returns plain text for a verdict (ANSI codes break table truncation).
func verdictText(v types.Verdict) string {
	switch v {
	case types.VerdictCracked:
		return "CRACKED"
	case types.VerdictWeak:
		return "WEAK"
	case types.VerdictFair:
		return "FAIR"
	case types.VerdictStrong:
		return "STRONG"
	default:
		return string(v)
	}
}

func verdictStyle(v types.Verdict) lipgloss.Style {
	switch v {
	case types.VerdictCracked:
		return verdictCrackedStyle
	case types.VerdictWeak:
		return verdictWeakStyle
	case types.VerdictFair:
		return verdictFairStyle
	default:
		return verdictStrongStyle
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

type statusMsg string
