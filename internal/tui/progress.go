package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crackodile/crackodile/internal/types"
)

type progressMsg struct {
	attempts  uint64
	candidate string
}

type doneMsg struct {
	result types.AuditResult
	err    error
}

// AuditModel is the live enumeration view: a percent bar when the space
// size fits uint64, a spinner otherwise, and the verdict summary once the
// engine reports back.
type AuditModel struct {
	spinner spinner.Model
	bar     progress.Model
	cancel  context.CancelFunc

	space      uint64
	spaceExact bool
	budget     uint64

	attempts       uint64
	candidate      string
	hideCandidates bool
	started        time.Time

	done       bool
	cancelling bool
	quitting   bool
	result     types.AuditResult
	err        error

	width, height int
	ready         bool
	statusMessage string
}

// NewAuditModel builds the live view for an audit whose search frame is
// described by plan (space size and exactness drive the bar).
func NewAuditModel(cancel context.CancelFunc, plan types.AuditResult, budget uint64) AuditModel {
	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())

	return AuditModel{
		spinner:        sp,
		bar:            bar,
		cancel:         cancel,
		space:          plan.Space,
		spaceExact:     plan.SpaceExact,
		budget:         budget,
		hideCandidates: LoadPrefs().HideCandidates,
		started:        time.Now(),
		statusMessage:  "q: cancel | s: show/hide candidates",
	}
}

func (m AuditModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
			if !m.cancelling {
				m.cancelling = true
				m.statusMessage = "Cancelling..."
				if m.cancel != nil {
					m.cancel()
				}
			}
			return m, nil
		case "s":
			m.hideCandidates = !m.hideCandidates
			prefs := LoadPrefs()
			prefs.HideCandidates = m.hideCandidates
			_ = SavePrefs(prefs)
			return m, nil
		case "c":
			if m.done {
				return m, m.copyResult()
			}
		}

	case progressMsg:
		m.attempts = msg.attempts
		m.candidate = msg.candidate
		if m.showBar() {
			return m, m.bar.SetPercent(m.percent())
		}
		return m, nil

	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		if msg.result.Attempts > m.attempts {
			m.attempts = msg.result.Attempts
		}
		m.statusMessage = "q: quit | c: copy JSON"
		if m.showBar() {
			return m, m.bar.SetPercent(m.percent())
		}
		return m, nil

	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusMsg:
		m.statusMessage = string(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		barWidth := m.width - 16
		if barWidth > 64 {
			barWidth = 64
		}
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
	}

	return m, nil
}

func (m AuditModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("crackodile audit"))
	b.WriteString("\n\n")
	if m.done {
		b.WriteString(m.summaryView())
	} else {
		b.WriteString(m.searchView())
	}

	panelWidth := m.width - 8
	if panelWidth > 78 {
		panelWidth = 78
	}
	panel := popupStyle.Width(panelWidth).Render(b.String())

	status := statusStyle.
		Width(m.width).
		Padding(0, 2).
		Render(m.statusMessage)

	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, panel)
	return body + "\n" + status
}

func (m AuditModel) searchView() string {
	var b strings.Builder

	if m.showBar() {
		b.WriteString(m.bar.View())
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%s Enumerating candidates...\n\n", m.spinner.View()))

	if m.spaceExact {
		b.WriteString(fmt.Sprintf("%s %d of %d\n", labelStyle.Render("Attempts:"), m.attempts, m.space))
	} else {
		b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Attempts:"), m.attempts))
	}

	candidate := m.candidate
	if m.hideCandidates && candidate != "" {
		candidate = strings.Repeat("*", len(candidate))
	}
	if candidate != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Candidate:"), candidateStyle.Render(candidate)))
	}

	elapsed := time.Since(m.started)
	line := fmt.Sprintf("%s %s", labelStyle.Render("Elapsed:"), formatDuration(elapsed))
	if secs := elapsed.Seconds(); secs > 0 && m.attempts > 0 {
		line += fmt.Sprintf("  (%.0f/s)", float64(m.attempts)/secs)
	}
	b.WriteString(line)
	b.WriteString("\n")

	if m.budget > 0 {
		b.WriteString(fmt.Sprintf("%s %d attempts\n", labelStyle.Render("Budget:"), m.budget))
	}

	return b.String()
}

func (m AuditModel) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		labelStyle.Render("Verdict:"),
		verdictStyle(m.result.Verdict).Render(verdictText(m.result.Verdict))))

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Method:"), m.result.Method))
	if m.result.Match != nil {
		b.WriteString(fmt.Sprintf("%s %s:%d\n", labelStyle.Render("Match:"), m.result.Match.Source, m.result.Match.Line))
	}
	if m.result.Search != nil {
		b.WriteString(fmt.Sprintf("%s %s after %d attempts\n",
			labelStyle.Render("Search:"), m.result.Search.Status, m.result.Search.Attempts))
	}
	b.WriteString(fmt.Sprintf("%s %.1f bits over %d chars\n",
		labelStyle.Render("Entropy:"), m.result.EntropyBits, m.result.AlphabetSize))
	b.WriteString(fmt.Sprintf("%s %.2fs\n", labelStyle.Render("Duration:"), m.result.Duration.Seconds()))

	return b.String()
}

func (m AuditModel) copyResult() tea.Cmd {
	res := m.result
	return func() tea.Msg {
		buf, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return statusMsg(fmt.Sprintf("Copy error: %v", err))
		}
		if err := clipboard.WriteAll(string(buf)); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg("Copied result JSON to clipboard")
	}
}

func (m AuditModel) showBar() bool {
	return m.spaceExact && m.space > 0
}

func (m AuditModel) percent() float64 {
	if m.space == 0 {
		return 0
	}
	p := float64(m.attempts) / float64(m.space)
	if p > 1 {
		p = 1
	}
	return p
}
