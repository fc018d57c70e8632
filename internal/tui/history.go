package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crackodile/crackodile/internal/audit"
	"github.com/crackodile/crackodile/internal/report"
)

// HistoryModel is the audit history browser: a table of past runs on top
// and a highlighted JSON detail pane for the selected record below.
type HistoryModel struct {
	table    table.Model
	viewport viewport.Model
	records  []audit.Record
	log      *audit.Log

	confirmDelete bool
	quitting      bool
	ready         bool
	width, height int
	statusMessage string
}

const historyStatusHint = "q: quit | j/k: navigate | c: copy JSON | x: delete"

// NewHistoryModel builds the browser over records (newest first, as
// LoadHistory returns them).
func NewHistoryModel(log *audit.Log, records []audit.Record) HistoryModel {
	columns := []table.Column{
		{Title: "When", Width: 19},
		{Title: "Verdict", Width: 9},
		{Title: "Method", Width: 12},
		{Title: "Attempts", Width: 12},
		{Title: "Len", Width: 5},
		{Title: "Entropy", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(historyRows(records)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	t.SetStyles(s)

	return HistoryModel{
		table:         t,
		records:       records,
		log:           log,
		statusMessage: historyStatusHint,
	}
}

func historyRows(records []audit.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Verdict,
			r.Method,
			strconv.FormatUint(r.Attempts, 10),
			strconv.Itoa(r.SecretLength),
			fmt.Sprintf("%.1f", r.EntropyBits),
		}
	}
	return rows
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDelete {
			switch msg.String() {
			case "y", "Y":
				m.confirmDelete = false
				return m.deleteSelected()
			default:
				m.confirmDelete = false
				m.statusMessage = historyStatusHint
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c":
			return m, m.copySelected()
		case "x":
			if len(m.records) > 0 {
				m.confirmDelete = true
				m.statusMessage = "Delete selected record? (y/n)"
			}
			return m, nil
		}

	case statusMsg:
		m.statusMessage = string(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		availableHeight := m.height - 3
		tableHeight := availableHeight / 2
		if tableHeight < 4 {
			tableHeight = 4
		}
		viewportHeight := availableHeight - tableHeight - detailPaneBorderStyle.GetVerticalFrameSize()
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		m.table.SetWidth(m.width)
		m.table.SetHeight(tableHeight)

		if m.viewport.Height == 0 {
			m.viewport = viewport.New(m.width, viewportHeight)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
	}

	if !m.quitting && len(m.records) > 0 {
		m.table, cmd = m.table.Update(msg)
	}
	m.updateDetail()
	return m, cmd
}

func (m *HistoryModel) updateDetail() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		m.viewport.SetContent("")
		return
	}
	buf, err := json.MarshalIndent(m.records[idx], "", "  ")
	if err != nil {
		m.viewport.SetContent(fmt.Sprintf("Error rendering record: %v", err))
		return
	}
	m.viewport.SetContent(report.HighlightJSON(string(buf)))
}

func (m HistoryModel) copySelected() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return func() tea.Msg { return statusMsg("No record selected") }
	}
	record := m.records[idx]
	return func() tea.Msg {
		buf, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return statusMsg(fmt.Sprintf("Copy error: %v", err))
		}
		if err := clipboard.WriteAll(string(buf)); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg("Copied record JSON to clipboard")
	}
}

func (m HistoryModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		m.statusMessage = historyStatusHint
		return m, nil
	}
	if m.log != nil {
		if err := m.log.DeleteRecord(idx); err != nil {
			m.statusMessage = fmt.Sprintf("Delete error: %v", err)
			return m, nil
		}
	}
	m.records = append(m.records[:idx], m.records[idx+1:]...)
	m.table.SetRows(historyRows(m.records))
	if m.table.Cursor() >= len(m.records) && len(m.records) > 0 {
		m.table.SetCursor(len(m.records) - 1)
	}
	m.statusMessage = "Record deleted"
	m.updateDetail()
	return m, nil
}

func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	header := titleStyle.Render(fmt.Sprintf("Audit history (%d records)", len(m.records)))

	var tableRender string
	if len(m.records) == 0 {
		tableRender = lipgloss.Place(
			m.width,
			m.table.Height(),
			lipgloss.Center,
			lipgloss.Center,
			emptyTextStyle.Render("No audit history yet.\n\nRun an audit first."),
		)
	} else {
		tableRender = tableBorderStyle.
			Width(m.width).
			Height(m.table.Height()).
			Render(m.table.View())
	}

	detailRender := detailPaneBorderStyle.
		Width(m.width).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	var timeInfo string
	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.records) {
		timeInfo = fmt.Sprintf("Audited: %s ago", formatDuration(time.Since(m.records[idx].Timestamp)))
	}

	statusContent := m.statusMessage
	if timeInfo != "" {
		spacer := m.width - 4 - lipgloss.Width(statusContent) - lipgloss.Width(timeInfo)
		if spacer < 1 {
			spacer = 1
		}
		statusContent = statusContent + strings.Repeat(" ", spacer) + timeInfo
	}
	statusRender := statusStyle.
		Width(m.width).
		Padding(0, 2).
		Render(statusContent)

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		header,
		tableRender,
		detailRender,
		statusRender,
	)

	if m.confirmDelete {
		popup := popupStyle.
			Width(44).
			Align(lipgloss.Center).
			Render("Delete selected record?\n\ny: delete   n: keep")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
	}

	return mainView
}
