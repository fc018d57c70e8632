package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crackodile/crackodile/internal/audit"
	"github.com/crackodile/crackodile/internal/engine"
	"github.com/crackodile/crackodile/internal/types"
)

// defaultProgressEvery keeps the live view moving when the caller didn't
// pick a cadence. Updates land often enough to animate without flooding
// the program's message queue.
const defaultProgressEvery = 25000

// RunAudit executes the audit under the live progress display. Cancelling
// from the keyboard ends the search cooperatively; the cancelled outcome is
// returned like any other.
func RunAudit(ctx context.Context, cfg engine.Config) (types.AuditResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = defaultProgressEvery
	}

	plan := engine.Estimate(cfg)
	m := NewAuditModel(cancel, plan, cfg.Budget)
	p := tea.NewProgram(m, tea.WithAltScreen())

	prev := cfg.OnProgress
	cfg.OnProgress = func(attempts uint64, candidate string) {
		if prev != nil {
			prev(attempts, candidate)
		}
		p.Send(progressMsg{attempts: attempts, candidate: candidate})
	}

	go func() {
		res, err := engine.Run(ctx, cfg)
		p.Send(doneMsg{result: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return types.AuditResult{}, fmt.Errorf("error running TUI: %w", err)
	}
	fm := final.(AuditModel)
	return fm.result, fm.err
}

// RunHistory opens the interactive history browser.
func RunHistory(log *audit.Log, records []audit.Record) error {
	m := NewHistoryModel(log, records)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
