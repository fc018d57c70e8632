package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crackodile/crackodile/internal/types"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAuditModel_ProgressUpdatesCounters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(nil, types.AuditResult{Space: 1000, SpaceExact: true}, 0)

	next, _ := m.Update(progressMsg{attempts: 250, candidate: "abc"})
	am := next.(AuditModel)

	if am.attempts != 250 || am.candidate != "abc" {
		t.Fatalf("attempts=%d candidate=%q", am.attempts, am.candidate)
	}
	if am.percent() != 0.25 {
		t.Fatalf("percent = %v, want 0.25", am.percent())
	}
}

func TestAuditModel_PercentClampsAtOne(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(nil, types.AuditResult{Space: 10, SpaceExact: true}, 0)
	next, _ := m.Update(progressMsg{attempts: 25})
	am := next.(AuditModel)
	if am.percent() != 1 {
		t.Fatalf("percent = %v, want 1", am.percent())
	}
}

func TestAuditModel_CancelKeyCancelsOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	calls := 0
	m := NewAuditModel(func() { calls++ }, types.AuditResult{}, 0)

	next, _ := m.Update(keyMsg("q"))
	am := next.(AuditModel)
	if calls != 1 {
		t.Fatalf("cancel calls = %d, want 1", calls)
	}
	if !am.cancelling {
		t.Fatal("model should be cancelling")
	}

	next, _ = am.Update(keyMsg("q"))
	am = next.(AuditModel)
	if calls != 1 {
		t.Fatalf("second q should not cancel again; calls = %d", calls)
	}
	if am.quitting {
		t.Fatal("model must not quit before the engine reports back")
	}
}

func TestAuditModel_DoneThenQuit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(func() {}, types.AuditResult{Space: 100, SpaceExact: true}, 0)

	res := types.AuditResult{
		Verdict:  types.VerdictWeak,
		Method:   types.MethodEnumeration,
		Search:   &types.SearchOutcome{Status: types.StatusExhausted, Attempts: 100},
		Attempts: 100,
	}
	next, _ := m.Update(doneMsg{result: res})
	am := next.(AuditModel)
	if !am.done {
		t.Fatal("model should be done after doneMsg")
	}
	if am.attempts != 100 {
		t.Fatalf("attempts = %d, want 100", am.attempts)
	}

	next, cmd := am.Update(keyMsg("q"))
	am = next.(AuditModel)
	if !am.quitting {
		t.Fatal("q after done should quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestAuditModel_ViewMasksCandidatesByDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(nil, types.AuditResult{Space: 100, SpaceExact: true}, 500)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	am := next.(AuditModel)
	next, _ = am.Update(progressMsg{attempts: 50, candidate: "zeta"})
	am = next.(AuditModel)

	out := am.View()
	if !strings.Contains(out, "Enumerating candidates") {
		t.Fatalf("expected search view; got: %q", out)
	}
	if !strings.Contains(out, "50 of 100") {
		t.Fatalf("expected attempt counter with denominator; got: %q", out)
	}
	if strings.Contains(out, "zeta") {
		t.Fatal("candidate should be masked by default")
	}
	if !strings.Contains(out, "****") {
		t.Fatalf("expected masked candidate; got: %q", out)
	}
	if !strings.Contains(out, "500 attempts") {
		t.Fatalf("expected budget line; got: %q", out)
	}

	next, _ = am.Update(keyMsg("s"))
	am = next.(AuditModel)
	out = am.View()
	if !strings.Contains(out, "zeta") {
		t.Fatalf("candidate should be visible after toggle; got: %q", out)
	}
}

func TestAuditModel_ViewSummary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(nil, types.AuditResult{Space: 100, SpaceExact: true}, 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	am := next.(AuditModel)

	res := types.AuditResult{
		Verdict:      types.VerdictCracked,
		Method:       types.MethodEnumeration,
		Search:       &types.SearchOutcome{Status: types.StatusFound, Attempts: 42},
		AlphabetSize: 26,
		EntropyBits:  9.4,
		Attempts:     42,
		Duration:     120 * time.Millisecond,
	}
	next, _ = am.Update(doneMsg{result: res})
	am = next.(AuditModel)

	out := am.View()
	if !strings.Contains(out, "CRACKED") {
		t.Fatalf("expected verdict in summary; got: %q", out)
	}
	if !strings.Contains(out, "42 attempts") {
		t.Fatalf("expected attempts in summary; got: %q", out)
	}
	if !strings.Contains(out, "q: quit") {
		t.Fatalf("expected quit hint after done; got: %q", out)
	}
}

func TestAuditModel_ViewBeforeReady(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewAuditModel(nil, types.AuditResult{}, 0)
	if m.View() != "Initializing..." {
		t.Fatalf("View before WindowSizeMsg = %q", m.View())
	}
}
