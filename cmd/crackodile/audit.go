package crackodile

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/audit"
	"github.com/crackodile/crackodile/internal/cache"
	"github.com/crackodile/crackodile/internal/config"
	"github.com/crackodile/crackodile/internal/engine"
	"github.com/crackodile/crackodile/internal/report"
	"github.com/crackodile/crackodile/internal/tui"
	"github.com/crackodile/crackodile/internal/types"
	"github.com/crackodile/crackodile/internal/update"
	"github.com/crackodile/crackodile/internal/wordlist"
	"github.com/spf13/cobra"
)

var (
	flagStdin         bool
	flagLength        int
	flagDigits        string
	flagSymbols       string
	flagWordlists     []string
	flagBudget        uint64
	flagProgressEvery uint64
	flagTUI           bool
	flagTable         bool
	flagText          bool
	flagNoHistory     bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit how guessable a secret is",
		RunE:  runAudit,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagStdin, "stdin", false, "read the secret from stdin (for piping)")
	cmd.Flags().IntVar(&flagLength, "length", 0, "candidate length to enumerate (0 = secret length)")
	cmd.Flags().StringVar(&flagDigits, "digits", "", "digits in the alphabet: auto|on|off")
	cmd.Flags().StringVar(&flagSymbols, "symbols", "", "symbols in the alphabet: auto|on|off")
	cmd.Flags().StringSliceVar(&flagWordlists, "wordlist", nil, "wordlist file or glob (repeatable)")
	cmd.Flags().Uint64Var(&flagBudget, "budget", 0, "max enumeration attempts (0 = unbounded)")
	cmd.Flags().Uint64Var(&flagProgressEvery, "progress-every", 0, "print progress every N attempts (0 = off)")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "interactive progress view")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in table format with borders")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text format (default)")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not record this audit in the history log")
}

func runAudit(cmd *cobra.Command, _ []string) error {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	cwd, _ := os.Getwd()
	if c, err := config.LoadLocal(cwd); err == nil {
		lcfg = c
	}

	digits := pickString(flagDigits, lcfg.Digits, gcfg.Digits)
	symbols := pickString(flagSymbols, lcfg.Symbols, gcfg.Symbols)
	for _, m := range []string{digits, symbols} {
		if m != "" && !alphabet.Mode(m).Valid() {
			return fmt.Errorf("invalid category mode %q (want auto, on or off)", m)
		}
	}

	// Resolve budget precedence: CLI > local > global
	budget := flagBudget
	if budget == 0 {
		if lcfg.Budget != nil && *lcfg.Budget > 0 {
			budget = uint64(*lcfg.Budget)
		} else if gcfg.Budget != nil && *gcfg.Budget > 0 {
			budget = uint64(*gcfg.Budget)
		}
	}
	progressEvery := flagProgressEvery
	if progressEvery == 0 {
		if lcfg.ProgressEvery != nil && *lcfg.ProgressEvery > 0 {
			progressEvery = uint64(*lcfg.ProgressEvery)
		} else if gcfg.ProgressEvery != nil && *gcfg.ProgressEvery > 0 {
			progressEvery = uint64(*gcfg.ProgressEvery)
		}
	}

	patterns := flagWordlists
	if len(patterns) == 0 {
		if len(lcfg.Wordlists) > 0 {
			patterns = lcfg.Wordlists
		} else {
			patterns = gcfg.Wordlists
		}
	}
	paths, err := wordlist.Expand(patterns)
	if err != nil {
		return err
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	// Friendly banner before prompting
	if !flagJSON {
		if !pickBool(flagNoUpdateCheck, lcfg.NoUpdateCheck, gcfg.NoUpdateCheck) {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'crackodile --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			// invoke in-band self update
			if err := selfUpdate(); err == nil {
				_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
	}

	secret, err := readSecret(flagStdin)
	if err != nil {
		return err
	}

	cfg := engine.Config{
		Secret:        secret,
		Length:        pickInt(flagLength, lcfg.Length, gcfg.Length),
		Digits:        digits,
		Symbols:       symbols,
		Wordlists:     paths,
		Budget:        budget,
		ProgressEvery: progressEvery,
	}

	// SIGINT cancels cooperatively; the engine reports it as an outcome.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var res types.AuditResult
	if flagTUI {
		res, err = tui.RunAudit(ctx, cfg)
	} else {
		if progressEvery > 0 && !flagJSON {
			plan := engine.Estimate(cfg)
			cfg.OnProgress = func(attempts uint64, _ string) {
				if plan.SpaceExact && plan.Space > 0 {
					pct := float64(attempts) / float64(plan.Space) * 100
					_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", attempts, plan.Space, pct)
				} else {
					_, _ = fmt.Fprintf(os.Stderr, "\r%d attempts", attempts)
				}
			}
		}
		res, err = engine.Run(ctx, cfg)
		if cfg.OnProgress != nil && res.Attempts > 0 {
			_, _ = fmt.Fprintln(os.Stderr)
		}
	}
	if err != nil {
		return fmt.Errorf("audit error: %w", err)
	}

	format := ""
	switch {
	case flagJSON:
		format = "json"
	case flagTable:
		format = "table"
	case flagText:
		format = "text"
	default:
		format = pickString("", lcfg.Output, gcfg.Output)
	}
	if err := report.Render(os.Stdout, res, format, report.PrintOptions{NoColor: noColor}); err != nil {
		return err
	}

	// Record the outcome unless asked not to. Failures here never fail the
	// audit itself.
	if !pickBool(flagNoHistory, lcfg.NoHistory, gcfg.NoHistory) {
		rec := audit.NewRecord(res, secret, statAll(paths))
		if err := audit.NewLog("").LogAudit(rec); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "history warning:", err)
		}
	}

	// Cache for `history --last`. The matched line is the secret itself on a
	// wordlist hit, so it never lands on disk raw.
	cached := res
	if cached.Match != nil {
		m := *cached.Match
		m.Text = "[REDACTED]"
		cached.Match = &m
	}
	_ = cache.SaveResult("", cached)

	failOn := flagFailOn
	if !cmd.Flags().Changed("fail-on") {
		if v := pickString("", lcfg.FailOn, gcfg.FailOn); v != "" {
			failOn = v
		}
	}
	if report.ShouldFail(res, failOn) {
		os.Exit(1)
	}
	return nil
}
