package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/brute"
	"github.com/crackodile/crackodile/internal/strength"
	"github.com/crackodile/crackodile/internal/types"
	"github.com/crackodile/crackodile/internal/validate"
	"github.com/crackodile/crackodile/internal/wordlist"
)

// Config controls one audit: the secret under test, the search parameters,
// and the wordlists consulted before enumeration.
type Config struct {
	Secret string
	// Length is the exact candidate length to enumerate; 0 derives it
	// from the secret.
	Length int
	// Digits and Symbols are alphabet.Mode strings; empty means auto.
	Digits  string
	Symbols string
	// Wordlists are concrete file paths, already glob-expanded. Missing
	// files are treated as absence, not errors.
	Wordlists []string
	// Budget caps enumeration attempts; 0 means unbounded.
	Budget        uint64
	ProgressEvery uint64
	OnProgress    func(attempts uint64, candidate string)
}

// prepare derives the frame shared by Run and Estimate: the effective
// length, the composed alphabet, and a result prefilled with the strength
// figures.
func prepare(cfg Config) (types.AuditResult, alphabet.Alphabet, int) {
	length := cfg.Length
	if length <= 0 {
		length = len(cfg.Secret)
	}
	alpha := alphabet.Compose(cfg.Secret, mode(cfg.Digits), mode(cfg.Symbols))

	res := types.AuditResult{
		Method:       types.MethodNone,
		Alphabet:     alpha.String(),
		AlphabetSize: alpha.Len(),
		Length:       length,
		Wordlists:    len(cfg.Wordlists),
		Expressible:  validate.Expressible(cfg.Secret, alpha.String()) && len(cfg.Secret) == length,
		ShannonBits:  strength.ShannonBits(cfg.Secret),
	}
	res.Space, res.SpaceExact = strength.SpaceSize(alpha.Len(), length)
	res.EntropyBits = strength.EntropyBits(alpha.Len(), length)
	return res, alpha, length
}

// Estimate computes the figures an audit would report without consulting
// wordlists or enumerating. The verdict grades charset entropy alone.
func Estimate(cfg Config) types.AuditResult {
	res, _, _ := prepare(cfg)
	res.Wordlists = 0
	res.Verdict = strength.Grade(res.EntropyBits)
	return res
}

// Run executes the audit: wordlist lookup first, exhaustive enumeration
// second. A wordlist hit short-circuits the search engine entirely. Only
// genuine wordlist I/O failures are errors; budget exhaustion, cancellation,
// and a searched-out space are ordinary results.
func Run(ctx context.Context, cfg Config) (types.AuditResult, error) {
	started := time.Now()
	res, alpha, length := prepare(cfg)

	match, hit, err := wordlist.Any(cfg.Secret, cfg.Wordlists)
	if err != nil {
		return res, fmt.Errorf("wordlist lookup: %w", err)
	}
	if hit {
		m := match
		res.Match = &m
		res.Method = types.MethodWordlist
		res.Verdict = types.VerdictCracked
		res.Duration = time.Since(started)
		return res, nil
	}

	out := brute.Search(ctx, cfg.Secret, alpha, brute.Options{
		Length:        length,
		Budget:        cfg.Budget,
		ProgressEvery: cfg.ProgressEvery,
		OnProgress:    cfg.OnProgress,
	})
	res.Search = &out
	res.Attempts = out.Attempts
	res.Method = types.MethodEnumeration
	if out.Found() {
		res.Verdict = types.VerdictCracked
	} else {
		res.Verdict = strength.Grade(res.EntropyBits)
	}
	res.Duration = time.Since(started)
	return res, nil
}

func mode(s string) alphabet.Mode {
	if s == "" {
		return alphabet.ModeAuto
	}
	return alphabet.Mode(s)
}
