package core

import (
	"context"

	"github.com/crackodile/crackodile/internal/engine"
	"github.com/crackodile/crackodile/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = types.AuditResult
type Outcome = types.SearchOutcome
type Match = types.DictionaryMatch

// Audit is the stable entrypoint for other programs: wordlist lookup, then
// exhaustive enumeration, honoring ctx for cancellation.
func Audit(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}

// Estimate computes the strength figures an audit would report without
// consulting wordlists or enumerating.
func Estimate(cfg Config) Result { return engine.Estimate(cfg) }
