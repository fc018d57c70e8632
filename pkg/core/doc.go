// Package core provides a small, stable facade over crackodile's internal
// audit engine for external integrations. It deliberately re-exports a narrow
// API surface so other tools can depend on a stable import path without
// reaching into internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Secret: secret, Wordlists: lists}
//	res, err := core.Audit(ctx, cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
