package brute

import (
	"context"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/types"
)

// Options controls one enumeration run.
type Options struct {
	// Length is the exact candidate length. Zero enumerates the single
	// empty candidate.
	Length int
	// Budget caps the number of candidates tried; 0 means unbounded.
	Budget uint64
	// ProgressEvery invokes OnProgress whenever attempts is a multiple of
	// it; 0 disables progress entirely.
	ProgressEvery uint64
	// OnProgress receives the current attempt count and candidate. It runs
	// synchronously on the search goroutine and must return promptly.
	OnProgress func(attempts uint64, candidate string)
}

// Search enumerates every string of opts.Length over alpha in lexicographic
// order (leftmost position most significant), comparing each candidate to
// target. It runs until a match, the budget, a cancellation, or the end of
// the space, whichever comes first. Attempts count from 1, so on a match
// the count equals the candidate's 1-based rank.
//
// Cancellation is cooperative: ctx is polled once per candidate, after the
// comparison, so a pre-cancelled context still tries the first candidate.
func Search(ctx context.Context, target string, alpha alphabet.Alphabet, opts Options) types.SearchOutcome {
	length := opts.Length
	if length < 0 {
		length = 0
	}
	chars := alpha.String()
	if len(chars) == 0 && length > 0 {
		// Nothing can be enumerated; the space is empty.
		return types.SearchOutcome{Status: types.StatusExhausted}
	}

	idx := make([]int, length)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = chars[0]
	}

	var attempts uint64
	for {
		attempts++
		if string(buf) == target {
			return types.SearchOutcome{Status: types.StatusFound, Attempts: attempts}
		}
		if opts.ProgressEvery > 0 && opts.OnProgress != nil && attempts%opts.ProgressEvery == 0 {
			opts.OnProgress(attempts, string(buf))
		}
		if opts.Budget > 0 && attempts == opts.Budget {
			return types.SearchOutcome{Status: types.StatusBudgetExceeded, Attempts: attempts}
		}
		if ctx.Err() != nil {
			return types.SearchOutcome{Status: types.StatusCancelled, Attempts: attempts}
		}

		// Advance the odometer: rightmost position first, carrying left.
		// A carry past position 0 means the space is done.
		i := length - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(chars) {
				buf[i] = chars[idx[i]]
				break
			}
			idx[i] = 0
			buf[i] = chars[0]
			i--
		}
		if i < 0 {
			return types.SearchOutcome{Status: types.StatusExhausted, Attempts: attempts}
		}
	}
}
