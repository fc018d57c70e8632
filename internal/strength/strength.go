package strength

import (
	"math"
	"time"

	"github.com/crackodile/crackodile/internal/types"
)

// Grade thresholds in charset-entropy bits. Below Weak the space is small
// enough for a casual offline attack; Strong clears the usual 60-bit bar.
const (
	weakBits = 36
	fairBits = 60
)

// SpaceSize computes alphabetLen^length in uint64, reporting exact=false
// when the product overflows. By convention anything to the power 0 is 1,
// and an empty alphabet spans no candidates for positive lengths.
func SpaceSize(alphabetLen, length int) (uint64, bool) {
	if length <= 0 {
		return 1, true
	}
	if alphabetLen <= 0 {
		return 0, true
	}
	base := uint64(alphabetLen)
	size := uint64(1)
	for i := 0; i < length; i++ {
		if size > math.MaxUint64/base {
			return math.MaxUint64, false
		}
		size *= base
	}
	return size, true
}

// EntropyBits is the charset entropy of an exhaustive search: length *
// log2(alphabetLen). Zero when either dimension is degenerate.
func EntropyBits(alphabetLen, length int) float64 {
	if alphabetLen <= 1 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetLen))
}

// ShannonBits is the entropy of s's own character distribution, per
// character. Repeated-character secrets score near zero regardless of
// their alphabet.
func ShannonBits(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	H := 0.0
	for _, c := range count {
		p := float64(c) / float64(n)
		H += -p * math.Log2(p)
	}
	return H
}

// Rank computes the 1-based lexicographic rank of target within the space
// of len(target)-character strings over chars. It reports ok=false when
// target contains a character outside chars or the rank overflows uint64.
// An enumeration that finds target does so on exactly this attempt.
func Rank(target, chars string) (uint64, bool) {
	base := uint64(len(chars))
	if base == 0 {
		return 0, target == ""
	}
	pos := make(map[byte]uint64, len(chars))
	for i := 0; i < len(chars); i++ {
		pos[chars[i]] = uint64(i)
	}
	rank := uint64(0)
	for i := 0; i < len(target); i++ {
		p, ok := pos[target[i]]
		if !ok {
			return 0, false
		}
		if rank > (math.MaxUint64-p)/base {
			return 0, false
		}
		rank = rank*base + p
	}
	if rank == math.MaxUint64 {
		return 0, false
	}
	return rank + 1, true
}

// GuessRate is a reference enumeration throughput used for projections.
type GuessRate struct {
	Name      string
	PerSecond float64
}

// Rates returns the reference rates shown in reports, slowest first.
func Rates() []GuessRate {
	return []GuessRate{
		{Name: "online, throttled", PerSecond: 10},
		{Name: "online, unthrottled", PerSecond: 1e4},
		{Name: "offline, fast hash", PerSecond: 1e10},
	}
}

// maxDuration is the largest time.Duration, used to saturate projections.
const maxDuration = time.Duration(math.MaxInt64)

// TimeToSearch projects how long trying the whole space takes at perSecond
// guesses per second, saturating at the maximum representable duration.
func TimeToSearch(space uint64, perSecond float64) time.Duration {
	if perSecond <= 0 {
		return maxDuration
	}
	secs := float64(space) / perSecond
	if secs >= float64(maxDuration)/float64(time.Second) {
		return maxDuration
	}
	return time.Duration(secs * float64(time.Second))
}

// Grade maps charset entropy to a coarse verdict.
func Grade(entropyBits float64) types.Verdict {
	switch {
	case entropyBits < weakBits:
		return types.VerdictWeak
	case entropyBits < fairBits:
		return types.VerdictFair
	default:
		return types.VerdictStrong
	}
}
