package report

import (
	"github.com/crackodile/crackodile/internal/types"
)

// ShouldFail reports whether an audit outcome fails the run under the
// given policy. Tiers are cumulative: "fair" also fails weak and cracked
// verdicts. Unknown policies fall back to "weak".
func ShouldFail(res types.AuditResult, failOn string) bool {
	level := map[string]int{"fair": 1, "weak": 2, "cracked": 3}
	th := level[failOn]
	if th == 0 {
		th = 2
	}
	return level[string(res.Verdict)] >= th
}
