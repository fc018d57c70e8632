package report

import (
	"testing"

	"github.com/crackodile/crackodile/internal/types"
)

func TestShouldFail(t *testing.T) {
	cases := []struct {
		verdict types.Verdict
		failOn  string
		want    bool
	}{
		{types.VerdictCracked, "cracked", true},
		{types.VerdictWeak, "cracked", false},
		{types.VerdictCracked, "weak", true},
		{types.VerdictWeak, "weak", true},
		{types.VerdictFair, "weak", false},
		{types.VerdictCracked, "fair", true},
		{types.VerdictWeak, "fair", true},
		{types.VerdictFair, "fair", true},
		{types.VerdictStrong, "fair", false},
		{types.VerdictWeak, "", true},
		{types.VerdictFair, "", false},
		{types.VerdictFair, "bogus", false},
		{types.VerdictCracked, "bogus", true},
		{types.VerdictStrong, "cracked", false},
	}
	for _, tc := range cases {
		res := types.AuditResult{Verdict: tc.verdict}
		if got := ShouldFail(res, tc.failOn); got != tc.want {
			t.Errorf("ShouldFail(%s, %q) = %v, want %v", tc.verdict, tc.failOn, got, tc.want)
		}
	}
}
