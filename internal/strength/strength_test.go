package strength

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crackodile/crackodile/internal/types"
)

func TestSpaceSize(t *testing.T) {
	cases := []struct {
		alpha, length int
		want          uint64
		exact         bool
	}{
		{2, 2, 4, true},
		{26, 3, 17576, true},
		{10, 3, 1000, true},
		{68, 1, 68, true},
		{26, 0, 1, true},
		{0, 0, 1, true},
		{0, 5, 0, true},
		{10, 19, 10_000_000_000_000_000_000, true},
		{10, 20, math.MaxUint64, false},
		{26, 14, math.MaxUint64, false},
	}
	for _, c := range cases {
		got, exact := SpaceSize(c.alpha, c.length)
		assert.Equal(t, c.want, got, "SpaceSize(%d, %d)", c.alpha, c.length)
		assert.Equal(t, c.exact, exact, "SpaceSize(%d, %d) exactness", c.alpha, c.length)
	}
}

func TestEntropyBits(t *testing.T) {
	assert.InDelta(t, 14.1, EntropyBits(26, 3), 0.01)
	assert.InDelta(t, 8.0, EntropyBits(2, 8), 1e-9)
	assert.Zero(t, EntropyBits(1, 5))
	assert.Zero(t, EntropyBits(0, 3))
	assert.Zero(t, EntropyBits(26, 0))
}

func TestShannonBits(t *testing.T) {
	assert.Zero(t, ShannonBits(""))
	assert.Zero(t, ShannonBits("aaaa"))
	assert.InDelta(t, 1.0, ShannonBits("abab"), 1e-9)
	assert.InDelta(t, 2.0, ShannonBits("abcd"), 1e-9)
}

func TestRank(t *testing.T) {
	r, ok := Rank("aa", "ab")
	require.True(t, ok)
	assert.Equal(t, uint64(1), r)

	r, ok = Rank("ab", "ab")
	require.True(t, ok)
	assert.Equal(t, uint64(2), r)

	r, ok = Rank("998", "0123456789")
	require.True(t, ok)
	assert.Equal(t, uint64(999), r)

	r, ok = Rank("", "abc")
	require.True(t, ok)
	assert.Equal(t, uint64(1), r)

	_, ok = Rank("aZ", "ab")
	assert.False(t, ok, "character outside the alphabet has no rank")

	_, ok = Rank(strings.Repeat("z", 14), "abcdefghijklmnopqrstuvwxyz")
	assert.False(t, ok, "rank beyond uint64 must not wrap")
}

func TestTimeToSearch(t *testing.T) {
	assert.Equal(t, 100*time.Second, TimeToSearch(1000, 10))
	assert.Equal(t, time.Second, TimeToSearch(1_000_000, 1e6))
	assert.Equal(t, maxDuration, TimeToSearch(math.MaxUint64, 1))
	assert.Equal(t, maxDuration, TimeToSearch(10, 0))
}

func TestGrade(t *testing.T) {
	assert.Equal(t, types.VerdictWeak, Grade(0))
	assert.Equal(t, types.VerdictWeak, Grade(35.9))
	assert.Equal(t, types.VerdictFair, Grade(36))
	assert.Equal(t, types.VerdictFair, Grade(59.9))
	assert.Equal(t, types.VerdictStrong, Grade(60))
	assert.Equal(t, types.VerdictStrong, Grade(128))
}

func TestRates(t *testing.T) {
	rates := Rates()
	require.NotEmpty(t, rates)
	for i := 1; i < len(rates); i++ {
		assert.Greater(t, rates[i].PerSecond, rates[i-1].PerSecond, "rates are ordered slowest first")
	}
}
