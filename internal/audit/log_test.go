package audit

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crackodile/crackodile/internal/types"
	"github.com/crackodile/crackodile/internal/wordlist"
)

func TestAppendAndLoadNewestFirst(t *testing.T) {
	l := NewLog(t.TempDir())
	for _, id := range []string{"audit_1", "audit_2", "audit_3"} {
		require.NoError(t, l.LogAudit(Record{AuditID: id, Timestamp: time.Now()}))
	}

	records, err := l.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "audit_3", records[0].AuditID)
	assert.Equal(t, "audit_1", records[2].AuditID)
}

func TestDeleteRecord(t *testing.T) {
	l := NewLog(t.TempDir())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, l.LogAudit(Record{AuditID: id}))
	}

	// Index 1 in newest-first order is "b".
	require.NoError(t, l.DeleteRecord(1))
	records, err := l.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].AuditID)
	assert.Equal(t, "a", records[1].AuditID)

	assert.Error(t, l.DeleteRecord(5))
}

func TestCorruptLinesSkipped(t *testing.T) {
	l := NewLog(t.TempDir())
	require.NoError(t, l.LogAudit(Record{AuditID: "good"}))
	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("{not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, l.LogAudit(Record{AuditID: "after"}))

	records, err := l.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "after", records[0].AuditID)
	assert.Equal(t, "good", records[1].AuditID)
}

func TestNewRecordRedactsSecret(t *testing.T) {
	res := types.AuditResult{
		Verdict:      types.VerdictCracked,
		Method:       types.MethodWordlist,
		Match:        &types.DictionaryMatch{Source: "10k.txt", Line: 7},
		AlphabetSize: 26,
		Length:       6,
	}
	rec := NewRecord(res, "hunter2", []wordlist.Info{{Path: "10k.txt", Fingerprint: "abcd"}})

	assert.Equal(t, "[REDACTED]", rec.Secret)
	assert.NotContains(t, rec.Wordlists[0], "hunter2")
	assert.Equal(t, 7, rec.SecretLength)
	assert.Equal(t, "10k.txt", rec.MatchSource)
	assert.Equal(t, 7, rec.MatchLine)
	assert.Equal(t, "10k.txt@abcd", rec.Wordlists[0])
}

func TestNewRecordSearchStatus(t *testing.T) {
	res := types.AuditResult{
		Verdict:  types.VerdictStrong,
		Method:   types.MethodEnumeration,
		Search:   &types.SearchOutcome{Status: types.StatusBudgetExceeded, Attempts: 5_000_000},
		Attempts: 5_000_000,
	}
	rec := NewRecord(res, "s3cr3t!", nil)
	assert.Equal(t, "budget_exceeded", rec.Status)
	assert.Equal(t, uint64(5_000_000), rec.Attempts)
	assert.Empty(t, rec.Wordlists)
}

func TestTruncate(t *testing.T) {
	l := NewLog(t.TempDir())
	require.NoError(t, l.LogAudit(Record{AuditID: "x"}))
	require.NoError(t, l.Truncate())
	_, err := l.LoadHistory()
	assert.Error(t, err, "missing log surfaces as an open error")
	assert.NoError(t, l.Truncate(), "truncating a missing log is fine")
}
