package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/crackodile/crackodile/internal/types"
)

// LastAudit stores the most recent audit result for quick re-display
// without re-running the search.
type LastAudit struct {
	Result    types.AuditResult `json:"result"`
	Timestamp time.Time         `json:"timestamp"`
}

func resultPath(dir string) string {
	return filepath.Join(cacheDir(dir), "last_audit.json")
}

// SaveResult caches res as the latest audit.
func SaveResult(dir string, res types.AuditResult) error {
	if err := os.MkdirAll(cacheDir(dir), 0o700); err != nil {
		return err
	}
	last := LastAudit{
		Result:    res,
		Timestamp: time.Now(),
	}
	b, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(resultPath(dir), b, 0o600)
}

// LoadResult loads the latest cached audit.
func LoadResult(dir string) (LastAudit, error) {
	var last LastAudit
	f, err := os.ReadFile(resultPath(dir))
	if err != nil {
		return last, err
	}
	if err := json.Unmarshal(f, &last); err != nil {
		return last, err
	}
	return last, nil
}
