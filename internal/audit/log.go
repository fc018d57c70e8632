package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crackodile/crackodile/internal/types"
	"github.com/crackodile/crackodile/internal/wordlist"
)

// Record is one audit outcome as persisted to the history log. The secret
// itself is never stored; only its length and a redaction marker are.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	AuditID      string    `json:"audit_id"`
	Secret       string    `json:"secret"`
	SecretLength int       `json:"secret_length"`
	Verdict      string    `json:"verdict"`
	Method       string    `json:"method"`
	Status       string    `json:"status,omitempty"`
	Attempts     uint64    `json:"attempts"`
	Duration     string    `json:"duration"`
	AlphabetSize int       `json:"alphabet_size"`
	Length       int       `json:"length"`
	Space        uint64    `json:"space"`
	SpaceExact   bool      `json:"space_exact"`
	EntropyBits  float64   `json:"entropy_bits"`
	MatchSource  string    `json:"match_source,omitempty"`
	MatchLine    int       `json:"match_line,omitempty"`
	Wordlists    []string  `json:"wordlists,omitempty"`
}

// Log is an append-only JSONL history of audit outcomes.
type Log struct {
	logPath string
}

// NewLog stores history under dir, or under the user's config directory
// when dir is empty.
func NewLog(dir string) *Log {
	if dir == "" {
		dir = defaultDir()
	}
	return &Log{logPath: filepath.Join(dir, "history.jsonl")}
}

func defaultDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "."
	}
	return filepath.Join(base, "crackodile")
}

// Path returns the log file location.
func (l *Log) Path() string { return l.logPath }

// LoadHistory returns all records, newest first. Corrupt lines are skipped.
func (l *Log) LoadHistory() ([]Record, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogAudit appends one record. The log file is owner-only since records
// carry secret metadata, though never the secret itself.
func (l *Log) LogAudit(record Record) error {
	if record.AuditID == "" {
		record.AuditID = fmt.Sprintf("audit_%d", time.Now().Unix())
	}

	if err := os.MkdirAll(filepath.Dir(l.logPath), 0o700); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write history record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at index in newest-first order.
func (l *Log) DeleteRecord(index int) error {
	records, err := l.LoadHistory()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}

	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(l.logPath)
	if err != nil {
		return fmt.Errorf("failed to rewrite history log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write history record: %w", err)
		}
	}
	return nil
}

// Truncate removes the whole history log. A missing log is fine.
func (l *Log) Truncate() error {
	if err := os.Remove(l.logPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// NewRecord builds a history record from an audit result. The secret value
// is replaced by a redaction marker before it ever reaches the log.
func NewRecord(res types.AuditResult, secret string, lists []wordlist.Info) Record {
	rec := Record{
		Timestamp:    time.Now(),
		SecretLength: len(secret),
		Verdict:      string(res.Verdict),
		Method:       string(res.Method),
		Attempts:     res.Attempts,
		Duration:     res.Duration.String(),
		AlphabetSize: res.AlphabetSize,
		Length:       res.Length,
		Space:        res.Space,
		SpaceExact:   res.SpaceExact,
		EntropyBits:  res.EntropyBits,
	}
	if secret != "" {
		rec.Secret = "[REDACTED]"
	}
	if res.Match != nil {
		rec.MatchSource = res.Match.Source
		rec.MatchLine = res.Match.Line
	}
	if res.Search != nil {
		rec.Status = string(res.Search.Status)
	}
	for _, in := range lists {
		rec.Wordlists = append(rec.Wordlists, fmt.Sprintf("%s@%s", in.Path, in.Fingerprint))
	}
	return rec
}
