package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
)

// Info describes one wordlist file: entry count, byte size, and a content
// fingerprint used for cache keying and audit records.
type Info struct {
	Path        string `json:"path"`
	Entries     int    `json:"entries"`
	Bytes       int64  `json:"bytes"`
	Fingerprint string `json:"fingerprint"`
}

// Stat reads the whole file once, counting entries and hashing content.
func Stat(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat wordlist %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	sc := bufio.NewScanner(io.TeeReader(f, h))
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	entries := 0
	for sc.Scan() {
		entries++
	}
	if err := sc.Err(); err != nil {
		return Info{}, fmt.Errorf("read wordlist %s: %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("stat wordlist %s: %w", path, err)
	}
	return Info{
		Path:        path,
		Entries:     entries,
		Bytes:       fi.Size(),
		Fingerprint: formatSum(h.Sum64()),
	}, nil
}

// Fingerprint hashes an in-memory wordlist body the same way Stat does.
func Fingerprint(b []byte) string {
	return formatSum(xxhash.Sum64(b))
}

func formatSum(sum uint64) string {
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
