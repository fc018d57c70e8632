package types

import "time"

// SearchStatus is the terminal state of one enumeration run.
type SearchStatus string

const (
	StatusFound          SearchStatus = "found"
	StatusExhausted      SearchStatus = "exhausted"
	StatusBudgetExceeded SearchStatus = "budget_exceeded"
	StatusCancelled      SearchStatus = "cancelled"
)

// Verdict is a coarse-grained guessability grade for a secret.
type Verdict string

const (
	VerdictCracked Verdict = "cracked"
	VerdictWeak    Verdict = "weak"
	VerdictFair    Verdict = "fair"
	VerdictStrong  Verdict = "strong"
)

// Method names the stage that produced a verdict.
type Method string

const (
	MethodWordlist    Method = "wordlist"
	MethodEnumeration Method = "enumeration"
	MethodNone        Method = "none"
)

// SearchOutcome is the result of one enumeration run: how it stopped and how
// many candidates were tried. Attempts is the count at termination: the
// matched candidate's rank for StatusFound, the full space size for a natural
// StatusExhausted, and 0 only for the degenerate empty-alphabet case.
type SearchOutcome struct {
	Status   SearchStatus `json:"status"`
	Attempts uint64       `json:"attempts"`
}

// Found reports whether the outcome is a successful match.
func (o SearchOutcome) Found() bool { return o.Status == StatusFound }

// DictionaryMatch records where a wordlist lookup hit: the source file, the
// 1-based line number, and the matched line text.
type DictionaryMatch struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
}

// AuditResult is the assembled outcome of a full audit: dictionary stage,
// enumeration stage, and the derived strength figures.
type AuditResult struct {
	Verdict      Verdict          `json:"verdict"`
	Method       Method           `json:"method"`
	Match        *DictionaryMatch `json:"match,omitempty"`
	Search       *SearchOutcome   `json:"search,omitempty"`
	Alphabet     string           `json:"alphabet"`
	AlphabetSize int              `json:"alphabet_size"`
	Length       int              `json:"length"`
	Space        uint64           `json:"space"`          // |alphabet|^length; saturated when SpaceExact is false
	SpaceExact   bool             `json:"space_exact"`    // false when the space size overflows uint64
	EntropyBits  float64          `json:"entropy_bits"`   // length * log2(|alphabet|)
	ShannonBits  float64          `json:"shannon_bits"`   // entropy of the secret's own character distribution
	Expressible  bool             `json:"expressible"`    // target can be produced over the alphabet
	Attempts     uint64           `json:"attempts"`       // total candidates tried (0 on a wordlist hit)
	Duration     time.Duration    `json:"duration_ns"`    // wall clock for the whole audit
	Wordlists    int              `json:"wordlists"`      // number of wordlist files consulted
}

// Cracked reports whether either stage discovered the secret.
func (r AuditResult) Cracked() bool { return r.Verdict == VerdictCracked }
