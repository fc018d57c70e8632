// Package engine sequences a full guessability audit: wordlist lookup first,
// exhaustive enumeration second, with strength figures derived along the way.
// This package is internal; external consumers should use the stable facade
// in pkg/core.
package engine
