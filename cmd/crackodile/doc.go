// Package crackodile provides the command-line interface for the Crackodile
// tool. It configures subcommands (audit, estimate, wordlist, history, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/crackodile/crackodile/cmd/crackodile"
//	func main() { crackodile.Execute() }
package crackodile
