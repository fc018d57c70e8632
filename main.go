package main

import "github.com/crackodile/crackodile/cmd/crackodile"

func main() { crackodile.Execute() }
