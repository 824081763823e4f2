// Package pythrow provides the command-line interface for the pythrow tool.
// It configures subcommands (analyze, static, run, baseline, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/pythrow/pythrow/cmd/pythrow"
//	func main() { pythrow.Execute() }
package pythrow
