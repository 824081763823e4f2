package core

import (
	"context"

	"github.com/pythrow/pythrow/internal/engine"
	"github.com/pythrow/pythrow/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Finding = types.Finding
type DynamicResult = types.DynamicResult
type Report = types.Report

// Analyze is the stable entrypoint for other programs. It runs the static
// checks over cfg.Root and, unless cfg.NoDynamic is set, executes the entry
// file and merges the dynamic outcome into the result.
func Analyze(ctx context.Context, cfg Config) ([]Finding, error) {
	return engine.Analyze(ctx, cfg)
}

// AnalyzeWithStats runs an analysis and returns per-file reports plus
// execution statistics alongside the flat findings slice.
func AnalyzeWithStats(ctx context.Context, cfg Config) (engine.Result, error) {
	return engine.AnalyzeWithStats(ctx, cfg)
}

// CheckIDs returns the list of registered static check IDs.
// This is exposed for convenience to avoid importing internals directly.
func CheckIDs() []string { return engine.CheckIDs() }
