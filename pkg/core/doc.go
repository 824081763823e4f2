// Package core provides a small, stable facade over pythrow's internal engine
// for external integrations. It deliberately re-exports a narrow API surface
// so editor plugins and CI tooling can depend on a stable import path without
// reaching into internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "app.py"}
//	findings, err := core.Analyze(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
