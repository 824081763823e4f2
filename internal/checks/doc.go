// Package checks contains the static exception checks. Each check walks a
// parsed Python syntax tree and emits findings for constructs that will, or
// may, raise at runtime. Checks are registered in checks.go and addressable
// by ID so the engine can enable or disable them individually.
package checks
