package types

import "time"

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes a potential exception site detected at a path and line,
// including the check ID, severity, and confidence in [0,1].
type Finding struct {
	Path       string   `json:"path"`
	Line       int      `json:"line"`
	Column     int      `json:"column,omitempty"` // Column offset (0 if unknown)
	Check      string   `json:"check"`
	Severity   Severity `json:"severity"`
	Confidence float64  `json:"confidence"`
	Message    string   `json:"message"`
	Source     string   `json:"source,omitempty"` // Offending source line, for rendering
}

// DynamicResult is the outcome of one bounded execution of a target file.
// Exactly one of three outcomes holds: completed (Threw and TimedOut both
// false), threw, or timed out.
type DynamicResult struct {
	Threw      bool          `json:"threw"`
	ExcType    string        `json:"exc_type,omitempty"`
	ExcMessage string        `json:"exc_message,omitempty"`
	TimedOut   bool          `json:"timed_out"`
	Stdout     string        `json:"stdout"`
	Stderr     string        `json:"stderr,omitempty"`
	ExitCode   int           `json:"exit_code"`
	Duration   time.Duration `json:"duration"`
}

// Report merges static findings and the optional dynamic result for one
// analysis run. Dynamic is nil when no execution was performed.
type Report struct {
	Path     string         `json:"path"`
	Findings []Finding      `json:"static_findings"`
	Dynamic  *DynamicResult `json:"dynamic_result,omitempty"`
}
