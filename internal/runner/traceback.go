package runner

import (
	"regexp"
	"strings"
)

// The final line of a CPython traceback: "ValueError: boom" or a bare
// exception name like "KeyboardInterrupt".
var reExcLine = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)(?:: ?(.*))?$`)

// ParseTraceback extracts the exception type and message from interpreter
// stderr. When the output does not look like a traceback, the whole trimmed
// stderr becomes the message so nothing is silently dropped.
func ParseTraceback(stderr string) (excType, message string) {
	lines := strings.Split(stderr, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRight(lines[i], " \t\r")
		if line == "" {
			continue
		}
		// Continuation and location lines are indented; the exception line
		// starts at column zero.
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			break
		}
		m := reExcLine.FindStringSubmatch(line)
		if m == nil || !looksLikeExcName(m[1]) {
			break
		}
		return m[1], m[2]
	}
	return "", strings.TrimSpace(stderr)
}

// looksLikeExcName filters out non-exception stderr like "python3: can't
// open file". Exception classes are capitalized by convention; qualified
// names (pkg.MyError) get a pass via the dot.
func looksLikeExcName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		return true
	}
	return strings.Contains(name, ".")
}
