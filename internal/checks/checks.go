package checks

import (
	"fmt"
	"sort"

	"github.com/go-python/gpython/ast"

	"github.com/pythrow/pythrow/internal/types"
)

// Check inspects a parsed tree and returns zero or more findings.
type Check func(path string, tree ast.Ast, src []byte) []types.Finding

var all = []Check{
	RaiseStatement,
	DivByLiteralZero,
	ModByLiteralZero,
	PossibleDivByZero,
	AssertStatement,
}

// RunAll runs every registered check against the tree and returns the merged
// findings ordered by line.
func RunAll(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	for _, c := range all {
		out = append(out, c(path, tree, src)...)
	}
	out = dedupe(out)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line == out[j].Line {
			return out[i].Check < out[j].Check
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// IDs lists every check ID that can appear in a finding, including the
// synthetic syntax-error ID emitted when parsing fails.
func IDs() []string {
	return []string{
		"definite-raise",
		"definite-div-zero",
		"definite-mod-zero",
		"possible-div-zero",
		"bare-assert",
		"syntax-error",
	}
}

// SyntaxError converts a parse failure into a finding so invalid files still
// show up in reports instead of aborting the whole run.
func SyntaxError(path, msg string) types.Finding {
	return types.Finding{
		Path:       path,
		Check:      "syntax-error",
		Severity:   types.SevHigh,
		Confidence: 1.0,
		Message:    fmt.Sprintf("syntax error in code: %s", msg),
	}
}

func dedupe(findings []types.Finding) []types.Finding {
	seen := make(map[string]bool)
	var result []types.Finding

	for _, f := range findings {
		key := fmt.Sprintf("%s|%s|%d", f.Path, f.Check, f.Line)
		if !seen[key] {
			seen[key] = true
			result = append(result, f)
		}
	}
	return result
}
