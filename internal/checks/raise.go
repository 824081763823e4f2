package checks

import (
	"fmt"

	"github.com/go-python/gpython/ast"

	"github.com/pythrow/pythrow/internal/types"
)

// RaiseStatement flags every explicit raise. A flagged raise may be
// unreachable in practice; the check trades that false-positive rate for
// never missing one.
func RaiseStatement(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	ast.Walk(tree, func(node ast.Ast) bool {
		r, ok := node.(*ast.Raise)
		if !ok {
			return true
		}
		out = append(out, types.Finding{
			Path:       path,
			Line:       r.GetLineno(),
			Column:     r.GetColOffset(),
			Check:      "definite-raise",
			Severity:   types.SevHigh,
			Confidence: 0.9,
			Message:    fmt.Sprintf("explicit raise at line %d", r.GetLineno()),
			Source:     sourceLine(src, r.GetLineno()),
		})
		return true
	})
	return out
}
