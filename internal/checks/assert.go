package checks

import (
	"fmt"

	"github.com/go-python/gpython/ast"

	"github.com/pythrow/pythrow/internal/types"
)

// AssertStatement flags assert statements, which raise AssertionError when
// the condition fails (and disappear entirely under python -O).
func AssertStatement(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	ast.Walk(tree, func(node ast.Ast) bool {
		a, ok := node.(*ast.Assert)
		if !ok {
			return true
		}
		out = append(out, types.Finding{
			Path:       path,
			Line:       a.GetLineno(),
			Column:     a.GetColOffset(),
			Check:      "bare-assert",
			Severity:   types.SevLow,
			Confidence: 0.4,
			Message:    fmt.Sprintf("assert at line %d raises AssertionError when false", a.GetLineno()),
			Source:     sourceLine(src, a.GetLineno()),
		})
		return true
	})
	return out
}
