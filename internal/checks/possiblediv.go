package checks

import (
	"fmt"

	"github.com/go-python/gpython/ast"

	"github.com/pythrow/pythrow/internal/types"
)

// PossibleDivByZero flags division and modulo where the divisor is not a
// numeric literal, so it may be zero at runtime. Deliberately noisy at low
// confidence; --min-confidence filters it out when unwanted.
func PossibleDivByZero(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	eachBinOp(tree, func(op *ast.BinOp) {
		switch op.Op {
		case ast.Div, ast.FloorDiv, ast.Modulo:
		default:
			return
		}
		if numericLiteral(op.Right) {
			return
		}
		out = append(out, types.Finding{
			Path:       path,
			Line:       op.GetLineno(),
			Column:     op.GetColOffset(),
			Check:      "possible-div-zero",
			Severity:   types.SevLow,
			Confidence: 0.25,
			Message:    fmt.Sprintf("non-literal divisor at line %d may be zero at runtime", op.GetLineno()),
			Source:     sourceLine(src, op.GetLineno()),
		})
	})
	return out
}
