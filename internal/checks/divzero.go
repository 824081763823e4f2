package checks

import (
	"fmt"

	"github.com/go-python/gpython/ast"

	"github.com/pythrow/pythrow/internal/types"
)

// DivByLiteralZero flags true and floor division with a literal 0 divisor,
// which raises ZeroDivisionError unconditionally.
func DivByLiteralZero(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	eachBinOp(tree, func(op *ast.BinOp) {
		if op.Op != ast.Div && op.Op != ast.FloorDiv {
			return
		}
		if !literalZero(op.Right) {
			return
		}
		out = append(out, types.Finding{
			Path:       path,
			Line:       op.GetLineno(),
			Column:     op.GetColOffset(),
			Check:      "definite-div-zero",
			Severity:   types.SevHigh,
			Confidence: 0.95,
			Message:    fmt.Sprintf("division by literal 0 at line %d", op.GetLineno()),
			Source:     sourceLine(src, op.GetLineno()),
		})
	})
	return out
}

// ModByLiteralZero flags modulo with a literal 0 divisor.
func ModByLiteralZero(path string, tree ast.Ast, src []byte) []types.Finding {
	var out []types.Finding
	eachBinOp(tree, func(op *ast.BinOp) {
		if op.Op != ast.Modulo {
			return
		}
		if !literalZero(op.Right) {
			return
		}
		out = append(out, types.Finding{
			Path:       path,
			Line:       op.GetLineno(),
			Column:     op.GetColOffset(),
			Check:      "definite-mod-zero",
			Severity:   types.SevHigh,
			Confidence: 0.95,
			Message:    fmt.Sprintf("modulo by literal 0 at line %d", op.GetLineno()),
			Source:     sourceLine(src, op.GetLineno()),
		})
	})
	return out
}
