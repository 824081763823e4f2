package checks

import (
	"bytes"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/py"
)

// sourceLine returns the 1-based source line, trimmed, or "" when out of range.
func sourceLine(src []byte, line int) string {
	if line <= 0 {
		return ""
	}
	lines := bytes.Split(src, []byte("\n"))
	if line > len(lines) {
		return ""
	}
	return string(bytes.TrimSpace(lines[line-1]))
}

// literalZero reports whether the expression is a numeric literal equal to 0.
func literalZero(e ast.Expr) bool {
	num, ok := e.(*ast.Num)
	if !ok {
		return false
	}
	switch v := num.N.(type) {
	case py.Int:
		return v == 0
	case py.Float:
		return v == 0
	}
	return false
}

// numericLiteral reports whether the expression is any numeric literal.
func numericLiteral(e ast.Expr) bool {
	_, ok := e.(*ast.Num)
	return ok
}

// eachBinOp invokes fn for every binary operation in the tree.
func eachBinOp(tree ast.Ast, fn func(*ast.BinOp)) {
	ast.Walk(tree, func(node ast.Ast) bool {
		if op, ok := node.(*ast.BinOp); ok {
			fn(op)
		}
		return true
	})
}
