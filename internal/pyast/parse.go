// Package pyast parses Python source into a syntax tree for the static
// checks. It wraps the gpython parser so the rest of the codebase never
// touches parser internals directly.
package pyast

import (
	"fmt"
	"os"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// ParseError reports that a file is not syntactically valid Python.
type ParseError struct {
	Path string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Path, e.Msg)
}

// Parse parses Python source code into an AST. A syntactically invalid
// input yields a *ParseError.
func Parse(path string, src []byte) (ast.Ast, error) {
	tree, err := parser.ParseString(string(src), py.ExecMode)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	return tree, nil
}

// ParseFile reads and parses the file at path. Read failures are returned
// as-is; they are the caller's problem, not a syntax error.
func ParseFile(path string) (ast.Ast, []byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tree, err := Parse(path, src)
	return tree, src, err
}
