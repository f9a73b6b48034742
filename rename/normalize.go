package rename

import (
	"github.com/hexlattice/unmangle/ast"
)

// Normalize gives every selected function expression an identifier and
// rewrites arrow functions into ordinary named function expressions.
// Afterwards the cross-reference, renaming and annotation passes can
// assume every function they care about is nameable; none of them
// carries an optional-name special case.
//
// Sibling order is irrelevant here, so this is a plain stack scan
// rather than a walker pass. Running it twice changes nothing: every
// function already has an identifier the second time around.
func Normalize(program *ast.Program, rc *Context) {
	stack := []ast.Node{program}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ast.RewriteChildExprs(n, func(e ast.Expr) ast.Expr {
			switch t := e.(type) {
			case *ast.FunctionExpression:
				if t.ID == nil && rc.Selection.Matches("", t.Base().Loc.Start.Line) {
					t.ID = rc.newExprIdent()
				}
			case *ast.ArrowFunctionExpression:
				if rc.Selection.Matches("", t.Base().Loc.Start.Line) {
					return convertArrow(t, rc)
				}
			}
			return e
		})

		stack = append(stack, n.Children()...)
	}
}

// convertArrow turns an arrow function into an equivalent named
// function expression, preserving parameters and body. A concise
// expression body becomes a block with a single return.
func convertArrow(a *ast.ArrowFunctionExpression, rc *Context) *ast.FunctionExpression {
	body, ok := a.Body.(*ast.BlockStatement)
	if !ok {
		expr := a.Body.(ast.Expr)
		base := ast.NodeBase{Span: expr.Base().Span, Loc: expr.Base().Loc}
		body = &ast.BlockStatement{
			NodeBase: base,
			List: []ast.Stmt{
				&ast.ReturnStatement{NodeBase: base, Argument: expr},
			},
		}
	}
	return &ast.FunctionExpression{
		NodeBase: a.NodeBase,
		ID:       rc.newExprIdent(),
		Params:   a.Params,
		Body:     body,
		Async:    a.Async,
	}
}
