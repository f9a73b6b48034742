package rename

import (
	"github.com/hexlattice/unmangle/ast"
)

// Tree-building shorthands shared by the pass tests.

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func identAt(name string, line int) *ast.Identifier {
	id := ident(name)
	id.Loc.Start.Line = line
	return id
}

func lit(raw string) *ast.Literal {
	return &ast.Literal{Raw: raw}
}

func block(stmts ...ast.Stmt) *ast.BlockStatement {
	return &ast.BlockStatement{List: stmts}
}

func exprStmt(e ast.Expr) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func call(name string, args ...ast.Expr) *ast.CallExpression {
	return &ast.CallExpression{Callee: ident(name), Arguments: args}
}

func ret(e ast.Expr) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: e}
}

func assign(left, right ast.Expr) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: "=", Left: left, Right: right}
}

func vdecl(name string, init ast.Expr) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Kind: "var",
		Declarations: []*ast.VariableDeclarator{
			{ID: ident(name), Init: init},
		},
	}
}

func fdecl(name string, params []ast.Expr, stmts ...ast.Stmt) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{ID: ident(name), Params: params, Body: block(stmts...)}
}

func fdeclAt(name string, line int, stmts ...ast.Stmt) *ast.FunctionDeclaration {
	f := fdecl(name, nil, stmts...)
	f.Loc.Start.Line = line
	return f
}

func fexpr(id *ast.Identifier, params []ast.Expr, stmts ...ast.Stmt) *ast.FunctionExpression {
	return &ast.FunctionExpression{ID: id, Params: params, Body: block(stmts...)}
}

func program(stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{Body: stmts}
}

func newTestContext(prog *ast.Program) *Context {
	return NewContext(Collect(prog), nil, nil)
}
