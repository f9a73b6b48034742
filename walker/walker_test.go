package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/walker"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func block(stmts ...ast.Stmt) *ast.BlockStatement {
	return &ast.BlockStatement{List: stmts}
}

func exprStmt(e ast.Expr) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func call(callee ast.Expr, args ...ast.Expr) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func fdecl(name string, params []ast.Expr, stmts ...ast.Stmt) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{ID: ident(name), Params: params, Body: block(stmts...)}
}

func program(stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{Body: stmts}
}

// label returns a shorthand for a visited node, identifiers by name.
func label(n ast.Node) string {
	switch t := n.(type) {
	case *ast.Program:
		return "program"
	case *ast.Identifier:
		return t.Name
	case *ast.FunctionDeclaration:
		return "fdecl"
	case *ast.BlockStatement:
		return "block"
	case *ast.ExpressionStatement:
		return "stmt"
	case *ast.CallExpression:
		return "call"
	}
	return "?"
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	// function f(a) { g(a); }
	prog := program(
		fdecl("f", []ast.Expr{ident("a")},
			exprStmt(call(ident("g"), ident("a"))),
		),
	)

	var got []string
	walker.Walk(prog, struct{}{}, func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		got = append(got, label(n))
		return walker.Continue
	}, nil)

	want := []string{"program", "fdecl", "f", "a", "block", "stmt", "call", "g", "a"}
	assert.Equal(t, want, got)
}

func TestWalkScopeDepth(t *testing.T) {
	// Depth grows by one for the program, the function and its block.
	prog := program(
		fdecl("f", nil,
			exprStmt(ident("x")),
		),
	)

	depth := make(map[string]int)
	walker.Walk(prog, struct{}{}, func(w *walker.Walker[struct{}], n ast.Node) walker.Action {
		depth[label(n)] = len(w.Scopes())
		return walker.Continue
	}, nil)

	assert.Equal(t, 1, depth["program"])
	assert.Equal(t, 2, depth["fdecl"])
	assert.Equal(t, 3, depth["f"], "the function id is visited inside the function's scope")
	assert.Equal(t, 4, depth["stmt"])
}

func TestWalkScopeContextIsPerScope(t *testing.T) {
	// Each pushed scope starts with the zero context; the root keeps
	// the initial value.
	prog := program(fdecl("f", nil, exprStmt(ident("x"))))

	var seen []string
	pre := func(w *walker.Walker[string], n ast.Node) walker.Action {
		if _, ok := n.(*ast.Identifier); ok {
			seen = append(seen, w.Current().Ctx)
		}
		return walker.Continue
	}
	post := func(w *walker.Walker[string], n ast.Node) walker.Action {
		w.Current().Ctx = "in-" + label(n)
		return walker.Continue
	}
	walker.Walk(prog, "root", pre, post)

	require.Len(t, seen, 2)
	assert.Equal(t, "in-fdecl", seen[0], "function id sits in the function's own scope")
	assert.Equal(t, "in-block", seen[1])
}

func TestWalkSkipChildren(t *testing.T) {
	prog := program(
		exprStmt(call(ident("f"), ident("x"))),
		exprStmt(ident("y")),
	)

	var got []string
	walker.Walk(prog, struct{}{}, func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		got = append(got, label(n))
		if _, ok := n.(*ast.CallExpression); ok {
			return walker.SkipChildren
		}
		return walker.Continue
	}, nil)

	assert.Equal(t, []string{"program", "stmt", "call", "stmt", "y"}, got)
}

func TestWalkEnqueueReordersChildren(t *testing.T) {
	// Visiting the right side before the left is how the rewriting
	// passes evaluate assignments; the walker only promises that the
	// last node enqueued pops first.
	assign := &ast.AssignmentExpression{Operator: "=", Left: ident("l"), Right: ident("r")}
	prog := program(exprStmt(assign))

	var got []string
	walker.Walk(prog, struct{}{}, func(w *walker.Walker[struct{}], n ast.Node) walker.Action {
		if a, ok := n.(*ast.AssignmentExpression); ok {
			w.Enqueue(a.Left, a.Right)
			return walker.SkipChildren
		}
		if id, ok := n.(*ast.Identifier); ok {
			got = append(got, id.Name)
		}
		return walker.Continue
	}, nil)

	assert.Equal(t, []string{"r", "l"}, got)
}

func TestWalkPostSkipChildrenDropsSubtree(t *testing.T) {
	prog := program(
		fdecl("f", nil, exprStmt(ident("inner"))),
		exprStmt(ident("after")),
	)

	var got []string
	pre := func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		got = append(got, label(n))
		return walker.Continue
	}
	post := func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		if _, ok := n.(*ast.FunctionDeclaration); ok {
			return walker.SkipChildren
		}
		return walker.Continue
	}
	walker.Walk(prog, struct{}{}, pre, post)

	assert.Equal(t, []string{"program", "fdecl", "stmt", "after"}, got)
}

func TestWalkFunctionWithoutBody(t *testing.T) {
	// A hand-built function with no body opens no scope and yields no
	// nil child.
	prog := program(
		&ast.FunctionDeclaration{ID: ident("f")},
		exprStmt(ident("after")),
	)

	var got []string
	walker.Walk(prog, struct{}{}, func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		require.NotNil(t, n)
		got = append(got, label(n))
		return walker.Continue
	}, nil)

	assert.Equal(t, []string{"program", "fdecl", "f", "stmt", "after"}, got)
}

func TestWalkStop(t *testing.T) {
	prog := program(exprStmt(ident("a")), exprStmt(ident("b")))

	var got []string
	walker.Walk(prog, struct{}{}, func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		got = append(got, label(n))
		if id, ok := n.(*ast.Identifier); ok && id.Name == "a" {
			return walker.Stop
		}
		return walker.Continue
	}, nil)

	assert.Equal(t, []string{"program", "stmt", "a"}, got)
}
