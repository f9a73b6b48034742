package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlattice/unmangle/ast"
)

func TestUniquifyRenamesDeclarationAndReferences(t *testing.T) {
	// function a() {}
	// a();
	decl := fdecl("a", nil)
	use := call("a")
	prog := program(decl, exprStmt(use))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_a", decl.ID.Name)
	assert.Equal(t, "f_a", use.Callee.(*ast.Identifier).Name)
}

func TestUniquifyAvoidsInventoryCollisions(t *testing.T) {
	// var f_a = 0;
	// function a() {}
	// a();
	decl := fdecl("a", nil)
	use := call("a")
	prog := program(vdecl("f_a", lit("0")), decl, exprStmt(use))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_a2", decl.ID.Name)
	assert.Equal(t, "f_a2", use.Callee.(*ast.Identifier).Name)
}

func TestUniquifyInnerRedeclarationShadows(t *testing.T) {
	// function a() {}
	// function b() { var a = 1; return a; }
	// a();
	innerRef := ident("a")
	outer := fdecl("a", nil)
	b := fdecl("b", nil,
		vdecl("a", lit("1")),
		ret(innerRef),
	)
	use := call("a")
	prog := program(outer, b, exprStmt(use))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_a", outer.ID.Name)
	assert.Equal(t, "f_a", use.Callee.(*ast.Identifier).Name)
	assert.Equal(t, "a", innerRef.Name, "the inner var rebinds the name")
	assert.Equal(t, "a", b.Body.List[0].(*ast.VariableDeclaration).Declarations[0].ID.(*ast.Identifier).Name)
}

func TestUniquifyReassignmentStopsSubstitution(t *testing.T) {
	// function a() {}
	// a = a();
	// a();
	decl := fdecl("a", nil)
	rhs := call("a")
	lhs := ident("a")
	later := call("a")
	prog := program(decl, exprStmt(assign(lhs, rhs)), exprStmt(later))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_a", decl.ID.Name)
	assert.Equal(t, "f_a", rhs.Callee.(*ast.Identifier).Name,
		"the right side still sees the old binding")
	assert.Equal(t, "a", lhs.Name, "the assignment target is not a reference")
	assert.Equal(t, "a", later.Callee.(*ast.Identifier).Name,
		"after reassignment the name no longer means the function")
}

func TestUniquifyParameterShadows(t *testing.T) {
	// function a() {}
	// function b(a) { return a(); }
	innerUse := call("a")
	outer := fdecl("a", nil)
	b := fdecl("b", []ast.Expr{ident("a")}, ret(innerUse))
	prog := program(outer, b)

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_a", outer.ID.Name)
	assert.Equal(t, "a", innerUse.Callee.(*ast.Identifier).Name,
		"the parameter shadows the renamed function")
}

func TestUniquifyNamedFunctionExpressionScopesToItsBody(t *testing.T) {
	// var v = function e() { e(); };
	// e();
	innerUse := call("e")
	fe := fexpr(ident("e"), nil, exprStmt(innerUse))
	outerUse := call("e")
	prog := program(vdecl("v", fe), exprStmt(outerUse))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "f_e", fe.ID.Name)
	assert.Equal(t, "f_e", innerUse.Callee.(*ast.Identifier).Name)
	assert.Equal(t, "e", outerUse.Callee.(*ast.Identifier).Name,
		"an expression's name is not visible outside its body")
}

func TestUniquifyMemberPropertyUntouched(t *testing.T) {
	// function a() {}
	// x.a;
	// x[a];
	decl := fdecl("a", nil)
	plain := &ast.MemberExpression{Object: ident("x"), Property: ident("a")}
	computed := &ast.MemberExpression{Object: ident("x"), Property: ident("a"), Computed: true}
	prog := program(decl, exprStmt(plain), exprStmt(computed))

	Uniquify(prog, newTestContext(prog))

	assert.Equal(t, "a", plain.Property.(*ast.Identifier).Name)
	assert.Equal(t, "a", computed.Property.(*ast.Identifier).Name)
}

func TestUniquifySelectionLimitsRenames(t *testing.T) {
	// function a() {}  <- line 1, selected
	// function b() {}  <- line 2, not selected
	a := fdeclAt("a", 1)
	b := fdeclAt("b", 2)
	prog := program(a, b)

	rc := NewContext(Collect(prog), NewSelection([]string{"a"}, nil), nil)
	Uniquify(prog, rc)

	assert.Equal(t, "f_a", a.ID.Name)
	assert.Equal(t, "b", b.ID.Name)
}

func TestUniquifyIsDeterministic(t *testing.T) {
	build := func() (*ast.Program, *ast.FunctionDeclaration, *ast.CallExpression) {
		decl := fdecl("a", nil)
		use := call("a")
		return program(decl, exprStmt(use)), decl, use
	}

	p1, d1, u1 := build()
	p2, d2, u2 := build()
	Uniquify(p1, newTestContext(p1))
	Uniquify(p2, newTestContext(p2))

	require.Equal(t, d1.ID.Name, d2.ID.Name)
	require.Equal(t,
		u1.Callee.(*ast.Identifier).Name,
		u2.Callee.(*ast.Identifier).Name)
}
