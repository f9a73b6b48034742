package comments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/comments"
)

// at stamps a node with a character span and a line range, the only
// position data attachment looks at.
func at[N ast.Node](n N, start, end, startLine, endLine int) N {
	b := n.Base()
	b.Span = ast.Span{Start: start, End: end}
	b.Loc = ast.Loc{
		Start: ast.Position{Line: startLine},
		End:   ast.Position{Line: endLine},
	}
	return n
}

func lineComment(text string, start, line int) *ast.Comment {
	return &ast.Comment{
		Kind: ast.CommentLine,
		Text: text,
		Span: ast.Span{Start: start, End: start + len(text) + 2},
		Loc:  ast.Loc{Start: ast.Position{Line: line}, End: ast.Position{Line: line}},
	}
}

func blockComment(text string, start, line int) *ast.Comment {
	return &ast.Comment{
		Kind: ast.CommentBlock,
		Text: text,
		Span: ast.Span{Start: start, End: start + len(text) + 4},
		Loc:  ast.Loc{Start: ast.Position{Line: line}, End: ast.Position{Line: line}},
	}
}

func TestAttachTrailingSameLine(t *testing.T) {
	// a = 1; // note
	// b = 2;
	stmt1 := at(&ast.ExpressionStatement{
		Expression: at(&ast.AssignmentExpression{
			Operator: "=",
			Left:     at(&ast.Identifier{Name: "a"}, 0, 1, 1, 1),
			Right:    at(&ast.Literal{Raw: "1"}, 4, 5, 1, 1),
		}, 0, 5, 1, 1),
	}, 0, 6, 1, 1)
	stmt2 := at(&ast.ExpressionStatement{
		Expression: at(&ast.AssignmentExpression{
			Operator: "=",
			Left:     at(&ast.Identifier{Name: "b"}, 15, 16, 2, 2),
			Right:    at(&ast.Literal{Raw: "2"}, 19, 20, 2, 2),
		}, 15, 20, 2, 2),
	}, 15, 21, 2, 2)
	prog := at(&ast.Program{Body: []ast.Stmt{stmt1, stmt2}}, 0, 21, 1, 2)

	comments.Attach(prog, []*ast.Comment{lineComment(" note", 7, 1)})

	require.Len(t, stmt1.TrailingComments, 1)
	assert.Equal(t, " note", stmt1.TrailingComments[0].Text)
	assert.Empty(t, stmt2.LeadingComments)
}

func TestAttachLeadingOwnLine(t *testing.T) {
	// a = 1;
	// // next one
	// b = 2;
	stmt1 := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "a"}, 0, 1, 1, 1),
	}, 0, 6, 1, 1)
	stmt2 := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "b"}, 20, 21, 3, 3),
	}, 20, 26, 3, 3)
	prog := at(&ast.Program{Body: []ast.Stmt{stmt1, stmt2}}, 0, 26, 1, 3)

	comments.Attach(prog, []*ast.Comment{lineComment(" next one", 7, 2)})

	assert.Empty(t, stmt1.TrailingComments)
	require.Len(t, stmt2.LeadingComments, 1)
	assert.Equal(t, " next one", stmt2.LeadingComments[0].Text)
}

func TestAttachLeadingInsideFunctionBody(t *testing.T) {
	// function f() {
	//     /* setup */ return 1;
	// }
	ret := at(&ast.ReturnStatement{
		Argument: at(&ast.Literal{Raw: "1"}, 38, 39, 2, 2),
	}, 31, 40, 2, 2)
	body := at(&ast.BlockStatement{List: []ast.Stmt{ret}}, 13, 42, 1, 3)
	fn := at(&ast.FunctionDeclaration{
		ID:   at(&ast.Identifier{Name: "f"}, 9, 10, 1, 1),
		Body: body,
	}, 0, 42, 1, 3)
	prog := at(&ast.Program{Body: []ast.Stmt{fn}}, 0, 42, 1, 3)

	comments.Attach(prog, []*ast.Comment{blockComment(" setup ", 19, 2)})

	require.Len(t, ret.LeadingComments, 1)
	assert.Equal(t, " setup ", ret.LeadingComments[0].Text)
	assert.Empty(t, fn.LeadingComments)
}

func TestAttachSameLineFunctionHeaderCommentGoesToBody(t *testing.T) {
	// function f() { // note
	//     a;
	// }
	// The comment ends the header line but belongs to the body, not to
	// the function's identifier.
	inner := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "a"}, 27, 28, 2, 2),
	}, 27, 29, 2, 2)
	body := at(&ast.BlockStatement{List: []ast.Stmt{inner}}, 13, 31, 1, 3)
	fn := at(&ast.FunctionDeclaration{
		ID:   at(&ast.Identifier{Name: "f"}, 9, 10, 1, 1),
		Body: body,
	}, 0, 31, 1, 3)
	prog := at(&ast.Program{Body: []ast.Stmt{fn}}, 0, 31, 1, 3)

	comments.Attach(prog, []*ast.Comment{lineComment(" note", 15, 1)})

	assert.Empty(t, fn.ID.TrailingComments, "the identifier does not own the comment")
	require.Len(t, inner.LeadingComments, 1)
	assert.Equal(t, " note", inner.LeadingComments[0].Text)
}

func TestAttachTrailingAtEndOfProgram(t *testing.T) {
	// a;
	// // done
	stmt := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "a"}, 0, 1, 1, 1),
	}, 0, 2, 1, 1)
	prog := at(&ast.Program{Body: []ast.Stmt{stmt}}, 0, 2, 1, 2)

	comments.Attach(prog, []*ast.Comment{lineComment(" done", 3, 2)})

	require.Len(t, stmt.TrailingComments, 1)
	assert.Equal(t, " done", stmt.TrailingComments[0].Text)
}

func TestAttachCommentBelowFunctionSkipsItsBody(t *testing.T) {
	// function f() {
	//     a;
	// }
	// // after f
	// b;
	inner := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "a"}, 19, 20, 2, 2),
	}, 19, 21, 2, 2)
	body := at(&ast.BlockStatement{List: []ast.Stmt{inner}}, 13, 23, 1, 3)
	fn := at(&ast.FunctionDeclaration{
		ID:   at(&ast.Identifier{Name: "f"}, 9, 10, 1, 1),
		Body: body,
	}, 0, 23, 1, 3)
	stmt := at(&ast.ExpressionStatement{
		Expression: at(&ast.Identifier{Name: "b"}, 35, 36, 5, 5),
	}, 35, 37, 5, 5)
	prog := at(&ast.Program{Body: []ast.Stmt{fn, stmt}}, 0, 37, 1, 5)

	comments.Attach(prog, []*ast.Comment{lineComment(" after f", 24, 4)})

	assert.Empty(t, inner.TrailingComments, "the comment is outside the function")
	require.Len(t, stmt.LeadingComments, 1)
	assert.Equal(t, " after f", stmt.LeadingComments[0].Text)
}

func TestAttachIsDeterministic(t *testing.T) {
	build := func() (*ast.Program, *ast.ExpressionStatement) {
		stmt := at(&ast.ExpressionStatement{
			Expression: at(&ast.Identifier{Name: "a"}, 0, 1, 1, 1),
		}, 0, 2, 1, 1)
		return at(&ast.Program{Body: []ast.Stmt{stmt}}, 0, 2, 1, 2), stmt
	}

	p1, s1 := build()
	p2, s2 := build()
	list := func() []*ast.Comment { return []*ast.Comment{lineComment(" x", 3, 2)} }
	comments.Attach(p1, list())
	comments.Attach(p2, list())

	assert.Equal(t, len(s1.TrailingComments), len(s2.TrailingComments))
	assert.Equal(t, s1.TrailingComments[0].Text, s2.TrailingComments[0].Text)
}
