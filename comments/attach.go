// Package comments reattaches free-floating source comments to syntax
// nodes. The parser collaborator delivers comments as a flat list with
// source ranges; nothing in the raw parse says which node a comment
// belongs to, so attachment reconstructs "nearest enclosing or
// immediately following" semantics from the ranges alone.
package comments

import (
	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/walker"
)

// Attach assigns every comment in list to exactly one node of program
// as a leading or trailing comment. Comments that match no node (an
// empty program) are dropped. Running Attach twice on distinct comment
// lists accumulates; the same (tree, list) pair always yields the same
// assignment.
func Attach(program *ast.Program, list []*ast.Comment) {
	for _, c := range list {
		attachOne(program, c)
	}
}

func attachOne(program *ast.Program, c *ast.Comment) {
	pre := func(w *walker.Walker[struct{}], n ast.Node) walker.Action {
		// The root carries no attachment of its own; defer to its
		// statements.
		if n == program {
			return walker.Continue
		}

		b := n.Base()
		switch {
		case c.Span.Start < b.Span.Start:
			b.AddLeadingComment(c)
			return walker.Stop

		case insideLeafward(c, b, n):
			b.AddTrailingComment(c)
			return walker.Stop

		case c.Span.Start > b.Span.End &&
			(w.Pending() == 0 || (isStmt(n) && c.Loc.Start.Line == b.Loc.End.Line)):
			// Same-line trailing placement considers statements only;
			// interior nodes like an identifier in a function header
			// end on the comment's line without owning it.
			b.AddTrailingComment(c)
			return walker.Stop
		}
		return walker.Continue
	}

	post := func(w *walker.Walker[struct{}], n ast.Node) walker.Action {
		// A comment entirely below the scope owner cannot belong to
		// anything inside it; without this, a comment after a large
		// block would attach to a deeply nested trailing position.
		if c.Loc.Start.Line > n.Base().Loc.End.Line {
			return walker.SkipChildren
		}
		return walker.Continue
	}

	walker.Walk(program, struct{}{}, pre, post)
}

// insideLeafward reports whether c sits strictly inside n's range while
// n has nowhere deeper for it to go (no body, or an empty one).
func insideLeafward(c *ast.Comment, b *ast.NodeBase, n ast.Node) bool {
	if c.Span.Start <= b.Span.Start || c.Span.Start >= b.Span.End {
		return false
	}
	return len(ast.BodyOf(n)) == 0
}

func isStmt(n ast.Node) bool {
	_, ok := n.(ast.Stmt)
	return ok
}
