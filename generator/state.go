package generator

import (
	"strings"

	"github.com/hexlattice/unmangle/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
	// stmtPos is set when the node stands in statement position, where
	// line comments may be emitted in their native form.
	stmtPos bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) wrapStmt(node ast.Node) *state {
	w := s.wrap(node)
	w.stmtPos = true
	return w
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
