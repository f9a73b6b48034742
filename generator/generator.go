// Package generator serializes a syntax tree back into source text,
// emitting comments at the nodes they are attached to and preserving
// statement order.
package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/hexlattice/unmangle/ast"
)

// Generate renders node as source text.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	if _, ok := node.(*ast.Program); !ok {
		s.stmtPos = true
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	if s.node == nil {
		return
	}

	leadingComments(s)

	switch n := s.node.(type) {
	case *ast.Program:
		for _, b := range n.Body {
			gen(s.wrapStmt(b))
			s.line()
		}

	case *ast.BlockStatement:
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrapStmt(st))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")

	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression))
		s.out.WriteString(";")

	case *ast.EmptyStatement:
		s.out.WriteString(";")

	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")

	case *ast.VariableDeclaration:
		s.out.WriteString(n.Kind)
		s.out.WriteString(" ")
		for i, d := range n.Declarations {
			gen(s.wrap(d))
			if i < len(n.Declarations)-1 {
				s.out.WriteString(", ")
			}
		}
		if !inForHead(s) {
			s.out.WriteString(";")
		}

	case *ast.VariableDeclarator:
		gen(s.wrap(n.ID))
		if n.Init != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Init))
		}

	case *ast.FunctionDeclaration:
		genFunction(s, n.ID, n.Params, n.Body, n.Generator, n.Async)

	case *ast.FunctionExpression:
		if _, ok := s.parent.node.(*ast.ExpressionStatement); ok {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		genFunction(s, n.ID, n.Params, n.Body, n.Generator, n.Async)

	case *ast.ArrowFunctionExpression:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("(")
		genList(s, n.Params)
		s.out.WriteString(") => ")
		if body, ok := n.Body.(*ast.BlockStatement); ok {
			gen(s.wrap(body))
		} else {
			gen(s.wrap(n.Body))
		}

	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument))
		}
		s.out.WriteString(";")

	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test))
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Consequent)))
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.(*ast.IfStatement); ok {
				gen(s.wrapStmt(n.Alternate))
			} else {
				gen(s.wrap(blocked(n.Alternate)))
			}
		}

	case *ast.LabeledStatement:
		gen(s.wrap(n.Label))
		s.out.WriteString(": ")
		gen(s.wrapStmt(n.Body))

	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Label))
		}
		s.out.WriteString(";")

	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Label))
		}
		s.out.WriteString(";")

	case *ast.WhileStatement:
		s.out.WriteString("while (")
		gen(s.wrap(n.Test))
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Body)))

	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		gen(s.wrap(blocked(n.Body)))
		s.out.WriteString(" while (")
		gen(s.wrap(n.Test))
		s.out.WriteString(");")

	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Init != nil {
			gen(s.wrap(n.Init))
		}
		s.out.WriteString("; ")
		if n.Test != nil {
			gen(s.wrap(n.Test))
		}
		s.out.WriteString("; ")
		if n.Update != nil {
			gen(s.wrap(n.Update))
		}
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Body)))

	case *ast.ForInStatement:
		s.out.WriteString("for (")
		gen(s.wrap(n.Left))
		s.out.WriteString(" in ")
		gen(s.wrap(n.Right))
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Body)))

	case *ast.ForOfStatement:
		s.out.WriteString("for (")
		gen(s.wrap(n.Left))
		s.out.WriteString(" of ")
		gen(s.wrap(n.Right))
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Body)))

	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		gen(s.wrap(n.Discriminant))
		s.out.WriteString(") {")
		s.indent++
		for _, c := range n.Cases {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--
		if len(n.Cases) > 0 {
			s.lineAndPad()
		}
		s.out.WriteString("}")

	case *ast.SwitchCase:
		if n.Test != nil {
			s.out.WriteString("case ")
			gen(s.wrap(n.Test))
			s.out.WriteString(": ")
		} else {
			s.out.WriteString("default: ")
		}
		gen(s.wrap(&ast.BlockStatement{List: n.Consequent}))

	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		gen(s.wrap(n.Argument))
		s.out.WriteString(";")

	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Block))
		if n.Handler != nil {
			gen(s.wrap(n.Handler))
		}
		if n.Finalizer != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finalizer))
		}

	case *ast.CatchClause:
		s.out.WriteString(" catch ")
		if n.Param != nil {
			s.out.WriteString("(")
			gen(s.wrap(n.Param))
			s.out.WriteString(") ")
		}
		gen(s.wrap(n.Body))

	case *ast.WithStatement:
		s.out.WriteString("with (")
		gen(s.wrap(n.Object))
		s.out.WriteString(") ")
		gen(s.wrap(blocked(n.Body)))

	case *ast.Identifier:
		s.out.WriteString(n.Name)

	case *ast.Literal:
		s.out.WriteString(literalText(n))

	case *ast.ThisExpression:
		s.out.WriteString("this")

	case *ast.ArrayExpression:
		s.out.WriteString("[")
		for i, e := range n.Elements {
			if e != nil {
				gen(s.wrap(e))
			}
			if i < len(n.Elements)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString("]")

	case *ast.ArrayPattern:
		s.out.WriteString("[")
		for i, e := range n.Elements {
			if e != nil {
				gen(s.wrap(e))
			}
			if i < len(n.Elements)-1 {
				s.out.WriteString(", ")
			}
		}
		s.out.WriteString("]")

	case *ast.ObjectExpression:
		genObject(s, n.Properties)

	case *ast.ObjectPattern:
		genObject(s, n.Properties)

	case *ast.Property:
		genProperty(s, n)

	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator)
		if len(n.Operator) > 2 {
			s.out.WriteString(" ")
		}
		switch n.Argument.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression,
			*ast.ConditionalExpression, *ast.AssignmentExpression,
			*ast.UnaryExpression, *ast.SequenceExpression:
			s.out.WriteString("(")
			gen(s.wrap(n.Argument))
			s.out.WriteString(")")
		default:
			gen(s.wrap(n.Argument))
		}

	case *ast.UpdateExpression:
		if n.Prefix {
			s.out.WriteString(n.Operator)
			gen(s.wrap(n.Argument))
		} else {
			gen(s.wrap(n.Argument))
			s.out.WriteString(n.Operator)
		}

	case *ast.BinaryExpression:
		genInfix(s, n.Operator, n.Left, n.Right)

	case *ast.LogicalExpression:
		genInfix(s, n.Operator, n.Left, n.Right)

	case *ast.AssignmentExpression:
		switch s.parent.node.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Left))
		s.out.WriteString(" " + n.Operator + " ")
		gen(s.wrap(n.Right))

	case *ast.AssignmentPattern:
		gen(s.wrap(n.Left))
		s.out.WriteString(" = ")
		gen(s.wrap(n.Right))

	case *ast.ConditionalExpression:
		switch s.parent.node.(type) {
		case *ast.BinaryExpression, *ast.LogicalExpression:
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		gen(s.wrap(n.Test))
		s.out.WriteString(" ? ")
		gen(s.wrap(n.Consequent))
		s.out.WriteString(" : ")
		gen(s.wrap(n.Alternate))

	case *ast.CallExpression:
		if _, ok := n.Callee.(*ast.FunctionExpression); ok {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Callee))
		}
		s.out.WriteString("(")
		genList(s, n.Arguments)
		s.out.WriteString(")")

	case *ast.NewExpression:
		s.out.WriteString("new ")
		gen(s.wrap(n.Callee))
		s.out.WriteString("(")
		genList(s, n.Arguments)
		s.out.WriteString(")")

	case *ast.MemberExpression:
		if lit, ok := n.Object.(*ast.Literal); ok && isNumeric(lit) {
			s.out.WriteString("(")
			gen(s.wrap(n.Object))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Object))
		}
		if id, ok := n.Property.(*ast.Identifier); ok && !n.Computed && valid(id.Name) {
			s.out.WriteString(".")
			s.out.WriteString(id.Name)
		} else {
			s.out.WriteString("[")
			gen(s.wrap(n.Property))
			s.out.WriteString("]")
		}

	case *ast.SequenceExpression:
		parens := true
		switch s.parent.node.(type) {
		case *ast.ExpressionStatement, *ast.ForStatement:
			parens = false
		}
		if parens {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		genList(s, n.Expressions)

	case *ast.SpreadElement:
		s.out.WriteString("...")
		gen(s.wrap(n.Argument))

	case *ast.RestElement:
		s.out.WriteString("...")
		gen(s.wrap(n.Argument))

	case *ast.TemplateLiteral:
		s.out.WriteString("`")
		for i, q := range n.Quasis {
			s.out.WriteString(q.Raw)
			if i < len(n.Expressions) {
				s.out.WriteString("${")
				gen(s.wrap(n.Expressions[i]))
				s.out.WriteString("}")
			}
		}
		s.out.WriteString("`")

	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}

	trailingComments(s)
}

func genFunction(s *state, id *ast.Identifier, params []ast.Expr, body *ast.BlockStatement, generator, async bool) {
	if async {
		s.out.WriteString("async ")
	}
	s.out.WriteString("function")
	if generator {
		s.out.WriteString("*")
	}
	s.out.WriteString(" ")
	if id != nil {
		gen(s.wrap(id))
	}
	s.out.WriteString("(")
	genList(s, params)
	s.out.WriteString(") ")
	gen(s.wrap(body))
}

func genList(s *state, list []ast.Expr) {
	for i, e := range list {
		gen(s.wrap(e))
		if i < len(list)-1 {
			s.out.WriteString(", ")
		}
	}
}

func genObject(s *state, props []*ast.Property) {
	s.out.WriteString("{")
	s.indent++
	for i, p := range props {
		s.lineAndPad()
		gen(s.wrap(p))
		if i < len(props)-1 {
			s.out.WriteString(", ")
		}
	}
	s.indent--
	if len(props) > 0 {
		s.lineAndPad()
	}
	s.out.WriteString("}")
}

func genProperty(s *state, n *ast.Property) {
	if n.Kind == "get" || n.Kind == "set" {
		if fe, ok := n.Value.(*ast.FunctionExpression); ok {
			s.out.WriteString(n.Kind + " ")
			gen(s.wrap(n.Key))
			s.out.WriteString("(")
			genList(s, fe.Params)
			s.out.WriteString(") ")
			gen(s.wrap(fe.Body))
			return
		}
	}
	if n.Shorthand {
		gen(s.wrap(n.Value))
		return
	}
	if n.Computed {
		s.out.WriteString("[")
		gen(s.wrap(n.Key))
		s.out.WriteString("]")
	} else {
		gen(s.wrap(n.Key))
	}
	s.out.WriteString(": ")
	gen(s.wrap(n.Value))
}

func genInfix(s *state, op string, left, right ast.Expr) {
	if parentOp, isRight, ok := infixParent(s); ok {
		p, pp := precedence(op), precedence(parentOp)
		if p < pp || (p == pp && isRight) {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
	}
	gen(s.wrap(left))
	s.out.WriteString(" " + op + " ")
	gen(s.wrap(right))
}

func infixParent(s *state) (op string, isRight, ok bool) {
	switch pn := s.parent.node.(type) {
	case *ast.BinaryExpression:
		return pn.Operator, pn.Right == s.node, true
	case *ast.LogicalExpression:
		return pn.Operator, pn.Right == s.node, true
	}
	return "", false, false
}

func precedence(op string) int {
	switch op {
	case "**":
		return 14
	case "*", "/", "%":
		return 13
	case "+", "-":
		return 12
	case "<<", ">>", ">>>":
		return 11
	case "<", ">", "<=", ">=", "in", "instanceof":
		return 10
	case "==", "!=", "===", "!==":
		return 9
	case "&":
		return 8
	case "^":
		return 7
	case "|":
		return 6
	case "&&":
		return 5
	case "||", "??":
		return 4
	}
	return 0
}

// blocked wraps bare statements in a block, matching how the tool
// prints bodies; empty and block statements pass through.
func blocked(st ast.Stmt) ast.Stmt {
	switch st.(type) {
	case *ast.EmptyStatement, *ast.BlockStatement:
		return st
	}
	return &ast.BlockStatement{List: []ast.Stmt{st}}
}

func inForHead(s *state) bool {
	switch p := s.parent.node.(type) {
	case *ast.ForStatement:
		return p.Init == s.node
	case *ast.ForInStatement:
		return p.Left == s.node
	case *ast.ForOfStatement:
		return p.Left == s.node
	}
	return false
}

func literalText(n *ast.Literal) string {
	if n.Raw != "" {
		return n.Raw
	}
	switch v := n.Value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", n.Value)
}

func isNumeric(n *ast.Literal) bool {
	_, ok := n.Value.(float64)
	return ok
}

func leadingComments(s *state) {
	for _, c := range s.node.Base().LeadingComments {
		if s.stmtPos {
			writeComment(s.out, c)
			s.lineAndPad()
		} else {
			// Inline position; only the block form stays parseable.
			s.out.WriteString("/*" + c.Text + "*/ ")
		}
	}
}

func trailingComments(s *state) {
	for _, c := range s.node.Base().TrailingComments {
		if s.stmtPos && c.Kind == ast.CommentLine {
			s.out.WriteString(" //" + c.Text)
		} else {
			s.out.WriteString(" /*" + c.Text + "*/")
		}
	}
}

func writeComment(out *strings.Builder, c *ast.Comment) {
	if c.Kind == ast.CommentLine {
		out.WriteString("//" + c.Text)
		return
	}
	out.WriteString("/*" + c.Text + "*/")
}

func valid(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return len(s) > 0
}
