// Package ast declares the syntax tree produced by the parser
// collaborator and rewritten by the renaming passes.
//
// The node set is a closed collection of ESTree-shaped variants. Every
// variant embeds NodeBase, which carries the node's character span, its
// line/column location and any comments attached to it. Child slots are
// declared explicitly per variant via Children; no pass discovers
// children reflectively.
package ast

// Span is a half-open character range [Start, End) into the original
// source text.
type Span struct {
	Start int
	End   int
}

// Position is a source position. Line is 1-based, Column is 0-based,
// matching the parser collaborator's wire format.
type Position struct {
	Line   int
	Column int
}

// Loc is the line/column span of a node.
type Loc struct {
	Start Position
	End   Position
}

// NodeBase is embedded by every variant. It owns the source range
// bookkeeping and the attached comments.
type NodeBase struct {
	Span Span
	Loc  Loc

	LeadingComments  []*Comment
	TrailingComments []*Comment
}

// Base returns the embedded NodeBase; through embedding it implements
// half of the Node interface for every variant.
func (b *NodeBase) Base() *NodeBase { return b }

// AddLeadingComment attaches c before the node.
func (b *NodeBase) AddLeadingComment(c *Comment) {
	b.LeadingComments = append(b.LeadingComments, c)
}

// AddTrailingComment attaches c after the node.
func (b *NodeBase) AddTrailingComment(c *Comment) {
	b.TrailingComments = append(b.TrailingComments, c)
}

// Node is implemented by every syntax tree variant.
type Node interface {
	Base() *NodeBase
	// Children returns the node's child slots in source order.
	// Empty optional slots are omitted.
	Children() []Node
}

// All expression nodes implement the Expr interface.
type Expr interface {
	Node
	_expr()
}

// All statement nodes implement the Stmt interface.
type Stmt interface {
	Node
	_stmt()
}

// Pattern nodes may appear in binding positions.
type Pattern interface {
	Node
	_pattern()
}

// FunctionNode unifies the two named-function variants so the
// call-graph, renaming and annotation passes need no per-variant
// special cases. Arrow functions do not implement it; the normalizer
// removes them before those passes run.
type FunctionNode interface {
	Node
	FunctionID() *Identifier
	SetFunctionID(id *Identifier)
	FunctionParams() []Expr
	SetFunctionParams(params []Expr)
	FunctionBody() *BlockStatement
	SetFunctionBody(body *BlockStatement)
}

// BodyOf returns the nodes of n's body slot for body-owning variants
// (the scope owners of the walker), and nil for everything else.
func BodyOf(n Node) []Node {
	switch t := n.(type) {
	case *Program:
		out := make([]Node, 0, len(t.Body))
		for _, s := range t.Body {
			out = append(out, s)
		}
		return out
	case *BlockStatement:
		out := make([]Node, 0, len(t.List))
		for _, s := range t.List {
			out = append(out, s)
		}
		return out
	case *FunctionDeclaration:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *FunctionExpression:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *ArrowFunctionExpression:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *LabeledStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *WhileStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *DoWhileStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *ForStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *ForInStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *ForOfStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *WithStatement:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	}
	return nil
}
