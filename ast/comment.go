package ast

// CommentKind distinguishes the two source comment forms.
type CommentKind int

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// Comment is a free-floating source comment as delivered by the parser
// collaborator. The comment attacher assigns each one to exactly one
// node's leading or trailing list.
type Comment struct {
	Kind CommentKind
	// Text is the comment body without the // or /* */ delimiters.
	Text string
	Span Span
	Loc  Loc
}
