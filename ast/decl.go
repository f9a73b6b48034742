package ast

type (
	FunctionDeclaration struct {
		NodeBase
		ID        *Identifier
		Params    []Expr
		Body      *BlockStatement
		Generator bool
		Async     bool
	}

	VariableDeclaration struct {
		NodeBase
		// Kind is "var", "let" or "const".
		Kind         string
		Declarations []*VariableDeclarator
	}

	VariableDeclarator struct {
		NodeBase
		ID   Expr
		Init Expr
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*VariableDeclaration) _stmt() {}

func (n *FunctionDeclaration) FunctionID() *Identifier           { return n.ID }
func (n *FunctionDeclaration) SetFunctionID(id *Identifier)      { n.ID = id }
func (n *FunctionDeclaration) FunctionParams() []Expr            { return n.Params }
func (n *FunctionDeclaration) SetFunctionParams(params []Expr)   { n.Params = params }
func (n *FunctionDeclaration) FunctionBody() *BlockStatement     { return n.Body }
func (n *FunctionDeclaration) SetFunctionBody(b *BlockStatement) { n.Body = b }
