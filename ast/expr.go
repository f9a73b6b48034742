package ast

type (
	ThisExpression struct {
		NodeBase
	}

	ArrayExpression struct {
		NodeBase
		// Elements may contain nil entries for elisions ([, , x]).
		Elements []Expr
	}

	ObjectExpression struct {
		NodeBase
		Properties []*Property
	}

	// Property is shared between object expressions and object
	// patterns, as in the parser collaborator's wire format.
	Property struct {
		NodeBase
		Key       Expr
		Value     Expr
		Kind      string
		Computed  bool
		Shorthand bool
		Method    bool
	}

	UnaryExpression struct {
		NodeBase
		Operator string
		Argument Expr
	}

	UpdateExpression struct {
		NodeBase
		Operator string
		Prefix   bool
		Argument Expr
	}

	BinaryExpression struct {
		NodeBase
		Operator string
		Left     Expr
		Right    Expr
	}

	LogicalExpression struct {
		NodeBase
		Operator string
		Left     Expr
		Right    Expr
	}

	AssignmentExpression struct {
		NodeBase
		Operator string
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		NodeBase
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	CallExpression struct {
		NodeBase
		Callee    Expr
		Arguments []Expr
	}

	NewExpression struct {
		NodeBase
		Callee    Expr
		Arguments []Expr
	}

	MemberExpression struct {
		NodeBase
		Object   Expr
		Property Expr
		Computed bool
	}

	SequenceExpression struct {
		NodeBase
		Expressions []Expr
	}

	SpreadElement struct {
		NodeBase
		Argument Expr
	}

	FunctionExpression struct {
		NodeBase
		ID        *Identifier
		Params    []Expr
		Body      *BlockStatement
		Generator bool
		Async     bool
	}

	// ArrowFunctionExpression exists only between parsing and the
	// normalizer, which rewrites it into a named FunctionExpression.
	// Body is a BlockStatement, or an Expr when Expression is set.
	ArrowFunctionExpression struct {
		NodeBase
		Params     []Expr
		Body       Node
		Expression bool
		Async      bool
	}

	AssignmentPattern struct {
		NodeBase
		Left  Expr
		Right Expr
	}

	ArrayPattern struct {
		NodeBase
		Elements []Expr
	}

	ObjectPattern struct {
		NodeBase
		Properties []*Property
	}

	RestElement struct {
		NodeBase
		Argument Expr
	}
)

func (*ThisExpression) _expr()          {}
func (*ArrayExpression) _expr()         {}
func (*ObjectExpression) _expr()        {}
func (*UnaryExpression) _expr()         {}
func (*UpdateExpression) _expr()        {}
func (*BinaryExpression) _expr()        {}
func (*LogicalExpression) _expr()       {}
func (*AssignmentExpression) _expr()    {}
func (*ConditionalExpression) _expr()   {}
func (*CallExpression) _expr()          {}
func (*NewExpression) _expr()           {}
func (*MemberExpression) _expr()        {}
func (*SequenceExpression) _expr()      {}
func (*SpreadElement) _expr()           {}
func (*FunctionExpression) _expr()      {}
func (*ArrowFunctionExpression) _expr() {}
func (*AssignmentPattern) _expr()       {}
func (*ArrayPattern) _expr()            {}
func (*ObjectPattern) _expr()           {}
func (*RestElement) _expr()             {}

func (*AssignmentPattern) _pattern() {}
func (*ArrayPattern) _pattern()      {}
func (*ObjectPattern) _pattern()     {}
func (*RestElement) _pattern()       {}

func (n *FunctionExpression) FunctionID() *Identifier            { return n.ID }
func (n *FunctionExpression) SetFunctionID(id *Identifier)       { n.ID = id }
func (n *FunctionExpression) FunctionParams() []Expr             { return n.Params }
func (n *FunctionExpression) SetFunctionParams(params []Expr)    { n.Params = params }
func (n *FunctionExpression) FunctionBody() *BlockStatement      { return n.Body }
func (n *FunctionExpression) SetFunctionBody(b *BlockStatement)  { n.Body = b }
