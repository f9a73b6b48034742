package ast

type (
	Program struct {
		NodeBase
		Body       []Stmt
		SourceType string
	}

	ExpressionStatement struct {
		NodeBase
		Expression Expr
	}

	BlockStatement struct {
		NodeBase
		List []Stmt
	}

	EmptyStatement struct {
		NodeBase
	}

	DebuggerStatement struct {
		NodeBase
	}

	ReturnStatement struct {
		NodeBase
		Argument Expr
	}

	IfStatement struct {
		NodeBase
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	LabeledStatement struct {
		NodeBase
		Label *Identifier
		Body  Stmt
	}

	BreakStatement struct {
		NodeBase
		Label *Identifier
	}

	ContinueStatement struct {
		NodeBase
		Label *Identifier
	}

	WhileStatement struct {
		NodeBase
		Test Expr
		Body Stmt
	}

	DoWhileStatement struct {
		NodeBase
		Body Stmt
		Test Expr
	}

	// ForStatement.Init is a VariableDeclaration or an Expr.
	ForStatement struct {
		NodeBase
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
	}

	ForInStatement struct {
		NodeBase
		Left  Node
		Right Expr
		Body  Stmt
	}

	ForOfStatement struct {
		NodeBase
		Left  Node
		Right Expr
		Body  Stmt
	}

	SwitchStatement struct {
		NodeBase
		Discriminant Expr
		Cases        []*SwitchCase
	}

	SwitchCase struct {
		NodeBase
		// Test is nil for the default case.
		Test       Expr
		Consequent []Stmt
	}

	ThrowStatement struct {
		NodeBase
		Argument Expr
	}

	TryStatement struct {
		NodeBase
		Block     *BlockStatement
		Handler   *CatchClause
		Finalizer *BlockStatement
	}

	CatchClause struct {
		NodeBase
		Param Expr
		Body  *BlockStatement
	}

	WithStatement struct {
		NodeBase
		Object Expr
		Body   Stmt
	}
)

func (*Program) _stmt()             {}
func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*DebuggerStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*IfStatement) _stmt()         {}
func (*LabeledStatement) _stmt()    {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WithStatement) _stmt()       {}
