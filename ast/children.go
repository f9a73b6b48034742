package ast

// Per-variant child slot declarations. Order matches source order; nil
// optional slots are omitted. When adding a variant, add its Children
// method here and, if it has expression slots, a case in rewrite.go.

func stmtNodes(list []Stmt) []Node {
	out := make([]Node, 0, len(list))
	for _, s := range list {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func exprNodes(list []Expr) []Node {
	out := make([]Node, 0, len(list))
	for _, e := range list {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func (n *Program) Children() []Node { return stmtNodes(n.Body) }

func (n *ExpressionStatement) Children() []Node { return []Node{n.Expression} }

func (n *BlockStatement) Children() []Node { return stmtNodes(n.List) }

func (n *EmptyStatement) Children() []Node    { return nil }
func (n *DebuggerStatement) Children() []Node { return nil }
func (n *ThisExpression) Children() []Node    { return nil }
func (n *Identifier) Children() []Node        { return nil }
func (n *Literal) Children() []Node           { return nil }
func (n *TemplateElement) Children() []Node   { return nil }

func (n *ReturnStatement) Children() []Node {
	if n.Argument == nil {
		return nil
	}
	return []Node{n.Argument}
}

func (n *IfStatement) Children() []Node {
	out := []Node{n.Test, n.Consequent}
	if n.Alternate != nil {
		out = append(out, n.Alternate)
	}
	return out
}

func (n *LabeledStatement) Children() []Node {
	return []Node{n.Label, n.Body}
}

func (n *BreakStatement) Children() []Node {
	if n.Label == nil {
		return nil
	}
	return []Node{n.Label}
}

func (n *ContinueStatement) Children() []Node {
	if n.Label == nil {
		return nil
	}
	return []Node{n.Label}
}

func (n *WhileStatement) Children() []Node { return []Node{n.Test, n.Body} }

func (n *DoWhileStatement) Children() []Node { return []Node{n.Body, n.Test} }

func (n *ForStatement) Children() []Node {
	var out []Node
	if n.Init != nil {
		out = append(out, n.Init)
	}
	if n.Test != nil {
		out = append(out, n.Test)
	}
	if n.Update != nil {
		out = append(out, n.Update)
	}
	return append(out, n.Body)
}

func (n *ForInStatement) Children() []Node { return []Node{n.Left, n.Right, n.Body} }
func (n *ForOfStatement) Children() []Node { return []Node{n.Left, n.Right, n.Body} }

func (n *SwitchStatement) Children() []Node {
	out := []Node{n.Discriminant}
	for _, c := range n.Cases {
		out = append(out, c)
	}
	return out
}

func (n *SwitchCase) Children() []Node {
	var out []Node
	if n.Test != nil {
		out = append(out, n.Test)
	}
	return append(out, stmtNodes(n.Consequent)...)
}

func (n *ThrowStatement) Children() []Node { return []Node{n.Argument} }

func (n *TryStatement) Children() []Node {
	out := []Node{n.Block}
	if n.Handler != nil {
		out = append(out, n.Handler)
	}
	if n.Finalizer != nil {
		out = append(out, n.Finalizer)
	}
	return out
}

func (n *CatchClause) Children() []Node {
	var out []Node
	if n.Param != nil {
		out = append(out, n.Param)
	}
	return append(out, n.Body)
}

func (n *WithStatement) Children() []Node { return []Node{n.Object, n.Body} }

func (n *VariableDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Declarations))
	for _, d := range n.Declarations {
		out = append(out, d)
	}
	return out
}

func (n *VariableDeclarator) Children() []Node {
	out := []Node{n.ID}
	if n.Init != nil {
		out = append(out, n.Init)
	}
	return out
}

func (n *FunctionDeclaration) Children() []Node {
	var out []Node
	if n.ID != nil {
		out = append(out, n.ID)
	}
	out = append(out, exprNodes(n.Params)...)
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

func (n *FunctionExpression) Children() []Node {
	var out []Node
	if n.ID != nil {
		out = append(out, n.ID)
	}
	out = append(out, exprNodes(n.Params)...)
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

func (n *ArrowFunctionExpression) Children() []Node {
	out := exprNodes(n.Params)
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

func (n *ArrayExpression) Children() []Node { return exprNodes(n.Elements) }
func (n *ArrayPattern) Children() []Node    { return exprNodes(n.Elements) }

func (n *ObjectExpression) Children() []Node {
	out := make([]Node, 0, len(n.Properties))
	for _, p := range n.Properties {
		out = append(out, p)
	}
	return out
}

func (n *ObjectPattern) Children() []Node {
	out := make([]Node, 0, len(n.Properties))
	for _, p := range n.Properties {
		out = append(out, p)
	}
	return out
}

func (n *Property) Children() []Node { return []Node{n.Key, n.Value} }

func (n *UnaryExpression) Children() []Node  { return []Node{n.Argument} }
func (n *UpdateExpression) Children() []Node { return []Node{n.Argument} }

func (n *BinaryExpression) Children() []Node     { return []Node{n.Left, n.Right} }
func (n *LogicalExpression) Children() []Node    { return []Node{n.Left, n.Right} }
func (n *AssignmentExpression) Children() []Node { return []Node{n.Left, n.Right} }
func (n *AssignmentPattern) Children() []Node    { return []Node{n.Left, n.Right} }

func (n *ConditionalExpression) Children() []Node {
	return []Node{n.Test, n.Consequent, n.Alternate}
}

func (n *CallExpression) Children() []Node {
	return append([]Node{n.Callee}, exprNodes(n.Arguments)...)
}

func (n *NewExpression) Children() []Node {
	return append([]Node{n.Callee}, exprNodes(n.Arguments)...)
}

func (n *MemberExpression) Children() []Node { return []Node{n.Object, n.Property} }

func (n *SequenceExpression) Children() []Node { return exprNodes(n.Expressions) }

func (n *SpreadElement) Children() []Node { return []Node{n.Argument} }
func (n *RestElement) Children() []Node   { return []Node{n.Argument} }

func (n *TemplateLiteral) Children() []Node {
	var out []Node
	for i, q := range n.Quasis {
		out = append(out, q)
		if i < len(n.Expressions) {
			out = append(out, n.Expressions[i])
		}
	}
	return out
}
