package ast

// RewriteChildExprs applies fn to every expression child slot of n and
// stores the result back into the slot. Slots with a concrete type
// (identifiers, block bodies) are left alone; fn only ever sees slots
// that can legally hold any expression. The normalizer uses this to
// swap arrow functions for named function expressions without knowing
// the parent variant.
func RewriteChildExprs(n Node, fn func(Expr) Expr) {
	each := func(list []Expr) {
		for i, e := range list {
			if e != nil {
				list[i] = fn(e)
			}
		}
	}

	switch t := n.(type) {
	case *ExpressionStatement:
		t.Expression = fn(t.Expression)
	case *ReturnStatement:
		if t.Argument != nil {
			t.Argument = fn(t.Argument)
		}
	case *IfStatement:
		t.Test = fn(t.Test)
	case *WhileStatement:
		t.Test = fn(t.Test)
	case *DoWhileStatement:
		t.Test = fn(t.Test)
	case *ForStatement:
		if init, ok := t.Init.(Expr); ok {
			t.Init = fn(init)
		}
		if t.Test != nil {
			t.Test = fn(t.Test)
		}
		if t.Update != nil {
			t.Update = fn(t.Update)
		}
	case *ForInStatement:
		if left, ok := t.Left.(Expr); ok {
			t.Left = fn(left)
		}
		t.Right = fn(t.Right)
	case *ForOfStatement:
		if left, ok := t.Left.(Expr); ok {
			t.Left = fn(left)
		}
		t.Right = fn(t.Right)
	case *SwitchStatement:
		t.Discriminant = fn(t.Discriminant)
	case *SwitchCase:
		if t.Test != nil {
			t.Test = fn(t.Test)
		}
	case *ThrowStatement:
		t.Argument = fn(t.Argument)
	case *WithStatement:
		t.Object = fn(t.Object)
	case *CatchClause:
		if t.Param != nil {
			t.Param = fn(t.Param)
		}
	case *VariableDeclarator:
		t.ID = fn(t.ID)
		if t.Init != nil {
			t.Init = fn(t.Init)
		}
	case *FunctionDeclaration:
		each(t.Params)
	case *FunctionExpression:
		each(t.Params)
	case *ArrowFunctionExpression:
		each(t.Params)
		if body, ok := t.Body.(Expr); ok {
			t.Body = fn(body)
		}
	case *ArrayExpression:
		each(t.Elements)
	case *ArrayPattern:
		each(t.Elements)
	case *Property:
		t.Key = fn(t.Key)
		t.Value = fn(t.Value)
	case *UnaryExpression:
		t.Argument = fn(t.Argument)
	case *UpdateExpression:
		t.Argument = fn(t.Argument)
	case *BinaryExpression:
		t.Left = fn(t.Left)
		t.Right = fn(t.Right)
	case *LogicalExpression:
		t.Left = fn(t.Left)
		t.Right = fn(t.Right)
	case *AssignmentExpression:
		t.Left = fn(t.Left)
		t.Right = fn(t.Right)
	case *AssignmentPattern:
		t.Left = fn(t.Left)
		t.Right = fn(t.Right)
	case *ConditionalExpression:
		t.Test = fn(t.Test)
		t.Consequent = fn(t.Consequent)
		t.Alternate = fn(t.Alternate)
	case *CallExpression:
		t.Callee = fn(t.Callee)
		each(t.Arguments)
	case *NewExpression:
		t.Callee = fn(t.Callee)
		each(t.Arguments)
	case *MemberExpression:
		t.Object = fn(t.Object)
		t.Property = fn(t.Property)
	case *SequenceExpression:
		each(t.Expressions)
	case *SpreadElement:
		t.Argument = fn(t.Argument)
	case *RestElement:
		t.Argument = fn(t.Argument)
	case *TemplateLiteral:
		each(t.Expressions)
	}
}
