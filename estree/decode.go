// Package estree decodes ESTree-shaped JSON, the interchange format
// spoken by the external parser command, into the tree types used by
// the rewriting passes.
package estree

import (
	"encoding/json"
	"fmt"

	"github.com/hexlattice/unmangle/ast"
)

// rawNode carries the union of every field any ESTree node can have.
// Fields whose shape depends on the node type stay raw until the type
// switch decides how to read them.
type rawNode struct {
	Type  string  `json:"type"`
	Range []int   `json:"range"`
	Loc   *rawLoc `json:"loc"`

	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
	Raw   string          `json:"raw"`
	Regex *rawRegex       `json:"regex"`

	// Body is a single node for functions and loops, a list for
	// programs and blocks. Expression is a node on expression
	// statements and a bool on arrow functions.
	Body       json.RawMessage `json:"body"`
	Expression json.RawMessage `json:"expression"`

	ID           *rawNode   `json:"id"`
	Params       []*rawNode `json:"params"`
	Generator    bool       `json:"generator"`
	Async        bool       `json:"async"`
	Declarations []*rawNode `json:"declarations"`
	Kind         string     `json:"kind"`
	Init         *rawNode   `json:"init"`
	Test         *rawNode   `json:"test"`
	Update       *rawNode   `json:"update"`
	Consequent   json.RawMessage `json:"consequent"`
	Alternate    *rawNode   `json:"alternate"`
	Argument     *rawNode   `json:"argument"`
	Arguments    []*rawNode `json:"arguments"`
	Label        *rawNode   `json:"label"`
	Left         *rawNode   `json:"left"`
	Right        *rawNode   `json:"right"`
	Operator     string     `json:"operator"`
	Prefix       bool       `json:"prefix"`
	Object       *rawNode   `json:"object"`
	Property     *rawNode   `json:"property"`
	Computed     bool       `json:"computed"`
	Callee       *rawNode   `json:"callee"`
	Discriminant *rawNode   `json:"discriminant"`
	Cases        []*rawNode `json:"cases"`
	Block        *rawNode   `json:"block"`
	Handler      *rawNode   `json:"handler"`
	Finalizer    *rawNode   `json:"finalizer"`
	Param        *rawNode   `json:"param"`
	Key          *rawNode   `json:"key"`
	Shorthand    bool       `json:"shorthand"`
	Method       bool       `json:"method"`
	Elements     []*rawNode `json:"elements"`
	Properties   []*rawNode `json:"properties"`
	Expressions  []*rawNode `json:"expressions"`
	Quasis       []*rawNode `json:"quasis"`
	Tail         bool       `json:"tail"`
	SourceType   string     `json:"sourceType"`

	Comments []*rawComment `json:"comments"`
}

type rawLoc struct {
	Start rawPosition `json:"start"`
	End   rawPosition `json:"end"`
}

type rawPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type rawRegex struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

type rawComment struct {
	Type  string  `json:"type"`
	Value string  `json:"value"`
	Range []int   `json:"range"`
	Loc   *rawLoc `json:"loc"`
}

// Decode parses an ESTree JSON document and returns the program plus
// its detached comment list, ordered as the parser emitted it.
func Decode(data []byte) (*ast.Program, []*ast.Comment, error) {
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("decode tree: %w", err)
	}
	if root.Type != "Program" {
		return nil, nil, fmt.Errorf("decode tree: root is %q, want Program", root.Type)
	}

	node, err := decodeNode(&root)
	if err != nil {
		return nil, nil, err
	}
	program := node.(*ast.Program)

	list := make([]*ast.Comment, 0, len(root.Comments))
	for _, rc := range root.Comments {
		c := &ast.Comment{Text: rc.Value}
		if rc.Type == "Block" {
			c.Kind = ast.CommentBlock
		} else {
			c.Kind = ast.CommentLine
		}
		if len(rc.Range) == 2 {
			c.Span = ast.Span{Start: rc.Range[0], End: rc.Range[1]}
		}
		if rc.Loc != nil {
			c.Loc = decodeLoc(rc.Loc)
		}
		list = append(list, c)
	}
	return program, list, nil
}

func decodeBase(r *rawNode) ast.NodeBase {
	var b ast.NodeBase
	if len(r.Range) == 2 {
		b.Span = ast.Span{Start: r.Range[0], End: r.Range[1]}
	}
	if r.Loc != nil {
		b.Loc = decodeLoc(r.Loc)
	}
	return b
}

func decodeLoc(l *rawLoc) ast.Loc {
	return ast.Loc{
		Start: ast.Position{Line: l.Start.Line, Column: l.Start.Column},
		End:   ast.Position{Line: l.End.Line, Column: l.End.Column},
	}
}

func decodeNode(r *rawNode) (ast.Node, error) {
	if r == nil {
		return nil, nil
	}
	base := decodeBase(r)

	switch r.Type {
	case "Program":
		body, err := decodeStmtListRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Program{NodeBase: base, Body: body, SourceType: r.SourceType}, nil

	case "Identifier":
		return &ast.Identifier{NodeBase: base, Name: r.Name}, nil

	case "Literal":
		lit := &ast.Literal{NodeBase: base, Raw: r.Raw}
		if r.Regex != nil {
			lit.Regex = &ast.Regex{Pattern: r.Regex.Pattern, Flags: r.Regex.Flags}
		}
		if len(r.Value) > 0 {
			if err := json.Unmarshal(r.Value, &lit.Value); err != nil {
				// Regex literals carry an unmarshalable value; the raw
				// text is authoritative for them anyway.
				if r.Regex == nil {
					return nil, fmt.Errorf("decode literal %s: %w", r.Raw, err)
				}
			}
		}
		return lit, nil

	case "TemplateLiteral":
		tl := &ast.TemplateLiteral{NodeBase: base}
		for _, q := range r.Quasis {
			el, err := decodeNode(q)
			if err != nil {
				return nil, err
			}
			tl.Quasis = append(tl.Quasis, el.(*ast.TemplateElement))
		}
		exprs, err := decodeExprList(r.Expressions)
		if err != nil {
			return nil, err
		}
		tl.Expressions = exprs
		return tl, nil

	case "TemplateElement":
		el := &ast.TemplateElement{NodeBase: base, Tail: r.Tail}
		var v struct {
			Raw    string `json:"raw"`
			Cooked string `json:"cooked"`
		}
		if len(r.Value) > 0 {
			if err := json.Unmarshal(r.Value, &v); err != nil {
				return nil, fmt.Errorf("decode template element: %w", err)
			}
		}
		el.Raw, el.Cooked = v.Raw, v.Cooked
		return el, nil

	case "ThisExpression":
		return &ast.ThisExpression{NodeBase: base}, nil

	case "ArrayExpression":
		elems, err := decodeExprListSparse(r.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayExpression{NodeBase: base, Elements: elems}, nil

	case "ArrayPattern":
		elems, err := decodeExprListSparse(r.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPattern{NodeBase: base, Elements: elems}, nil

	case "ObjectExpression":
		props, err := decodeProperties(r.Properties)
		if err != nil {
			return nil, err
		}
		return &ast.ObjectExpression{NodeBase: base, Properties: props}, nil

	case "ObjectPattern":
		props, err := decodeProperties(r.Properties)
		if err != nil {
			return nil, err
		}
		return &ast.ObjectPattern{NodeBase: base, Properties: props}, nil

	case "Property":
		key, err := decodeExpr(r.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeExprRaw(r.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Property{
			NodeBase:  base,
			Key:       key,
			Value:     value,
			Kind:      r.Kind,
			Computed:  r.Computed,
			Shorthand: r.Shorthand,
			Method:    r.Method,
		}, nil

	case "FunctionDeclaration":
		id, params, body, err := decodeFunctionParts(r)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclaration{
			NodeBase: base, ID: id, Params: params, Body: body,
			Generator: r.Generator, Async: r.Async,
		}, nil

	case "FunctionExpression":
		id, params, body, err := decodeFunctionParts(r)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionExpression{
			NodeBase: base, ID: id, Params: params, Body: body,
			Generator: r.Generator, Async: r.Async,
		}, nil

	case "ArrowFunctionExpression":
		params, err := decodeExprList(r.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeNodeRaw(r.Body)
		if err != nil {
			return nil, err
		}
		concise := false
		if len(r.Expression) > 0 {
			if err := json.Unmarshal(r.Expression, &concise); err != nil {
				return nil, fmt.Errorf("decode arrow expression flag: %w", err)
			}
		}
		return &ast.ArrowFunctionExpression{
			NodeBase: base, Params: params, Body: body,
			Expression: concise, Async: r.Async,
		}, nil

	case "ExpressionStatement":
		expr, err := decodeExprRaw(r.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{NodeBase: base, Expression: expr}, nil

	case "BlockStatement":
		list, err := decodeStmtListRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{NodeBase: base, List: list}, nil

	case "EmptyStatement":
		return &ast.EmptyStatement{NodeBase: base}, nil

	case "DebuggerStatement":
		return &ast.DebuggerStatement{NodeBase: base}, nil

	case "VariableDeclaration":
		vd := &ast.VariableDeclaration{NodeBase: base, Kind: r.Kind}
		for _, d := range r.Declarations {
			node, err := decodeNode(d)
			if err != nil {
				return nil, err
			}
			vd.Declarations = append(vd.Declarations, node.(*ast.VariableDeclarator))
		}
		return vd, nil

	case "VariableDeclarator":
		id, err := decodeExpr(r.ID)
		if err != nil {
			return nil, err
		}
		init, err := decodeExpr(r.Init)
		if err != nil {
			return nil, err
		}
		return &ast.VariableDeclarator{NodeBase: base, ID: id, Init: init}, nil

	case "ReturnStatement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{NodeBase: base, Argument: arg}, nil

	case "IfStatement":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmtRaw(r.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeStmt(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.IfStatement{NodeBase: base, Test: test, Consequent: cons, Alternate: alt}, nil

	case "LabeledStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LabeledStatement{NodeBase: base, Label: label, Body: body}, nil

	case "BreakStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		return &ast.BreakStatement{NodeBase: base, Label: label}, nil

	case "ContinueStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{NodeBase: base, Label: label}, nil

	case "WhileStatement":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{NodeBase: base, Test: test, Body: body}, nil

	case "DoWhileStatement":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.DoWhileStatement{NodeBase: base, Test: test, Body: body}, nil

	case "ForStatement":
		init, err := decodeNode(r.Init)
		if err != nil {
			return nil, err
		}
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		update, err := decodeExpr(r.Update)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{NodeBase: base, Init: init, Test: test, Update: update, Body: body}, nil

	case "ForInStatement":
		left, right, body, err := decodeForHead(r)
		if err != nil {
			return nil, err
		}
		return &ast.ForInStatement{NodeBase: base, Left: left, Right: right, Body: body}, nil

	case "ForOfStatement":
		left, right, body, err := decodeForHead(r)
		if err != nil {
			return nil, err
		}
		return &ast.ForOfStatement{NodeBase: base, Left: left, Right: right, Body: body}, nil

	case "SwitchStatement":
		disc, err := decodeExpr(r.Discriminant)
		if err != nil {
			return nil, err
		}
		sw := &ast.SwitchStatement{NodeBase: base, Discriminant: disc}
		for _, c := range r.Cases {
			node, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			sw.Cases = append(sw.Cases, node.(*ast.SwitchCase))
		}
		return sw, nil

	case "SwitchCase":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmtListRaw(r.Consequent)
		if err != nil {
			return nil, err
		}
		return &ast.SwitchCase{NodeBase: base, Test: test, Consequent: cons}, nil

	case "ThrowStatement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{NodeBase: base, Argument: arg}, nil

	case "TryStatement":
		block, err := decodeNode(r.Block)
		if err != nil {
			return nil, err
		}
		ts := &ast.TryStatement{NodeBase: base, Block: block.(*ast.BlockStatement)}
		if r.Handler != nil {
			h, err := decodeNode(r.Handler)
			if err != nil {
				return nil, err
			}
			ts.Handler = h.(*ast.CatchClause)
		}
		if r.Finalizer != nil {
			f, err := decodeNode(r.Finalizer)
			if err != nil {
				return nil, err
			}
			ts.Finalizer = f.(*ast.BlockStatement)
		}
		return ts, nil

	case "CatchClause":
		param, err := decodeExpr(r.Param)
		if err != nil {
			return nil, err
		}
		body, err := decodeNodeRaw(r.Body)
		if err != nil {
			return nil, err
		}
		block, ok := body.(*ast.BlockStatement)
		if !ok {
			return nil, fmt.Errorf("decode tree: catch body is %T, want block", body)
		}
		return &ast.CatchClause{NodeBase: base, Param: param, Body: block}, nil

	case "WithStatement":
		obj, err := decodeExpr(r.Object)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtRaw(r.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WithStatement{NodeBase: base, Object: obj, Body: body}, nil

	case "UnaryExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{NodeBase: base, Operator: r.Operator, Argument: arg}, nil

	case "UpdateExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{NodeBase: base, Operator: r.Operator, Argument: arg, Prefix: r.Prefix}, nil

	case "BinaryExpression":
		left, right, err := decodeSides(r)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{NodeBase: base, Operator: r.Operator, Left: left, Right: right}, nil

	case "LogicalExpression":
		left, right, err := decodeSides(r)
		if err != nil {
			return nil, err
		}
		return &ast.LogicalExpression{NodeBase: base, Operator: r.Operator, Left: left, Right: right}, nil

	case "AssignmentExpression":
		left, right, err := decodeSides(r)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{NodeBase: base, Operator: r.Operator, Left: left, Right: right}, nil

	case "AssignmentPattern":
		left, right, err := decodeSides(r)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentPattern{NodeBase: base, Left: left, Right: right}, nil

	case "ConditionalExpression":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExprRaw(r.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeExpr(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpression{NodeBase: base, Test: test, Consequent: cons, Alternate: alt}, nil

	case "CallExpression":
		callee, args, err := decodeCallParts(r)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{NodeBase: base, Callee: callee, Arguments: args}, nil

	case "NewExpression":
		callee, args, err := decodeCallParts(r)
		if err != nil {
			return nil, err
		}
		return &ast.NewExpression{NodeBase: base, Callee: callee, Arguments: args}, nil

	case "MemberExpression":
		obj, err := decodeExpr(r.Object)
		if err != nil {
			return nil, err
		}
		prop, err := decodeExpr(r.Property)
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{NodeBase: base, Object: obj, Property: prop, Computed: r.Computed}, nil

	case "SequenceExpression":
		exprs, err := decodeExprList(r.Expressions)
		if err != nil {
			return nil, err
		}
		return &ast.SequenceExpression{NodeBase: base, Expressions: exprs}, nil

	case "SpreadElement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.SpreadElement{NodeBase: base, Argument: arg}, nil

	case "RestElement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ast.RestElement{NodeBase: base, Argument: arg}, nil
	}

	return nil, fmt.Errorf("decode tree: unsupported node type %q", r.Type)
}
