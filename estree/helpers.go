package estree

import (
	"encoding/json"
	"fmt"

	"github.com/hexlattice/unmangle/ast"
)

func decodeNodeRaw(raw json.RawMessage) (ast.Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var r rawNode
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return decodeNode(&r)
}

func decodeExpr(r *rawNode) (ast.Expr, error) {
	if r == nil {
		return nil, nil
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expr)
	if !ok {
		return nil, fmt.Errorf("decode tree: %s in expression position", r.Type)
	}
	return expr, nil
}

func decodeExprRaw(raw json.RawMessage) (ast.Expr, error) {
	node, err := decodeNodeRaw(raw)
	if err != nil || node == nil {
		return nil, err
	}
	expr, ok := node.(ast.Expr)
	if !ok {
		return nil, fmt.Errorf("decode tree: %T in expression position", node)
	}
	return expr, nil
}

func decodeStmt(r *rawNode) (ast.Stmt, error) {
	if r == nil {
		return nil, nil
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	stmt, ok := node.(ast.Stmt)
	if !ok {
		return nil, fmt.Errorf("decode tree: %s in statement position", r.Type)
	}
	return stmt, nil
}

func decodeStmtRaw(raw json.RawMessage) (ast.Stmt, error) {
	node, err := decodeNodeRaw(raw)
	if err != nil || node == nil {
		return nil, err
	}
	stmt, ok := node.(ast.Stmt)
	if !ok {
		return nil, fmt.Errorf("decode tree: %T in statement position", node)
	}
	return stmt, nil
}

func decodeStmtListRaw(raw json.RawMessage) ([]ast.Stmt, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var items []*rawNode
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	list := make([]ast.Stmt, 0, len(items))
	for _, item := range items {
		stmt, err := decodeStmt(item)
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	return list, nil
}

func decodeExprList(items []*rawNode) ([]ast.Expr, error) {
	if len(items) == 0 {
		return nil, nil
	}
	list := make([]ast.Expr, 0, len(items))
	for _, item := range items {
		expr, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
	return list, nil
}

// decodeExprListSparse keeps nil holes, as found in array elisions.
func decodeExprListSparse(items []*rawNode) ([]ast.Expr, error) {
	if len(items) == 0 {
		return nil, nil
	}
	list := make([]ast.Expr, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		expr, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		list[i] = expr
	}
	return list, nil
}

func decodeIdent(r *rawNode) (*ast.Identifier, error) {
	if r == nil {
		return nil, nil
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	id, ok := node.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("decode tree: %s where identifier expected", r.Type)
	}
	return id, nil
}

func decodeProperties(items []*rawNode) ([]*ast.Property, error) {
	props := make([]*ast.Property, 0, len(items))
	for _, item := range items {
		node, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		prop, ok := node.(*ast.Property)
		if !ok {
			return nil, fmt.Errorf("decode tree: %s in property position", item.Type)
		}
		props = append(props, prop)
	}
	return props, nil
}

func decodeFunctionParts(r *rawNode) (*ast.Identifier, []ast.Expr, *ast.BlockStatement, error) {
	id, err := decodeIdent(r.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	params, err := decodeExprList(r.Params)
	if err != nil {
		return nil, nil, nil, err
	}
	body, err := decodeNodeRaw(r.Body)
	if err != nil {
		return nil, nil, nil, err
	}
	block, ok := body.(*ast.BlockStatement)
	if !ok {
		return nil, nil, nil, fmt.Errorf("decode tree: function body is %T, want block", body)
	}
	return id, params, block, nil
}

func decodeForHead(r *rawNode) (ast.Node, ast.Expr, ast.Stmt, error) {
	left, err := decodeNode(r.Left)
	if err != nil {
		return nil, nil, nil, err
	}
	right, err := decodeExpr(r.Right)
	if err != nil {
		return nil, nil, nil, err
	}
	body, err := decodeStmtRaw(r.Body)
	if err != nil {
		return nil, nil, nil, err
	}
	return left, right, body, nil
}

func decodeSides(r *rawNode) (ast.Expr, ast.Expr, error) {
	left, err := decodeExpr(r.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := decodeExpr(r.Right)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func decodeCallParts(r *rawNode) (ast.Expr, []ast.Expr, error) {
	callee, err := decodeExpr(r.Callee)
	if err != nil {
		return nil, nil, err
	}
	args, err := decodeExprList(r.Arguments)
	if err != nil {
		return nil, nil, err
	}
	return callee, args, nil
}
