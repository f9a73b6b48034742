// Package walker provides the scope-tracking depth-first traversal
// used by every analysis and rewriting pass.
//
// The walker keeps an explicit stack of lexical scopes. A scope is
// pushed whenever a node with a non-empty body is entered and popped,
// lazily, once all nodes pending under it have been visited. Each
// scope carries a caller-defined context value; passes use it for
// whatever per-scope state they need (substitution tables, the current
// enclosing function, and so on).
package walker

import (
	"github.com/hexlattice/unmangle/ast"
)

// Action is returned by callbacks to steer the traversal.
type Action int

const (
	// Continue visits the node's children normally.
	Continue Action = iota
	// Stop halts the entire traversal immediately.
	Stop
	// SkipChildren skips the node's children. The callback may have
	// enqueued a hand-picked subset via Enqueue instead.
	SkipChildren
)

// Callback is invoked with the walker (exposing the scope stack) and
// the node being visited.
type Callback[C any] func(w *Walker[C], n ast.Node) Action

// Scope is one activation record on the walker's stack.
type Scope[C any] struct {
	// Owner is the body-owning node that opened this scope; nil for
	// the root scope.
	Owner ast.Node
	// Ctx is free-form per-scope state owned by the active pass.
	Ctx C

	pending []ast.Node
}

// Walker traverses a tree depth-first in source order, visiting every
// reachable node exactly once.
type Walker[C any] struct {
	scopes []*Scope[C]
	pre    Callback[C]
	post   Callback[C]
}

// Walk traverses root. pre runs before a node is descended into; post
// runs right after a node pushed a new scope, with that scope current.
// Either callback may be nil. initial becomes the root scope's context.
func Walk[C any](root ast.Node, initial C, pre, post Callback[C]) {
	w := &Walker[C]{pre: pre, post: post}
	w.scopes = append(w.scopes, &Scope[C]{Ctx: initial, pending: []ast.Node{root}})
	w.run()
}

// Current returns the innermost scope.
func (w *Walker[C]) Current() *Scope[C] {
	return w.scopes[len(w.scopes)-1]
}

// Scopes returns the scope stack, outermost first. The returned slice
// is the walker's own; callers must not grow it.
func (w *Walker[C]) Scopes() []*Scope[C] {
	return w.scopes
}

// Parent returns the scope enclosing the current one, or nil at the
// root.
func (w *Walker[C]) Parent() *Scope[C] {
	if len(w.scopes) < 2 {
		return nil
	}
	return w.scopes[len(w.scopes)-2]
}

// Pending reports how many nodes remain queued in the current scope.
func (w *Walker[C]) Pending() int {
	return len(w.Current().pending)
}

// Enqueue pushes nodes onto the current scope's stack. The last node
// enqueued is visited first; a callback that wants left-to-right order
// enqueues right-to-left.
func (w *Walker[C]) Enqueue(nodes ...ast.Node) {
	cur := w.Current()
	for _, n := range nodes {
		if n != nil {
			cur.pending = append(cur.pending, n)
		}
	}
}

func (w *Walker[C]) run() {
	for {
		// Pop exhausted scopes; this may cascade.
		for len(w.scopes) > 0 && len(w.Current().pending) == 0 {
			w.scopes = w.scopes[:len(w.scopes)-1]
		}
		if len(w.scopes) == 0 {
			return
		}

		cur := w.Current()
		n := cur.pending[len(cur.pending)-1]
		cur.pending = cur.pending[:len(cur.pending)-1]

		if w.pre != nil {
			switch w.pre(w, n) {
			case Stop:
				return
			case SkipChildren:
				continue
			}
		}

		pushed := false
		if len(ast.BodyOf(n)) > 0 {
			w.scopes = append(w.scopes, &Scope[C]{Owner: n})
			pushed = true
		}

		// Children land in the scope the node just opened, if any.
		children := n.Children()
		target := w.Current()
		for i := len(children) - 1; i >= 0; i-- {
			target.pending = append(target.pending, children[i])
		}

		if pushed && w.post != nil {
			switch w.post(w, n) {
			case Stop:
				return
			case SkipChildren:
				// Drop the new scope's subtree; the empty scope is
				// popped on the next iteration.
				w.Current().pending = nil
			}
		}
	}
}
