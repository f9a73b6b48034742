package rename

import (
	"strconv"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/walker"
)

// scopeVars is the per-scope state of the uniquification pass.
type scopeVars struct {
	// subs maps an original name to its replacement within this scope.
	// The empty string is a tombstone: the name is explicitly not
	// substituted from here on, overriding any enclosing scope.
	subs map[string]string
	// reset holds left-hand identifiers whose binding is about to be
	// reassigned; visiting one installs a tombstone instead of a
	// substitution.
	reset map[*ast.Identifier]struct{}
}

func newScopeVars() *scopeVars {
	return &scopeVars{
		subs:  make(map[string]string),
		reset: make(map[*ast.Identifier]struct{}),
	}
}

// Uniquify renames every selected function declaration and named
// function expression to a name distinct from everything in the
// inventory, and rewrites exactly the identifier references lexically
// bound to the renamed declaration. References shadowed by an inner
// redeclaration, reassignment or parameter keep their own binding.
func Uniquify(program *ast.Program, rc *Context) {
	u := &uniquifier{rc: rc}
	walker.Walk(program, newScopeVars(), u.pre, u.post)
}

type uniquifier struct {
	rc *Context
}

func (u *uniquifier) pre(w *walker.Walker[*scopeVars], n ast.Node) walker.Action {
	switch t := n.(type) {
	case *ast.AssignmentExpression:
		u.markReset(w, t.Left)
		// The right side still references the old binding; visit it
		// before the left (last enqueued pops first).
		w.Enqueue(t.Left, t.Right)
		return walker.SkipChildren

	case *ast.AssignmentPattern:
		u.markReset(w, t.Left)
		w.Enqueue(t.Left, t.Right)
		return walker.SkipChildren

	case *ast.VariableDeclarator:
		u.markReset(w, t.ID)
		w.Enqueue(t.ID)
		if t.Init != nil {
			w.Enqueue(t.Init)
		}
		return walker.SkipChildren

	case *ast.MemberExpression:
		// Only the object is a reference; the property name is never
		// a bindable identifier here, computed or not.
		w.Enqueue(t.Object)
		return walker.SkipChildren

	case *ast.FunctionDeclaration:
		// A declaration's name is visible in the enclosing scope, so
		// it is renamed before the function's own scope exists.
		if t.ID != nil && u.rc.selected(t) {
			u.subName(w.Current().Ctx, t.ID)
		}

	case *ast.Identifier:
		sv := w.Current().Ctx
		if _, ok := sv.reset[t]; ok {
			sv.subs[t.Name] = ""
			delete(sv.reset, t)
			return walker.Continue
		}
		scopes := w.Scopes()
		for i := len(scopes) - 1; i >= 0; i-- {
			if repl, ok := scopes[i].Ctx.subs[t.Name]; ok {
				if repl != "" {
					t.Name = repl
				}
				// A tombstone stops the search; outer substitutions
				// do not apply past it.
				break
			}
		}
	}
	return walker.Continue
}

func (u *uniquifier) post(w *walker.Walker[*scopeVars], n ast.Node) walker.Action {
	sv := newScopeVars()
	w.Current().Ctx = sv

	// A function expression's name is visible only inside its own
	// body, so the substitution lands in the scope just pushed.
	if fe, ok := n.(*ast.FunctionExpression); ok {
		if fe.ID != nil && u.rc.selected(fe) {
			u.subName(sv, fe.ID)
		}
	}

	// Parameters always shadow outer bindings, whatever substitutions
	// are in flight for their names.
	for _, name := range paramNames(n) {
		for _, scope := range w.Scopes() {
			if _, ok := scope.Ctx.subs[name]; ok {
				sv.subs[name] = ""
				break
			}
		}
	}
	return walker.Continue
}

// markReset flags a left-hand identifier whose name currently has a
// substitution in any enclosing scope. The tombstone is installed only
// when the identifier itself is visited, after the right-hand side has
// been processed under the old bindings.
func (u *uniquifier) markReset(w *walker.Walker[*scopeVars], left ast.Expr) {
	id, ok := left.(*ast.Identifier)
	if !ok {
		return
	}
	scopes := w.Scopes()
	for i := len(scopes) - 1; i >= 0; i-- {
		if _, ok := scopes[i].Ctx.subs[id.Name]; ok {
			w.Current().Ctx.reset[id] = struct{}{}
			return
		}
	}
}

// subName renames a function identifier to "f_" + name, suffixing a
// counter until the candidate is absent from the inventory, and
// records the substitution in sv.
func (u *uniquifier) subName(sv *scopeVars, id *ast.Identifier) {
	const prefix = "f_"
	name := prefix + id.Name
	for num := 1; u.rc.Inventory.Contains(name); {
		num++
		name = prefix + id.Name + strconv.Itoa(num)
	}
	sv.subs[id.Name] = name
	u.rc.Inventory.Add(name)
	id.Name = name
}

// paramNames returns the bindable parameter names of function-like
// nodes; defaulted parameters contribute their target name.
func paramNames(n ast.Node) []string {
	var params []ast.Expr
	switch t := n.(type) {
	case *ast.FunctionDeclaration:
		params = t.Params
	case *ast.FunctionExpression:
		params = t.Params
	case *ast.ArrowFunctionExpression:
		params = t.Params
	default:
		return nil
	}

	var names []string
	for _, p := range params {
		switch pt := p.(type) {
		case *ast.Identifier:
			names = append(names, pt.Name)
		case *ast.AssignmentPattern:
			if id, ok := pt.Left.(*ast.Identifier); ok {
				names = append(names, id.Name)
			}
		case *ast.RestElement:
			if id, ok := pt.Argument.(*ast.Identifier); ok {
				names = append(names, id.Name)
			}
		}
	}
	return names
}
