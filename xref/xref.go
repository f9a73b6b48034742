// Package xref builds the direct call graph of a program: which named
// function calls which, and from which source line.
//
// Function records live in an arena and are referred to by stable ids,
// so renaming a function re-keys its record without invalidating the
// back-references held by accumulated Xrefs.
package xref

import (
	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/walker"
)

// GlobalScopeName labels the sentinel record that stands in for code
// executing at the top level of the program.
const GlobalScopeName = "! Global Scope"

// AnonymousName labels functions that reach the builder without an
// identifier. After normalization this does not happen.
const AnonymousName = "(anonymous)"

// FuncID is a stable index into the graph's arena.
type FuncID int

// Xref is one observed call site: which function made the call and on
// which 1-based source line. Xrefs are only ever appended.
type Xref struct {
	Caller FuncID
	Line   int
}

// Function is the logical record for one named function.
type Function struct {
	Name  string
	Xrefs []Xref

	// CreatorUnknown is set when the record was first created at a
	// call site, before (or without) any declaration being observed.
	CreatorUnknown bool
}

// Graph maps every function that is declared or called anywhere in the
// program to its record.
type Graph struct {
	arena  []*Function
	byName map[string]FuncID
}

func NewGraph() *Graph {
	return &Graph{byName: make(map[string]FuncID)}
}

// Lookup returns the record currently keyed under name.
func (g *Graph) Lookup(name string) (*Function, bool) {
	id, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return g.arena[id], true
}

// ByID resolves an arena id; ids remain valid across renames.
func (g *Graph) ByID(id FuncID) *Function {
	return g.arena[id]
}

// Len reports how many function records exist.
func (g *Graph) Len() int { return len(g.arena) }

// Remove unbinds the record keyed under name and returns it along with
// its id. The record stays in the arena; Rebind installs its new key.
func (g *Graph) Remove(name string) (FuncID, *Function, bool) {
	id, ok := g.byName[name]
	if !ok {
		return 0, nil, false
	}
	delete(g.byName, name)
	return id, g.arena[id], true
}

// Rebind keys the record under a new name and updates the record's own
// name field.
func (g *Graph) Rebind(id FuncID, name string) {
	g.arena[id].Name = name
	g.byName[name] = id
}

func (g *Graph) intern(name string, creatorUnknown bool) FuncID {
	if id, ok := g.byName[name]; ok {
		return id
	}
	id := FuncID(len(g.arena))
	g.arena = append(g.arena, &Function{Name: name, CreatorUnknown: creatorUnknown})
	g.byName[name] = id
	return id
}

// Build walks the program and records an Xref for every call whose
// callee is a bare identifier. Calls through member access or computed
// callees are intentionally ignored; so are calls reaching a function
// only via reassignment (var g = f; g() is not attributed to f).
//
// selected restricts which functions are tracked as callers; nil
// tracks all of them. An unselected function's calls are attributed to
// its nearest tracked enclosing function.
func Build(program *ast.Program, selected func(name string, line int) bool) *Graph {
	g := NewGraph()
	global := g.intern(GlobalScopeName, false)

	pre := func(w *walker.Walker[FuncID], n ast.Node) walker.Action {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			return walker.Continue
		}
		callee, ok := call.Callee.(*ast.Identifier)
		if !ok {
			// Not a direct named call; no edge.
			return walker.Continue
		}
		id := g.intern(callee.Name, true)
		fn := g.arena[id]
		fn.Xrefs = append(fn.Xrefs, Xref{
			Caller: w.Current().Ctx,
			Line:   call.Base().Loc.Start.Line,
		})
		return walker.Continue
	}

	post := func(w *walker.Walker[FuncID], n ast.Node) walker.Action {
		scope := w.Current()
		fn, ok := n.(ast.FunctionNode)
		if !ok {
			// Blocks and loops execute in the enclosing function.
			scope.Ctx = w.Parent().Ctx
			return walker.Continue
		}

		name := AnonymousName
		if id := fn.FunctionID(); id != nil {
			name = id.Name
		}
		if selected != nil && !selected(name, n.Base().Loc.Start.Line) {
			scope.Ctx = w.Parent().Ctx
			return walker.Continue
		}
		// A record may already exist from an earlier call site; reuse
		// it so the accumulated xrefs survive the declaration.
		fid := g.intern(name, false)
		scope.Ctx = fid
		return walker.Continue
	}

	walker.Walk(program, global, pre, post)
	return g
}
