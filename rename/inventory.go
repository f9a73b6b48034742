package rename

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/walker"
)

// Inventory is the set of every identifier and label name in use. It
// only ever grows: each pass registers the names it mints before
// writing them into the tree, so no later pass can re-collide with an
// earlier one. It is collision-avoidance bookkeeping only, never a
// source of truth for scoping.
type Inventory struct {
	names map[string]struct{}
}

func NewInventory() *Inventory {
	return &Inventory{names: make(map[string]struct{})}
}

// Collect walks the program once and records every identifier name and
// every statement label.
func Collect(program *ast.Program) *Inventory {
	inv := NewInventory()
	pre := func(_ *walker.Walker[struct{}], n ast.Node) walker.Action {
		switch t := n.(type) {
		case *ast.Identifier:
			inv.Add(t.Name)
		case *ast.LabeledStatement:
			if t.Label != nil {
				inv.Add(t.Label.Name)
			}
		}
		return walker.Continue
	}
	walker.Walk(program, struct{}{}, pre, nil)
	return inv
}

func (inv *Inventory) Add(name string) {
	inv.names[name] = struct{}{}
}

func (inv *Inventory) Contains(name string) bool {
	_, ok := inv.names[name]
	return ok
}

func (inv *Inventory) Len() int { return len(inv.names) }

// Names returns a sorted snapshot, for diagnostics and tests.
func (inv *Inventory) Names() []string {
	out := maps.Keys(inv.names)
	sort.Strings(out)
	return out
}
