package rename

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hexlattice/unmangle/ast"
)

// Context carries the state shared by the renaming passes: the name
// inventory, the selection set, and the synthetic-name counter. It is
// created once per run and threaded through every pass; nothing here
// is package-global.
type Context struct {
	Inventory *Inventory
	Selection *Selection
	Log       logrus.FieldLogger

	exprCounter int
}

func NewContext(inv *Inventory, sel *Selection, log logrus.FieldLogger) *Context {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Context{Inventory: inv, Selection: sel, Log: log}
}

// newExprIdent mints the next f_e_N identifier for an anonymous
// function expression, skipping names already in use.
func (c *Context) newExprIdent() *ast.Identifier {
	for {
		name := fmt.Sprintf("f_e_%d", c.exprCounter)
		c.exprCounter++
		if !c.Inventory.Contains(name) {
			c.Inventory.Add(name)
			return &ast.Identifier{Name: name}
		}
	}
}

func (c *Context) selected(fn ast.FunctionNode) bool {
	name := ""
	if id := fn.FunctionID(); id != nil {
		name = id.Name
	}
	return c.Selection.Matches(name, fn.Base().Loc.Start.Line)
}
