package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexlattice/unmangle/ast"
)

func TestCollectGathersIdentifiersAndLabels(t *testing.T) {
	// outer: while (x) { f(y); }
	prog := program(
		&ast.LabeledStatement{
			Label: ident("outer"),
			Body: &ast.WhileStatement{
				Test: ident("x"),
				Body: exprStmt(call("f", ident("y"))),
			},
		},
	)

	inv := Collect(prog)

	assert.Equal(t, []string{"f", "outer", "x", "y"}, inv.Names())
}

func TestInventoryOnlyGrows(t *testing.T) {
	inv := NewInventory()
	assert.False(t, inv.Contains("a"))
	inv.Add("a")
	inv.Add("a")
	assert.True(t, inv.Contains("a"))
	assert.Equal(t, 1, inv.Len())
}

func TestSelectionMatching(t *testing.T) {
	tests := []struct {
		name  string
		sel   *Selection
		fn    string
		line  int
		match bool
	}{
		{"nil matches everything", nil, "anything", 7, true},
		{"empty matches everything", NewSelection(nil, nil), "anything", 7, true},
		{"by name", NewSelection([]string{"f_a"}, nil), "f_a", 1, true},
		{"by line", NewSelection(nil, []int{3}), "whatever", 3, true},
		{"no match", NewSelection([]string{"f_a"}, []int{3}), "f_b", 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, tt.sel.Matches(tt.fn, tt.line))
		})
	}
}

func TestSelectionAddNameKeepsMintedNamesEligible(t *testing.T) {
	sel := NewSelection([]string{"f_a"}, nil)
	sel.AddName("f_fetchItems_xref_2")
	assert.True(t, sel.Matches("f_fetchItems_xref_2", 99))
}
