package rename

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/generator"
	"github.com/hexlattice/unmangle/xref"
)

// Namer is the external name-suggestion collaborator. It receives the
// function's current name and its serialized source and returns a
// candidate identifier (without prefix). ok is false when no suggestion
// was produced, as for an oversized function, and the current name
// stands. A malformed response is an error and aborts the run.
type Namer interface {
	SuggestName(ctx context.Context, name, source string) (suggested string, ok bool, err error)
}

// RenameOptions configures the final renaming pass.
type RenameOptions struct {
	// Namer supplies suggested base names; nil keeps existing names.
	Namer Namer
	// XrefSuffix appends _xref_N (N = number of recorded call sites)
	// to every renamed function.
	XrefSuffix bool
	// OverridePrefix marks manually finalized names; functions whose
	// name starts with it are left untouched.
	OverridePrefix string
}

// RenameFunctions assigns each selected function its final name and
// rewrites every reference. It runs after Uniquify and Normalize, so
// all current names are unique and every function has an identifier;
// references were finalized under those unique names and are remapped
// here through one global substitution pass.
func RenameFunctions(ctx context.Context, program *ast.Program, g *xref.Graph, rc *Context, opts RenameOptions) error {
	if opts.OverridePrefix == "" {
		opts.OverridePrefix = "F_"
	}
	subs := make(map[string]string)

	stack := []ast.Node{program}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}

		fn, ok := n.(ast.FunctionNode)
		if !ok || fn.FunctionID() == nil {
			continue
		}
		if err := renameOne(ctx, fn, g, rc, opts, subs); err != nil {
			return err
		}
	}

	if len(subs) > 0 {
		rewriteIdentifiers(program, subs)
	}
	return nil
}

func renameOne(ctx context.Context, fn ast.FunctionNode, g *xref.Graph, rc *Context, opts RenameOptions, subs map[string]string) error {
	name := fn.FunctionID().Name
	if strings.HasPrefix(name, opts.OverridePrefix) {
		// Manually chosen name; leave it alone.
		return nil
	}
	if !rc.selected(fn) {
		return nil
	}
	fid, rec, ok := g.Remove(name)
	if !ok {
		return nil
	}

	base := name
	if opts.Namer != nil {
		suggested, ok, err := opts.Namer.SuggestName(ctx, name, generator.Generate(fn))
		if err != nil {
			g.Rebind(fid, name)
			return fmt.Errorf("suggest name for %s: %w", name, err)
		}
		if ok {
			prefix := "f_"
			if strings.HasPrefix(name, "f_e_") {
				prefix = "f_e_"
			}
			base = prefix + suggested
		}
	}
	if opts.XrefSuffix {
		base += "_xref_" + strconv.Itoa(len(rec.Xrefs))
	}

	if base == name {
		// Nothing to change; the record keeps its key.
		g.Rebind(fid, name)
		return nil
	}

	final := base
	for cnt := 1; rc.Inventory.Contains(final); {
		cnt++
		final = base + "_" + strconv.Itoa(cnt)
	}
	rc.Inventory.Add(final)
	g.Rebind(fid, final)
	subs[name] = final
	rc.Selection.AddName(final)
	fn.FunctionID().Name = final
	return nil
}

// rewriteIdentifiers remaps every identifier whose text matches a
// substitution key. Current names are globally unique at this point,
// so a flat text match cannot capture an unrelated binding.
func rewriteIdentifiers(program *ast.Program, subs map[string]string) {
	stack := []ast.Node{program}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id, ok := n.(*ast.Identifier); ok {
			if repl, ok := subs[id.Name]; ok {
				id.Name = repl
			}
		}
		stack = append(stack, n.Children()...)
	}
}
