package rename

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexlattice/unmangle/ast"
	"github.com/hexlattice/unmangle/comments"
	"github.com/hexlattice/unmangle/generator"
	"github.com/hexlattice/unmangle/xref"
)

// Parser is the external parsing collaborator. The annotator uses it
// to reparse the summarizer's revised function text, which arrives as
// source rather than as a tree.
type Parser interface {
	Parse(ctx context.Context, source string) (*ast.Program, []*ast.Comment, error)
}

// Describer is the external summarization collaborator. It returns a
// revised rendition of the function's source with comments added.
// ok=false means the function was over the token budget and the call
// was skipped.
type Describer interface {
	Describe(ctx context.Context, name, source string) (revised string, ok bool, err error)
}

// AnnotateOptions configures the annotation pass.
type AnnotateOptions struct {
	// Describer adds AI-generated comments; nil disables them.
	Describer Describer
	// Parser reparses the describer's output. Required when Describer
	// is set.
	Parser Parser
	// XrefComments prepends a block comment summarizing each caller
	// and its call count.
	XrefComments bool
}

// Annotate decorates every selected function with AI-generated
// comments and/or a cross-reference summary.
func Annotate(ctx context.Context, program *ast.Program, g *xref.Graph, rc *Context, opts AnnotateOptions) error {
	stack := []ast.Node{program}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fn, ok := n.(ast.FunctionNode); ok && fn.FunctionID() != nil && rc.selected(fn) {
			if opts.Describer != nil {
				if err := describe(ctx, fn, rc, opts); err != nil {
					return err
				}
			}
			if opts.XrefComments {
				addXrefComment(fn, g)
			}
		}

		// The spliced body is scanned too; nested functions get their
		// own annotations.
		stack = append(stack, n.Children()...)
	}
	return nil
}

// describe asks the summarizer for a commented rendition of the
// function and splices the reparsed parameters, body and comments back
// onto the node. The collaborator works on text, so its output is an
// independent tree; only the bindable parts are taken from it.
func describe(ctx context.Context, fn ast.FunctionNode, rc *Context, opts AnnotateOptions) error {
	name := fn.FunctionID().Name
	revised, ok, err := opts.Describer.Describe(ctx, name, generator.Generate(fn))
	if err != nil {
		return fmt.Errorf("describe %s: %w", name, err)
	}
	if !ok {
		// Over the token budget; already warned by the collaborator.
		return nil
	}

	prog, list, err := opts.Parser.Parse(ctx, revised)
	if err != nil {
		return fmt.Errorf("reparse description of %s: %w", name, err)
	}
	comments.Attach(prog, list)

	var newFn ast.FunctionNode
	for _, stmt := range prog.Body {
		if f, ok := stmt.(*ast.FunctionDeclaration); ok {
			newFn = f
			break
		}
	}
	if newFn == nil {
		return fmt.Errorf("description of %s did not reparse to a function", name)
	}

	fn.SetFunctionParams(newFn.FunctionParams())
	fn.SetFunctionBody(newFn.FunctionBody())
	fn.Base().LeadingComments = newFn.Base().LeadingComments
	fn.Base().TrailingComments = newFn.Base().TrailingComments
	return nil
}

// addXrefComment prepends a block comment listing each distinct caller
// with its call count, in first-seen order.
func addXrefComment(fn ast.FunctionNode, g *xref.Graph) {
	rec, ok := g.Lookup(fn.FunctionID().Name)
	if !ok || len(rec.Xrefs) == 0 {
		return
	}

	var order []string
	counts := make(map[string]int)
	for _, x := range rec.Xrefs {
		caller := g.ByID(x.Caller).Name
		if counts[caller] == 0 {
			order = append(order, caller)
		}
		counts[caller]++
	}

	var b strings.Builder
	b.WriteString("*\n * xrefs {{{\n")
	for _, caller := range order {
		fmt.Fprintf(&b, " *   %s: %d\n", caller, counts[caller])
	}
	b.WriteString(" * }}}\n ")

	fn.Base().AddLeadingComment(&ast.Comment{
		Kind: ast.CommentBlock,
		Text: b.String(),
	})
}
