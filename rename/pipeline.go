// Package rename implements the renaming and annotation passes and the
// pipeline that sequences them: attach comments, collect the name
// inventory, uniquify, normalize, build the call graph, assign final
// names, annotate.
package rename

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hexlattice/unmangle/comments"
	"github.com/hexlattice/unmangle/generator"
	"github.com/hexlattice/unmangle/xref"
)

// Pipeline wires the passes to their external collaborators. The run
// is single-threaded and synchronous; either it produces the complete
// output or it fails before emitting anything.
type Pipeline struct {
	// Parser turns source text into a tree plus its comment list.
	Parser Parser
	// Namer suggests better function names; nil keeps names as-is.
	Namer Namer
	// Describer generates descriptive comments; nil disables them.
	Describer Describer

	// Selection restricts the functions processed; nil or empty means
	// all of them.
	Selection *Selection
	// XrefSuffix appends call-count suffixes to renamed functions.
	XrefSuffix bool
	// XrefComments prepends caller summaries to annotated functions.
	XrefComments bool
	// OverridePrefix marks manually finalized names (default "F_").
	OverridePrefix string

	Log logrus.FieldLogger
}

// Run executes the full pass sequence over source and returns the
// rewritten program text.
func (p *Pipeline) Run(ctx context.Context, source string) (string, error) {
	program, list, err := p.Parser.Parse(ctx, source)
	if err != nil {
		return "", fmt.Errorf("parse input: %w", err)
	}

	comments.Attach(program, list)

	rc := NewContext(Collect(program), p.Selection, p.Log)
	rc.Log.WithField("names", rc.Inventory.Len()).Debug("collected identifier inventory")

	Uniquify(program, rc)
	Normalize(program, rc)

	g := xref.Build(program, p.Selection.Matches)
	rc.Log.WithField("functions", g.Len()).Debug("built call graph")

	err = RenameFunctions(ctx, program, g, rc, RenameOptions{
		Namer:          p.Namer,
		XrefSuffix:     p.XrefSuffix,
		OverridePrefix: p.OverridePrefix,
	})
	if err != nil {
		return "", err
	}

	err = Annotate(ctx, program, g, rc, AnnotateOptions{
		Describer:    p.Describer,
		Parser:       p.Parser,
		XrefComments: p.XrefComments,
	})
	if err != nil {
		return "", err
	}

	return generator.Generate(program), nil
}
