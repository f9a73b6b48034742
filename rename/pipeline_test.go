package rename

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunRewritesProgram(t *testing.T) {
	// function a() {}
	// a();
	parser := &stubParser{prog: program(fdecl("a", nil), exprStmt(call("a")))}

	p := &Pipeline{Parser: parser, XrefSuffix: true}
	out, err := p.Run(context.Background(), "function a(){}a();")
	require.NoError(t, err)

	assert.Equal(t, "function f_a_xref_1() {\n}\nf_a_xref_1();\n", out)
}

func TestPipelineRunWithoutDecorations(t *testing.T) {
	parser := &stubParser{prog: program(fdecl("a", nil), exprStmt(call("a")))}

	p := &Pipeline{Parser: parser}
	out, err := p.Run(context.Background(), "function a(){}a();")
	require.NoError(t, err)

	assert.Equal(t, "function f_a() {\n}\nf_a();\n", out)
}

func TestPipelineRunParseErrorAborts(t *testing.T) {
	boom := errors.New("unexpected token")
	p := &Pipeline{Parser: &stubParser{err: boom}}

	_, err := p.Run(context.Background(), "{{{")
	require.ErrorIs(t, err, boom)
}
