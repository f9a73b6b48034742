package estree

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hexlattice/unmangle/ast"
)

// CommandParser runs an external command that reads source text on
// stdin and writes an ESTree JSON document, with ranges, locations and
// a comments array, on stdout. The stock esprima CLI does this with
//
//	esparse --range --loc --comment
type CommandParser struct {
	// Command is the argv to run; Command[0] is the executable.
	Command []string
}

// Parse feeds source to the command and decodes its output.
func (p *CommandParser) Parse(ctx context.Context, source string) (*ast.Program, []*ast.Comment, error) {
	if len(p.Command) == 0 {
		return nil, nil, fmt.Errorf("parse: no parser command configured")
	}

	cmd := exec.CommandContext(ctx, p.Command[0], p.Command[1:]...)
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, nil, fmt.Errorf("parse: %s: %s", p.Command[0], msg)
		}
		return nil, nil, fmt.Errorf("parse: %s: %w", p.Command[0], err)
	}

	return Decode(stdout.Bytes())
}
