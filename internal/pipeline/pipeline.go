// Package pipeline runs a linear chain of child processes connected by
// stdio, the way the codec adapters in internal/codec stitch decoders and
// encoders together.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Stage is one command in the chain.
type Stage struct {
	Args []string
}

func (s Stage) String() string {
	return strings.Join(s.Args, " ")
}

// Pipeline is a chain C1 | C2 | ... | Cn. The first stage's stdin is either
// an explicit file (SetStdin) or the null device; the last stage's stdout
// is either an explicit file (SetStdout) or discarded. Every stage's stderr is captured for diagnostics.
type Pipeline struct {
	ctx    context.Context
	stages []Stage
	stdin  *os.File
	stdout *os.File
}

// New creates an empty pipeline bound to ctx.
func New(ctx context.Context) *Pipeline {
	return &Pipeline{ctx: ctx}
}

// Add appends a stage to the end of the chain.
func (p *Pipeline) Add(args ...string) {
	p.stages = append(p.stages, Stage{Args: append([]string(nil), args...)})
}

// SetStdin wires the first stage's stdin to f.
func (p *Pipeline) SetStdin(f *os.File) { p.stdin = f }

// SetStdout wires the last stage's stdout to f.
func (p *Pipeline) SetStdout(f *os.File) { p.stdout = f }

// Error is returned by Run on failure. It names every stage's argv and
// carries each stage's captured stderr so the caller can relay a complete
// diagnostic without re-deriving which command produced which output.
type Error struct {
	Stages  []Stage
	Details string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pipeline failed (%d stage(s)):\n", len(e.Stages))
	for i, s := range e.Stages {
		fmt.Fprintf(&b, "  [%d] %s\n", i, s)
	}
	b.WriteString(e.Details)
	return b.String()
}

// Run starts every stage, waits for all of them to exit, and succeeds only
// if every stage exits with status 0. The pipes between stages are released
// on every exit path. The files passed to SetStdin/SetStdout are not closed
// by Run; the caller owns them and must close them itself once Run returns.
func (p *Pipeline) Run() error {
	if len(p.stages) == 0 {
		return nil
	}

	cmds := make([]*exec.Cmd, len(p.stages))
	stderrs := make([]bytes.Buffer, len(p.stages))
	closers := make([]io.Closer, 0, len(p.stages))
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	for i, s := range p.stages {
		cmd := exec.CommandContext(p.ctx, s.Args[0], s.Args[1:]...)
		cmd.Stderr = &stderrs[i]
		cmds[i] = cmd
	}

	if p.stdin != nil {
		cmds[0].Stdin = p.stdin
	}
	if p.stdout != nil {
		cmds[len(cmds)-1].Stdout = p.stdout
	}

	for i := 0; i < len(cmds)-1; i++ {
		r, w := io.Pipe()
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
		closers = append(closers, r, w)
	}

	eg, _ := errgroup.WithContext(p.ctx)
	for i, cmd := range cmds {
		cmd := cmd
		i := i
		eg.Go(func() error {
			err := cmd.Run()
			// Unblock any io.Pipe readers/writers waiting on this stage.
			if i > 0 {
				if pr, ok := cmds[i].Stdin.(*io.PipeReader); ok {
					if err != nil {
						pr.CloseWithError(err)
					} else {
						pr.Close()
					}
				}
			}
			if i < len(cmds)-1 {
				if pw, ok := cmds[i].Stdout.(*io.PipeWriter); ok {
					if err != nil {
						pw.CloseWithError(err)
					} else {
						pw.Close()
					}
				}
			}
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return &Error{Stages: p.stages, Details: diagnostics(cmds, stderrs)}
	}
	return nil
}

func diagnostics(cmds []*exec.Cmd, stderrs []bytes.Buffer) string {
	var b strings.Builder
	for i, cmd := range cmds {
		state := cmd.ProcessState
		status := "did not run"
		if state != nil {
			status = state.String()
		}
		fmt.Fprintf(&b, "  stage %d (%s): %s\n", i, strings.Join(cmd.Args, " "), status)
		if s := strings.TrimSpace(stderrs[i].String()); s != "" {
			fmt.Fprintf(&b, "    stderr: %s\n", s)
		}
	}
	return b.String()
}
