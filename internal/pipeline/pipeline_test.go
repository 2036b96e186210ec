package pipeline

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireBinary(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available on PATH", name)
	}
	return path
}

func TestSingleStageSuccess(t *testing.T) {
	requireBinary(t, "cat")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("hello\n"), 0o644))

	inFile, err := os.Open(in)
	require.NoError(t, err)
	defer inFile.Close()

	outFile, err := os.Create(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	defer outFile.Close()

	p := New(context.Background())
	p.Add("cat")
	p.SetStdin(inFile)
	p.SetStdout(outFile)

	require.NoError(t, p.Run())

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(got))
}

func TestMultiStageChain(t *testing.T) {
	requireBinary(t, "cat")
	requireBinary(t, "rev")

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("hello\n"), 0o644))

	inFile, err := os.Open(in)
	require.NoError(t, err)
	defer inFile.Close()

	outFile, err := os.Create(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	defer outFile.Close()

	p := New(context.Background())
	p.Add("cat")
	p.Add("rev")
	p.SetStdin(inFile)
	p.SetStdout(outFile)

	require.NoError(t, p.Run())

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "olleh\n", string(got))
}

func TestFailurePropagatesDiagnostics(t *testing.T) {
	requireBinary(t, "false")

	p := New(context.Background())
	p.Add("false")

	err := p.Run()
	require.Error(t, err)

	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	require.Len(t, pErr.Stages, 1)
	require.Contains(t, pErr.Stages[0].Args, "false")
}

func TestEmptyPipelineIsNoop(t *testing.T) {
	p := New(context.Background())
	require.NoError(t, p.Run())
}
