package workerpool

import (
	"fmt"
	"os"

	"go.tmthrgd.dev/audiomirror/internal/codec"
)

// Environment variables and the hidden CLI flag used to re-exec the
// current binary as a one-shot transcode child. cmd/audiomirror checks for
// WorkerFlag before doing anything else with its argv.
const (
	workerFlag    = "--transcode-worker"
	envJob        = "AUDIOMIRROR_TRANSCODE_JOB"
	envErrorsFile = "AUDIOMIRROR_ERRORS_FILE"
)

// WorkerFlag is the hidden flag cmd/audiomirror looks for before normal
// flag parsing to decide whether it's being invoked as a re-exec'd
// transcode child.
const WorkerFlag = workerFlag

// RunChild performs exactly one transcode job described by the
// AUDIOMIRROR_TRANSCODE_JOB/AUDIOMIRROR_ERRORS_FILE environment variables
// against set, and returns the process exit code: 0 on success, 1 on a
// reported failure. Any panic is recovered and reported the same way a
// FAILURE exit would be, so the parent never sees an unexplained crash for
// a bug in this package itself.
func RunChild(set *codec.Set) (exitCode int) {
	errFile := os.Getenv(envErrorsFile)

	defer func() {
		if r := recover(); r != nil {
			writeErr(errFile, fmt.Errorf("panic: %v", r))
			exitCode = 1
		}
	}()

	job, err := UnmarshalJob(os.Getenv(envJob))
	if err != nil {
		writeErr(errFile, fmt.Errorf("invalid job payload: %w", err))
		return 1
	}

	if job.DryRun {
		return 0
	}

	decoder, ok := set.ByName(job.DecoderName)
	if !ok {
		writeErr(errFile, fmt.Errorf("unknown decoder %q", job.DecoderName))
		return 1
	}
	encoder, ok := set.ByName(job.EncoderName)
	if !ok {
		writeErr(errFile, fmt.Errorf("unknown encoder %q", job.EncoderName))
		return 1
	}

	if err := assemble(decoder, encoder, job.InputPath, job.OutputPath, os.FileMode(job.Mode)); err != nil {
		writeErr(errFile, err)
		return 1
	}
	return 0
}

func writeErr(path string, err error) {
	if path == "" {
		return
	}
	f, oerr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if oerr != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, err)
}
