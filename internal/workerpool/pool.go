// Package workerpool implements the fixed-size transcode worker set: a
// bounded single-slot handoff between the walker (producer) and a pool of
// workers, each of which isolates its transcode in a re-exec'd child
// process so the codec pipeline library never runs on more than one
// goroutine at a time.
package workerpool

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go.tmthrgd.dev/audiomirror/internal/console"
	"go.tmthrgd.dev/audiomirror/internal/tags"
)

// WorkUnit is one transcode job, moved from the walker to a worker.
type WorkUnit struct {
	DecoderName string
	InputPath   string
	OutputPath  string
	Mode        os.FileMode
	Atime       time.Time
	Mtime       time.Time
}

// Pool is the bounded single-slot handoff described by spec.md §4.4: a
// producer publishes into a one-element slot guarded by a mutex and
// condition variable; any idle worker takes it and signals the producer
// that the slot is free again.
type Pool struct {
	mu         sync.Mutex
	cond       *sync.Cond
	slot       *WorkUnit
	shouldQuit bool
	wg         sync.WaitGroup

	exePath     string
	selfArgs    []string
	encoderName string
	reporter    *console.Reporter
	dryRun      bool
}

// New builds a Pool. exePath and selfArgs are re-exec'd (with a hidden
// worker flag prepended) for every job, so the child reconstructs the same
// codec.Set the parent built by parsing the identical flags.
func New(exePath string, selfArgs []string, encoderName string, reporter *console.Reporter, dryRun bool) *Pool {
	p := &Pool{
		exePath:     exePath,
		selfArgs:    selfArgs,
		encoderName: encoderName,
		reporter:    reporter,
		dryRun:      dryRun,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Start spawns numWorkers worker goroutines.
func (p *Pool) Start(numWorkers int) {
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer p.wg.Done()
			p.loop()
		}()
	}
}

func (p *Pool) loop() {
	for {
		p.mu.Lock()
		for p.slot == nil && !p.shouldQuit {
			p.cond.Wait()
		}
		if p.slot == nil {
			p.mu.Unlock()
			return
		}
		w := *p.slot
		p.slot = nil
		p.cond.Broadcast()
		p.mu.Unlock()

		p.process(w)
	}
}

// Publish waits for the slot to be empty, then posts w and wakes a worker.
// Called only by the walker goroutine.
func (p *Pool) Publish(w WorkUnit) {
	p.mu.Lock()
	for p.slot != nil {
		p.cond.Wait()
	}
	p.slot = &w
	p.mu.Unlock()
	p.cond.Signal()
}

// Shutdown waits for the slot to drain, tells every worker to quit, and
// joins them. Called once by the walker after the last Publish.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	for p.slot != nil {
		p.cond.Wait()
	}
	p.shouldQuit = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

// process forks a subprocess for w, waits for it, and relays the outcome.
func (p *Pool) process(w WorkUnit) {
	errFile, err := newErrorsFilePath()
	if err != nil {
		p.reporter.Errorf("<%s>: failed to allocate errors file: %v", w.InputPath, err)
		return
	}

	job := Job{
		DecoderName: w.DecoderName,
		EncoderName: p.encoderName,
		InputPath:   w.InputPath,
		OutputPath:  w.OutputPath,
		Mode:        uint32(w.Mode),
		DryRun:      p.dryRun,
	}
	payload, err := job.Marshal()
	if err != nil {
		p.reporter.Errorf("<%s>: failed to build job: %v", w.InputPath, err)
		return
	}

	args := append([]string{workerFlag}, p.selfArgs...)
	cmd := exec.Command(p.exePath, args...)
	cmd.Env = append(os.Environ(),
		envJob+"="+payload,
		envErrorsFile+"="+errFile,
	)

	runErr := cmd.Run()

	switch {
	case runErr == nil:
		if !p.dryRun {
			tags.Transfer(w.InputPath, w.OutputPath)
			if err := os.Chtimes(w.OutputPath, w.Atime, w.Mtime); err != nil {
				p.reporter.Errorf("<%s>: failed to restore timestamps: %v", w.OutputPath, err)
			}
		}
		p.reporter.Transcoded(filepath.Base(w.OutputPath))
		os.Remove(errFile)

	case exitedWith(runErr, 1):
		msg, _ := os.ReadFile(errFile)
		p.reporter.Errorf("<%s>: %s", w.InputPath, strings.TrimSpace(string(msg)))
		os.Remove(errFile)

	default:
		p.reporter.Errorf("<%s>: forked process crashed (see %s)", w.InputPath, errFile)
	}
}

func exitedWith(err error, code int) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	return exitErr.ExitCode() == code
}

// newErrorsFilePath allocates a per-job errors file under the system temp
// directory. Its uniqueness comes from a generated UUID rather than
// os.CreateTemp's own random suffix, so the name stays predictable enough
// to log while still never colliding across concurrently running jobs.
func newErrorsFilePath() (string, error) {
	name := filepath.Join(os.TempDir(), "audiomirror-errs-"+uuid.NewString())
	f, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}
	f.Close()
	return name, nil
}
