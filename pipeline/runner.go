package pipeline

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Runner serializes pipeline executions for an application that holds one
// "current" score. Rapid successive loads coalesce through a debouncer so
// only the last requested load actually runs, and a run that finishes after
// being superseded is discarded rather than applied: last load wins.
type Runner struct {
	mu     sync.Mutex
	deb    func(func())
	gen    uint64
	latest *Result
	err    error
}

func NewRunner(wait time.Duration) *Runner {
	return &Runner{deb: debounce.New(wait)}
}

// Load schedules an analysis of the given bytes, superseding any pending or
// in-flight load.
func (r *Runner) Load(data []byte, filename string) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	r.deb(func() {
		res, err := Run(data, filename)
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.gen {
			// superseded while running; discard
			return
		}
		r.latest, r.err = res, err
	})
}

// Latest returns the most recent completed run's output. Both values are
// nil while no load has completed yet.
func (r *Runner) Latest() (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, r.err
}
