// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

// TaskFunc is one unit of work within a phase.
type TaskFunc func(ctx context.Context, logger *log.Logger, r *Runtime) error

// Phase is an ordered list of tasks. Phases and the tasks within them run
// strictly in sequence; the machine's configuration files are
// order-dependent, so there is no parallelism anywhere in the pipeline.
type Phase struct {
	Name  string
	Tasks []TaskFunc
}

// Run executes the phases in order, aborting on the first task error.
func Run(ctx context.Context, r *Runtime, phases []Phase) error {
	start := time.Now()

	log.Printf("sequence: %d phase(s)", len(phases))
	defer log.Printf("sequence: done: %s", time.Since(start))

	for number, phase := range phases {
		if err := runPhase(ctx, r, phase, number+1, len(phases)); err != nil {
			return fmt.Errorf("error running phase %q: %w", phase.Name, err)
		}
	}

	return nil
}

func runPhase(ctx context.Context, r *Runtime, phase Phase, number, total int) error {
	start := time.Now()

	log.Printf("phase %s [%d/%d]: starting", phase.Name, number, total)
	defer log.Printf("phase %s [%d/%d]: done, %s", phase.Name, number, total, time.Since(start))

	for n, task := range phase.Tasks {
		logger := log.New(os.Stderr, fmt.Sprintf("task %s/%d: ", phase.Name, n+1), log.LstdFlags)

		if err := task(ctx, logger, r); err != nil {
			return fmt.Errorf("task %d failed: %w", n+1, err)
		}
	}

	return nil
}
