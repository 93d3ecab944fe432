package bench

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Result summarizes the timings of repeated runs.
type Result struct {
	Name string
	Runs int
	Min  time.Duration
	Max  time.Duration
	Avg  time.Duration
}

// Runner times functions against a clock.
type Runner struct {
	Clock clockz.Clock
	Runs  int
}

func NewRunner(clock clockz.Clock, runs int) *Runner {
	return &Runner{Clock: clock, Runs: runs}
}

func (r *Runner) getClock() clockz.Clock {
	if r.Clock == nil {
		return clockz.RealClock
	}
	return r.Clock
}

// Measure calls fn Runs times (at least once) and records how long each call took.
func (r *Runner) Measure(name string, fn func()) Result {
	clock := r.getClock()
	runs := max(r.Runs, 1)

	res := Result{Name: name, Runs: runs}
	var total time.Duration
	for i := range runs {
		start := clock.Now()
		fn()
		d := clock.Since(start)

		total += d
		if i == 0 || d < res.Min {
			res.Min = d
		}
		if d > res.Max {
			res.Max = d
		}
	}
	res.Avg = total / time.Duration(runs)
	return res
}
