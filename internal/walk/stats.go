package treelist

import (
	"time"

	"go.uber.org/atomic"
)

// Stats summarizes one listing call.
type Stats struct {
	DirsRead     int64         `json:"dirs_read"`     // Successful directory enumerations
	Inaccessible int64         `json:"inaccessible"`  // Enumerations that failed with permission or not-found errors
	FilterPanics int64         `json:"filter_panics"` // Candidates dropped because the filter panicked
	Unexpected   int64         `json:"unexpected"`    // Other absorbed failures
	Matches      int64         `json:"matches"`       // Paths in the result
	ElapsedTime  time.Duration `json:"elapsed"`
	PathsPerSec  float64       `json:"paths_per_sec"`
}

// counters are shared by every goroutine of a single call.
type counters struct {
	dirsRead     atomic.Int64
	inaccessible atomic.Int64
	filterPanics atomic.Int64
	unexpected   atomic.Int64
}

func (c *counters) snapshot(matches int, elapsed time.Duration) Stats {
	s := Stats{
		DirsRead:     c.dirsRead.Load(),
		Inaccessible: c.inaccessible.Load(),
		FilterPanics: c.filterPanics.Load(),
		Unexpected:   c.unexpected.Load(),
		Matches:      int64(matches),
		ElapsedTime:  elapsed,
	}
	if sec := elapsed.Seconds(); sec > 0 {
		s.PathsPerSec = float64(matches) / sec
	}
	return s
}
