package stats

import (
	"fmt"
	"math"

	"github.com/vk/bomres/internal/bom"
)

// Summary is the aggregate view of a resolved table. It is purely
// derived and has no effect on the table itself.
type Summary struct {
	Rows int

	// Changed counts rows whose resolved system component differs from
	// its own material code.
	Changed    int
	ChangedPct float64

	// Distribution of TotalUsage over all rows. StdDev is the population
	// standard deviation.
	MeanUsage float64
	MinUsage  float64
	MaxUsage  float64
	StdDev    float64
}

// Summarize computes the summary over a resolved table.
func Summarize(t bom.Table) Summary {
	s := Summary{Rows: len(t)}
	if len(t) == 0 {
		return s
	}

	sum := 0.0
	s.MinUsage = t[0].TotalUsage
	s.MaxUsage = t[0].TotalUsage
	for _, row := range t {
		if row.SysComponent != row.Material {
			s.Changed++
		}
		u := row.TotalUsage
		sum += u
		if u < s.MinUsage {
			s.MinUsage = u
		}
		if u > s.MaxUsage {
			s.MaxUsage = u
		}
	}
	s.ChangedPct = float64(s.Changed) / float64(len(t)) * 100
	s.MeanUsage = sum / float64(len(t))

	variance := 0.0
	for _, row := range t {
		d := row.TotalUsage - s.MeanUsage
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(len(t)))
	return s
}

// String renders the summary in a single human-readable line.
func (s Summary) String() string {
	return fmt.Sprintf("rows=%d changed=%d (%.1f%%) usage mean=%.4g min=%.4g max=%.4g stddev=%.4g",
		s.Rows, s.Changed, s.ChangedPct, s.MeanUsage, s.MinUsage, s.MaxUsage, s.StdDev)
}
