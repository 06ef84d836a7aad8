package sessions

import (
	"fmt"
	"sort"

	"riglogger/dataformats"
	"riglogger/support/globals"
)

// Registry accumulates one ordered record per pressure target across the
// run. The interactive steps run one at a time and are its only users, so
// access is not synchronised.
type Registry struct {
	records map[float64][]dataformats.Measurement
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[float64][]dataformats.Measurement)}
}

// Put stores the record for the given pressure, replacing any earlier one.
// Empty records are not registered.
func (r *Registry) Put(pressure float64, points []dataformats.Measurement) bool {
	if len(points) == 0 {
		if globals.DebugActive {
			fmt.Printf("sessions.Put: empty session for %s MPa skipped\n",
				globals.FormatPressure(pressure))
		}
		return false
	}
	r.records[pressure] = points
	return true
}

// Pressures lists the registered targets in ascending order.
func (r *Registry) Pressures() []float64 {
	keys := make([]float64, 0, len(r.records))
	for key := range r.records {
		keys = append(keys, key)
	}
	sort.Float64s(keys)
	return keys
}

// Records returns the ordered measurements registered for one pressure.
func (r *Registry) Records(pressure float64) []dataformats.Measurement {
	return r.records[pressure]
}

func (r *Registry) Sessions() int {
	return len(r.records)
}

func (r *Registry) Samples() int {
	total := 0
	for _, points := range r.records {
		total += len(points)
	}
	return total
}

func (r *Registry) Empty() bool {
	return len(r.records) == 0
}
