package game

import (
	"sort"
	"time"
)

// perfWindow is how many recent samples a phase average looks back over.
const perfWindow = 120

// phaseTimings is a fixed ring of the most recent samples for one phase.
type phaseTimings struct {
	ring  [perfWindow]time.Duration
	next  int
	count int
}

func (pt *phaseTimings) add(d time.Duration) {
	pt.ring[pt.next] = d
	pt.next = (pt.next + 1) % perfWindow
	if pt.count < perfWindow {
		pt.count++
	}
}

func (pt *phaseTimings) avg() time.Duration {
	if pt.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < pt.count; i++ {
		total += pt.ring[i]
	}
	return total / time.Duration(pt.count)
}

// PerfStats tracks per-phase tick timings over a sliding window.
type PerfStats struct {
	phases map[string]*phaseTimings
}

// NewPerfStats creates an empty timing tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{phases: make(map[string]*phaseTimings)}
}

// Record adds one sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	pt := p.phases[name]
	if pt == nil {
		pt = &phaseTimings{}
		p.phases[name] = pt
	}
	pt.add(d)
}

// Avg returns the windowed average for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	pt := p.phases[name]
	if pt == nil {
		return 0
	}
	return pt.avg()
}

// Total sums the windowed averages of every phase, approximating the
// cost of one full tick.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for _, pt := range p.phases {
		total += pt.avg()
	}
	return total
}

// SortedNames returns phase names, most expensive first. Ties break
// alphabetically so report ordering stays stable.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.phases))
	for name := range p.phases {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := p.Avg(names[i]), p.Avg(names[j])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}
