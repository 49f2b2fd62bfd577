package searcher

import (
	"time"
)

type SearchMetrics struct {
	Duration time.Duration
	Depth    int // Requested depth bound
	EndDepth int // Remaining depth of the chosen line
	Nodes    int64
	Leaves   int64
	Cutoffs  int64
	TimedOut bool // Some node was cut short by the deadline
}

// Collector gathers statistics about a single search. Implementations are not safe for
// concurrent use; a search runs on one goroutine.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddTimeout()
	Complete(endDepth int) SearchMetrics
}

type collector struct {
	startTime time.Time
	metrics   SearchMetrics
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.metrics = SearchMetrics{Depth: depth}
}

func (m *collector) AddNode() {
	m.metrics.Nodes++
}

func (m *collector) AddLeaf() {
	m.metrics.Leaves++
}

func (m *collector) AddCutoff() {
	m.metrics.Cutoffs++
}

func (m *collector) AddTimeout() {
	m.metrics.TimedOut = true
}

func (m *collector) Complete(endDepth int) SearchMetrics {
	m.metrics.Duration = time.Since(m.startTime)
	m.metrics.EndDepth = endDepth
	return m.metrics
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(depth int)                     {}
func (dummyCollector) AddNode()                            {}
func (dummyCollector) AddLeaf()                            {}
func (dummyCollector) AddCutoff()                          {}
func (dummyCollector) AddTimeout()                         {}
func (dummyCollector) Complete(endDepth int) SearchMetrics { return SearchMetrics{EndDepth: endDepth} }
