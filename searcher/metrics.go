package searcher

import (
	"time"
)

type SearchMetric struct {
	Duration   time.Duration
	Iterations int
	Rollouts   int // simulations that played at least one random move
	TreeSize   int // nodes left after re-rooting
	TreeReused bool
}

type Collector interface {
	Start()
	SetTreeReused(value bool)
	AddIteration()
	AddRollout()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	startTime  time.Time
	iterations int
	rollouts   int
	treeReused bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.rollouts = 0
	m.treeReused = false
}

func (m *collector) SetTreeReused(value bool) {
	m.treeReused = value
}

func (m *collector) AddIteration() {
	m.iterations++
}

func (m *collector) AddRollout() {
	m.rollouts++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Iterations: m.iterations,
		Rollouts:   m.rollouts,
		TreeSize:   treeSize,
		TreeReused: m.treeReused,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                             {}
func (m *dummyCollector) SetTreeReused(value bool)           {}
func (m *dummyCollector) AddIteration()                      {}
func (m *dummyCollector) AddRollout()                        {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{} }
