package metrics

import (
	"time"
)

type SearchMetric struct {
	Strategy string
	Depth    int
	Value    float64 // Root value, -Inf when no action was found
	Duration time.Duration
	Nodes    int // Search nodes visited, leaves included
	Leaves   int // Nodes scored by the evaluation function
	Prunes   int // Alpha-beta cutoffs
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Seed       uint64
	Outcome    Outcome
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Outcome string

const (
	Win     Outcome = "win"
	Lose    Outcome = "lose"
	Timeout Outcome = "timeout" // Move limit reached first
)

// Collector counts the work of one search. A collector belongs to a single searcher and is
// restarted on every decision.
type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.prunes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Prunes:   m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddPrune()              {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
