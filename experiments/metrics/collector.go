// Package metrics defines the measurements recorded during searches,
// moves, and games, and writes them out as CSV.
package metrics

import (
	"runtime"
	"sync/atomic"
	"time"
)

// SearchMetric describes one move search: its configuration, the size of
// the explored tree, and its time and allocation cost.
type SearchMetric struct {
	Depth      int
	Evaluator  string
	Nodes      int
	Leaves     int
	Prunes     int
	Duration   time.Duration
	AllocBytes uint64
}

// MoveMetric describes one move of a recorded game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric describes one finished game.
type GameMetric struct {
	Size       int
	Winner     string
	BlackScore float64
	WhiteScore float64
	Moves      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Reporter is implemented by agents that collect search metrics.
type Reporter interface {
	LastMetric() SearchMetric
}

// Collector accumulates counters over a single search.
type Collector interface {
	Start(depth int, evaluator string)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	evaluator  string
	startTime  time.Time
	startAlloc uint64
	nodes      atomic.Int64
	leaves     atomic.Int64
	prunes     atomic.Int64
}

// NewCollector returns a collector that measures duration and the
// allocation delta between Start and Complete.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int, evaluator string) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	c.depth = depth
	c.evaluator = evaluator
	c.startTime = time.Now()
	c.startAlloc = ms.TotalAlloc
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.prunes.Store(0)
}

func (c *collector) AddNode()  { c.nodes.Add(1) }
func (c *collector) AddLeaf()  { c.leaves.Add(1) }
func (c *collector) AddPrune() { c.prunes.Add(1) }

func (c *collector) Complete() SearchMetric {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return SearchMetric{
		Depth:      c.depth,
		Evaluator:  c.evaluator,
		Nodes:      int(c.nodes.Load()),
		Leaves:     int(c.leaves.Load()),
		Prunes:     int(c.prunes.Load()),
		Duration:   time.Since(c.startTime),
		AllocBytes: ms.TotalAlloc - c.startAlloc,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector.
func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start(int, string)      {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddPrune()              {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
