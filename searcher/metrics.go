package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Calls      int64 // Solve invocations, terminal ones included
	Terminals  int64
	MemoHits   int64
	MemoStores int64
	MaxDepth   int64
}

type Collector interface {
	Start()
	AddCall(depth int)
	AddTerminal()
	AddMemoHit()
	AddMemoStore()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	calls      atomic.Int64
	terminals  atomic.Int64
	memoHits   atomic.Int64
	memoStores atomic.Int64
	maxDepth   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddCall(depth int) {
	m.calls.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddMemoHit() {
	m.memoHits.Add(1)
}

func (m *collector) AddMemoStore() {
	m.memoStores.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Calls:      m.calls.Load(),
		Terminals:  m.terminals.Load(),
		MemoHits:   m.memoHits.Load(),
		MemoStores: m.memoStores.Load(),
		MaxDepth:   m.maxDepth.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddCall(depth int)      {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddMemoHit()            {}
func (m *dummyCollector) AddMemoStore()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
