package stats

import (
	"time"

	"golang.org/x/exp/constraints"

	"session-stream/pkg/utils/syncutils"
)

const (
	DEFAULT_MIN_REPORT_SAMPLES = 200
	DEFAULT_COLLECT_DURATION   = time.Duration(10) * time.Second
)

type StatsCollector[E constraints.Ordered] struct {
	tag                string
	data               []E
	report_timer       ReportTimer
	min_report_samples uint32
}

func NewStatsCollector[E constraints.Ordered](tag string, reportInterval time.Duration) StatsCollector[E] {
	return StatsCollector[E]{
		data:               make([]E, 0, 128),
		report_timer:       NewReportTimer(reportInterval),
		tag:                tag,
		min_report_samples: DEFAULT_MIN_REPORT_SAMPLES,
	}
}

type ConcurrentStatsCollector[E constraints.Ordered] struct {
	mu syncutils.Mutex
	StatsCollector[E]
}

func NewConcurrentStatsCollector[E constraints.Ordered](tag string, duration time.Duration) *ConcurrentStatsCollector[E] {
	return &ConcurrentStatsCollector[E]{
		StatsCollector: NewStatsCollector[E](tag, duration),
	}
}

func (c *ConcurrentStatsCollector[E]) PrintRemainingStats() {
	c.mu.Lock()
	c.StatsCollector.PrintRemainingStats()
	c.mu.Unlock()
}
