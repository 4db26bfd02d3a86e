package generator

import (
	"sync/atomic"
	"time"

	"seogen-go/pkg/page"
)

// RunMetrics tracks page generation counters across runs. Safe for
// concurrent use by in-batch goroutines.
type RunMetrics struct {
	PagesGenerated atomic.Uint64
	TemplatePages  atomic.Uint64
	EnhancedPages  atomic.Uint64
	FallbackPages  atomic.Uint64

	TotalDuration atomic.Uint64 // milliseconds

	StartTime time.Time
}

// NewRunMetrics creates a metrics instance.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{StartTime: time.Now()}
}

// RecordPage tallies one generated page by its final method.
func (m *RunMetrics) RecordPage(pg *page.GeneratedPage) {
	m.PagesGenerated.Add(1)
	m.TotalDuration.Add(uint64(pg.GenerationTimeMS))

	switch pg.Method {
	case page.MethodLLM:
		m.EnhancedPages.Add(1)
	case page.MethodFallback:
		m.FallbackPages.Add(1)
	default:
		m.TemplatePages.Add(1)
	}
}

// MetricsSnapshot is a point-in-time view of run metrics.
type MetricsSnapshot struct {
	PagesGenerated uint64  `json:"pages_generated"`
	TemplatePages  uint64  `json:"template_pages"`
	EnhancedPages  uint64  `json:"enhanced_pages"`
	FallbackPages  uint64  `json:"fallback_pages"`
	AvgDurationMS  float64 `json:"avg_duration_ms"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// Snapshot returns current counter values.
func (m *RunMetrics) Snapshot() MetricsSnapshot {
	generated := m.PagesGenerated.Load()
	snapshot := MetricsSnapshot{
		PagesGenerated: generated,
		TemplatePages:  m.TemplatePages.Load(),
		EnhancedPages:  m.EnhancedPages.Load(),
		FallbackPages:  m.FallbackPages.Load(),
		UptimeSeconds:  time.Since(m.StartTime).Seconds(),
	}
	if generated > 0 {
		snapshot.AvgDurationMS = float64(m.TotalDuration.Load()) / float64(generated)
	}
	return snapshot
}
