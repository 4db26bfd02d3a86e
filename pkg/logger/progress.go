package logger

import (
	"fmt"
	"sync"
	"time"
)

// BatchProgress reports progress of a batched run, one line per completed batch.
type BatchProgress struct {
	mu          sync.Mutex
	total       int
	done        int
	description string
	startTime   time.Time
	logger      *Logger
}

// NewBatchProgress creates a progress reporter for a run of total items.
func NewBatchProgress(total int, description string) *BatchProgress {
	return &BatchProgress{
		total:       total,
		description: description,
		startTime:   time.Now(),
		logger:      Component("progress"),
	}
}

// BatchDone records a completed batch of the given size and logs overall progress.
func (bp *BatchProgress) BatchDone(batchNum, totalBatches, size int) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	bp.done += size
	percentage := float64(bp.done) / float64(bp.total) * 100
	elapsed := time.Since(bp.startTime)

	var eta string
	if bp.done > 0 && bp.done < bp.total {
		avg := elapsed / time.Duration(bp.done)
		remaining := time.Duration(bp.total-bp.done) * avg
		eta = fmt.Sprintf(" (ETA: %s)", remaining.Round(time.Second))
	}

	bp.logger.WithFields(map[string]interface{}{
		"batch":    fmt.Sprintf("%d/%d", batchNum, totalBatches),
		"progress": fmt.Sprintf("%.1f%%", percentage),
		"done":     bp.done,
		"total":    bp.total,
		"elapsed":  elapsed.Round(time.Second).String(),
	}).Info(fmt.Sprintf("%s: %d/%d (%.1f%%)%s", bp.description, bp.done, bp.total, percentage, eta))
}

// Progress returns the current counts and completion percentage.
func (bp *BatchProgress) Progress() (done, total int, percentage float64) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.total == 0 {
		return 0, 0, 0
	}
	return bp.done, bp.total, float64(bp.done) / float64(bp.total) * 100
}
