package generator

import (
	"context"
	"fmt"
	"sync"

	"seogen-go/pkg/logger"
	"seogen-go/pkg/page"
)

// DefaultBatchSize caps in-flight jobs per batch. Batches run strictly
// sequentially, which bounds concurrent completion-API calls to one
// batch's enhanced subset at a time.
const DefaultBatchSize = 20

// BatchReport is the outcome of one batched generation pass.
type BatchReport struct {
	Pages      map[string]*page.GeneratedPage
	LLMCost    float64
	Collisions int
}

// BatchEngine runs a planned job list in fixed-size concurrent batches.
type BatchEngine struct {
	generator *PageGenerator
	batchSize int
	log       *logger.Logger
}

// NewBatchEngine creates a batch engine; batchSize <= 0 selects the
// default of 20.
func NewBatchEngine(gen *PageGenerator, batchSize int) *BatchEngine {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &BatchEngine{
		generator: gen,
		batchSize: batchSize,
		log:       logger.Component("batch_engine"),
	}
}

type jobResult struct {
	pg   *page.GeneratedPage
	cost float64
}

// Run generates every job in the plan. All jobs within a batch run
// concurrently and all complete before the next batch starts; a job can
// never fail outward, so siblings are never cancelled. The result map
// is keyed by URL path with overwrite-last-wins on collision; only the
// driving goroutine writes it.
func (be *BatchEngine) Run(ctx context.Context, plan []page.Config) *BatchReport {
	report := &BatchReport{Pages: make(map[string]*page.GeneratedPage, len(plan))}
	if len(plan) == 0 {
		return report
	}

	totalBatches := (len(plan) + be.batchSize - 1) / be.batchSize
	progress := logger.NewBatchProgress(len(plan), "Page generation")

	be.log.WithFields(map[string]interface{}{
		"total_pages":   len(plan),
		"batch_size":    be.batchSize,
		"total_batches": totalBatches,
	}).Info("Starting batched page generation")

	for i := 0; i < len(plan); i += be.batchSize {
		end := i + be.batchSize
		if end > len(plan) {
			end = len(plan)
		}
		batch := plan[i:end]
		results := make([]jobResult, len(batch))

		var wg sync.WaitGroup
		for j := range batch {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				pg, cost := be.generator.GenerateSinglePage(ctx, batch[j])
				results[j] = jobResult{pg: pg, cost: cost}
			}(j)
		}
		wg.Wait()

		for _, r := range results {
			if _, exists := report.Pages[r.pg.PageURL]; exists {
				report.Collisions++
			}
			report.Pages[r.pg.PageURL] = r.pg
			report.LLMCost += r.cost
		}

		progress.BatchDone(i/be.batchSize+1, totalBatches, len(batch))
	}

	if report.Collisions > 0 {
		be.log.WithField("collisions", report.Collisions).Warn("URL path collisions overwrote earlier pages")
	}

	done, total, percentage := progress.Progress()
	be.log.WithFields(map[string]interface{}{
		"done":     done,
		"total":    total,
		"progress": fmt.Sprintf("%.1f%%", percentage),
	}).Info("Batched page generation finished")

	return report
}
