package generator

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"seogen-go/pkg/llm"
	"seogen-go/pkg/page"
)

// concurrencyTrackingClient records the high-water mark of in-flight
// completion calls.
type concurrencyTrackingClient struct {
	inFlight  atomic.Int64
	highWater atomic.Int64
}

func (c *concurrencyTrackingClient) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	current := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	for {
		high := c.highWater.Load()
		if current <= high || c.highWater.CompareAndSwap(high, current) {
			break
		}
	}

	// Hold the slot long enough that overlapping batches would show up
	// as a high-water mark above the batch size.
	time.Sleep(2 * time.Millisecond)
	return "enhanced content", nil
}

func planOf(n int) []page.Config {
	plan := make([]page.Config, 0, n)
	for i := 0; i < n; i++ {
		cfg := jobConfig(page.MethodTemplate)
		cfg.URLPath = fmt.Sprintf("/services/job-%d", i)
		plan = append(plan, cfg)
	}
	return plan
}

func TestBatchEngine_CoversEveryJob(t *testing.T) {
	engine := NewBatchEngine(NewPageGenerator(nil, nil), 7)

	plan := planOf(23)
	report := engine.Run(context.Background(), plan)

	if len(report.Pages) != 23 {
		t.Fatalf("Expected 23 pages, got %d", len(report.Pages))
	}
	for _, cfg := range plan {
		if _, ok := report.Pages[cfg.URLPath]; !ok {
			t.Errorf("Missing page for planned path %s", cfg.URLPath)
		}
	}
	if report.Collisions != 0 {
		t.Errorf("Expected no collisions for unique paths, got %d", report.Collisions)
	}
}

func TestBatchEngine_EmptyPlan(t *testing.T) {
	engine := NewBatchEngine(NewPageGenerator(nil, nil), 0)

	report := engine.Run(context.Background(), nil)
	if len(report.Pages) != 0 {
		t.Errorf("Expected empty result for empty plan, got %d pages", len(report.Pages))
	}
	if report.LLMCost != 0 {
		t.Errorf("Expected zero cost for empty plan, got %f", report.LLMCost)
	}
}

func TestBatchEngine_CollisionOverwritesLastWins(t *testing.T) {
	engine := NewBatchEngine(NewPageGenerator(nil, nil), 2)

	// Two jobs share a path; the later job's page type must win.
	first := jobConfig(page.MethodTemplate)
	first.URLPath = "/services/shared"
	first.PageType = page.TypeService

	second := jobConfig(page.MethodTemplate)
	second.URLPath = "/services/shared"
	second.PageType = page.TypeEmergency

	report := engine.Run(context.Background(), []page.Config{first, second})

	if len(report.Pages) != 1 {
		t.Fatalf("Expected one page for colliding paths, got %d", len(report.Pages))
	}
	if report.Collisions != 1 {
		t.Errorf("Expected one recorded collision, got %d", report.Collisions)
	}
	if got := report.Pages["/services/shared"].PageType; got != page.TypeEmergency {
		t.Errorf("Expected later job to win the path, got page type %s", got)
	}
}

func TestBatchEngine_AccumulatesCost(t *testing.T) {
	client := &stubCompletionClient{content: "enhanced content"}
	engine := NewBatchEngine(NewPageGenerator(client, nil), 5)

	plan := planOf(4)
	for i := range plan {
		plan[i].Method = page.MethodLLM
	}

	report := engine.Run(context.Background(), plan)
	perPage := float64(enhancementMaxTokens) / 1000 * costPerThousandTokens
	want := perPage * 4
	if diff := report.LLMCost - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected accumulated cost %f, got %f", want, report.LLMCost)
	}
	if client.calls.Load() != 4 {
		t.Errorf("Expected 4 completion calls, got %d", client.calls.Load())
	}
}

func TestBatchEngine_InFlightJobsNeverExceedBatchSize(t *testing.T) {
	client := &concurrencyTrackingClient{}
	engine := NewBatchEngine(NewPageGenerator(client, nil), 5)

	// Every job takes the completion path, so each one occupies a slot
	// for the duration of the stubbed call.
	plan := planOf(23)
	for i := range plan {
		plan[i].Method = page.MethodLLM
	}

	report := engine.Run(context.Background(), plan)
	if len(report.Pages) != 23 {
		t.Fatalf("Expected 23 pages, got %d", len(report.Pages))
	}

	high := client.highWater.Load()
	if high == 0 {
		t.Fatal("Expected at least one completion call in flight")
	}
	if high > 5 {
		t.Errorf("In-flight jobs exceeded the batch size: high-water mark %d", high)
	}
}

func TestBatchEngine_DefaultBatchSize(t *testing.T) {
	engine := NewBatchEngine(NewPageGenerator(nil, nil), -3)
	if engine.batchSize != DefaultBatchSize {
		t.Errorf("Expected default batch size %d, got %d", DefaultBatchSize, engine.batchSize)
	}
}
