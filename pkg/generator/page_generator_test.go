package generator

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/llm"
	"seogen-go/pkg/page"
)

// stubCompletionClient returns canned content or a canned error and
// counts how many calls it received.
type stubCompletionClient struct {
	content string
	err     error
	calls   atomic.Int64
}

func (s *stubCompletionClient) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func jobConfig(method page.Method) page.Config {
	return page.Config{
		Business: &catalog.BusinessProfile{
			ID:              "biz-1",
			Name:            "Austin Comfort Air",
			Phone:           "(512) 555-0100",
			City:            "Austin",
			State:           "TX",
			YearsInBusiness: 12,
			PrimaryTrade:    "HVAC",
		},
		Service: catalog.ServiceDescriptor{
			ID:         "ac-repair",
			Name:       "AC Repair",
			Slug:       "ac-repair",
			PriceRange: catalog.PriceRange{Min: 89, Max: 2500},
		},
		Location: catalog.LocationDescriptor{
			ID:    "loc-austin",
			City:  "Austin",
			State: "TX",
			Slug:  "austin",
		},
		PageType:      page.TypeServiceLocation,
		URLPath:       "/services/ac-repair/austin",
		Method:        method,
		PriorityScore: 80,
	}
}

func TestGenerateSinglePage_TemplateTier(t *testing.T) {
	gen := NewPageGenerator(nil, nil)

	pg, cost := gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodTemplate))
	if pg == nil {
		t.Fatal("Expected a page, got nil")
	}
	if pg.Method != page.MethodTemplate {
		t.Errorf("Expected template method, got %s", pg.Method)
	}
	if cost != 0 {
		t.Errorf("Expected zero cost for template tier, got %f", cost)
	}
	if pg.PageURL != "/services/ac-repair/austin" {
		t.Errorf("Unexpected page URL %s", pg.PageURL)
	}
	if pg.WordCount == 0 || pg.WordCount != len(strings.Fields(pg.Content)) {
		t.Errorf("Word count %d does not match content", pg.WordCount)
	}
	if !strings.Contains(pg.Content, "Austin") {
		t.Error("Expected rendered content to mention the city")
	}
	if pg.SchemaMarkup == nil {
		t.Error("Expected schema markup on template page")
	}
}

func TestGenerateSinglePage_EnhancedTier(t *testing.T) {
	client := &stubCompletionClient{content: "Enhanced copy about AC repair in Austin with local detail."}
	gen := NewPageGenerator(client, nil)

	pg, cost := gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodLLM))
	if pg.Method != page.MethodLLM {
		t.Errorf("Expected llm method after successful enhancement, got %s", pg.Method)
	}
	if !pg.LLMEnhanced {
		t.Error("Expected LLMEnhanced flag set")
	}
	if pg.Content != client.content {
		t.Error("Expected enhanced content to replace template content")
	}
	if cost <= 0 {
		t.Errorf("Expected positive cost for enhancement, got %f", cost)
	}
	if client.calls.Load() != 1 {
		t.Errorf("Expected exactly one completion call, got %d", client.calls.Load())
	}
}

func TestGenerateSinglePage_EnhancementFailureKeepsTemplate(t *testing.T) {
	client := &stubCompletionClient{err: errors.New("upstream unavailable")}
	gen := NewPageGenerator(client, nil)

	pg, cost := gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodLLM))
	if pg == nil {
		t.Fatal("Expected a page even when enhancement fails")
	}
	if pg.Method != page.MethodTemplate {
		t.Errorf("Expected template method after enhancement failure, got %s", pg.Method)
	}
	if pg.LLMEnhanced {
		t.Error("Expected LLMEnhanced unset after enhancement failure")
	}
	if cost != 0 {
		t.Errorf("Expected zero cost for failed enhancement, got %f", cost)
	}
	if pg.WordCount == 0 {
		t.Error("Expected template content to survive the failure")
	}
}

func TestGenerateSinglePage_NilClientKeepsTemplate(t *testing.T) {
	gen := NewPageGenerator(nil, nil)

	pg, cost := gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodLLM))
	if pg.Method != page.MethodTemplate {
		t.Errorf("Expected template method without a completion client, got %s", pg.Method)
	}
	if cost != 0 {
		t.Errorf("Expected zero cost without a completion client, got %f", cost)
	}
}

func TestGenerateSinglePage_PanicDegradesToFallback(t *testing.T) {
	gen := NewPageGenerator(nil, nil)

	// A nil business makes the template tier panic on field access.
	cfg := jobConfig(page.MethodTemplate)
	cfg.Business = nil

	pg, cost := gen.GenerateSinglePage(context.Background(), cfg)
	if pg == nil {
		t.Fatal("Expected a fallback page, got nil")
	}
	if pg.Method != page.MethodFallback {
		t.Errorf("Expected fallback method after panic, got %s", pg.Method)
	}
	if cost != 0 {
		t.Errorf("Expected zero cost for fallback page, got %f", cost)
	}
	if pg.PageURL != cfg.URLPath {
		t.Errorf("Expected fallback to keep the job URL, got %s", pg.PageURL)
	}
	if pg.Content == "" {
		t.Error("Expected non-empty fallback content")
	}
}

func TestGenerateSinglePage_RecordsMetrics(t *testing.T) {
	metrics := NewRunMetrics()
	gen := NewPageGenerator(nil, metrics)

	gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodTemplate))
	gen.GenerateSinglePage(context.Background(), jobConfig(page.MethodTemplate))

	snap := metrics.Snapshot()
	if snap.PagesGenerated != 2 {
		t.Errorf("Expected 2 pages recorded, got %d", snap.PagesGenerated)
	}
	if snap.TemplatePages != 2 {
		t.Errorf("Expected 2 template pages recorded, got %d", snap.TemplatePages)
	}
}
