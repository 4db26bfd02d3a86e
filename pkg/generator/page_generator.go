package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seogen-go/pkg/llm"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/page"
)

const (
	// Token budget for one enhancement call; also drives the cost estimate.
	enhancementMaxTokens   = 1600
	enhancementTemperature = 0.7
	costPerThousandTokens  = 0.0045

	fallbackWordCount = 25
)

// PageGenerator produces one GeneratedPage per planned job. Its key
// contract: GenerateSinglePage never fails outward. Every failure mode
// degrades to progressively simpler output: enhanced page, template
// page, minimal fallback page.
type PageGenerator struct {
	llm     llm.CompletionClient
	metrics *RunMetrics
	log     *logger.Logger
}

// NewPageGenerator creates a page generator. A nil completion client
// disables the enhanced path; such jobs keep their template content.
func NewPageGenerator(client llm.CompletionClient, metrics *RunMetrics) *PageGenerator {
	if metrics == nil {
		metrics = NewRunMetrics()
	}
	return &PageGenerator{
		llm:     client,
		metrics: metrics,
		log:     logger.Component("page_generator"),
	}
}

// GenerateSinglePage executes one job and returns the page plus the
// cost incurred in USD. Never returns nil and never panics outward.
func (g *PageGenerator) GenerateSinglePage(ctx context.Context, cfg page.Config) (result *page.GeneratedPage, cost float64) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			g.log.WithField("url_path", cfg.URLPath).Error(fmt.Sprintf("Page generation panicked, using fallback page: %v", r))
			result = g.fallbackPage(cfg)
			cost = 0
		}
		result.GenerationTimeMS = time.Since(start).Milliseconds()
		g.metrics.RecordPage(result)
	}()

	switch cfg.Method {
	case page.MethodLLM:
		result, cost = g.enhancedPage(ctx, cfg)
	default:
		result = g.templatePage(cfg)
	}
	return result, cost
}

// templatePage renders the deterministic template tier. No I/O.
func (g *PageGenerator) templatePage(cfg page.Config) *page.GeneratedPage {
	spec := page.TemplateFor(cfg.PageType)
	vars := page.Variables(cfg)

	content := page.Apply(spec.Content, vars)
	keywords := append([]string{}, cfg.Service.Keywords...)
	if cfg.Location.City != "" {
		keywords = append(keywords, fmt.Sprintf("%s %s", strings.ToLower(cfg.Service.Name), strings.ToLower(cfg.Location.City)))
	}

	return &page.GeneratedPage{
		Title:           page.Apply(spec.Title, vars),
		MetaDescription: page.Apply(spec.MetaDescription, vars),
		H1Heading:       page.Apply(spec.H1, vars),
		Content:         content,
		SchemaMarkup:    page.BuildSchemaMarkup(cfg),
		TargetKeywords:  keywords,
		WordCount:       len(strings.Fields(content)),
		PageURL:         cfg.URLPath,
		Method:          page.MethodTemplate,
		PageType:        cfg.PageType,
		PriorityScore:   cfg.PriorityScore,
		CreatedAt:       time.Now().UTC(),
	}
}

// enhancedPage builds the template page as the content floor, then
// issues one completion call. An enhancement failure is not an error:
// the template-tier page is a fully valid result.
func (g *PageGenerator) enhancedPage(ctx context.Context, cfg page.Config) (*page.GeneratedPage, float64) {
	base := g.templatePage(cfg)

	if g.llm == nil {
		g.log.WithField("url_path", cfg.URLPath).Debug("No completion client configured, keeping template content")
		return base, 0
	}

	system, user := llm.BuildEnhancementPrompt(cfg)
	content, err := g.llm.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  enhancementTemperature,
		MaxTokens:    enhancementMaxTokens,
	})
	if err != nil {
		g.log.WithError(err).WithField("url_path", cfg.URLPath).Warn("Enhancement unavailable, keeping template content")
		return base, 0
	}

	base.Content = content
	base.WordCount = len(strings.Fields(content))
	base.Method = page.MethodLLM
	base.LLMEnhanced = true

	return base, float64(enhancementMaxTokens) / 1000 * costPerThousandTokens
}

// fallbackPage is the floor of the degradation ladder: bare strings
// assembled from the job itself, guaranteed to succeed.
func (g *PageGenerator) fallbackPage(cfg page.Config) *page.GeneratedPage {
	bizName := ""
	if cfg.Business != nil {
		bizName = cfg.Business.Name
	}
	title := strings.TrimSpace(fmt.Sprintf("%s %s %s", bizName, cfg.Service.Name, cfg.Location.City))

	return &page.GeneratedPage{
		Title:           title,
		MetaDescription: fmt.Sprintf("%s in %s. Contact us for service.", cfg.Service.Name, cfg.Location.City),
		H1Heading:       title,
		Content:         fmt.Sprintf("%s provides %s in %s. Contact us to schedule service.", bizName, cfg.Service.Name, cfg.Location.City),
		WordCount:       fallbackWordCount,
		PageURL:         cfg.URLPath,
		Method:          page.MethodFallback,
		PageType:        cfg.PageType,
		PriorityScore:   cfg.PriorityScore,
		CreatedAt:       time.Now().UTC(),
	}
}
