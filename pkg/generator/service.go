package generator

import (
	"context"
	"strings"
	"time"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/deploy"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/page"
	"seogen-go/pkg/planner"
	"seogen-go/pkg/storage"
)

// Result summarizes one full generation run. Fallback pages fold into
// the template count; downstream consumers depend on the two-bucket
// shape.
type Result struct {
	TotalPages     int                `json:"total_pages"`
	TemplatePages  int                `json:"template_pages"`
	EnhancedPages  int                `json:"enhanced_pages"`
	SitemapEntries int                `json:"sitemap_entries"`
	GenerationTime float64            `json:"generation_time"`
	DeploymentID   string             `json:"deployment_id"`
	CostBreakdown  map[string]float64 `json:"cost_breakdown"`
}

// SiteGenerator composes the loaders, planner, batch engine, meta-page
// generator, and result sink into one full-site generation call.
type SiteGenerator struct {
	store    *storage.SiteStore
	engine   *BatchEngine
	deployer *deploy.Client
	request  catalog.GenerationRequest
	metrics  *RunMetrics
	log      *logger.Logger
}

// GenerateFullSite runs the whole pipeline. Loader and sink errors are
// fatal and propagate to the caller; individual page failures never
// are, the batch tier absorbs them into fallback pages.
func (sg *SiteGenerator) GenerateFullSite(ctx context.Context) (*Result, error) {
	start := time.Now()

	business, err := catalog.LoadBusiness(ctx, sg.store, sg.request.BusinessID)
	if err != nil {
		return nil, err
	}
	services := catalog.LoadServices(sg.request)
	locations := catalog.LoadLocations(sg.request)

	plan := planner.PlanPages(business, services, locations)
	sg.log.WithFields(map[string]interface{}{
		"business_id": business.ID,
		"services":    len(services),
		"locations":   len(locations),
		"planned":     len(plan),
	}).Info("Page plan built")

	report := sg.engine.Run(ctx, plan)

	for path, pg := range GenerateMetaPages(business, report.Pages) {
		report.Pages[path] = pg
	}

	deploymentID, err := sg.store.PersistPages(ctx, business.ID, report.Pages)
	if err != nil {
		return nil, err
	}

	if sg.deployer != nil {
		if err := sg.deployer.SubmitPages(ctx, deploymentID, business.ID, report.Pages); err != nil {
			// The persisted deployment stays valid even if publishing fails.
			sg.log.WithError(err).WithField("deployment_id", deploymentID).Warn("Deployment backend submission failed")
		}
	}

	total, enhanced, sitemapEntries := 0, 0, 0
	for path, pg := range report.Pages {
		total++
		if pg.Method == page.MethodLLM {
			enhanced++
		}
		if !strings.HasSuffix(path, ".xml") && !strings.HasSuffix(path, ".txt") {
			sitemapEntries++
		}
	}

	result := &Result{
		TotalPages:     total,
		TemplatePages:  total - enhanced,
		EnhancedPages:  enhanced,
		SitemapEntries: sitemapEntries,
		GenerationTime: time.Since(start).Seconds(),
		DeploymentID:   deploymentID,
		CostBreakdown: map[string]float64{
			"llm_enhancement":     report.LLMCost,
			"template_generation": 0,
			"total":               report.LLMCost,
		},
	}

	sg.log.WithFields(map[string]interface{}{
		"deployment_id":  result.DeploymentID,
		"total_pages":    result.TotalPages,
		"enhanced_pages": result.EnhancedPages,
		"duration_s":     result.GenerationTime,
	}).Info("Full site generation completed")

	return result, nil
}

// Metrics exposes the run metrics for status reporting.
func (sg *SiteGenerator) Metrics() *RunMetrics {
	return sg.metrics
}
