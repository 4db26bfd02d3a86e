package generator

import (
	"fmt"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/deploy"
	"seogen-go/pkg/llm"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/storage"
)

// SiteGeneratorBuilder assembles a SiteGenerator from its
// collaborators. Store and business id are required; the completion
// client and deploy client are optional (their absence degrades the
// run, never fails it).
type SiteGeneratorBuilder struct {
	request   catalog.GenerationRequest
	store     *storage.SiteStore
	llmClient llm.CompletionClient
	deployer  *deploy.Client
	batchSize int
	metrics   *RunMetrics
}

// NewSiteGeneratorBuilder creates a builder with defaults.
func NewSiteGeneratorBuilder() *SiteGeneratorBuilder {
	return &SiteGeneratorBuilder{batchSize: DefaultBatchSize}
}

// WithBusinessID sets the business the run generates for.
func (b *SiteGeneratorBuilder) WithBusinessID(id string) *SiteGeneratorBuilder {
	b.request.BusinessID = id
	return b
}

// WithServiceIDs sets an explicit service id list; empty selects the
// default catalog.
func (b *SiteGeneratorBuilder) WithServiceIDs(ids []string) *SiteGeneratorBuilder {
	b.request.ServiceIDs = ids
	return b
}

// WithServiceAreas sets explicit service areas; empty selects the
// default Austin-area markets.
func (b *SiteGeneratorBuilder) WithServiceAreas(areas []string) *SiteGeneratorBuilder {
	b.request.ServiceAreas = areas
	return b
}

// WithStore sets the storage collaborator (business lookup + result sink).
func (b *SiteGeneratorBuilder) WithStore(store *storage.SiteStore) *SiteGeneratorBuilder {
	b.store = store
	return b
}

// WithCompletionClient sets the generative completion collaborator.
func (b *SiteGeneratorBuilder) WithCompletionClient(client llm.CompletionClient) *SiteGeneratorBuilder {
	b.llmClient = client
	return b
}

// WithDeployClient sets the optional deployment backend client.
func (b *SiteGeneratorBuilder) WithDeployClient(client *deploy.Client) *SiteGeneratorBuilder {
	b.deployer = client
	return b
}

// WithBatchSize overrides the per-batch job cap.
func (b *SiteGeneratorBuilder) WithBatchSize(size int) *SiteGeneratorBuilder {
	b.batchSize = size
	return b
}

// WithMetrics shares a metrics instance across runs (e.g. the server's
// process-wide counters).
func (b *SiteGeneratorBuilder) WithMetrics(metrics *RunMetrics) *SiteGeneratorBuilder {
	b.metrics = metrics
	return b
}

// Build validates the configuration and assembles the generator.
func (b *SiteGeneratorBuilder) Build() (*SiteGenerator, error) {
	if b.store == nil {
		return nil, fmt.Errorf("site store is required")
	}
	if b.request.BusinessID == "" {
		return nil, fmt.Errorf("business id is required")
	}

	metrics := b.metrics
	if metrics == nil {
		metrics = NewRunMetrics()
	}

	pageGen := NewPageGenerator(b.llmClient, metrics)

	return &SiteGenerator{
		store:    b.store,
		engine:   NewBatchEngine(pageGen, b.batchSize),
		deployer: b.deployer,
		request:  b.request,
		metrics:  metrics,
		log:      logger.Component("site_generator"),
	}, nil
}
