package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/page"
)

// DeploymentManifest records one persisted page set.
type DeploymentManifest struct {
	DeploymentID string    `json:"deployment_id"`
	BusinessID   string    `json:"business_id"`
	PageCount    int       `json:"page_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// SiteStore is the storage collaborator for generation runs: it
// resolves business profiles and acts as the result sink for generated
// page sets.
type SiteStore struct {
	storage Storage
	log     *logger.Logger
}

// NewSiteStore wraps a Storage backend.
func NewSiteStore(storage Storage) *SiteStore {
	return &SiteStore{
		storage: storage,
		log:     logger.Component("site_store"),
	}
}

// SaveBusiness stores a business profile record.
func (ss *SiteStore) SaveBusiness(ctx context.Context, profile *catalog.BusinessProfile) error {
	if profile.ID == "" {
		return fmt.Errorf("business id cannot be empty")
	}
	return ss.storage.Save(ctx, businessKey(profile.ID), profile)
}

// BusinessByID resolves a business profile, returning
// catalog.ErrBusinessNotFound when no record exists.
func (ss *SiteStore) BusinessByID(ctx context.Context, id string) (*catalog.BusinessProfile, error) {
	exists, err := ss.storage.Exists(ctx, businessKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to check business record: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", catalog.ErrBusinessNotFound, id)
	}

	var profile catalog.BusinessProfile
	if err := ss.storage.Load(ctx, businessKey(id), &profile); err != nil {
		return nil, fmt.Errorf("failed to load business record: %w", err)
	}
	return &profile, nil
}

// PersistPages stores the generated page set plus a deployment manifest
// and returns the new deployment id.
func (ss *SiteStore) PersistPages(ctx context.Context, businessID string, pages map[string]*page.GeneratedPage) (string, error) {
	deploymentID := uuid.NewString()

	if err := ss.storage.Save(ctx, pagesKey(businessID, deploymentID), pages); err != nil {
		return "", fmt.Errorf("failed to persist pages: %w", err)
	}

	manifest := DeploymentManifest{
		DeploymentID: deploymentID,
		BusinessID:   businessID,
		PageCount:    len(pages),
		CreatedAt:    time.Now().UTC(),
	}
	if err := ss.storage.Save(ctx, manifestKey(businessID), manifest); err != nil {
		return "", fmt.Errorf("failed to persist deployment manifest: %w", err)
	}

	ss.log.WithFields(map[string]interface{}{
		"business_id":   businessID,
		"deployment_id": deploymentID,
		"page_count":    len(pages),
	}).Info("Page set persisted")

	return deploymentID, nil
}

// LatestDeployment returns the most recent deployment manifest for a
// business, if any.
func (ss *SiteStore) LatestDeployment(ctx context.Context, businessID string) (*DeploymentManifest, error) {
	var manifest DeploymentManifest
	if err := ss.storage.Load(ctx, manifestKey(businessID), &manifest); err != nil {
		return nil, fmt.Errorf("no deployment found for %s: %w", businessID, err)
	}
	return &manifest, nil
}

// LoadPages retrieves a previously persisted page set.
func (ss *SiteStore) LoadPages(ctx context.Context, businessID, deploymentID string) (map[string]*page.GeneratedPage, error) {
	pages := make(map[string]*page.GeneratedPage)
	if err := ss.storage.Load(ctx, pagesKey(businessID, deploymentID), &pages); err != nil {
		return nil, fmt.Errorf("failed to load page set: %w", err)
	}
	return pages, nil
}

func businessKey(id string) string {
	return "business:" + id
}

func pagesKey(businessID, deploymentID string) string {
	return fmt.Sprintf("pages:%s:%s", businessID, deploymentID)
}

func manifestKey(businessID string) string {
	return "deployment:" + businessID
}
