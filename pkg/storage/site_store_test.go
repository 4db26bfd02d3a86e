package storage

import (
	"context"
	"errors"
	"testing"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/page"
)

func TestSiteStore_BusinessRoundtrip(t *testing.T) {
	store := NewSiteStore(NewMemoryStorage())
	ctx := context.Background()

	profile := &catalog.BusinessProfile{
		ID:    "biz-1",
		Name:  "Austin Comfort Air",
		Phone: "(512) 555-0100",
		City:  "Austin",
	}
	if err := store.SaveBusiness(ctx, profile); err != nil {
		t.Fatalf("Failed to save business: %v", err)
	}

	got, err := store.BusinessByID(ctx, "biz-1")
	if err != nil {
		t.Fatalf("Failed to load business: %v", err)
	}
	if got.Name != profile.Name || got.Phone != profile.Phone {
		t.Errorf("Loaded profile %+v does not match saved profile", got)
	}
}

func TestSiteStore_BusinessNotFound(t *testing.T) {
	store := NewSiteStore(NewMemoryStorage())

	_, err := store.BusinessByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected error for unknown business")
	}
	if !errors.Is(err, catalog.ErrBusinessNotFound) {
		t.Errorf("Expected ErrBusinessNotFound, got %v", err)
	}
}

func TestSiteStore_SaveBusinessRequiresID(t *testing.T) {
	store := NewSiteStore(NewMemoryStorage())

	if err := store.SaveBusiness(context.Background(), &catalog.BusinessProfile{Name: "No ID"}); err == nil {
		t.Error("Expected error for empty business id")
	}
}

func TestSiteStore_PersistAndLoadPages(t *testing.T) {
	store := NewSiteStore(NewMemoryStorage())
	ctx := context.Background()

	pages := map[string]*page.GeneratedPage{
		"/services/ac-repair": {PageURL: "/services/ac-repair", Title: "AC Repair", Method: page.MethodTemplate},
		"/sitemap.xml":        {PageURL: "/sitemap.xml", Title: "XML Sitemap", Method: page.MethodTemplate},
	}

	deploymentID, err := store.PersistPages(ctx, "biz-1", pages)
	if err != nil {
		t.Fatalf("Failed to persist pages: %v", err)
	}
	if deploymentID == "" {
		t.Fatal("Expected a deployment id")
	}

	manifest, err := store.LatestDeployment(ctx, "biz-1")
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if manifest.DeploymentID != deploymentID || manifest.PageCount != 2 {
		t.Errorf("Unexpected manifest %+v", manifest)
	}

	loaded, err := store.LoadPages(ctx, "biz-1", deploymentID)
	if err != nil {
		t.Fatalf("Failed to load pages: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(loaded))
	}
	if loaded["/services/ac-repair"].Title != "AC Repair" {
		t.Errorf("Loaded page does not match persisted page: %+v", loaded["/services/ac-repair"])
	}
}

func TestSiteStore_ManifestTracksLatestDeployment(t *testing.T) {
	store := NewSiteStore(NewMemoryStorage())
	ctx := context.Background()

	pages := map[string]*page.GeneratedPage{"/a": {PageURL: "/a"}}

	first, err := store.PersistPages(ctx, "biz-1", pages)
	if err != nil {
		t.Fatalf("Failed first persist: %v", err)
	}
	second, err := store.PersistPages(ctx, "biz-1", pages)
	if err != nil {
		t.Fatalf("Failed second persist: %v", err)
	}
	if first == second {
		t.Fatal("Expected distinct deployment ids")
	}

	manifest, err := store.LatestDeployment(ctx, "biz-1")
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	if manifest.DeploymentID != second {
		t.Errorf("Expected manifest to track latest deployment %s, got %s", second, manifest.DeploymentID)
	}
}
