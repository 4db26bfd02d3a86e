package catalog

import (
	"context"
	"errors"
	"testing"
)

type stubBusinessSource struct {
	profiles map[string]*BusinessProfile
}

func (s *stubBusinessSource) BusinessByID(ctx context.Context, id string) (*BusinessProfile, error) {
	if p, ok := s.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, ErrBusinessNotFound
}

func TestLoadBusiness_AppliesDefaults(t *testing.T) {
	src := &stubBusinessSource{profiles: map[string]*BusinessProfile{
		"biz-1": {ID: "biz-1", Phone: "(512) 555-0100"},
	}}

	profile, err := LoadBusiness(context.Background(), src, "biz-1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if profile.City != DefaultCity {
		t.Errorf("Expected default city %q, got %q", DefaultCity, profile.City)
	}
	if profile.PrimaryTrade != DefaultTrade {
		t.Errorf("Expected default trade %q, got %q", DefaultTrade, profile.PrimaryTrade)
	}
	if profile.Name == "" {
		t.Error("Expected a synthesized business name")
	}
	if profile.ServiceRadius == 0 {
		t.Error("Expected a default service radius")
	}
}

func TestLoadBusiness_NotFound(t *testing.T) {
	src := &stubBusinessSource{profiles: map[string]*BusinessProfile{}}

	_, err := LoadBusiness(context.Background(), src, "missing")
	if err == nil {
		t.Fatal("Expected error for missing business")
	}
	if !errors.Is(err, ErrBusinessNotFound) {
		t.Errorf("Expected ErrBusinessNotFound, got: %v", err)
	}
}

func TestLoadServices_DefaultCatalog(t *testing.T) {
	services := LoadServices(GenerationRequest{})

	if len(services) != 10 {
		t.Fatalf("Expected 10 default services, got %d", len(services))
	}

	// Priorities descend 80, 78, 76, ... 62
	for i, svc := range services {
		want := 80 - i*2
		if svc.PriorityScore != want {
			t.Errorf("Service %d: expected priority %d, got %d", i, want, svc.PriorityScore)
		}
		if svc.Slug == "" {
			t.Errorf("Service %q has empty slug", svc.Name)
		}
	}
	if services[len(services)-1].PriorityScore != 62 {
		t.Errorf("Expected last default priority 62, got %d", services[len(services)-1].PriorityScore)
	}
}

func TestLoadServices_ExplicitIDs(t *testing.T) {
	services := LoadServices(GenerationRequest{
		ServiceIDs: []string{"ac-repair", "custom-thing"},
	})

	if len(services) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(services))
	}

	if services[0].Name != "AC Repair" {
		t.Errorf("Expected lookup name for ac-repair, got %q", services[0].Name)
	}
	if services[1].Name != "Custom Thing" {
		t.Errorf("Expected title-cased name for unknown id, got %q", services[1].Name)
	}

	for _, svc := range services {
		if svc.PriorityScore != explicitServicePriority {
			t.Errorf("Service %s: expected priority %d, got %d", svc.ID, explicitServicePriority, svc.PriorityScore)
		}
		if svc.PriceRange.Min == 0 || svc.PriceRange.Max == 0 {
			t.Errorf("Service %s: expected default price range, got %+v", svc.ID, svc.PriceRange)
		}
	}
}

func TestLoadLocations_Defaults(t *testing.T) {
	locations := LoadLocations(GenerationRequest{})

	if len(locations) != 5 {
		t.Fatalf("Expected 5 default locations, got %d", len(locations))
	}

	if locations[0].City != "Austin" {
		t.Errorf("Expected Austin first, got %q", locations[0].City)
	}
	if locations[0].Competition != CompetitionHigh {
		t.Errorf("Expected high competition for Austin, got %q", locations[0].Competition)
	}
	if locations[0].MonthlySearches != 5000 {
		t.Errorf("Expected 5000 monthly searches for Austin, got %d", locations[0].MonthlySearches)
	}

	for i := 1; i < len(locations); i++ {
		if locations[i].MonthlySearches >= locations[i-1].MonthlySearches {
			t.Errorf("Monthly searches not descending at index %d", i)
		}
	}
}

func TestLoadLocations_ExplicitAreas(t *testing.T) {
	locations := LoadLocations(GenerationRequest{
		ServiceAreas: []string{"Buda", " Kyle "},
	})

	if len(locations) != 2 {
		t.Fatalf("Expected 2 locations, got %d", len(locations))
	}
	if locations[0].City != "Buda" || locations[1].City != "Kyle" {
		t.Errorf("Expected trimmed city names, got %q and %q", locations[0].City, locations[1].City)
	}
	if locations[0].Slug != "buda" {
		t.Errorf("Expected slug buda, got %q", locations[0].Slug)
	}
}
