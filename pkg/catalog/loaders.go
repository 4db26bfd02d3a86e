package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seogen-go/pkg/slug"
)

// ErrBusinessNotFound is returned when the requested business id has no
// stored record. This error is fatal for a generation run.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessSource resolves a business id to its stored profile.
// Implementations return ErrBusinessNotFound (possibly wrapped) when the
// id does not exist.
type BusinessSource interface {
	BusinessByID(ctx context.Context, id string) (*BusinessProfile, error)
}

// LoadBusiness fetches the business record and fills missing optional
// fields with documented defaults. A missing record is a fatal error.
func LoadBusiness(ctx context.Context, src BusinessSource, id string) (*BusinessProfile, error) {
	profile, err := src.BusinessByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load business %s: %w", id, err)
	}

	if profile.City == "" {
		profile.City = DefaultCity
	}
	if profile.State == "" {
		profile.State = DefaultState
	}
	if profile.PrimaryTrade == "" {
		profile.PrimaryTrade = DefaultTrade
	}
	if profile.Name == "" {
		profile.Name = fmt.Sprintf("%s %s Services", profile.City, profile.PrimaryTrade)
	}
	if profile.ServiceRadius == 0 {
		profile.ServiceRadius = 30
	}

	return profile, nil
}

// LoadServices resolves the request's explicit service ids, or emits the
// default catalog when none are given. Default priorities descend from
// 80 in steps of 2.
func LoadServices(req GenerationRequest) []ServiceDescriptor {
	if len(req.ServiceIDs) > 0 {
		services := make([]ServiceDescriptor, 0, len(req.ServiceIDs))
		for _, id := range req.ServiceIDs {
			name, ok := serviceNameLookup[id]
			if !ok {
				// Unknown ids still produce a page; title-case the id.
				name = titleFromID(id)
			}
			services = append(services, ServiceDescriptor{
				ID:            id,
				Name:          name,
				Slug:          slug.Make(name),
				Description:   fmt.Sprintf("Professional %s for homes and businesses", strings.ToLower(name)),
				Category:      "home_services",
				PriceRange:    PriceRange{Min: defaultPriceMin, Max: defaultPriceMax},
				Keywords:      []string{strings.ToLower(name), strings.ToLower(name) + " near me"},
				PriorityScore: explicitServicePriority,
			})
		}
		return services
	}

	services := make([]ServiceDescriptor, 0, len(defaultServiceNames))
	for i, name := range defaultServiceNames {
		services = append(services, ServiceDescriptor{
			ID:            slug.Make(name),
			Name:          name,
			Slug:          slug.Make(name),
			Description:   fmt.Sprintf("Professional %s for homes and businesses", strings.ToLower(name)),
			Category:      "home_services",
			PriceRange:    PriceRange{Min: defaultPriceMin, Max: defaultPriceMax},
			Keywords:      []string{strings.ToLower(name), strings.ToLower(name) + " near me"},
			PriorityScore: 80 - i*2,
		})
	}
	return services
}

// LoadLocations maps the request's explicit service areas to
// descriptors, or emits the default Austin-area markets when none are
// given. Explicit areas get conservative mid-tier market estimates.
func LoadLocations(req GenerationRequest) []LocationDescriptor {
	if len(req.ServiceAreas) == 0 {
		return defaultLocations()
	}

	locations := make([]LocationDescriptor, 0, len(req.ServiceAreas))
	for i, area := range req.ServiceAreas {
		city := strings.TrimSpace(area)
		locations = append(locations, LocationDescriptor{
			ID:                  "loc-" + slug.Make(city),
			City:                city,
			State:               DefaultState,
			Slug:                slug.Make(city),
			Population:          50000,
			MedianIncome:        68000,
			MonthlySearches:     2000 - i*100,
			Competition:         CompetitionMedium,
			ConversionPotential: 0.05,
		})
	}
	return locations
}

func titleFromID(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
