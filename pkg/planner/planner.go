package planner

import (
	"fmt"
	"sort"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/page"
)

// variantTypes are the extra pages emitted per service/location pair,
// always on the template path at reduced priority.
var variantTypes = []struct {
	pageType page.Type
	prefix   string
}{
	{page.TypeEmergency, "emergency_service"},
	{page.TypeCommercial, "commercial_service"},
	{page.TypeResidential, "residential_service"},
}

// PlanPages expands services x locations x page variants into the full
// ordered job list. For S services and L locations the plan holds
// exactly S + L + 4*S*L jobs, sorted by priority descending with stable
// ties.
func PlanPages(biz *catalog.BusinessProfile, services []catalog.ServiceDescriptor, locations []catalog.LocationDescriptor) []page.Config {
	plan := make([]page.Config, 0, len(services)+len(locations)+4*len(services)*len(locations))

	var firstLocation catalog.LocationDescriptor
	if len(locations) > 0 {
		firstLocation = locations[0]
	}
	var firstService catalog.ServiceDescriptor
	if len(services) > 0 {
		firstService = services[0]
	}

	for _, svc := range services {
		plan = append(plan, page.Config{
			Business:      biz,
			Service:       svc,
			Location:      firstLocation,
			PageType:      page.TypeService,
			URLPath:       fmt.Sprintf("/services/%s", svc.Slug),
			Method:        DetermineMethod(svc, firstLocation),
			PriorityScore: float64(svc.PriorityScore),
		})
	}

	for _, loc := range locations {
		plan = append(plan, page.Config{
			Business:      biz,
			Service:       firstService,
			Location:      loc,
			PageType:      page.TypeLocation,
			URLPath:       fmt.Sprintf("/locations/%s", loc.Slug),
			Method:        DetermineMethod(firstService, loc),
			PriorityScore: 70 + float64(loc.MonthlySearches)/100,
		})
	}

	for _, svc := range services {
		for _, loc := range locations {
			basePriority := float64(svc.PriorityScore) + float64(loc.MonthlySearches)/100

			plan = append(plan, page.Config{
				Business:      biz,
				Service:       svc,
				Location:      loc,
				PageType:      page.TypeServiceLocation,
				URLPath:       fmt.Sprintf("/services/%s/%s", svc.Slug, loc.Slug),
				Method:        DetermineMethod(svc, loc),
				PriorityScore: basePriority,
			})

			for _, variant := range variantTypes {
				plan = append(plan, page.Config{
					Business:      biz,
					Service:       svc,
					Location:      loc,
					PageType:      variant.pageType,
					URLPath:       fmt.Sprintf("/%s/%s/%s", variant.prefix, svc.Slug, loc.Slug),
					Method:        page.MethodTemplate,
					PriorityScore: basePriority - 10,
				})
			}
		}
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].PriorityScore > plan[j].PriorityScore
	})

	return plan
}
