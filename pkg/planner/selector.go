package planner

import (
	"seogen-go/pkg/catalog"
	"seogen-go/pkg/page"
)

// Selector thresholds. Each condition contributes independently; the
// sum decides template vs. enhanced generation.
const (
	searchesThreshold   = 1000
	searchesWeight      = 30
	competitionWeight   = 25
	priorityThreshold   = 80
	priorityWeight      = 20
	conversionThreshold = 0.06
	conversionWeight    = 15
	incomeThreshold     = 70000
	incomeWeight        = 10

	llmScoreCutoff = 70
)

// Score computes the additive enhancement score for one service/location
// pair. Monotone in every contributing factor.
func Score(svc catalog.ServiceDescriptor, loc catalog.LocationDescriptor) int {
	score := 0
	if loc.MonthlySearches > searchesThreshold {
		score += searchesWeight
	}
	if loc.Competition == catalog.CompetitionHigh {
		score += competitionWeight
	}
	if svc.PriorityScore > priorityThreshold {
		score += priorityWeight
	}
	if loc.ConversionPotential > conversionThreshold {
		score += conversionWeight
	}
	if loc.MedianIncome > incomeThreshold {
		score += incomeWeight
	}
	return score
}

// DetermineMethod classifies a pair as cheap template generation or
// paid enhanced generation. A soft heuristic targeting roughly the top
// tenth of pages; there is no hard quota.
func DetermineMethod(svc catalog.ServiceDescriptor, loc catalog.LocationDescriptor) page.Method {
	if Score(svc, loc) >= llmScoreCutoff {
		return page.MethodLLM
	}
	return page.MethodTemplate
}
