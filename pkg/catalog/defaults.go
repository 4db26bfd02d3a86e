package catalog

import "seogen-go/pkg/slug"

// Defaults applied when a loaded business record leaves fields empty.
const (
	DefaultCity  = "Austin"
	DefaultState = "TX"
	DefaultTrade = "HVAC"

	// Explicitly requested services without catalog pricing get this range.
	defaultPriceMin = 89
	defaultPriceMax = 2500

	// Priority assigned to services resolved from an explicit id list.
	explicitServicePriority = 75
)

// defaultServiceNames is the stock catalog used when a request names no
// services. Order matters: priority descends 80, 78, 76, ... 62.
var defaultServiceNames = []string{
	"AC Repair",
	"Heating Repair",
	"AC Installation",
	"Furnace Installation",
	"Duct Cleaning",
	"Water Heater Repair",
	"Drain Cleaning",
	"Emergency Plumbing",
	"Thermostat Installation",
	"HVAC Maintenance",
}

// serviceNameLookup resolves explicit service ids to display names.
var serviceNameLookup = map[string]string{
	"ac-repair":               "AC Repair",
	"heating-repair":          "Heating Repair",
	"ac-installation":         "AC Installation",
	"furnace-installation":    "Furnace Installation",
	"duct-cleaning":           "Duct Cleaning",
	"water-heater-repair":     "Water Heater Repair",
	"drain-cleaning":          "Drain Cleaning",
	"emergency-plumbing":      "Emergency Plumbing",
	"thermostat-installation": "Thermostat Installation",
	"hvac-maintenance":        "HVAC Maintenance",
}

// defaultLocations returns the stock Austin-area markets used when a
// request names no service areas. Monthly searches descend; the Austin
// entry clears three selector thresholds plus conversion potential, so
// top default pairs take the enhanced path.
func defaultLocations() []LocationDescriptor {
	return []LocationDescriptor{
		{
			ID:                  "loc-austin",
			City:                "Austin",
			State:               DefaultState,
			County:              "Travis",
			Slug:                slug.Make("Austin"),
			ZipCodes:            []string{"78701", "78702", "78704", "78745"},
			Neighborhoods:       []string{"Downtown", "South Congress", "Hyde Park"},
			Population:          975000,
			MedianIncome:        75000,
			MonthlySearches:     5000,
			Competition:         CompetitionHigh,
			ConversionPotential: 0.07,
		},
		{
			ID:                  "loc-round-rock",
			City:                "Round Rock",
			State:               DefaultState,
			County:              "Williamson",
			Slug:                slug.Make("Round Rock"),
			ZipCodes:            []string{"78664", "78665", "78681"},
			Neighborhoods:       []string{"Teravista", "Forest Creek"},
			Population:          133000,
			MedianIncome:        82000,
			MonthlySearches:     3200,
			Competition:         CompetitionMedium,
			ConversionPotential: 0.055,
		},
		{
			ID:                  "loc-cedar-park",
			City:                "Cedar Park",
			State:               DefaultState,
			County:              "Williamson",
			Slug:                slug.Make("Cedar Park"),
			ZipCodes:            []string{"78613", "78630"},
			Neighborhoods:       []string{"Buttercup Creek", "Anderson Mill"},
			Population:          79000,
			MedianIncome:        94000,
			MonthlySearches:     2100,
			Competition:         CompetitionMedium,
			ConversionPotential: 0.05,
		},
		{
			ID:                  "loc-georgetown",
			City:                "Georgetown",
			State:               DefaultState,
			County:              "Williamson",
			Slug:                slug.Make("Georgetown"),
			ZipCodes:            []string{"78626", "78628", "78633"},
			Neighborhoods:       []string{"Sun City", "Wolf Ranch"},
			Population:          75000,
			MedianIncome:        79000,
			MonthlySearches:     1600,
			Competition:         CompetitionLow,
			ConversionPotential: 0.045,
		},
		{
			ID:                  "loc-pflugerville",
			City:                "Pflugerville",
			State:               DefaultState,
			County:              "Travis",
			Slug:                slug.Make("Pflugerville"),
			ZipCodes:            []string{"78660", "78691"},
			Neighborhoods:       []string{"Falcon Pointe", "Blackhawk"},
			Population:          66000,
			MedianIncome:        88000,
			MonthlySearches:     1100,
			Competition:         CompetitionLow,
			ConversionPotential: 0.04,
		},
	}
}
