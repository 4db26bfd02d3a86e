package catalog

// CompetitionLevel classifies how contested a local market is.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// BusinessProfile holds the identity and locale data for one business.
// Loaded once per generation run and treated as immutable afterwards.
type BusinessProfile struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Zip                string   `json:"zip"`
	YearsInBusiness    int      `json:"years_in_business"`
	PrimaryTrade       string   `json:"primary_trade"`
	SecondaryTrades    []string `json:"secondary_trades,omitempty"`
	Certifications     []string `json:"certifications,omitempty"`
	ServiceRadius      int      `json:"service_radius"`
	EmergencyAvailable bool     `json:"emergency_available"`
}

// PriceRange is the advertised min/max price for a service, in USD.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ServiceDescriptor describes one offered service. PriorityScore drives
// job ordering and the generation-method heuristic.
type ServiceDescriptor struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	PriceRange    PriceRange `json:"price_range"`
	Keywords      []string   `json:"keywords,omitempty"`
	PriorityScore int        `json:"priority_score"`
}

// LocationDescriptor describes one service-area market.
type LocationDescriptor struct {
	ID                  string           `json:"id"`
	City                string           `json:"city"`
	State               string           `json:"state"`
	County              string           `json:"county"`
	Slug                string           `json:"slug"`
	ZipCodes            []string         `json:"zip_codes,omitempty"`
	Neighborhoods       []string         `json:"neighborhoods,omitempty"`
	Population          int              `json:"population"`
	MedianIncome        int              `json:"median_income"`
	MonthlySearches     int              `json:"monthly_searches"`
	Competition         CompetitionLevel `json:"competition_level"`
	ConversionPotential float64          `json:"conversion_potential"`
}

// GenerationRequest is the caller-supplied input seeding one run.
// Empty ServiceIDs / ServiceAreas select the default catalogs.
type GenerationRequest struct {
	BusinessID   string   `json:"business_id"`
	ServiceIDs   []string `json:"service_ids,omitempty"`
	ServiceAreas []string `json:"service_areas,omitempty"`
}
