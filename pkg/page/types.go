package page

import (
	"time"

	"seogen-go/pkg/catalog"
)

// Type categorizes a page and selects its template and prompt.
type Type string

const (
	TypeService         Type = "service"
	TypeLocation        Type = "location"
	TypeServiceLocation Type = "service_location"
	TypeEmergency       Type = "emergency_service"
	TypeCommercial      Type = "commercial_service"
	TypeResidential     Type = "residential_service"

	// TypeMeta marks generated sitemap/robots artifacts kept in the
	// same page map as content pages.
	TypeMeta Type = "meta"
)

// Method is the strategy used to produce a page's content.
type Method string

const (
	MethodTemplate Method = "template"
	MethodLLM      Method = "llm"
	MethodFallback Method = "fallback"
)

// Config is one planned page generation job. Immutable once planned;
// consumed exactly once by the page generator.
type Config struct {
	Business      *catalog.BusinessProfile
	Service       catalog.ServiceDescriptor
	Location      catalog.LocationDescriptor
	PageType      Type
	URLPath       string
	Method        Method
	PriorityScore float64
}

// GeneratedPage is the output record for one job. Exactly one is
// produced per Config, falling back to a minimal page on failure.
type GeneratedPage struct {
	Title            string                 `json:"title"`
	MetaDescription  string                 `json:"meta_description"`
	H1Heading        string                 `json:"h1_heading"`
	Content          string                 `json:"content"`
	SchemaMarkup     map[string]interface{} `json:"schema_markup,omitempty"`
	TargetKeywords   []string               `json:"target_keywords,omitempty"`
	WordCount        int                    `json:"word_count"`
	PageURL          string                 `json:"page_url"`
	Method           Method                 `json:"generation_method"`
	LLMEnhanced      bool                   `json:"llm_enhanced"`
	GenerationTimeMS int64                  `json:"generation_time_ms"`
	PageType         Type                   `json:"page_type"`
	PriorityScore    float64                `json:"priority_score"`
	CreatedAt        time.Time              `json:"created_at"`
}
