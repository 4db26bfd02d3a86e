package llm

import (
	"fmt"
	"strings"

	"seogen-go/pkg/page"
)

const enhancementSystemPrompt = "You are an expert SEO copywriter for local home-services businesses. " +
	"Write natural, locally grounded page content. Never invent certifications, " +
	"license numbers, or reviews. Output plain prose with simple headings, no markdown fences."

// BuildEnhancementPrompt assembles the system and user prompts for one
// page enhancement call. Formatting and length requirements live in the
// prompt itself; the caller treats the response as opaque page content.
func BuildEnhancementPrompt(cfg page.Config) (system, user string) {
	biz := cfg.Business
	svc := cfg.Service
	loc := cfg.Location

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write the body content for a %s page.\n\n", cfg.PageType)
	fmt.Fprintf(&sb, "Business facts:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", biz.Name)
	fmt.Fprintf(&sb, "- Trade: %s\n", biz.PrimaryTrade)
	fmt.Fprintf(&sb, "- Phone: %s\n", biz.Phone)
	fmt.Fprintf(&sb, "- Based in: %s, %s\n", biz.City, biz.State)
	fmt.Fprintf(&sb, "- Years in business: %d\n", biz.YearsInBusiness)
	if biz.EmergencyAvailable {
		sb.WriteString("- Offers 24/7 emergency service\n")
	}

	fmt.Fprintf(&sb, "\nService: %s. %s (typical price $%d-$%d)\n",
		svc.Name, svc.Description, svc.PriceRange.Min, svc.PriceRange.Max)

	fmt.Fprintf(&sb, "\nTarget market: %s, %s", loc.City, loc.State)
	if loc.County != "" {
		fmt.Fprintf(&sb, " (%s County)", loc.County)
	}
	sb.WriteString("\n")
	if len(loc.Neighborhoods) > 0 {
		fmt.Fprintf(&sb, "Neighborhoods to reference: %s\n", strings.Join(loc.Neighborhoods, ", "))
	}
	if len(svc.Keywords) > 0 {
		fmt.Fprintf(&sb, "Target keywords: %s\n", strings.Join(svc.Keywords, ", "))
	}

	sb.WriteString("\nRequirements:\n")
	sb.WriteString("- 800 to 1200 words\n")
	sb.WriteString("- Include an FAQ section with at least 3 questions\n")
	sb.WriteString("- Reference real local context (neighborhoods, climate, housing stock)\n")
	sb.WriteString("- End with a clear call to action using the business phone number\n")

	return enhancementSystemPrompt, sb.String()
}
