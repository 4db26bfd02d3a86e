package page

import (
	"fmt"
	"strings"
)

// TemplateSpec holds the string templates for one page type. Tokens use
// {placeholder} form and are substituted by Apply.
type TemplateSpec struct {
	Title           string
	MetaDescription string
	H1              string
	Content         string
}

var templates = map[Type]TemplateSpec{
	TypeService: {
		Title:           "{service_name} in {business_city}, {business_state} | {business_name}",
		MetaDescription: "Trusted {service_name_lower} from {business_name}. Serving {business_city} and surrounding areas for {years_in_business}+ years. Call {phone} today.",
		H1:              "{service_name} in {business_city}",
		Content: "{business_name} provides professional {service_name_lower} throughout {business_city}, {business_state}. " +
			"With {years_in_business} years of experience, our licensed technicians handle every job from routine maintenance to complete replacements. " +
			"Typical pricing runs from ${price_min} to ${price_max} depending on the scope of work. " +
			"We stand behind every {service_name_lower} job with upfront quotes and a satisfaction guarantee. " +
			"Call {phone} or request service online to schedule your {service_name_lower} appointment.",
	},
	TypeLocation: {
		Title:           "{primary_trade} Services in {city}, {state} | {business_name}",
		MetaDescription: "{business_name} serves {city}, {state} with fast, reliable {primary_trade_lower} services. Local technicians, upfront pricing. Call {phone}.",
		H1:              "Your {city} {primary_trade} Experts",
		Content: "Homeowners across {city}, {state} trust {business_name} for dependable {primary_trade_lower} service. " +
			"Our service area covers all of {city} and neighborhoods like {neighborhoods}. " +
			"Whether you need an urgent repair or a planned installation, we arrive on time with the parts to finish the job. " +
			"Call {phone} to talk with a local {primary_trade_lower} specialist today.",
	},
	TypeServiceLocation: {
		Title:           "{service_name} in {city}, {state} | {business_name}",
		MetaDescription: "Need {service_name_lower} in {city}? {business_name} offers same-week scheduling, upfront pricing, and guaranteed workmanship. Call {phone}.",
		H1:              "{service_name} in {city}, {state}",
		Content: "Looking for {service_name_lower} in {city}? {business_name} has served {city} and the wider {county} County area for {years_in_business} years. " +
			"Our technicians know the homes and climate of {city}, from {neighborhoods} to the surrounding area. " +
			"Most {service_name_lower} jobs in {city} run from ${price_min} to ${price_max}. " +
			"We offer upfront quotes, flexible scheduling, and workmanship backed by our satisfaction guarantee. " +
			"Call {phone} to schedule {service_name_lower} in {city} today.",
	},
	TypeEmergency: {
		Title:           "24/7 Emergency {service_name} in {city}, {state} | {business_name}",
		MetaDescription: "Emergency {service_name_lower} in {city}, available day and night. {business_name} dispatches fast. Call {phone} now.",
		H1:              "Emergency {service_name} in {city}",
		Content: "When you need emergency {service_name_lower} in {city}, every minute counts. " +
			"{business_name} keeps technicians on call around the clock for urgent {service_name_lower} problems throughout {city} and {county} County. " +
			"We answer the phone day or night, give you an honest arrival window, and carry the common parts to fix most emergencies in one visit. " +
			"Call {phone} now for immediate {service_name_lower} help in {city}.",
	},
	TypeCommercial: {
		Title:           "Commercial {service_name} in {city}, {state} | {business_name}",
		MetaDescription: "Commercial {service_name_lower} for {city} businesses. Maintenance plans, priority scheduling, licensed techs. Call {phone}.",
		H1:              "Commercial {service_name} for {city} Businesses",
		Content: "{business_name} delivers commercial {service_name_lower} to offices, restaurants, and retail properties across {city}. " +
			"We understand downtime costs money, so we offer priority scheduling and preventive maintenance plans tailored to commercial equipment. " +
			"Our licensed, insured technicians document every visit and keep your systems compliant. " +
			"Call {phone} to discuss commercial {service_name_lower} for your {city} property.",
	},
	TypeResidential: {
		Title:           "Residential {service_name} in {city}, {state} | {business_name}",
		MetaDescription: "Home {service_name_lower} in {city} from {business_name}. Friendly local techs, upfront pricing, satisfaction guaranteed. Call {phone}.",
		H1:              "Residential {service_name} in {city}",
		Content: "Your home deserves careful, honest {service_name_lower}, and that is what {business_name} brings to every {city} household. " +
			"We treat your home like our own: shoe covers at the door, clear explanations before any work, and a tidy workspace when we leave. " +
			"Residential {service_name_lower} in {city} typically runs from ${price_min} to ${price_max}. " +
			"Call {phone} to book a visit from a local technician.",
	},
}

// genericTemplate backs any page type without a dedicated spec.
var genericTemplate = TemplateSpec{
	Title:           "Professional {service_name} | {business_name}",
	MetaDescription: "Professional {service_name_lower} from {business_name}. Call {phone} for a free quote.",
	H1:              "Professional {service_name}",
	Content: "{business_name} offers professional {service_name_lower} backed by {years_in_business} years of experience. " +
		"Contact us at {phone} for upfront pricing and fast scheduling.",
}

// TemplateFor returns the template spec for a page type, falling back to
// the generic professional template for unknown types.
func TemplateFor(t Type) TemplateSpec {
	if spec, ok := templates[t]; ok {
		return spec
	}
	return genericTemplate
}

// Variables builds the substitution map for one job.
func Variables(cfg Config) map[string]string {
	biz := cfg.Business
	svc := cfg.Service
	loc := cfg.Location

	neighborhoods := strings.Join(loc.Neighborhoods, ", ")
	if neighborhoods == "" {
		neighborhoods = loc.City
	}
	county := loc.County
	if county == "" {
		county = loc.City
	}

	return map[string]string{
		"business_name":       biz.Name,
		"business_city":       biz.City,
		"business_state":      biz.State,
		"phone":               biz.Phone,
		"years_in_business":   fmt.Sprintf("%d", biz.YearsInBusiness),
		"primary_trade":       biz.PrimaryTrade,
		"primary_trade_lower": strings.ToLower(biz.PrimaryTrade),
		"service_name":        svc.Name,
		"service_name_lower":  strings.ToLower(svc.Name),
		"price_min":           fmt.Sprintf("%d", svc.PriceRange.Min),
		"price_max":           fmt.Sprintf("%d", svc.PriceRange.Max),
		"city":                loc.City,
		"state":               loc.State,
		"county":              county,
		"neighborhoods":       neighborhoods,
	}
}

// Apply substitutes {placeholder} tokens in tmpl. Unknown placeholders
// are left untouched; Apply never fails.
func Apply(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
