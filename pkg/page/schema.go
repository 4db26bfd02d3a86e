package page

import "fmt"

// BuildSchemaMarkup produces the JSON-LD structured data attached to a
// content page: a Service node with its LocalBusiness provider.
func BuildSchemaMarkup(cfg Config) map[string]interface{} {
	biz := cfg.Business
	svc := cfg.Service
	loc := cfg.Location

	provider := map[string]interface{}{
		"@type":     "LocalBusiness",
		"name":      biz.Name,
		"telephone": biz.Phone,
		"address": map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   biz.Address,
			"addressLocality": biz.City,
			"addressRegion":   biz.State,
			"postalCode":      biz.Zip,
		},
	}
	if biz.Email != "" {
		provider["email"] = biz.Email
	}

	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Name,
		"description": svc.Description,
		"provider":    provider,
		"areaServed": map[string]interface{}{
			"@type": "City",
			"name":  fmt.Sprintf("%s, %s", loc.City, loc.State),
		},
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"priceCurrency": "USD",
			"price":         fmt.Sprintf("%d-%d", svc.PriceRange.Min, svc.PriceRange.Max),
		},
	}
}
