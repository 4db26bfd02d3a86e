package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"seogen-go/pkg/catalog"
	"seogen-go/pkg/page"
)

const (
	sitemapPath = "/sitemap.xml"
	robotsPath  = "/robots.txt"
)

// GenerateMetaPages derives /sitemap.xml and /robots.txt from the
// completed page set. Pages whose path ends in .xml or .txt are not
// listed in the sitemap. No network calls.
func GenerateMetaPages(biz *catalog.BusinessProfile, pages map[string]*page.GeneratedPage) map[string]*page.GeneratedPage {
	base := hostStandIn(biz)
	lastmod := time.Now().UTC().Format("2006-01-02")

	paths := make([]string, 0, len(pages))
	for path := range pages {
		if strings.HasSuffix(path, ".xml") || strings.HasSuffix(path, ".txt") {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, path := range paths {
		priority := "0.8"
		if pages[path].LLMEnhanced {
			priority = "0.9"
		}
		fmt.Fprintf(&sitemap, "  <url>\n    <loc>%s%s</loc>\n    <lastmod>%s</lastmod>\n    <priority>%s</priority>\n  </url>\n",
			base, path, lastmod, priority)
	}
	sitemap.WriteString("</urlset>\n")

	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s%s\n", base, sitemapPath)

	now := time.Now().UTC()
	return map[string]*page.GeneratedPage{
		sitemapPath: {
			Title:     "XML Sitemap",
			Content:   sitemap.String(),
			WordCount: len(strings.Fields(sitemap.String())),
			PageURL:   sitemapPath,
			Method:    page.MethodTemplate,
			PageType:  page.TypeMeta,
			CreatedAt: now,
		},
		robotsPath: {
			Title:     "Robots",
			Content:   robots,
			WordCount: len(strings.Fields(robots)),
			PageURL:   robotsPath,
			Method:    page.MethodTemplate,
			PageType:  page.TypeMeta,
			CreatedAt: now,
		},
	}
}

// hostStandIn builds the placeholder host used in sitemap and robots
// references. The business id stands in for the real deployed host,
// which is only known to the publishing layer.
func hostStandIn(biz *catalog.BusinessProfile) string {
	return "https://" + biz.ID
}
