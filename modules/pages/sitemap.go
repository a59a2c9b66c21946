package pages

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders the sitemap.xml document for every page in the route table.
func Sitemap(siteURL string) ([]byte, error) {
	base := strings.TrimRight(siteURL, "/")
	set := urlSet{XMLNS: sitemapNS}
	for _, p := range routes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + p.Path,
			ChangeFreq: p.ChangeFreq,
			Priority:   strconv.FormatFloat(p.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt allowing every crawler and pointing at the sitemap.
func Robots(siteURL string) []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if siteURL != "" {
		b.WriteString("\nSitemap: " + strings.TrimRight(siteURL, "/") + "/sitemap.xml\n")
	}
	return []byte(b.String())
}
