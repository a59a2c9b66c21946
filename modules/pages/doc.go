// Package pages serves the site's fixed content pages from a single route
// table that also drives navigation and sitemap.xml.
package pages
