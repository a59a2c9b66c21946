// Package web embeds the site's static assets and translation catalogs.
package web
