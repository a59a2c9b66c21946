package securityheaders

import "strings"

// Directive is one Content-Security-Policy directive with its sources.
// A directive without sources, such as upgrade-insecure-requests, is
// written as its bare name.
type Directive struct {
	Name    string
	Sources []string
}

// Policy is an ordered Content-Security-Policy.
type Policy []Directive

// String renders the policy in header form.
func (p Policy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		if len(d.Sources) == 0 {
			parts = append(parts, d.Name)
			continue
		}
		parts = append(parts, d.Name+" "+strings.Join(d.Sources, " "))
	}
	return strings.Join(parts, "; ")
}

// With returns a copy of p with extra sources appended to the named
// directive, adding the directive when it is missing.
func (p Policy) With(name string, sources ...string) Policy {
	out := make(Policy, 0, len(p)+1)
	found := false
	for _, d := range p {
		if d.Name == name {
			d = Directive{Name: d.Name, Sources: append(append([]string(nil), d.Sources...), sources...)}
			found = true
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, Directive{Name: name, Sources: sources})
	}
	return out
}

// DefaultPolicy is the site policy. Stylesheets and fonts may come from
// the jsDelivr CDN, everything else is same-origin.
func DefaultPolicy() Policy {
	return Policy{
		{Name: "default-src", Sources: []string{"'self'"}},
		{Name: "base-uri", Sources: []string{"'self'"}},
		{Name: "block-all-mixed-content"},
		{Name: "img-src", Sources: []string{"'self'", "data:"}},
		{Name: "script-src", Sources: []string{"'self'", "'unsafe-inline'"}},
		{Name: "style-src", Sources: []string{"'self'", "https://cdn.jsdelivr.net"}},
		{Name: "font-src", Sources: []string{"'self'", "https://cdn.jsdelivr.net"}},
		{Name: "object-src", Sources: []string{"'none'"}},
		{Name: "connect-src", Sources: []string{"'self'"}},
		{Name: "frame-ancestors", Sources: []string{"'self'"}},
		{Name: "form-action", Sources: []string{"'self'"}},
		{Name: "upgrade-insecure-requests"},
	}
}
