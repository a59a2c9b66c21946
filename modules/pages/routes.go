package pages

// Page describes one entry of the site's fixed route table.
type Page struct {
	Path           string
	Name           string
	TitleKey       string
	DescriptionKey string
	// NavKey is the translation key of the navigation label.
	NavKey     string
	ChangeFreq string
	Priority   float64
	// External pages are listed in navigation and the sitemap but served by
	// another module.
	External bool
}

// ContactPath is served by the contact module.
const ContactPath = "/kontakt"

var routes = []Page{
	{Path: "/", Name: "index", TitleKey: "page.index.title", DescriptionKey: "page.index.description", NavKey: "nav.home", ChangeFreq: "monthly", Priority: 1.0},
	{Path: "/om-mig", Name: "about", TitleKey: "page.about.title", DescriptionKey: "page.about.description", NavKey: "nav.about", ChangeFreq: "yearly", Priority: 0.8},
	{Path: "/erfarenheter", Name: "experience", TitleKey: "page.experience.title", DescriptionKey: "page.experience.description", NavKey: "nav.experience", ChangeFreq: "monthly", Priority: 0.8},
	{Path: "/projekt", Name: "projects", TitleKey: "page.projects.title", DescriptionKey: "page.projects.description", NavKey: "nav.projects", ChangeFreq: "monthly", Priority: 0.9},
	{Path: "/lia", Name: "internship", TitleKey: "page.internship.title", DescriptionKey: "page.internship.description", NavKey: "nav.internship", ChangeFreq: "monthly", Priority: 0.7},
	{Path: ContactPath, Name: "contact", TitleKey: "page.contact.title", DescriptionKey: "page.contact.description", NavKey: "nav.contact", ChangeFreq: "yearly", Priority: 0.6, External: true},
}

// Routes returns a copy of the route table in navigation order.
func Routes() []Page {
	out := make([]Page, len(routes))
	copy(out, routes)
	return out
}

// Lookup returns the page registered for path.
func Lookup(path string) (Page, bool) {
	for _, p := range routes {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}
