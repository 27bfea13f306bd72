// Package templates renders the site's pages as templ components.
package templates

const displayDate = "January 02, 2006"

// Page carries the data every page layout needs.
type Page struct {
	LightTheme string
	DarkTheme  string
	// GirlfriendName is empty until a response was submitted in this session.
	GirlfriendName string
	SaidYes        bool
}

// Greeting returns the personalised greeting, or a generic one for new visitors.
func (p Page) Greeting() string {
	if p.GirlfriendName == "" {
		return "Hey Beautiful"
	}
	if p.SaidYes {
		return "My Valentine, " + p.GirlfriendName
	}
	return "Hey " + p.GirlfriendName
}
