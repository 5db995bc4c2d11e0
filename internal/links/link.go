package links

import "strings"

// Link is a stored bookmark shown as a button on the grid.
type Link struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"link"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// NewLink holds the fields collected by the link editor.
type NewLink struct {
	Label    string `json:"label" form:"label"`
	URL      string `json:"link" form:"link"`
	Icon     string `json:"icon" form:"icon"`
	Category string `json:"category" form:"category"`
}

// Normalize trims the fields, adds a scheme to the URL and sanitizes the icon.
func (n NewLink) Normalize() NewLink {
	return NewLink{
		Label:    strings.TrimSpace(n.Label),
		URL:      NormalizeURL(n.URL),
		Icon:     SanitizeIcon(n.Icon),
		Category: strings.TrimSpace(n.Category),
	}
}

// Missing returns the names of required fields that are empty.
func (n NewLink) Missing() []string {
	var missing []string
	if strings.TrimSpace(n.Label) == "" {
		missing = append(missing, "label")
	}
	if strings.TrimSpace(n.URL) == "" {
		missing = append(missing, "link")
	}
	return missing
}
