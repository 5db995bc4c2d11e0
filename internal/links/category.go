package links

import "strings"

// AllCategory is the synthetic category that selects every link.
const AllCategory = "All"

// Categories returns "All" followed by the distinct non-empty categories in
// order of first appearance.
func Categories(links []Link) []string {
	cats := []string{AllCategory}
	seen := map[string]bool{AllCategory: true}
	for _, l := range links {
		c := strings.TrimSpace(l.Category)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cats = append(cats, c)
	}
	return cats
}

// Filter returns the links in category. "All" and "" select everything.
func Filter(links []Link, category string) []Link {
	category = strings.TrimSpace(category)
	if category == "" || category == AllCategory {
		return links
	}
	var out []Link
	for _, l := range links {
		if strings.TrimSpace(l.Category) == category {
			out = append(out, l)
		}
	}
	return out
}
