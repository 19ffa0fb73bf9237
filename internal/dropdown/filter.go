package dropdown

import "strings"

// Filter returns the options whose label contains term, ignoring case, in catalog order.
// An empty term returns the catalog itself.
func Filter(catalog Catalog, term string) Catalog {
	if term == "" {
		return catalog
	}

	needle := strings.ToLower(term)
	matches := make(Catalog, 0, len(catalog))
	for _, opt := range catalog {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			matches = append(matches, opt)
		}
	}
	return matches
}
