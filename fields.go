package pgstac

// Fields selects which item properties appear in search results. Include
// and exclude entries are path-like selectors, e.g. "properties.eo:cloud_cover".
// Empty lists are omitted from the encoded request.
type Fields struct {
	// Include lists fields to include in results
	Include []string `json:"include,omitempty"`

	// Exclude lists fields to exclude from results
	Exclude []string `json:"exclude,omitempty"`
}
