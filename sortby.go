package pgstac

// Sort directions
const (
	// SortAsc sorts ascending
	SortAsc = "asc"
	// SortDesc sorts descending
	SortDesc = "desc"
)

// SortBy is a single sort criterion. Field names are not validated
// client-side; an invalid field is a server-side error.
type SortBy struct {
	// Field is the item field to sort by, e.g. "id" or "properties.datetime"
	Field string `json:"field"`

	// Direction is SortAsc or SortDesc
	Direction string `json:"direction"`
}

// Asc sorts ascending by field.
func Asc(field string) SortBy {
	return SortBy{Field: field, Direction: SortAsc}
}

// Desc sorts descending by field.
func Desc(field string) SortBy {
	return SortBy{Field: field, Direction: SortDesc}
}
