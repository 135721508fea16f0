package pagination

// PageResult is one page of a paginated listing.
type PageResult[T any] struct {
	// Results is the list of results for this page
	Results []T

	// HasMore indicates whether there may be more results to fetch
	HasMore bool

	// Cursor is the opaque cursor to use to fetch the next page of results
	Cursor string

	// Error is set if there was an error fetching the results
	Error error

	// Total is the number of matching rows ignoring pagination, if it was requested
	Total *int64
}
