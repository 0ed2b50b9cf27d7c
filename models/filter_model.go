package models

// PostFilters describes the current feed query.
type PostFilters struct {
	Type      string   `json:"type"`
	Interests []string `json:"interests"`
	SortBy    string   `json:"sortBy"`
}

// PostFilters.Type values.
const (
	FilterAll          = "all"
	FilterDoctors      = "doctors"
	FilterInstitutions = "institutions"
	FilterMyTopics     = "my-topics"
)

// Sort order values, shared by post and article filters.
const (
	SortRecent   = "recent"
	SortPopular  = "popular"
	SortTrending = "trending"
)

// DefaultPostFilters is the feed query before the user touches any control.
func DefaultPostFilters() PostFilters {
	return PostFilters{Type: FilterAll, Interests: []string{}, SortBy: SortRecent}
}

// ArticleFilters describes the current library query.
type ArticleFilters struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	SortBy   string   `json:"sortBy"`
	Search   string   `json:"search"`
}
