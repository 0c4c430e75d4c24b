package repository

// SearchOptions selects cached pages. Keywords only affect ordering.
type SearchOptions struct {
	Topics   []string
	Keywords []string
	Limit    int
}

// ListVideosOptions selects cached video links.
type ListVideosOptions struct {
	Keywords []string
	Limit    int
}
