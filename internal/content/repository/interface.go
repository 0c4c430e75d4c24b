package repository

import (
	"context"

	"school-assistant/internal/model"
)

// Reader is read-only access to the crawled web-content cache.
type Reader interface {
	// Search returns records of the given topics ranked by keyword overlap.
	Search(ctx context.Context, opt SearchOptions) ([]model.ContentRecord, error)
	// ListVideos returns video links ranked by keyword overlap with their titles.
	ListVideos(ctx context.Context, opt ListVideosOptions) ([]model.Video, error)
}
