package ports

import "context"

type SummaryClientPort interface {
	// Fetch GETs path relative to the API base URL and returns the body of a
	// 2xx response. Any other outcome is an error wrapping
	// domain.ErrFetchFailure.
	Fetch(ctx context.Context, path string) ([]byte, error)
}
