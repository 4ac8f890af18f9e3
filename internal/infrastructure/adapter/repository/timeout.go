package repository

import "context"

// QueryBounder caps the lifetime of a single database operation. The
// database manager implements it with the configured query timeout.
type QueryBounder interface {
	WithTimeout(ctx context.Context) (context.Context, context.CancelFunc)
}
