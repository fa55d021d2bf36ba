package domain

import "context"

// BloomRepository answers "might this thread exist" without touching the database.
type BloomRepository interface {
	// Add puts the id into the filter.
	Add(ctx context.Context, id string) error

	// Exists reports false only when the id was never added.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd is used to seed the filter at startup.
	BulkAdd(ctx context.Context, ids []string) error
}
