package discovery

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
)

// Window is a bounded slice of an ordered result set.
type Window struct {
	Offset int
	Limit  int
}

// Store is the read-only data access the engine depends on. Find must order rows by
// postedDate descending with nulls last, then id descending (models.CompareRecency),
// and return postings with their skills loaded.
type Store interface {
	Count(ctx context.Context, predicate Predicate) (int64, error)
	Find(ctx context.Context, predicate Predicate, window Window) ([]models.JobPosting, error)
	CountDistinct(ctx context.Context, predicate Predicate, field Field) (int64, error)
	CountBy(ctx context.Context, predicate Predicate, field Field) (map[string]int64, error)
}
