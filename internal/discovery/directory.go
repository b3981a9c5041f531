package discovery

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"strings"
)

// SlugRepository looks up a single active posting for the detail page.
type SlugRepository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.JobPosting, error)
}

// Directory serves the job detail page and corpus statistics.
type Directory struct {
	store Store
	slugs SlugRepository
}

func NewDirectory(store Store, slugs SlugRepository) *Directory {
	return &Directory{store: store, slugs: slugs}
}

// GetBySlug returns the active posting with the given slug or ErrNotFound.
func (d *Directory) GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}

	job, err := d.slugs.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, storeError("get job by slug", err)
	}
	if job == nil || !job.IsActive {
		return nil, ErrNotFound
	}
	return job, nil
}

func (d *Directory) Stats(ctx context.Context) (models.Stats, error) {
	active := NewPredicate()

	total, err := d.store.Count(ctx, active)
	if err != nil {
		return models.Stats{}, storeError("count active jobs", err)
	}

	companies, err := d.store.CountDistinct(ctx, active, FieldCompanyName)
	if err != nil {
		return models.Stats{}, storeError("count companies", err)
	}

	byRole, err := d.store.CountBy(ctx, active, FieldRoleCategory)
	if err != nil {
		return models.Stats{}, storeError("count jobs by role", err)
	}

	stats := models.Stats{ActiveJobs: total, Companies: companies, ByRole: map[models.RoleCategory]int64{}}
	for _, role := range models.RoleCategories {
		stats.ByRole[role] = byRole[string(role)]
	}
	return stats, nil
}
