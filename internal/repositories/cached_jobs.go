package repositories

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"time"
)

type slugRepository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.JobPosting, error)
}

// CachedJobs memoizes detail-page lookups. A deactivated posting may still be served
// until its entry expires; misses are not cached.
type CachedJobs struct {
	repo  slugRepository
	cache *gocache.Cache
}

func NewCachedJobs(repo slugRepository, ttl, cleanupInterval time.Duration) *CachedJobs {
	return &CachedJobs{repo: repo, cache: gocache.New(ttl, cleanupInterval)}
}

func (c *CachedJobs) GetActiveBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	if value, found := c.cache.Get(slug); found {
		job := value.(models.JobPosting)
		job.Skills = append([]models.JobSkill(nil), job.Skills...)
		return &job, nil
	}

	job, err := c.repo.GetActiveBySlug(ctx, slug)
	if err != nil || job == nil {
		return job, err
	}

	stored := *job
	stored.Skills = append([]models.JobSkill(nil), job.Skills...)
	c.cache.SetDefault(slug, stored)
	return job, nil
}

func (c *CachedJobs) Flush() {
	c.cache.Flush()
}
