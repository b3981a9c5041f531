package discovery

import (
	"context"
	"fmt"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/samber/lo"
	"sort"
	"sync"
	"time"
)

// memoryStore evaluates predicates in Go with the ordering contract of Store.
type memoryStore struct {
	mu    sync.Mutex
	jobs  []models.JobPosting
	err   error
	finds int
}

func newMemoryStore(jobs ...models.JobPosting) *memoryStore {
	return &memoryStore{jobs: jobs}
}

func (m *memoryStore) match(ctx context.Context, predicate Predicate) ([]models.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	matched := lo.Filter(m.jobs, func(job models.JobPosting, _ int) bool {
		return predicate.Matches(&job)
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return models.CompareRecency(&matched[i], &matched[j]) < 0
	})
	return matched, nil
}

func (m *memoryStore) Count(ctx context.Context, predicate Predicate) (int64, error) {
	matched, err := m.match(ctx, predicate)
	return int64(len(matched)), err
}

func (m *memoryStore) Find(ctx context.Context, predicate Predicate, window Window) ([]models.JobPosting, error) {
	m.mu.Lock()
	m.finds++
	m.mu.Unlock()

	matched, err := m.match(ctx, predicate)
	if err != nil {
		return nil, err
	}
	if window.Offset >= len(matched) {
		return []models.JobPosting{}, nil
	}
	end := min(window.Offset+window.Limit, len(matched))
	return matched[window.Offset:end], nil
}

func (m *memoryStore) CountDistinct(ctx context.Context, predicate Predicate, field Field) (int64, error) {
	matched, err := m.match(ctx, predicate)
	if err != nil {
		return 0, err
	}
	values := lo.Uniq(lo.Map(matched, func(job models.JobPosting, _ int) string {
		return field.valueOf(&job)
	}))
	return int64(len(values)), nil
}

func (m *memoryStore) CountBy(ctx context.Context, predicate Predicate, field Field) (map[string]int64, error) {
	matched, err := m.match(ctx, predicate)
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, job := range matched {
		counts[field.valueOf(&job)]++
	}
	return counts, nil
}

var baseDate = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func daysAgo(days int) *time.Time {
	date := baseDate.AddDate(0, 0, -days)
	return &date
}

type postingOption func(*models.JobPosting)

func posting(id string, options ...postingOption) models.JobPosting {
	job := models.JobPosting{
		ID:           id,
		Slug:         "job-" + id,
		Title:        "Fractional role " + id,
		CompanyName:  "Company " + id,
		Location:     "Manchester, UK",
		City:         models.CityManchester,
		RoleCategory: models.RoleOther,
		Industry:     models.IndustryOther,
		IsActive:     true,
	}
	for _, option := range options {
		option(&job)
	}
	return job
}

func withRole(role models.RoleCategory) postingOption {
	return func(job *models.JobPosting) { job.RoleCategory = role }
}

func withCity(city models.City) postingOption {
	return func(job *models.JobPosting) { job.City = city }
}

func withIndustry(industry models.Industry) postingOption {
	return func(job *models.JobPosting) { job.Industry = industry }
}

func withLocation(location string) postingOption {
	return func(job *models.JobPosting) { job.Location = location }
}

func withSkills(skills ...string) postingOption {
	return func(job *models.JobPosting) { job.Skills = models.NewJobSkills(job.ID, skills) }
}

func withPosted(date *time.Time) postingOption {
	return func(job *models.JobPosting) { job.PostedDate = date }
}

func withTitle(title string) postingOption {
	return func(job *models.JobPosting) { job.Title = title }
}

func withDescription(description string) postingOption {
	return func(job *models.JobPosting) { job.DescriptionSnippet = description }
}

func inactive() postingOption {
	return func(job *models.JobPosting) { job.IsActive = false }
}

func ids(jobs []models.JobPosting) []string {
	return lo.Map(jobs, func(job models.JobPosting, _ int) string { return job.ID })
}

func numbered(prefix string, n int) []string {
	return lo.Times(n, func(i int) string { return fmt.Sprintf("%s%02d", prefix, i) })
}
