package tests

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/maxaizer/job-discovery/internal/repositories"
	"github.com/pkg/errors"
	"time"
)

// flakyStore delegates to the real repository but fails counting.
type flakyStore struct {
	*repositories.Jobs
}

func (s *flakyStore) Count(context.Context, discovery.Predicate) (int64, error) {
	return 0, errors.New("connection reset by peer")
}

var baseDate = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func daysAgo(days int) *time.Time {
	d := baseDate.AddDate(0, 0, -days)
	return &d
}

type jobBuilder struct {
	job    models.JobPosting
	skills []string
}

type option func(*jobBuilder)

func posting(id string, options ...option) models.JobPosting {
	b := &jobBuilder{job: models.JobPosting{
		ID:           id,
		Slug:         "fractional-" + id,
		Title:        "Fractional lead " + id,
		CompanyName:  "Company " + id,
		Location:     "Manchester",
		City:         models.CityManchester,
		RoleCategory: models.RoleOther,
		Industry:     models.IndustryOther,
		Compensation: "£600-£900/day",
		IsActive:     true,
	}}
	for _, apply := range options {
		apply(b)
	}
	b.job.Skills = models.NewJobSkills(id, b.skills)
	return b.job
}

func withRole(role models.RoleCategory) option {
	return func(b *jobBuilder) { b.job.RoleCategory = role }
}

func withCity(city models.City, location string) option {
	return func(b *jobBuilder) {
		b.job.City = city
		b.job.Location = location
	}
}

func withSkills(skills ...string) option {
	return func(b *jobBuilder) { b.skills = skills }
}

func withDescription(description string) option {
	return func(b *jobBuilder) { b.job.DescriptionSnippet = description }
}

func withPosted(date *time.Time) option {
	return func(b *jobBuilder) { b.job.PostedDate = date }
}

func inactive() option {
	return func(b *jobBuilder) { b.job.IsActive = false }
}
