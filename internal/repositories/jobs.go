package repositories

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Jobs is the read-only gorm implementation of discovery.Store.
type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) query(ctx context.Context, predicate discovery.Predicate) (*gorm.DB, error) {
	return applyPredicate(repo.db.WithContext(ctx).Model(&models.JobPosting{}), predicate)
}

func (repo *Jobs) Count(ctx context.Context, predicate discovery.Predicate) (int64, error) {
	tx, err := repo.query(ctx, predicate)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = tx.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count jobs")
	}
	return count, nil
}

func (repo *Jobs) Find(ctx context.Context, predicate discovery.Predicate, window discovery.Window) ([]models.JobPosting, error) {
	tx, err := repo.query(ctx, predicate)
	if err != nil {
		return nil, err
	}

	var jobs []models.JobPosting
	if err = withSkills(tx).
		Order("jobs.posted_date IS NULL").
		Order("jobs.posted_date DESC").
		Order("jobs.id DESC").
		Offset(window.Offset).
		Limit(window.Limit).
		Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "find jobs")
	}
	return jobs, nil
}

func (repo *Jobs) CountDistinct(ctx context.Context, predicate discovery.Predicate, field discovery.Field) (int64, error) {
	name, err := column(field)
	if err != nil {
		return 0, err
	}
	tx, err := repo.query(ctx, predicate)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = tx.Distinct(name).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "count distinct %s", field)
	}
	return count, nil
}

func (repo *Jobs) CountBy(ctx context.Context, predicate discovery.Predicate, field discovery.Field) (map[string]int64, error) {
	name, err := column(field)
	if err != nil {
		return nil, err
	}
	tx, err := repo.query(ctx, predicate)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Value string
		Total int64
	}
	if err = tx.Select(name + " AS value, COUNT(*) AS total").Group(name).Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "count jobs by %s", field)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Total
	}
	return counts, nil
}

// GetActiveBySlug returns nil without error when no active posting has the slug.
func (repo *Jobs) GetActiveBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := withSkills(repo.db.WithContext(ctx)).
		Where("slug = ? AND is_active = ?", slug, true).
		Order("posted_date IS NULL").
		Order("posted_date DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get job by slug")
	}
	return &job, nil
}

func withSkills(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordinal")
	})
}
