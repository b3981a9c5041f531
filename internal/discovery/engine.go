package discovery

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-discovery/internal/domain/events"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/maxaizer/job-discovery/internal/logger"
	"github.com/maxaizer/job-discovery/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"time"
)

const (
	DefaultSimilarLimit     = 4
	DefaultSimilarMaxLimit  = 20
	DefaultSimilarMaxSkills = 6
)

type Settings struct {
	PageSize            int
	Weights             Weights
	CandidatePool       int
	SimilarDefaultLimit int
	SimilarMaxLimit     int
	SimilarMaxSkills    int
}

func DefaultSettings() Settings {
	return Settings{
		PageSize:            DefaultPageSize,
		Weights:             DefaultWeights,
		CandidatePool:       DefaultCandidatePool,
		SimilarDefaultLimit: DefaultSimilarLimit,
		SimilarMaxLimit:     DefaultSimilarMaxLimit,
		SimilarMaxSkills:    DefaultSimilarMaxSkills,
	}
}

// Engine is the discovery facade consumed by the rendering layer. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	store     Store
	paginator *Paginator
	ranker    *Ranker
	settings  Settings
	bus       EventBus.Bus
}

func NewEngine(store Store, settings Settings) *Engine {
	if settings.SimilarDefaultLimit <= 0 {
		settings.SimilarDefaultLimit = DefaultSimilarLimit
	}
	if settings.SimilarMaxLimit <= 0 {
		settings.SimilarMaxLimit = DefaultSimilarMaxLimit
	}
	if settings.SimilarMaxSkills <= 0 {
		settings.SimilarMaxSkills = DefaultSimilarMaxSkills
	}
	if settings.Weights == (Weights{}) {
		settings.Weights = DefaultWeights
	}
	return &Engine{
		store:     store,
		paginator: NewPaginator(store, settings.PageSize),
		ranker:    NewRanker(store, settings.Weights, settings.CandidatePool),
		settings:  settings,
	}
}

// WithEventBus makes the engine publish events.SearchExecuted after each successful search.
func (e *Engine) WithEventBus(bus EventBus.Bus) *Engine {
	e.bus = bus
	return e
}

func (e *Engine) PageSize() int {
	return e.paginator.PageSize()
}

// Search lists active postings matching the criteria, one page at a time.
func (e *Engine) Search(ctx context.Context, criteria models.Criteria) (models.DiscoveryResult, error) {
	start := time.Now()
	criteria = criteria.Normalize()

	result, err := e.paginator.Page(ctx, Compile(criteria), criteria.Page)
	elapsed := time.Since(start)
	observe("search", elapsed, err)
	if err != nil {
		logFailure("search", err)
		return models.DiscoveryResult{}, err
	}

	if e.bus != nil {
		e.bus.Publish(events.SearchExecutedTopic, events.SearchExecuted{
			Criteria:   criteria,
			TotalCount: result.TotalCount(),
			Returned:   result.Len(),
			Duration:   elapsed,
		})
	}

	log.Debugf("search %+v matched %d postings in %v", criteria, result.TotalCount(), elapsed)
	return result, nil
}

// FindSimilar returns up to limit active postings resembling the reference job. When
// jobID is set it must name an active posting, otherwise the result is empty; missing
// attributes are then taken from that posting.
func (e *Engine) FindSimilar(ctx context.Context, jobID string, roleCategory models.RoleCategory,
	skills []string, location string, limit int) ([]models.JobPosting, error) {

	start := time.Now()
	jobs, err := e.findSimilar(ctx, Reference{
		JobID:        jobID,
		RoleCategory: roleCategory,
		Skills:       skills,
		Location:     location,
	}, limit)
	observe("find_similar", time.Since(start), err)
	if err != nil {
		logFailure("find similar", err)
		return nil, err
	}
	return jobs, nil
}

func (e *Engine) findSimilar(ctx context.Context, reference Reference, limit int) ([]models.JobPosting, error) {
	if limit <= 0 {
		limit = e.settings.SimilarDefaultLimit
	}
	limit = min(limit, e.settings.SimilarMaxLimit)

	if reference.JobID != "" {
		found, err := e.store.Find(ctx, NewPredicate(EqualsClause{Field: FieldID, Value: reference.JobID}), Window{Limit: 1})
		if err != nil {
			return nil, storeError("find reference job", err)
		}
		if len(found) == 0 {
			return []models.JobPosting{}, nil
		}
		reference = fillReference(reference, found[0])
	}

	reference.Skills = models.NormalizeSkills(reference.Skills)
	if len(reference.Skills) > e.settings.SimilarMaxSkills {
		reference.Skills = reference.Skills[:e.settings.SimilarMaxSkills]
	}

	scored, err := e.ranker.Rank(ctx, reference, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(scored, func(item ScoredJob, _ int) models.JobPosting {
		return item.Job
	}), nil
}

func fillReference(reference Reference, job models.JobPosting) Reference {
	if reference.RoleCategory == "" {
		reference.RoleCategory = job.RoleCategory
	}
	if len(reference.Skills) == 0 {
		reference.Skills = job.SkillsRequired()
	}
	if reference.Location == "" {
		reference.Location = job.Location
	}
	return reference
}

func logFailure(operation string, err error) {
	if errors.Is(err, context.Canceled) {
		log.Infof("%s canceled: %v", operation, err)
		return
	}
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("%s failed: %v", operation, err)
}

func observe(operation string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if errors.Is(err, context.Canceled) {
			outcome = "canceled"
		}
	}
	metrics.RequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	metrics.RequestsCounter.WithLabelValues(operation, outcome).Inc()
}
