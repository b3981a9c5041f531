package discovery

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/samber/lo"
	"sort"
	"strings"
)

const DefaultCandidatePool = 500

// Weights configure the similarity score. Skill is applied per shared skill, Role and
// Location are flat bonuses.
type Weights struct {
	Skill    float64
	Role     float64
	Location float64
}

var DefaultWeights = Weights{Skill: 10, Role: 3, Location: 2}

// Reference describes the posting that similar jobs are searched for. An empty JobID
// means the reference is given by attributes only.
type Reference struct {
	JobID        string
	RoleCategory models.RoleCategory
	Skills       []string
	Location     string
}

func (r Reference) normalize() Reference {
	r.JobID = strings.TrimSpace(r.JobID)
	r.RoleCategory, _ = models.ParseRoleCategory(string(r.RoleCategory))
	r.Location = strings.TrimSpace(r.Location)
	r.Skills = models.NormalizeSkills(r.Skills)
	return r
}

func (r Reference) signal() SharesSignalClause {
	return SharesSignalClause{RoleCategory: r.RoleCategory, Location: r.Location, Skills: r.Skills}
}

type ScoredJob struct {
	Job          models.JobPosting
	Score        float64
	SharedSkills int
}

type Ranker struct {
	store         Store
	weights       Weights
	candidatePool int
}

func NewRanker(store Store, weights Weights, candidatePool int) *Ranker {
	if candidatePool <= 0 {
		candidatePool = DefaultCandidatePool
	}
	return &Ranker{store: store, weights: weights, candidatePool: candidatePool}
}

// Score rates a candidate against a normalized reference. Candidates sharing nothing
// score zero.
func (r *Ranker) Score(reference Reference, candidate *models.JobPosting) (float64, int) {
	shared := len(lo.Intersect(reference.Skills, candidate.NormalizedSkills()))

	score := r.weights.Skill * float64(shared)
	if reference.RoleCategory != "" && candidate.RoleCategory == reference.RoleCategory {
		score += r.weights.Role
	}
	if reference.Location != "" && candidate.Location == reference.Location {
		score += r.weights.Location
	}
	return score, shared
}

// Rank returns up to limit active postings other than the reference, best first. Ties
// are broken by recency then id. Postings scoring zero are never returned, so the result
// may be shorter than limit or empty.
func (r *Ranker) Rank(ctx context.Context, reference Reference, limit int) ([]ScoredJob, error) {
	reference = reference.normalize()
	if limit <= 0 || reference.signal().IsEmpty() {
		return []ScoredJob{}, nil
	}

	seen := map[string]bool{reference.JobID: true}
	scored := make([]ScoredJob, 0, limit)
	for _, predicate := range r.candidatePools(reference) {
		candidates, err := r.store.Find(ctx, predicate, Window{Limit: r.candidatePool})
		if err != nil {
			return nil, storeError("find similar candidates", err)
		}

		for i := range candidates {
			candidate := &candidates[i]
			if seen[candidate.ID] || !candidate.IsActive {
				continue
			}
			seen[candidate.ID] = true

			score, shared := r.Score(reference, candidate)
			if score <= 0 {
				continue
			}
			scored = append(scored, ScoredJob{Job: *candidate, Score: score, SharedSkills: shared})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return models.CompareRecency(&scored[i].Job, &scored[j].Job) < 0
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// candidatePools splits the candidates by the signals they share so that a flood of
// recent postings matching a weak signal cannot push a stronger match out of the pool.
// Skill-sharing postings come first, then role and location together, then each alone.
func (r *Ranker) candidatePools(reference Reference) []Predicate {
	var excluded []Clause
	if reference.JobID != "" {
		excluded = append(excluded, NotEqualsClause{Field: FieldID, Value: reference.JobID})
	}
	pool := func(clauses ...Clause) Predicate {
		return NewPredicate(append(clauses, excluded...)...)
	}

	role := EqualsClause{Field: FieldRoleCategory, Value: string(reference.RoleCategory)}
	location := EqualsClause{Field: FieldLocation, Value: reference.Location}

	var pools []Predicate
	if len(reference.Skills) > 0 {
		pools = append(pools, pool(SharesSignalClause{Skills: reference.Skills}))
	}
	if reference.RoleCategory != "" && reference.Location != "" {
		pools = append(pools, pool(role, location))
	}
	if reference.RoleCategory != "" {
		pools = append(pools, pool(role))
	}
	if reference.Location != "" {
		pools = append(pools, pool(location))
	}
	return pools
}
