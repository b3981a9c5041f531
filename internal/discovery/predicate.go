package discovery

import (
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/samber/lo"
	"strings"
)

// Field names a filterable JobPosting attribute. Stores map each Field to a fixed column;
// there is no way to reference a column by caller-supplied name.
type Field int

const (
	FieldID Field = iota
	FieldSlug
	FieldRoleCategory
	FieldCity
	FieldIndustry
	FieldLocation
	FieldCompanyName
)

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldSlug:
		return "slug"
	case FieldRoleCategory:
		return "role_category"
	case FieldCity:
		return "city"
	case FieldIndustry:
		return "industry"
	case FieldLocation:
		return "location"
	case FieldCompanyName:
		return "company_name"
	default:
		return "unknown"
	}
}

func (f Field) valueOf(job *models.JobPosting) string {
	switch f {
	case FieldID:
		return job.ID
	case FieldSlug:
		return job.Slug
	case FieldRoleCategory:
		return string(job.RoleCategory)
	case FieldCity:
		return string(job.City)
	case FieldIndustry:
		return string(job.Industry)
	case FieldLocation:
		return job.Location
	case FieldCompanyName:
		return job.CompanyName
	default:
		return ""
	}
}

// Clause is one conjunct of a Predicate. The set of clause types is closed; stores
// translate each of them into query syntax with values bound as parameters.
type Clause interface {
	Matches(job *models.JobPosting) bool
	isClause()
}

// ActiveClause matches postings with isActive = true.
type ActiveClause struct{}

// EqualsClause matches postings whose Field equals Value exactly.
type EqualsClause struct {
	Field Field
	Value string
}

// NotEqualsClause matches postings whose Field differs from Value.
type NotEqualsClause struct {
	Field Field
	Value string
}

// TextSearchClause matches when Term is a case-insensitive substring of the title,
// company name, description snippet or any required skill. Term is stored lowercased.
type TextSearchClause struct {
	Term string
}

// SharesSignalClause matches postings having the role category, the location or at
// least one of the normalized skills. Empty members contribute nothing.
type SharesSignalClause struct {
	RoleCategory models.RoleCategory
	Location     string
	Skills       []string
}

func (ActiveClause) isClause()       {}
func (EqualsClause) isClause()       {}
func (NotEqualsClause) isClause()    {}
func (TextSearchClause) isClause()   {}
func (SharesSignalClause) isClause() {}

func (ActiveClause) Matches(job *models.JobPosting) bool {
	return job.IsActive
}

func (c EqualsClause) Matches(job *models.JobPosting) bool {
	return c.Field.valueOf(job) == c.Value
}

func (c NotEqualsClause) Matches(job *models.JobPosting) bool {
	return c.Field.valueOf(job) != c.Value
}

func NewTextSearchClause(query string) TextSearchClause {
	return TextSearchClause{Term: strings.ToLower(query)}
}

func (c TextSearchClause) Matches(job *models.JobPosting) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), c.Term)
	}
	if contains(job.Title) || contains(job.CompanyName) || contains(job.DescriptionSnippet) {
		return true
	}
	return lo.SomeBy(job.Skills, func(skill models.JobSkill) bool {
		return strings.Contains(skill.Normalized, c.Term)
	})
}

func (c SharesSignalClause) IsEmpty() bool {
	return c.RoleCategory == "" && c.Location == "" && len(c.Skills) == 0
}

func (c SharesSignalClause) Matches(job *models.JobPosting) bool {
	if c.RoleCategory != "" && job.RoleCategory == c.RoleCategory {
		return true
	}
	if c.Location != "" && job.Location == c.Location {
		return true
	}
	return lo.SomeBy(job.Skills, func(skill models.JobSkill) bool {
		return lo.Contains(c.Skills, skill.Normalized)
	})
}

// Predicate is the conjunction of its clauses. The zero value matches everything, so
// callers obtain predicates through Compile or NewPredicate, which always include
// ActiveClause.
type Predicate struct {
	clauses []Clause
}

func NewPredicate(clauses ...Clause) Predicate {
	all := make([]Clause, 0, len(clauses)+1)
	all = append(all, ActiveClause{})
	for _, clause := range clauses {
		if _, ok := clause.(ActiveClause); ok {
			continue
		}
		all = append(all, clause)
	}
	return Predicate{clauses: all}
}

// Clauses returns a copy of the predicate's clauses.
func (p Predicate) Clauses() []Clause {
	clauses := make([]Clause, len(p.clauses))
	copy(clauses, p.clauses)
	return clauses
}

func (p Predicate) Matches(job *models.JobPosting) bool {
	for _, clause := range p.clauses {
		if !clause.Matches(job) {
			return false
		}
	}
	return true
}

func (p Predicate) With(clauses ...Clause) Predicate {
	return NewPredicate(append(p.Clauses(), clauses...)...)
}
