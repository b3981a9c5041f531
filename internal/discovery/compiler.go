package discovery

import (
	"github.com/maxaizer/job-discovery/internal/domain/models"
)

// Compile turns criteria into a predicate. The active clause is always present; every
// other clause appears only when the matching criteria field is set.
func Compile(criteria models.Criteria) Predicate {
	criteria = criteria.Normalize()

	var clauses []Clause
	if criteria.RoleCategory != "" {
		clauses = append(clauses, EqualsClause{Field: FieldRoleCategory, Value: string(criteria.RoleCategory)})
	}
	if criteria.City != "" {
		clauses = append(clauses, EqualsClause{Field: FieldCity, Value: string(criteria.City)})
	}
	if criteria.Industry != "" {
		clauses = append(clauses, EqualsClause{Field: FieldIndustry, Value: string(criteria.Industry)})
	}
	if criteria.SearchQuery != "" {
		clauses = append(clauses, NewTextSearchClause(criteria.SearchQuery))
	}

	return NewPredicate(clauses...)
}
