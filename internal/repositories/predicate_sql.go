package repositories

import (
	"fmt"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"gorm.io/gorm"
	"strings"
)

// Every SQL fragment below is a constant. Values only ever reach the database as bound
// parameters.
const (
	activeCondition  = "jobs.is_active = ?"
	textSearchClause = `(LOWER(jobs.title) LIKE ? ESCAPE '\'` +
		` OR LOWER(jobs.company_name) LIKE ? ESCAPE '\'` +
		` OR LOWER(jobs.description_snippet) LIKE ? ESCAPE '\'` +
		` OR EXISTS (SELECT 1 FROM job_skills WHERE job_skills.job_id = jobs.id AND job_skills.normalized LIKE ? ESCAPE '\'))`
	roleSignal     = "jobs.role_category = ?"
	locationSignal = "jobs.location = ?"
	skillsSignal   = "EXISTS (SELECT 1 FROM job_skills WHERE job_skills.job_id = jobs.id AND job_skills.normalized IN ?)"
	matchNothing   = "1 = 0"
)

var columns = map[discovery.Field]string{
	discovery.FieldID:           "jobs.id",
	discovery.FieldSlug:         "jobs.slug",
	discovery.FieldRoleCategory: "jobs.role_category",
	discovery.FieldCity:         "jobs.city",
	discovery.FieldIndustry:     "jobs.industry",
	discovery.FieldLocation:     "jobs.location",
	discovery.FieldCompanyName:  "jobs.company_name",
}

func column(field discovery.Field) (string, error) {
	name, ok := columns[field]
	if !ok {
		return "", fmt.Errorf("unsupported field: %v", field)
	}
	return name, nil
}

// applyPredicate adds one WHERE condition per clause.
func applyPredicate(tx *gorm.DB, predicate discovery.Predicate) (*gorm.DB, error) {
	for _, clause := range predicate.Clauses() {
		switch c := clause.(type) {
		case discovery.ActiveClause:
			tx = tx.Where(activeCondition, true)
		case discovery.EqualsClause:
			name, err := column(c.Field)
			if err != nil {
				return nil, err
			}
			tx = tx.Where(name+" = ?", c.Value)
		case discovery.NotEqualsClause:
			name, err := column(c.Field)
			if err != nil {
				return nil, err
			}
			tx = tx.Where(name+" <> ?", c.Value)
		case discovery.TextSearchClause:
			pattern := containsPattern(c.Term)
			tx = tx.Where(textSearchClause, pattern, pattern, pattern, pattern)
		case discovery.SharesSignalClause:
			tx = applySignal(tx, c)
		default:
			return nil, fmt.Errorf("unsupported clause %T", clause)
		}
	}
	return tx, nil
}

func applySignal(tx *gorm.DB, signal discovery.SharesSignalClause) *gorm.DB {
	var conditions []string
	var args []any

	if signal.RoleCategory != "" {
		conditions = append(conditions, roleSignal)
		args = append(args, string(signal.RoleCategory))
	}
	if signal.Location != "" {
		conditions = append(conditions, locationSignal)
		args = append(args, signal.Location)
	}
	if len(signal.Skills) > 0 {
		conditions = append(conditions, skillsSignal)
		args = append(args, signal.Skills)
	}

	if len(conditions) == 0 {
		return tx.Where(matchNothing)
	}
	return tx.Where("("+strings.Join(conditions, " OR ")+")", args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere in a value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
