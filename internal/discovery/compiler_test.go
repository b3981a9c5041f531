package discovery

import (
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_Compile_EmptyCriteriaMatchesAllActive(t *testing.T) {
	predicate := Compile(models.Criteria{Page: 1})

	assert.Equal(t, []Clause{ActiveClause{}}, predicate.Clauses())

	active := posting("1")
	hidden := posting("2", inactive())
	assert.True(t, predicate.Matches(&active))
	assert.False(t, predicate.Matches(&hidden))
}

func Test_Compile_EveryFieldAddsOneClause(t *testing.T) {
	predicate := Compile(models.Criteria{
		RoleCategory: models.RoleFinance,
		City:         models.CityLeeds,
		Industry:     models.IndustrySaaS,
		SearchQuery:  "  CFO ",
		Page:         2,
	})

	assert.Equal(t, []Clause{
		ActiveClause{},
		EqualsClause{Field: FieldRoleCategory, Value: "Finance"},
		EqualsClause{Field: FieldCity, Value: "Leeds"},
		EqualsClause{Field: FieldIndustry, Value: "SaaS"},
		TextSearchClause{Term: "cfo"},
	}, predicate.Clauses())
}

func Test_Compile_BlankQueryOmitsSearchClause(t *testing.T) {
	predicate := Compile(models.Criteria{SearchQuery: " \n\t "})
	assert.Len(t, predicate.Clauses(), 1)
}

func Test_Compile_UnknownEnumValuesAreIgnored(t *testing.T) {
	predicate := Compile(models.Criteria{RoleCategory: "CEO", City: "Atlantis", Industry: ""})
	assert.Len(t, predicate.Clauses(), 1)
}

func Test_Compile_FilterCompositionIsIntersection(t *testing.T) {
	roles := []models.RoleCategory{models.RoleMarketing, models.RoleFinance}
	cities := []models.City{models.CityLondon, models.CityLeeds}
	industries := []models.Industry{models.IndustrySaaS, models.IndustryRetail}

	var corpus []models.JobPosting
	n := 0
	for _, role := range roles {
		for _, city := range cities {
			for _, industry := range industries {
				for _, active := range []bool{true, false} {
					n++
					job := posting(string(rune('a'+n)), withRole(role), withCity(city), withIndustry(industry))
					job.IsActive = active
					corpus = append(corpus, job)
				}
			}
		}
	}

	roleFilters := append([]models.RoleCategory{""}, roles...)
	cityFilters := append([]models.City{""}, cities...)
	industryFilters := append([]models.Industry{""}, industries...)

	for _, role := range roleFilters {
		for _, city := range cityFilters {
			for _, industry := range industryFilters {
				predicate := Compile(models.Criteria{RoleCategory: role, City: city, Industry: industry})
				for i := range corpus {
					job := &corpus[i]
					expected := job.IsActive &&
						(role == "" || job.RoleCategory == role) &&
						(city == "" || job.City == city) &&
						(industry == "" || job.Industry == industry)
					assert.Equal(t, expected, predicate.Matches(job),
						"role=%q city=%q industry=%q job=%+v", role, city, industry, job)
				}
			}
		}
	}
}

func Test_TextSearchClause_MatchesAnyTextField(t *testing.T) {
	clause := NewTextSearchClause("HubSpot")

	byTitle := posting("1", withTitle("HubSpot Admin"))
	byCompany := posting("2")
	byCompany.CompanyName = "hubspot partners ltd"
	byDescription := posting("3", withDescription("Own our HUBSPOT CRM"))
	bySkill := posting("4", withSkills("SEO", "HubSpot Marketing Hub"))
	none := posting("5", withSkills("SEO"))

	assert.True(t, clause.Matches(&byTitle))
	assert.True(t, clause.Matches(&byCompany))
	assert.True(t, clause.Matches(&byDescription))
	assert.True(t, clause.Matches(&bySkill))
	assert.False(t, clause.Matches(&none))
}

func Test_TextSearchClause_InjectionIsLiteral(t *testing.T) {
	for _, query := range []string{"' OR '1'='1", "x' --", "%", "_", "*/ OR 1=1 /*"} {
		predicate := Compile(models.Criteria{SearchQuery: query})

		plain := posting("1", withTitle("Fractional CMO"))
		assert.False(t, predicate.Matches(&plain), query)

		literal := posting("2", withTitle("Role "+query+" here"))
		assert.True(t, predicate.Matches(&literal), query)
	}
}

func Test_Predicate_WithKeepsSingleActiveClause(t *testing.T) {
	predicate := NewPredicate(ActiveClause{}).With(ActiveClause{}, NotEqualsClause{Field: FieldID, Value: "1"})
	assert.Equal(t, []Clause{ActiveClause{}, NotEqualsClause{Field: FieldID, Value: "1"}}, predicate.Clauses())
}

func Test_SharesSignalClause(t *testing.T) {
	clause := SharesSignalClause{RoleCategory: models.RoleMarketing, Location: "London", Skills: []string{"seo"}}

	role := posting("1", withRole(models.RoleMarketing))
	location := posting("2", withLocation("London"))
	skill := posting("3", withSkills("SEO"))
	nothing := posting("4", withLocation("London, UK"), withSkills("Sales"))

	assert.True(t, clause.Matches(&role))
	assert.True(t, clause.Matches(&location))
	assert.True(t, clause.Matches(&skill))
	assert.False(t, clause.Matches(&nothing))
	assert.True(t, SharesSignalClause{}.IsEmpty())
}
