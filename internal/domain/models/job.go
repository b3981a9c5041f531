package models

import (
	"github.com/samber/lo"
	"sort"
	"strings"
	"time"
)

// JobPosting is the unit of discovery. Rows are written by the ingestion process only.
type JobPosting struct {
	ID                 string `gorm:"primaryKey"`
	Slug               string `gorm:"index"`
	Title              string
	CompanyName        string
	CompanyDomain      *string
	Location           string
	City               City `gorm:"index"`
	IsRemote           bool
	RoleCategory       RoleCategory `gorm:"index"`
	Industry           Industry     `gorm:"index"`
	Skills             []JobSkill   `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Compensation       string
	PostedDate         *time.Time
	IsActive           bool
	DescriptionSnippet string
}

func (JobPosting) TableName() string {
	return "jobs"
}

// JobSkill keeps one entry of a posting's skillsRequired. Name is the display form,
// Normalized the matching form.
type JobSkill struct {
	JobID      string `gorm:"primaryKey"`
	Ordinal    int    `gorm:"primaryKey"`
	Name       string
	Normalized string `gorm:"index"`
}

func NewJobSkills(jobID string, names []string) []JobSkill {
	skills := make([]JobSkill, 0, len(names))
	for i, name := range names {
		skills = append(skills, JobSkill{
			JobID:      jobID,
			Ordinal:    i,
			Name:       name,
			Normalized: NormalizeSkill(name),
		})
	}
	return skills
}

func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkills lowercases, trims and deduplicates skills, dropping empty entries.
func NormalizeSkills(skills []string) []string {
	normalized := lo.Map(skills, func(skill string, _ int) string {
		return NormalizeSkill(skill)
	})
	return lo.Uniq(lo.Compact(normalized))
}

// SkillsRequired returns the display names in their original order.
func (j JobPosting) SkillsRequired() []string {
	skills := make([]JobSkill, len(j.Skills))
	copy(skills, j.Skills)
	sort.SliceStable(skills, func(a, b int) bool {
		return skills[a].Ordinal < skills[b].Ordinal
	})
	return lo.Map(skills, func(skill JobSkill, _ int) string {
		return skill.Name
	})
}

func (j JobPosting) NormalizedSkills() []string {
	return NormalizeSkills(j.SkillsRequired())
}

// CompareRecency orders postings by PostedDate descending with undated postings last,
// then by ID descending. It returns a negative number when a sorts before b.
func CompareRecency(a, b *JobPosting) int {
	switch {
	case a.PostedDate != nil && b.PostedDate == nil:
		return -1
	case a.PostedDate == nil && b.PostedDate != nil:
		return 1
	case a.PostedDate != nil && b.PostedDate != nil && !a.PostedDate.Equal(*b.PostedDate):
		if a.PostedDate.After(*b.PostedDate) {
			return -1
		}
		return 1
	}
	return -strings.Compare(a.ID, b.ID)
}
