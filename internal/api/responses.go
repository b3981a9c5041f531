package api

import (
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/samber/lo"
	"time"
)

type JobResponse struct {
	ID                 string     `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	CompanyName        string     `json:"companyName"`
	CompanyDomain      *string    `json:"companyDomain,omitempty"`
	Location           string     `json:"location"`
	City               string     `json:"city"`
	IsRemote           bool       `json:"isRemote"`
	RoleCategory       string     `json:"roleCategory"`
	Industry           string     `json:"industry"`
	Compensation       string     `json:"compensation"`
	SkillsRequired     []string   `json:"skillsRequired"`
	PostedDate         *time.Time `json:"postedDate"`
	DescriptionSnippet string     `json:"descriptionSnippet"`
}

type AppliedFilters struct {
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
	Industry string `json:"industry,omitempty"`
	Query    string `json:"q,omitempty"`
}

type JobListResponse struct {
	Jobs             []JobResponse  `json:"jobs"`
	TotalCount       int64          `json:"totalCount"`
	TotalPages       int            `json:"totalPages"`
	Page             int            `json:"page"`
	PageSize         int            `json:"pageSize"`
	HasActiveFilters bool           `json:"hasActiveFilters"`
	Filters          AppliedFilters `json:"filters"`
}

type SimilarJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

type FiltersResponse struct {
	Roles      []models.FilterOption `json:"roles"`
	Locations  []models.FilterOption `json:"locations"`
	Industries []models.FilterOption `json:"industries"`
}

type StatsResponse struct {
	ActiveJobs int64            `json:"activeJobs"`
	Companies  int64            `json:"companies"`
	ByRole     map[string]int64 `json:"byRole"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newJobResponse(job models.JobPosting) JobResponse {
	return JobResponse{
		ID:                 job.ID,
		Slug:               job.Slug,
		Title:              job.Title,
		CompanyName:        job.CompanyName,
		CompanyDomain:      job.CompanyDomain,
		Location:           job.Location,
		City:               string(job.City),
		IsRemote:           job.IsRemote,
		RoleCategory:       string(job.RoleCategory),
		Industry:           string(job.Industry),
		Compensation:       job.Compensation,
		SkillsRequired:     job.SkillsRequired(),
		PostedDate:         job.PostedDate,
		DescriptionSnippet: job.DescriptionSnippet,
	}
}

func newJobResponses(jobs []models.JobPosting) []JobResponse {
	return lo.Map(jobs, func(job models.JobPosting, _ int) JobResponse {
		return newJobResponse(job)
	})
}

func newJobListResponse(criteria models.Criteria, result models.DiscoveryResult) JobListResponse {
	return JobListResponse{
		Jobs:             newJobResponses(result.Jobs()),
		TotalCount:       result.TotalCount(),
		TotalPages:       result.TotalPages(),
		Page:             result.Page(),
		PageSize:         result.PageSize(),
		HasActiveFilters: criteria.HasActiveFilters(),
		Filters: AppliedFilters{
			Role:     string(criteria.RoleCategory),
			Location: string(criteria.City),
			Industry: string(criteria.Industry),
			Query:    criteria.SearchQuery,
		},
	}
}

func newStatsResponse(stats models.Stats) StatsResponse {
	return StatsResponse{
		ActiveJobs: stats.ActiveJobs,
		Companies:  stats.Companies,
		ByRole: lo.MapKeys(stats.ByRole, func(_ int64, role models.RoleCategory) string {
			return string(role)
		}),
	}
}
