package api

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/maxaizer/job-discovery/internal/logger"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type searchEngine interface {
	Search(ctx context.Context, criteria models.Criteria) (models.DiscoveryResult, error)
	FindSimilar(ctx context.Context, jobID string, roleCategory models.RoleCategory,
		skills []string, location string, limit int) ([]models.JobPosting, error)
}

type jobDirectory interface {
	GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error)
	Stats(ctx context.Context) (models.Stats, error)
}

type healthChecker interface {
	Ping(ctx context.Context) error
}

// Handler holds HTTP request handlers
type Handler struct {
	engine    searchEngine
	directory jobDirectory
	health    healthChecker
}

func NewHandler(engine searchEngine, directory jobDirectory, health healthChecker) *Handler {
	return &Handler{engine: engine, directory: directory, health: health}
}

// Search handles the paginated listing: GET /api/v1/jobs?page=&role=&location=&industry=&q=
func (h *Handler) Search(c *gin.Context) {
	criteria := models.NewCriteria(models.RawCriteria{
		Page:     c.Query("page"),
		Role:     c.Query("role"),
		Location: c.Query("location"),
		Industry: c.Query("industry"),
		Query:    c.Query("q"),
	})

	result, err := h.engine.Search(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobListResponse(criteria, result))
}

func (h *Handler) JobBySlug(c *gin.Context) {
	job, err := h.directory.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobResponse(*job))
}

// SimilarBySlug ranks postings against the posting shown on a detail page.
func (h *Handler) SimilarBySlug(c *gin.Context) {
	job, err := h.directory.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	jobs, err := h.engine.FindSimilar(c.Request.Context(), job.ID, job.RoleCategory,
		job.SkillsRequired(), job.Location, parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SimilarJobsResponse{Jobs: newJobResponses(jobs)})
}

// Similar handles GET /api/v1/similar?job_id=&role=&skills=a,b&location=&limit=
func (h *Handler) Similar(c *gin.Context) {
	role, _ := models.ParseRoleCategory(c.Query("role"))

	jobs, err := h.engine.FindSimilar(c.Request.Context(),
		strings.TrimSpace(c.Query("job_id")),
		role,
		parseSkills(c.Query("skills")),
		strings.TrimSpace(c.Query("location")),
		parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SimilarJobsResponse{Jobs: newJobResponses(jobs)})
}

func (h *Handler) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, FiltersResponse{
		Roles:      models.RoleCategoryOptions(),
		Locations:  models.CityOptions(),
		Industries: models.IndustryOptions(),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.directory.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatsResponse(stats))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Ping(c.Request.Context()); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func parseSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	skills := lo.Map(strings.Split(raw, ","), func(skill string, _ int) string {
		return strings.TrimSpace(skill)
	})
	return lo.Compact(skills)
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, discovery.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, discovery.ErrStoreUnavailable):
		status, code = http.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	}

	message := http.StatusText(status)
	if status == http.StatusNotFound {
		message = err.Error()
	}

	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: c.GetString(requestIDKey),
		Timestamp: time.Now(),
	})
}
