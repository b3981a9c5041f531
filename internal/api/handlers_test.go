package api

import (
	"context"
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-discovery/internal/config"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Search(ctx context.Context, criteria models.Criteria) (models.DiscoveryResult, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(models.DiscoveryResult), args.Error(1)
}

func (m *mockEngine) FindSimilar(ctx context.Context, jobID string, roleCategory models.RoleCategory,
	skills []string, location string, limit int) ([]models.JobPosting, error) {
	args := m.Called(ctx, jobID, roleCategory, skills, location, limit)
	jobs, _ := args.Get(0).([]models.JobPosting)
	return jobs, args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	args := m.Called(ctx, slug)
	job, _ := args.Get(0).(*models.JobPosting)
	return job, args.Error(1)
}

func (m *mockDirectory) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

var testServerConfig = config.ServerConfig{Port: 8080, RequestTimeout: time.Second}

func setupTestRouter(handler *Handler, cfg config.ServerConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(cfg, handler)
}

func get(t *testing.T, router *gin.Engine, target string, response any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	if response != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), response), w.Body.String())
	}
	return w
}

func testJob(id string) models.JobPosting {
	posted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return models.JobPosting{
		ID:           id,
		Slug:         "job-" + id,
		Title:        "Fractional CMO",
		CompanyName:  "Acme",
		Location:     "London, UK",
		City:         models.CityLondon,
		RoleCategory: models.RoleMarketing,
		Industry:     models.IndustrySaaS,
		Skills:       models.NewJobSkills(id, []string{"SEO", "HubSpot"}),
		PostedDate:   &posted,
		IsActive:     true,
	}
}

func Test_Search_ParsesQueryIntoCriteria(t *testing.T) {
	engine := &mockEngine{}
	expected := models.Criteria{RoleCategory: models.RoleMarketing, City: models.CityLondon, SearchQuery: "hubspot", Page: 2}
	engine.On("Search", mock.Anything, expected).
		Return(models.NewDiscoveryResult([]models.JobPosting{testJob("1")}, 21, 2, 20), nil).Once()

	router := setupTestRouter(NewHandler(engine, &mockDirectory{}, nil), testServerConfig)

	var response JobListResponse
	w := get(t, router, "/api/v1/jobs?page=2&role=marketing&location=London&industry=Mining&q=+hubspot+", &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 21, response.TotalCount)
	assert.Equal(t, 2, response.TotalPages)
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 20, response.PageSize)
	assert.True(t, response.HasActiveFilters)
	assert.Equal(t, AppliedFilters{Role: "Marketing", Location: "London", Query: "hubspot"}, response.Filters)
	require.Len(t, response.Jobs, 1)
	assert.Equal(t, []string{"SEO", "HubSpot"}, response.Jobs[0].SkillsRequired)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	engine.AssertExpectations(t)
}

func Test_Search_MalformedPageFallsBackToFirst(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Search", mock.Anything, models.Criteria{Page: 1}).
		Return(models.NewDiscoveryResult(nil, 0, 1, 20), nil).Once()

	router := setupTestRouter(NewHandler(engine, &mockDirectory{}, nil), testServerConfig)

	var response JobListResponse
	w := get(t, router, "/api/v1/jobs?page=abc", &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, response.Jobs)
	assert.Empty(t, response.Jobs)
	assert.False(t, response.HasActiveFilters)
	engine.AssertExpectations(t)
}

func Test_Search_StoreUnavailable(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Search", mock.Anything, mock.Anything).
		Return(models.DiscoveryResult{}, &discovery.StoreError{Op: "count", Err: errors.New("connection refused")}).Once()

	router := setupTestRouter(NewHandler(engine, &mockDirectory{}, nil), testServerConfig)

	var response ErrorResponse
	w := get(t, router, "/api/v1/jobs", &response)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORE_UNAVAILABLE", response.Code)
	assert.NotContains(t, response.Error, "connection refused")
	assert.Equal(t, w.Header().Get(requestIDHeader), response.RequestID)
}

func Test_JobBySlug(t *testing.T) {
	job := testJob("1")
	directory := &mockDirectory{}
	directory.On("GetBySlug", mock.Anything, "job-1").Return(&job, nil).Once()
	directory.On("GetBySlug", mock.Anything, "gone").Return(nil, discovery.ErrNotFound).Once()

	router := setupTestRouter(NewHandler(&mockEngine{}, directory, nil), testServerConfig)

	var found JobResponse
	w := get(t, router, "/api/v1/jobs/job-1", &found)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", found.ID)
	assert.Equal(t, "Marketing", found.RoleCategory)

	var missing ErrorResponse
	w = get(t, router, "/api/v1/jobs/gone", &missing)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", missing.Code)

	directory.AssertExpectations(t)
}

func Test_SimilarBySlug_UsesPostingAsReference(t *testing.T) {
	job := testJob("1")
	directory := &mockDirectory{}
	directory.On("GetBySlug", mock.Anything, "job-1").Return(&job, nil).Once()

	engine := &mockEngine{}
	engine.On("FindSimilar", mock.Anything, "1", models.RoleMarketing, []string{"SEO", "HubSpot"}, "London, UK", 0).
		Return([]models.JobPosting{testJob("2"), testJob("3")}, nil).Once()

	router := setupTestRouter(NewHandler(engine, directory, nil), testServerConfig)

	var response SimilarJobsResponse
	w := get(t, router, "/api/v1/jobs/job-1/similar?limit=oops", &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, response.Jobs, 2)
	engine.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func Test_Similar_ParsesReferenceAttributes(t *testing.T) {
	engine := &mockEngine{}
	engine.On("FindSimilar", mock.Anything, "", models.RoleFinance, []string{"Excel", "FP&A"}, "Leeds", 6).
		Return([]models.JobPosting{}, nil).Once()
	engine.On("FindSimilar", mock.Anything, "42", models.RoleCategory(""), []string(nil), "", 0).
		Return([]models.JobPosting{}, nil).Once()

	router := setupTestRouter(NewHandler(engine, &mockDirectory{}, nil), testServerConfig)

	var response SimilarJobsResponse
	w := get(t, router, "/api/v1/similar?role=finance&skills=Excel,+FP%26A,,&location=Leeds&limit=6", &response)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, response.Jobs)
	assert.Empty(t, response.Jobs)

	w = get(t, router, "/api/v1/similar?job_id=42&role=astronaut&limit=-3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	engine.AssertExpectations(t)
}

func Test_Filters(t *testing.T) {
	router := setupTestRouter(NewHandler(&mockEngine{}, &mockDirectory{}, nil), testServerConfig)

	var response FiltersResponse
	w := get(t, router, "/api/v1/filters", &response)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleCategoryOptions(), response.Roles)
	assert.Equal(t, models.CityOptions(), response.Locations)
	assert.Equal(t, models.IndustryOptions(), response.Industries)
}

func Test_Stats(t *testing.T) {
	directory := &mockDirectory{}
	directory.On("Stats", mock.Anything).Return(models.Stats{
		ActiveJobs: 3,
		Companies:  2,
		ByRole:     map[models.RoleCategory]int64{models.RoleMarketing: 3},
	}, nil).Once()
	directory.On("Stats", mock.Anything).Return(models.Stats{}, &discovery.StoreError{Op: "count", Err: context.DeadlineExceeded}).Once()

	router := setupTestRouter(NewHandler(&mockEngine{}, directory, nil), testServerConfig)

	var response StatsResponse
	w := get(t, router, "/api/v1/stats", &response)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatsResponse{ActiveJobs: 3, Companies: 2, ByRole: map[string]int64{"Marketing": 3}}, response)

	w = get(t, router, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func Test_HealthCheck(t *testing.T) {
	healthy := setupTestRouter(NewHandler(&mockEngine{}, &mockDirectory{},
		pingFunc(func(context.Context) error { return nil })), testServerConfig)
	assert.Equal(t, http.StatusOK, get(t, healthy, "/health", nil).Code)

	unhealthy := setupTestRouter(NewHandler(&mockEngine{}, &mockDirectory{},
		pingFunc(func(context.Context) error { return errors.New("db down") })), testServerConfig)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, unhealthy, "/health", nil).Code)
}
