package models

// DiscoveryResult is one page of a listing. It is immutable once constructed.
type DiscoveryResult struct {
	jobs       []JobPosting
	totalCount int64
	page       int
	pageSize   int
}

func NewDiscoveryResult(jobs []JobPosting, totalCount int64, page, pageSize int) DiscoveryResult {
	owned := make([]JobPosting, len(jobs))
	copy(owned, jobs)
	return DiscoveryResult{jobs: owned, totalCount: totalCount, page: page, pageSize: pageSize}
}

// Jobs returns a copy of the page's postings in listing order.
func (r DiscoveryResult) Jobs() []JobPosting {
	jobs := make([]JobPosting, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs
}

func (r DiscoveryResult) Len() int {
	return len(r.jobs)
}

func (r DiscoveryResult) TotalCount() int64 {
	return r.totalCount
}

func (r DiscoveryResult) Page() int {
	return r.page
}

func (r DiscoveryResult) PageSize() int {
	return r.pageSize
}

func (r DiscoveryResult) TotalPages() int {
	if r.pageSize <= 0 || r.totalCount <= 0 {
		return 0
	}
	return int((r.totalCount + int64(r.pageSize) - 1) / int64(r.pageSize))
}

// Stats summarises the active corpus.
type Stats struct {
	ActiveJobs int64
	Companies  int64
	ByRole     map[RoleCategory]int64
}
