package discovery

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

const DefaultPageSize = 20

type Paginator struct {
	store    Store
	pageSize int
}

func NewPaginator(store Store, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{store: store, pageSize: pageSize}
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Page fetches one window and the total match count. The two reads are independent and
// run concurrently; they are not atomic against concurrent writes.
func (p *Paginator) Page(ctx context.Context, predicate Predicate, page int) (models.DiscoveryResult, error) {
	if page < 1 {
		page = 1
	}
	window := Window{Offset: (page - 1) * p.pageSize, Limit: p.pageSize}

	var (
		total int64
		jobs  []models.JobPosting
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		total, err = p.store.Count(groupCtx, predicate)
		return storeError("count jobs", err)
	})
	group.Go(func() error {
		var err error
		jobs, err = p.store.Find(groupCtx, predicate, window)
		return storeError("find jobs", err)
	})

	if err := group.Wait(); err != nil {
		return models.DiscoveryResult{}, err
	}

	return models.NewDiscoveryResult(jobs, total, page, p.pageSize), nil
}
