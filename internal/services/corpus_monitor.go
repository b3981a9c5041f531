package services

import (
	"context"
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"github.com/maxaizer/job-discovery/internal/logger"
	"github.com/maxaizer/job-discovery/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

type statsProvider interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// CorpusMonitor periodically publishes the size of the active corpus as gauges.
type CorpusMonitor struct {
	stats      statsProvider
	cron       *cron.Cron
	timeout    time.Duration
	refreshing sync.WaitGroup
}

func NewCorpusMonitor(stats statsProvider, schedule string, timeout time.Duration) (*CorpusMonitor, error) {
	if schedule == "" {
		return nil, errors.New("monitor schedule must not be empty")
	}

	cm := &CorpusMonitor{
		stats:   stats,
		cron:    cron.New(),
		timeout: timeout,
	}

	_, err := cm.cron.AddFunc(schedule, func() {
		_ = cm.Refresh(context.Background())
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid monitor schedule %q", schedule)
	}

	return cm, nil
}

// Start runs one refresh immediately and then follows the schedule.
func (cm *CorpusMonitor) Start() {
	cm.refreshing.Add(1)
	go func() {
		defer cm.refreshing.Done()
		_ = cm.Refresh(context.Background())
	}()
	cm.cron.Start()
	log.Info("corpus monitor started")
}

// Stop waits for running refreshes, including the one issued by Start.
func (cm *CorpusMonitor) Stop() {
	<-cm.cron.Stop().Done()
	cm.refreshing.Wait()
}

func (cm *CorpusMonitor) Refresh(ctx context.Context) error {
	if cm.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cm.timeout)
		defer cancel()
	}

	stats, err := cm.stats.Stats(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCron).
			Errorf("failed to refresh corpus stats: %v", err)
		return err
	}

	metrics.ActivePostings.Set(float64(stats.ActiveJobs))
	for role, count := range stats.ByRole {
		metrics.ActivePostingsByRole.WithLabelValues(string(role)).Set(float64(count))
	}

	log.Debugf("corpus stats refreshed: %d active postings from %d companies", stats.ActiveJobs, stats.Companies)
	return nil
}
