package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-discovery/internal/domain/events"
	"github.com/maxaizer/job-discovery/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// SearchStatsSubscriber turns executed searches into usage counters.
type SearchStatsSubscriber struct {
	bus EventBus.Bus
}

func NewSearchStatsSubscriber(bus EventBus.Bus) (*SearchStatsSubscriber, error) {
	s := &SearchStatsSubscriber{bus: bus}
	if err := bus.Subscribe(events.SearchExecutedTopic, s.onSearchExecuted); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SearchStatsSubscriber) Close() error {
	return s.bus.Unsubscribe(events.SearchExecutedTopic, s.onSearchExecuted)
}

func (s *SearchStatsSubscriber) onSearchExecuted(event events.SearchExecuted) {
	if event.TotalCount == 0 {
		metrics.ZeroResultSearchesCounter.Inc()
	}

	criteria := event.Criteria
	facets := map[string]bool{
		"role":     criteria.RoleCategory != "",
		"location": criteria.City != "",
		"industry": criteria.Industry != "",
		"query":    criteria.SearchQuery != "",
	}
	for facet, used := range facets {
		if used {
			metrics.FilteredSearchesCounter.WithLabelValues(facet).Inc()
		}
	}

	log.Debugf("search page %d returned %d of %d postings in %v",
		criteria.Page, event.Returned, event.TotalCount, event.Duration)
}
