package events

import (
	"github.com/maxaizer/job-discovery/internal/domain/models"
	"time"
)

var SearchExecutedTopic = "SearchExecutedEvent"

type SearchExecuted struct {
	Criteria   models.Criteria
	TotalCount int64
	Returned   int
	Duration   time.Duration
}
