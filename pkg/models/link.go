package models

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of refreshing a single link
type Outcome struct {
	Link       string        `json:"link"`
	StatusCode int           `json:"status_code,omitempty"` // 0 when no response was obtained
	Err        error         `json:"-"`
	Elapsed    time.Duration `json:"elapsed"`
}

// OK reports whether the link answered with a 2xx status
func (o Outcome) OK() bool {
	return o.Err == nil && o.StatusCode >= 200 && o.StatusCode < 300
}

// RunResult is the aggregate of one refresh pass
type RunResult struct {
	ID        uuid.UUID     `json:"id"`
	Success   int           `json:"success"`
	Failed    int           `json:"failed"`
	Log       string        `json:"log"`
	Outcomes  []Outcome     `json:"outcomes"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Total returns the number of links processed
func (r RunResult) Total() int {
	return r.Success + r.Failed
}
