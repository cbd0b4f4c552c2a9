// Package refresher performs the sequential, paced refresh pass over a
// list of links and renders its text log.
package refresher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"link-refresh-go/pkg/models"

	"github.com/google/uuid"
)

// Runner refreshes links one at a time with a fixed pause between them.
type Runner struct {
	fetcher LinkFetcher
	sleep   func(ctx context.Context, d time.Duration)
	now     func() time.Time
}

func NewRunner(fetcher LinkFetcher) *Runner {
	return &Runner{
		fetcher: fetcher,
		sleep:   sleepContext,
		now:     time.Now,
	}
}

// Run processes links strictly in order and returns the complete log.
// Per-link failures never abort the pass.
func (r *Runner) Run(ctx context.Context, links []string, progress ProgressCallback) models.RunResult {
	result := models.RunResult{
		ID:        uuid.New(),
		StartedAt: r.now(),
		Outcomes:  []models.Outcome{},
	}
	if progress == nil {
		progress = func(Stage, *models.Outcome, string) {}
	}

	if len(links) == 0 {
		result.Log = noLinksMessage
		progress(StageComplete, nil, noLinksMessage)
		return result
	}

	var b strings.Builder
	header := fmt.Sprintf("Starting to refresh %d videos...\n%s\n", len(links), divider)
	b.WriteString(header)
	progress(StageStarted, nil, header)

	for _, link := range links {
		progress(StageFetching, &models.Outcome{Link: link}, "")

		start := r.now()
		status, err := r.fetcher.Fetch(ctx, link)
		outcome := models.Outcome{
			Link:       link,
			StatusCode: status,
			Err:        err,
			Elapsed:    r.now().Sub(start),
		}

		if outcome.OK() {
			result.Success++
		} else {
			result.Failed++
		}
		result.Outcomes = append(result.Outcomes, outcome)

		line := FormatOutcome(outcome)
		b.WriteString(line)
		progress(StageRecorded, &outcome, line)

		r.sleep(ctx, PacingDelay)
	}

	footer := fmt.Sprintf("%s\n🎉 All links refreshed. Success: %d, Failed: %d\n", divider, result.Success, result.Failed)
	b.WriteString(footer)

	result.Log = b.String()
	result.Duration = r.now().Sub(result.StartedAt)
	progress(StageComplete, nil, footer)
	return result
}

// FormatOutcome renders the run log line for a single link.
func FormatOutcome(o models.Outcome) string {
	if o.Err != nil {
		return fmt.Sprintf("[ERROR] ❌ %s: %s\n", o.Link, errorDetail(o.Err))
	}
	marker := "⚠️"
	if o.OK() {
		marker = "✅"
	}
	return fmt.Sprintf("[%d] %s %s\n", o.StatusCode, marker, o.Link)
}

func errorDetail(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Detail()
	}
	return err.Error()
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
