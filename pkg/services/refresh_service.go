package services

import (
	"context"
	"log"
	"time"

	"link-refresh-go/pkg/links"
	"link-refresh-go/pkg/models"
	"link-refresh-go/pkg/refresher"
)

// Runner is the part of refresher.Runner the service depends on.
type Runner interface {
	Run(ctx context.Context, links []string, progress refresher.ProgressCallback) models.RunResult
}

// RefreshService loads the links file and runs one refresh pass over it
type RefreshService struct {
	linksFile string
	runner    Runner
}

// NewRefreshService creates a new refresh service
func NewRefreshService(linksFile string, runner Runner) *RefreshService {
	return &RefreshService{
		linksFile: linksFile,
		runner:    runner,
	}
}

// LinksFile returns the path the service reads links from
func (s *RefreshService) LinksFile() string {
	return s.linksFile
}

// Run re-reads the links file and performs a complete pass. The file is
// read on every call; nothing is kept between runs.
func (s *RefreshService) Run(ctx context.Context, progress refresher.ProgressCallback) models.RunResult {
	found := links.Load(s.linksFile)

	result := s.runner.Run(ctx, found, progress)
	if len(found) == 0 {
		log.Printf("run %s: no valid links in %s", result.ID, s.linksFile)
		return result
	}

	log.Printf("run %s: refreshed %d links in %s (success=%d failed=%d)",
		result.ID, result.Total(), result.Duration.Round(time.Millisecond), result.Success, result.Failed)
	for _, o := range result.Outcomes {
		if o.Err != nil {
			log.Printf("run %s: %s: %v", result.ID, o.Link, o.Err)
		}
	}
	return result
}
