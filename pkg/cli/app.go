package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"link-refresh-go/pkg/cli/client"
	"link-refresh-go/pkg/cli/logger"
	"link-refresh-go/pkg/cli/tui"
	"link-refresh-go/pkg/config"
	"link-refresh-go/pkg/refresher"
	"link-refresh-go/pkg/services"

	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	cfg    *config.Config
	client *client.Client
	out    io.Writer
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
		out: os.Stdout,
	}
}

// getClient returns the HTTP client, creating it if necessary
func (a *App) getClient() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.CLI.BaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured")
	}

	a.client = client.NewClient(a.cfg.CLI.BaseURL)
	return a.client, nil
}

func (a *App) refreshService() *services.RefreshService {
	runner := refresher.NewRunner(refresher.NewFetcher())
	return services.NewRefreshService(a.cfg.Links.File, runner)
}

// Run performs a local refresh pass in the interactive TUI
func (a *App) Run() error {
	// Loader and service messages would corrupt the TUI; send them to the log file.
	prev := log.Writer()
	log.SetOutput(logger.Writer())
	defer log.SetOutput(prev)

	svc := a.refreshService()
	logger.Log("starting TUI run against %s", svc.LinksFile())

	p := tea.NewProgram(tui.NewRunModel(svc.Run, svc.LinksFile()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// RunPlain performs a local refresh pass and prints the log when done
func (a *App) RunPlain(ctx context.Context) error {
	result := a.refreshService().Run(ctx, nil)
	_, err := fmt.Fprintln(a.out, result.Log)
	return err
}

// RunRemote asks a running API server to perform the pass and prints its log
func (a *App) RunRemote(ctx context.Context) error {
	apiClient, err := a.getClient()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "⏳ Triggering refresh on %s (about 1 second per link)...\n", a.cfg.CLI.BaseURL)
	text, err := apiClient.RunScript(ctx)
	if err != nil {
		return fmt.Errorf("remote run failed: %w", err)
	}
	_, err = fmt.Fprintln(a.out, text)
	return err
}
