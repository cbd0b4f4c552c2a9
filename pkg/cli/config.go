package cli

import (
	"fmt"
	"strings"

	"link-refresh-go/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig() {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		fmt.Fprintf(a.out, "Error marshaling config: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, string(data))
}

// SetConfig applies "section.key=value" and saves the config file
func (a *App) SetConfig(setStr string) error {
	key, value, ok := strings.Cut(setStr, "=")
	if !ok {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	key = strings.TrimSpace(key)
	if err := a.cfg.Set(key, value); err != nil {
		return err
	}
	if key == "cli.base_url" {
		a.client = nil
	}

	return config.Save(a.cfg)
}
