package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// setters maps a dotted "section.key" to the field it updates.
var setters = map[string]func(cfg *Config, value string) error{
	"links.file": func(cfg *Config, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("links.file cannot be empty")
		}
		cfg.Links.File = v
		return nil
	},
	"api.host": func(cfg *Config, v string) error {
		cfg.API.Host = v
		return nil
	},
	"api.port": func(cfg *Config, v string) error {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port value: %s", v)
		}
		cfg.API.Port = port
		return nil
	},
	"cli.base_url": func(cfg *Config, v string) error {
		cfg.CLI.BaseURL = v
		return nil
	},
}

// Keys lists the settable keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates the value named by a dotted key such as "api.port".
// It does not persist; call Save afterwards.
func (c *Config) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return set(c, value)
}
