// Package links reads the list of links to refresh.
package links

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"link-refresh-go/pkg/utils"
)

// RequiredPrefix is the scheme+host every refreshable link starts with.
const RequiredPrefix = "https://streamtape.com"

// Load reads path and returns its refreshable links in file order.
// Read failures are logged and yield an empty list; Load never fails.
func Load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("links file not found: %s", path)
		} else {
			log.Printf("failed to read links file %s: %v", path, err)
		}
		return []string{}
	}
	return Parse(string(data))
}

// Parse splits content into lines and keeps the trimmed ones that start
// with RequiredPrefix.
func Parse(content string) []string {
	links := []string{}
	for _, line := range strings.Split(content, "\n") {
		if link, ok := utils.NormalizeLink(line, RequiredPrefix); ok {
			links = append(links, link)
		}
	}
	return links
}
