package media

import (
	"regexp"
	"sort"
	"strings"
)

const maxTagLength = 64

var tagPattern = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// ExtractTags returns the distinct hashtag names referenced in text,
// lowercased and sorted. Tokens longer than 64 characters are dropped.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		name := strings.ToLower(match[1])
		if len(name) == 0 || len(name) > maxTagLength {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
