package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
)

// FilterArgs is the parsed form of a free-text filter request.
type FilterArgs struct {
	model.MediaFilter
	Page int
}

// ParseFilterArgs reads whitespace-separated, order-independent tokens:
// "#a,b" tag lists, "days=N", "from=YYYY-MM-DD[THH:MM]", "to=...",
// "page=N". Invalid values are silently ignored; for a repeated logical
// field the last token wins. An empty result (no tags, no dates) is the
// caller's validation problem, not a parse error.
func ParseFilterArgs(raw string, now time.Time) FilterArgs {
	args := FilterArgs{Page: 1}

	for _, part := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(part, "#"):
			for _, token := range strings.Split(part, ",") {
				name := strings.TrimLeft(token, "#")
				if name != "" {
					args.Tags = append(args.Tags, strings.ToLower(name))
				}
			}
		case strings.HasPrefix(part, "days="):
			value := strings.TrimPrefix(part, "days=")
			if days, err := strconv.Atoi(value); err == nil && days >= 0 {
				start := now.AddDate(0, 0, -days)
				args.StartAt = &start
			}
		case strings.HasPrefix(part, "from="):
			args.StartAt = parseDate(strings.TrimPrefix(part, "from="))
		case strings.HasPrefix(part, "to="):
			args.EndAt = parseDate(strings.TrimPrefix(part, "to="))
		case strings.HasPrefix(part, "page="):
			value := strings.TrimPrefix(part, "page=")
			if page, err := strconv.Atoi(value); err == nil && page >= 1 {
				args.Page = page
			}
		}
	}

	return args
}

func parseDate(value string) *time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04"} {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &parsed
		}
	}
	return nil
}
