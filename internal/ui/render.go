package ui

import (
	"fmt"
	"html"
	"strings"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
)

const (
	previewLimit = 40
	captionLimit = 900

	timeLayout = "2006-01-02 15:04"
)

// Preview flattens the description to a single line capped at 40
// characters, the shape every list rendering uses.
func Preview(description string) string {
	preview := strings.ReplaceAll(strings.TrimSpace(description), "\n", " ")
	if runes := []rune(preview); len(runes) > previewLimit {
		preview = string(runes[:previewLimit-3]) + "..."
	}
	return preview
}

func ListLine(item model.Media) string {
	return fmt.Sprintf(
		"<b>%d</b> | %s | %s",
		item.ID,
		item.CreatedAt.Format(timeLayout),
		Preview(item.Description),
	)
}

// RenderIDsList formats one page of the plain-text id listing.
func RenderIDsList(items []model.Media, page, totalPages int) string {
	return renderPagedList("Список ID", items, page, totalPages)
}

func RenderFilterResults(items []model.Media, page, totalPages int) string {
	return renderPagedList("Результаты", items, page, totalPages)
}

// RenderSearchResults has no pagination footer, search output is capped
// instead of paged.
func RenderSearchResults(items []model.Media) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, ListLine(item))
	}
	return "<b>Результаты поиска</b>:\n" + strings.Join(lines, "\n")
}

func renderPagedList(header string, items []model.Media, page, totalPages int) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, ListLine(item))
	}
	return fmt.Sprintf(
		"<b>%s</b>:\n%s\nСтр. %d/%d",
		header,
		strings.Join(lines, "\n"),
		page,
		totalPages,
	)
}

// Caption builds the HTML caption attached to a media message. The
// description is escaped and capped so the whole caption stays inside
// telegram's 1024-character limit.
func Caption(item model.Media) string {
	description := html.EscapeString(strings.TrimSpace(item.Description))
	if runes := []rune(description); len(runes) > captionLimit {
		description = string(runes[:captionLimit-3]) + "..."
	}

	tagsLine := ""
	if len(item.Tags) > 0 {
		tags := make([]string, 0, len(item.Tags))
		for _, tag := range item.Tags {
			tags = append(tags, "#"+html.EscapeString(tag.Name))
		}
		tagsLine = "\n<b>Теги:</b> " + strings.Join(tags, " ")
	}

	return fmt.Sprintf(
		"🗂️ <b>Запись #%d</b>\n🕒 %s%s\n📝 %s",
		item.ID,
		item.CreatedAt.Format(timeLayout),
		tagsLine,
		description,
	)
}

func ConfirmDeletePrompt(mediaID int64) string {
	return fmt.Sprintf("Удалить запись #%d?", mediaID)
}

func ShowIDAlert(mediaID int64) string {
	return fmt.Sprintf("ID записи: %d", mediaID)
}
