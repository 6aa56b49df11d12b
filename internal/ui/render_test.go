package ui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
)

func TestPreview(t *testing.T) {
	long := strings.Repeat("a", 50)
	got := Preview(long)
	if utf8.RuneCountInString(got) != 40 {
		t.Fatalf("expected 40 chars, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") || got[:37] != long[:37] {
		t.Fatalf("unexpected preview %q", got)
	}

	if got := Preview("first\nsecond"); got != "first second" {
		t.Fatalf("expected flattened newlines, got %q", got)
	}

	if got := Preview("  short  "); got != "short" {
		t.Fatalf("expected trimmed text kept as-is, got %q", got)
	}
}

func TestPreviewCyrillicStaysValidUTF8(t *testing.T) {
	long := strings.Repeat("я", 50)
	got := Preview(long)
	if !utf8.ValidString(got) {
		t.Fatalf("preview is not valid utf-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 40 {
		t.Fatalf("expected 40 chars, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasPrefix(got, strings.Repeat("я", 37)) || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected preview %q", got)
	}

	exact := strings.Repeat("ю", 40)
	if got := Preview(exact); got != exact {
		t.Fatalf("40-char text must pass untouched, got %q", got)
	}
}

func TestRenderIDsList(t *testing.T) {
	created := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	items := []model.Media{
		{ID: 12, CreatedAt: created, Description: "cats #cats"},
		{ID: 11, CreatedAt: created.Add(-time.Hour), Description: "dogs"},
	}

	text := RenderIDsList(items, 2, 5)
	required := []string{
		"<b>Список ID</b>:",
		"<b>12</b> | 2026-08-20 14:30 | cats #cats",
		"<b>11</b> | 2026-08-20 13:30 | dogs",
		"Стр. 2/5",
	}
	for _, token := range required {
		if !strings.Contains(text, token) {
			t.Fatalf("expected list to contain %q; got:\n%s", token, text)
		}
	}
}

func TestRenderSearchResultsHasNoPagination(t *testing.T) {
	items := []model.Media{{ID: 1, CreatedAt: time.Now(), Description: "x"}}

	text := RenderSearchResults(items)
	if !strings.HasPrefix(text, "<b>Результаты поиска</b>:") {
		t.Fatalf("unexpected header in %q", text)
	}
	if strings.Contains(text, "Стр.") {
		t.Fatal("search results must not carry a page footer")
	}
}

func TestCaption(t *testing.T) {
	item := model.Media{
		ID:          7,
		CreatedAt:   time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
		Description: "walk <in> the park",
		Tags:        []model.Tag{{Name: "walks"}, {Name: "park"}},
	}

	caption := Caption(item)
	required := []string{
		"🗂️ <b>Запись #7</b>",
		"🕒 2026-08-20 14:30",
		"<b>Теги:</b> #walks #park",
		"📝 walk &lt;in&gt; the park",
	}
	for _, token := range required {
		if !strings.Contains(caption, token) {
			t.Fatalf("expected caption to contain %q; got:\n%s", token, caption)
		}
	}
}

func TestCaptionCapsDescription(t *testing.T) {
	item := model.Media{
		ID:          1,
		CreatedAt:   time.Now(),
		Description: strings.Repeat("y", 1200),
	}

	caption := Caption(item)
	idx := strings.Index(caption, "📝 ")
	if idx < 0 {
		t.Fatalf("missing description marker in %q", caption)
	}
	description := caption[idx+len("📝 "):]
	if utf8.RuneCountInString(description) != 900 {
		t.Fatalf("expected 900-char description, got %d", utf8.RuneCountInString(description))
	}
	if !strings.HasSuffix(description, "...") {
		t.Fatalf("expected ellipsis, got %q", description[len(description)-10:])
	}
}

func TestCaptionCapsCyrillicDescription(t *testing.T) {
	item := model.Media{
		ID:          3,
		CreatedAt:   time.Now(),
		Description: strings.Repeat("ю", 1200),
	}

	caption := Caption(item)
	if !utf8.ValidString(caption) {
		t.Fatalf("caption is not valid utf-8: %q", caption[:60])
	}
	idx := strings.Index(caption, "📝 ")
	if idx < 0 {
		t.Fatalf("missing description marker in %q", caption)
	}
	description := caption[idx+len("📝 "):]
	if utf8.RuneCountInString(description) != 900 {
		t.Fatalf("expected 900-char description, got %d", utf8.RuneCountInString(description))
	}
	if !strings.HasPrefix(description, strings.Repeat("ю", 897)) || !strings.HasSuffix(description, "...") {
		t.Fatal("expected first 897 characters preserved before the ellipsis")
	}
}

func TestCaptionWithoutTagsSkipsTagsLine(t *testing.T) {
	item := model.Media{ID: 2, CreatedAt: time.Now(), Description: "plain"}

	if strings.Contains(Caption(item), "Теги") {
		t.Fatal("tags line must be omitted when the item has no tags")
	}
}

func TestMainMenuContainsEveryButton(t *testing.T) {
	flat := map[string]bool{}
	for _, row := range MainMenu() {
		for _, button := range row {
			flat[button] = true
		}
	}

	for _, button := range []string{
		ButtonUpload, ButtonBrowse, ButtonFilter, ButtonSearch,
		ButtonIDs, ButtonGet, ButtonEdit, ButtonDelete,
		ButtonHelp, ButtonMenu, ButtonCancel,
	} {
		if !flat[button] {
			t.Fatalf("menu is missing button %q", button)
		}
	}
}
