package media

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
	"github.com/slvrxyzz/telegram-media-bot/internal/infra/logger"
	pgrepo "github.com/slvrxyzz/telegram-media-bot/internal/repo/postgres"
)

type fakeRepo struct {
	nextID int64
	items  map[int64]model.Media
	tags   map[int64][]string

	insertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items: make(map[int64]model.Media),
		tags:  make(map[int64][]string),
	}
}

func (r *fakeRepo) Insert(_ context.Context, media *model.Media, tagNames []string) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	media.ID = r.nextID
	r.items[media.ID] = *media
	r.tags[media.ID] = tagNames
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (model.Media, error) {
	item, ok := r.items[id]
	if !ok {
		return model.Media{}, pgrepo.ErrMediaNotFound
	}
	return item, nil
}

func (r *fakeRepo) UpdateContent(_ context.Context, id int64, description string, tagNames []string, approved *bool) error {
	item, ok := r.items[id]
	if !ok {
		return pgrepo.ErrMediaNotFound
	}
	item.Description = description
	if approved != nil {
		item.IsApproved = *approved
	}
	r.items[id] = item
	r.tags[id] = tagNames
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return pgrepo.ErrMediaNotFound
	}
	delete(r.items, id)
	delete(r.tags, id)
	return nil
}

func (r *fakeRepo) SetApproved(_ context.Context, id int64, approved bool) error {
	item, ok := r.items[id]
	if !ok {
		return pgrepo.ErrMediaNotFound
	}
	item.IsApproved = approved
	r.items[id] = item
	return nil
}

type fakeNotifier struct {
	sent map[int64][]string
	err  error
}

func (n *fakeNotifier) SendText(chatID int64, text string) error {
	if n.sent == nil {
		n.sent = make(map[int64][]string)
	}
	n.sent[chatID] = append(n.sent[chatID], text)
	return n.err
}

type fakeDownloader struct {
	path string
	err  error
}

func (d *fakeDownloader) Fetch(_ context.Context, _, _ string, _ enums.MediaType) (string, error) {
	return d.path, d.err
}

func TestCreateApprovedWithoutModeration(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, logger.Discard(), false, nil)

	item, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypePhoto,
		Description:  "cute #cat #Cat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.IsApproved {
		t.Fatal("expected immediate approval without moderation")
	}
	if !reflect.DeepEqual(repo.tags[item.ID], []string{"cat"}) {
		t.Fatalf("expected case-folded deduped tags, got %v", repo.tags[item.ID])
	}
}

func TestCreateUnderModerationNotifiesAdmins(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, nil, logger.Discard(), true, []int64{10, 20})

	item, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypeVideo,
		Description:  "pending #review",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.IsApproved {
		t.Fatal("expected item unapproved under moderation")
	}
	if len(notifier.sent[10]) != 1 || len(notifier.sent[20]) != 1 {
		t.Fatalf("expected one notification per admin, got %v", notifier.sent)
	}
	if !strings.Contains(notifier.sent[10][0], "/approve 1") {
		t.Fatalf("expected approve hint in notification, got %q", notifier.sent[10][0])
	}
}

func TestCreateNotificationFailureIsSwallowed(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{err: errors.New("blocked by user")}
	svc := NewService(repo, notifier, nil, logger.Discard(), true, []int64{10})

	if _, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypePhoto,
		Description:  "still stored",
	}); err != nil {
		t.Fatalf("notification failure must not fail creation: %v", err)
	}
}

func TestCreateEmptyDescription(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, logger.Discard(), false, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypePhoto,
		Description:  "   ",
	})
	if !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestCreateDownloadFailureKeepsItem(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, &fakeDownloader{err: errors.New("network down")}, logger.Discard(), false, nil)

	item, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypePhoto,
		Description:  "no local copy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.LocalPath != "" {
		t.Fatalf("expected empty local path after failed download, got %q", item.LocalPath)
	}
}

func TestCreateStoresLocalPath(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, &fakeDownloader{path: "/tmp/uniq-1.jpg"}, logger.Discard(), false, nil)

	item, err := svc.Create(context.Background(), CreateInput{
		FileID:       "file-1",
		FileUniqueID: "uniq-1",
		MediaType:    enums.MediaTypePhoto,
		Description:  "with local copy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.LocalPath != "/tmp/uniq-1.jpg" {
		t.Fatalf("expected stored local path, got %q", item.LocalPath)
	}
}

func TestEditModerationRules(t *testing.T) {
	testCases := []struct {
		name         string
		moderation   bool
		isAdmin      bool
		wantErr      error
		wantApproved *bool
	}{
		{name: "moderation off leaves approval", moderation: false, isAdmin: false},
		{name: "moderation on admin approves", moderation: true, isAdmin: true, wantApproved: boolPtr(true)},
		{name: "moderation on non-admin forbidden", moderation: true, isAdmin: false, wantErr: ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.nextID = 1
			repo.items[1] = model.Media{ID: 1, Description: "old #old", IsApproved: true}
			repo.tags[1] = []string{"old"}

			svc := NewService(repo, nil, nil, logger.Discard(), tc.moderation, nil)
			err := svc.Edit(context.Background(), 1, "new text #fresh", tc.isAdmin)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if repo.items[1].Description != "old #old" {
					t.Fatal("forbidden edit must not mutate the store")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.items[1].Description != "new text #fresh" {
				t.Fatalf("description not replaced: %q", repo.items[1].Description)
			}
			if !reflect.DeepEqual(repo.tags[1], []string{"fresh"}) {
				t.Fatalf("expected fully replaced tags, got %v", repo.tags[1])
			}
			if tc.wantApproved != nil && repo.items[1].IsApproved != *tc.wantApproved {
				t.Fatalf("expected approval %v, got %v", *tc.wantApproved, repo.items[1].IsApproved)
			}
			if tc.wantApproved == nil && !repo.items[1].IsApproved {
				t.Fatal("moderation-off edit must leave approval untouched")
			}
		})
	}
}

func TestEditNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, logger.Discard(), false, nil)
	if err := svc.Edit(context.Background(), 42, "text", false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFoundPerformsNoMutation(t *testing.T) {
	repo := newFakeRepo()
	repo.items[1] = model.Media{ID: 1}
	svc := NewService(repo, nil, nil, logger.Discard(), false, nil)

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatal("delete of missing id must not touch other items")
	}
}

func TestApprove(t *testing.T) {
	repo := newFakeRepo()
	repo.items[1] = model.Media{ID: 1, IsApproved: false}
	svc := NewService(repo, nil, nil, logger.Discard(), true, nil)

	if err := svc.Approve(context.Background(), 1, false); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if err := svc.Approve(context.Background(), 1, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.items[1].IsApproved {
		t.Fatal("expected item approved")
	}
	if err := svc.Approve(context.Background(), 99, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetHidesUnapprovedFromNonAdmins(t *testing.T) {
	repo := newFakeRepo()
	repo.items[1] = model.Media{ID: 1, IsApproved: false}
	svc := NewService(repo, nil, nil, logger.Discard(), true, nil)

	if _, err := svc.Get(context.Background(), 1, false); !errors.Is(err, ErrAwaitingModeration) {
		t.Fatalf("expected ErrAwaitingModeration, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 1, true); err != nil {
		t.Fatalf("admin must see unapproved item: %v", err)
	}
}

func TestNotifyPreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	preview := notifyPreview(long)
	if utf8.RuneCountInString(preview) != 60 {
		t.Fatalf("expected 60 chars, got %d", utf8.RuneCountInString(preview))
	}
	if !strings.HasSuffix(preview, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", preview)
	}
	if preview[:57] != long[:57] {
		t.Fatal("expected first 57 characters preserved")
	}

	short := "line one\nline two"
	if notifyPreview(short) != "line one line two" {
		t.Fatalf("expected flattened newlines, got %q", notifyPreview(short))
	}
}

func TestNotifyPreviewCyrillicStaysValidUTF8(t *testing.T) {
	long := strings.Repeat("д", 80)
	preview := notifyPreview(long)
	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid utf-8: %q", preview)
	}
	if utf8.RuneCountInString(preview) != 60 {
		t.Fatalf("expected 60 chars, got %d", utf8.RuneCountInString(preview))
	}
	if !strings.HasPrefix(preview, strings.Repeat("д", 57)) || !strings.HasSuffix(preview, "...") {
		t.Fatalf("unexpected preview %q", preview)
	}
}

func boolPtr(v bool) *bool {
	return &v
}
