package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
	pgrepo "github.com/slvrxyzz/telegram-media-bot/internal/repo/postgres"
)

var (
	ErrNotFound           = errors.New("media item not found")
	ErrForbidden          = errors.New("operation requires admin rights")
	ErrEmptyDescription   = errors.New("description must not be empty")
	ErrAwaitingModeration = errors.New("media item is awaiting moderation")
)

const notifyPreviewLimit = 60

type Repo interface {
	Insert(ctx context.Context, media *model.Media, tagNames []string) error
	GetByID(ctx context.Context, id int64) (model.Media, error)
	UpdateContent(ctx context.Context, id int64, description string, tagNames []string, approved *bool) error
	Delete(ctx context.Context, id int64) error
	SetApproved(ctx context.Context, id int64, approved bool) error
}

// Notifier delivers plain text to a chat, used for moderator pings.
type Notifier interface {
	SendText(chatID int64, text string) error
}

// Downloader persists media bytes locally and returns the stored path.
type Downloader interface {
	Fetch(ctx context.Context, fileID, fileUniqueID string, mediaType enums.MediaType) (string, error)
}

type Service struct {
	repo              Repo
	notifier          Notifier
	downloader        Downloader
	logger            *slog.Logger
	moderationEnabled bool
	adminIDs          []int64
}

func NewService(
	repo Repo,
	notifier Notifier,
	downloader Downloader,
	logger *slog.Logger,
	moderationEnabled bool,
	adminIDs []int64,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:              repo,
		notifier:          notifier,
		downloader:        downloader,
		logger:            logger,
		moderationEnabled: moderationEnabled,
		adminIDs:          adminIDs,
	}
}

type CreateInput struct {
	FileID       string
	FileUniqueID string
	MediaType    enums.MediaType
	Description  string
}

// Create stores a new item. With moderation enabled the item starts
// unapproved and every configured admin gets a notification; notification
// failures are swallowed per recipient. A failed local download is logged
// and the item is stored without a local path.
func (s *Service) Create(ctx context.Context, input CreateInput) (model.Media, error) {
	description := input.Description
	if strings.TrimSpace(description) == "" {
		return model.Media{}, ErrEmptyDescription
	}
	if !input.MediaType.Valid() {
		return model.Media{}, fmt.Errorf("unsupported media type: %q", input.MediaType)
	}

	localPath := ""
	if s.downloader != nil {
		path, err := s.downloader.Fetch(ctx, input.FileID, input.FileUniqueID, input.MediaType)
		if err != nil {
			s.logger.Warn("download media locally", "error", err, "file_unique_id", input.FileUniqueID)
		} else {
			localPath = path
		}
	}

	item := model.Media{
		TelegramFileID:       input.FileID,
		TelegramFileUniqueID: input.FileUniqueID,
		MediaType:            input.MediaType,
		Description:          description,
		LocalPath:            localPath,
		IsApproved:           !s.moderationEnabled,
	}
	if err := s.repo.Insert(ctx, &item, ExtractTags(description)); err != nil {
		return model.Media{}, err
	}

	if s.moderationEnabled {
		s.notifyAdmins(item.ID, description)
	}

	return item, nil
}

// Edit replaces the description and rebuilds the tag set from scratch.
// With moderation enabled only admins may edit, and the approval flag is
// set to whether the editor is an admin; with moderation disabled the
// flag is left untouched.
func (s *Service) Edit(ctx context.Context, id int64, description string, isAdmin bool) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if s.moderationEnabled && !isAdmin {
		return ErrForbidden
	}

	var approved *bool
	if s.moderationEnabled {
		value := isAdmin
		approved = &value
	}

	err := s.repo.UpdateContent(ctx, id, description, ExtractTags(description), approved)
	if errors.Is(err, pgrepo.ErrMediaNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgrepo.ErrMediaNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Approve(ctx context.Context, id int64, isAdmin bool) error {
	if !isAdmin {
		return ErrForbidden
	}

	err := s.repo.SetApproved(ctx, id, true)
	if errors.Is(err, pgrepo.ErrMediaNotFound) {
		return ErrNotFound
	}
	return err
}

// Get returns the item if the caller may see it. Unapproved items are
// hidden from non-admins while moderation is on.
func (s *Service) Get(ctx context.Context, id int64, isAdmin bool) (model.Media, error) {
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgrepo.ErrMediaNotFound) {
		return model.Media{}, ErrNotFound
	}
	if err != nil {
		return model.Media{}, err
	}

	if s.moderationEnabled && !isAdmin && !item.IsApproved {
		return model.Media{}, ErrAwaitingModeration
	}
	return item, nil
}

func (s *Service) notifyAdmins(mediaID int64, description string) {
	if s.notifier == nil || len(s.adminIDs) == 0 {
		return
	}

	text := fmt.Sprintf(
		"Новая запись на модерации: %d\n%s\n/approve %d",
		mediaID,
		notifyPreview(description),
		mediaID,
	)
	for _, adminID := range s.adminIDs {
		if err := s.notifier.SendText(adminID, text); err != nil {
			s.logger.Warn("notify admin about new media", "error", err, "admin_id", adminID, "media_id", mediaID)
		}
	}
}

func notifyPreview(description string) string {
	preview := strings.ReplaceAll(strings.TrimSpace(description), "\n", " ")
	if runes := []rune(preview); len(runes) > notifyPreviewLimit {
		preview = string(runes[:notifyPreviewLimit-3]) + "..."
	}
	return preview
}
