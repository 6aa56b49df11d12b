package model

import (
	"time"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
)

// Media is a stored photo or video with its description and tag set.
// TelegramFileID is the transport handle used for re-sending, the unique id
// is content-stable and used for local filename derivation.
type Media struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement"`
	TelegramFileID       string          `gorm:"size:255;not null"`
	TelegramFileUniqueID string          `gorm:"size:255;not null"`
	MediaType            enums.MediaType `gorm:"size:20;not null"`
	Description          string          `gorm:"type:text;not null"`
	CreatedAt            time.Time
	LocalPath            string `gorm:"size:500"`
	IsApproved           bool
	Tags                 []Tag `gorm:"many2many:media_tags;constraint:OnDelete:CASCADE"`
}

func (Media) TableName() string {
	return "media_content"
}

// Tag names are normalized (lowercase, [a-z0-9_], at most 64 chars) and unique.
// Tags are created lazily on first reference and never pruned.
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64;uniqueIndex;not null"`
}

func (Tag) TableName() string {
	return "tags"
}
