package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
)

var ErrMediaNotFound = errors.New("media item not found")

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// Insert stores the item and attaches its tag set, creating missing tags
// on the fly. Tag names are expected to be normalized already.
func (r *MediaRepo) Insert(ctx context.Context, media *model.Media, tagNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		media.Tags = tags
		return tx.Create(media).Error
	})
}

func (r *MediaRepo) GetByID(ctx context.Context, id int64) (model.Media, error) {
	var media model.Media
	err := r.db.WithContext(ctx).Preload("Tags").First(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Media{}, ErrMediaNotFound
	}
	if err != nil {
		return model.Media{}, err
	}
	return media, nil
}

// UpdateContent replaces the description and the whole tag association set.
// approved is applied only when non-nil so moderation-off edits leave the
// flag untouched.
func (r *MediaRepo) UpdateContent(ctx context.Context, id int64, description string, tagNames []string, approved *bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var media model.Media
		if err := tx.First(&media, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMediaNotFound
			}
			return err
		}

		updates := map[string]interface{}{"description": description}
		if approved != nil {
			updates["is_approved"] = *approved
		}
		if err := tx.Model(&media).Updates(updates).Error; err != nil {
			return err
		}

		tags, err := resolveTags(tx, tagNames)
		if err != nil {
			return err
		}
		return tx.Model(&media).Association("Tags").Replace(tags)
	})
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var media model.Media
		if err := tx.First(&media, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMediaNotFound
			}
			return err
		}
		if err := tx.Model(&media).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&media).Error
	})
}

func (r *MediaRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Media{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *MediaRepo) Count(ctx context.Context, onlyApproved bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Media{})
	if onlyApproved {
		query = query.Where("is_approved = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *MediaRepo) ListPage(ctx context.Context, onlyApproved bool, offset, limit int) ([]model.Media, error) {
	query := r.db.WithContext(ctx).
		Preload("Tags").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit)
	if onlyApproved {
		query = query.Where("is_approved = ?", true)
	}

	items := make([]model.Media, 0, limit)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MediaRepo) CountFiltered(ctx context.Context, filter model.MediaFilter, onlyApproved bool) (int64, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.Media{}), filter, onlyApproved)

	var total int64
	if err := query.Distinct("media_content.id").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *MediaRepo) ListFiltered(ctx context.Context, filter model.MediaFilter, onlyApproved bool, offset, limit int) ([]model.Media, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.Media{}), filter, onlyApproved).
		Preload("Tags").
		Order("media_content.created_at DESC").
		Offset(offset).
		Limit(limit)
	if len(filter.Tags) > 0 {
		query = query.Distinct("media_content.*")
	}

	items := make([]model.Media, 0, limit)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchDescription is a case-insensitive substring match, newest first.
func (r *MediaRepo) SearchDescription(ctx context.Context, text string, onlyApproved bool, limit int) ([]model.Media, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	query := r.db.WithContext(ctx).
		Preload("Tags").
		Where("LOWER(description) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit)
	if onlyApproved {
		query = query.Where("is_approved = ?", true)
	}

	items := make([]model.Media, 0, limit)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Tag membership is ANY-of, not ALL-of, so a single join with IN is enough.
func applyFilter(query *gorm.DB, filter model.MediaFilter, onlyApproved bool) *gorm.DB {
	if len(filter.Tags) > 0 {
		query = query.
			Joins("JOIN media_tags ON media_tags.media_id = media_content.id").
			Joins("JOIN tags ON tags.id = media_tags.tag_id").
			Where("tags.name IN ?", filter.Tags)
	}
	if filter.StartAt != nil {
		query = query.Where("media_content.created_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		query = query.Where("media_content.created_at <= ?", *filter.EndAt)
	}
	if onlyApproved {
		query = query.Where("media_content.is_approved = ?", true)
	}
	return query
}

func resolveTags(tx *gorm.DB, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		if err := tx.Where(model.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
