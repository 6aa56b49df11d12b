package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/model"
)

var (
	ErrEmptyFilter = errors.New("filter needs tags or a date range")
	ErrEmptySearch = errors.New("search text must not be empty")
)

const (
	PageSize       = 10
	BrowsePageSize = 1
	SearchLimit    = 10
)

type Repo interface {
	Count(ctx context.Context, onlyApproved bool) (int64, error)
	ListPage(ctx context.Context, onlyApproved bool, offset, limit int) ([]model.Media, error)
	CountFiltered(ctx context.Context, filter model.MediaFilter, onlyApproved bool) (int64, error)
	ListFiltered(ctx context.Context, filter model.MediaFilter, onlyApproved bool, offset, limit int) ([]model.Media, error)
	SearchDescription(ctx context.Context, text string, onlyApproved bool, limit int) ([]model.Media, error)
}

// Page carries one page of items plus the metadata the caller needs to
// render navigation. TotalPages is at least 1 even for an empty store.
type Page struct {
	Items      []model.Media
	Page       int
	TotalPages int
}

type Service struct {
	repo              Repo
	moderationEnabled bool
}

func NewService(repo Repo, moderationEnabled bool) *Service {
	return &Service{repo: repo, moderationEnabled: moderationEnabled}
}

// List returns one page of the newest-first listing, page size 10.
func (s *Service) List(ctx context.Context, page int, isAdmin bool) (Page, error) {
	return s.listPage(ctx, page, PageSize, isAdmin)
}

// Browse is the single-item carousel variant of List.
func (s *Service) Browse(ctx context.Context, page int, isAdmin bool) (Page, error) {
	return s.listPage(ctx, page, BrowsePageSize, isAdmin)
}

func (s *Service) listPage(ctx context.Context, page, pageSize int, isAdmin bool) (Page, error) {
	onlyApproved := s.onlyApproved(isAdmin)

	total, err := s.repo.Count(ctx, onlyApproved)
	if err != nil {
		return Page{}, err
	}

	totalPages := totalPages(total, pageSize)
	page = clampPage(page, totalPages)

	items, err := s.repo.ListPage(ctx, onlyApproved, (page-1)*pageSize, pageSize)
	if err != nil {
		return Page{}, err
	}

	return Page{Items: items, Page: page, TotalPages: totalPages}, nil
}

// Filter lists items matching ANY of the requested tags and/or the
// inclusive date range. Empty criteria are rejected before querying.
func (s *Service) Filter(ctx context.Context, args FilterArgs, isAdmin bool) (Page, error) {
	if args.MediaFilter.Empty() {
		return Page{}, ErrEmptyFilter
	}

	onlyApproved := s.onlyApproved(isAdmin)

	total, err := s.repo.CountFiltered(ctx, args.MediaFilter, onlyApproved)
	if err != nil {
		return Page{}, err
	}

	totalPages := totalPages(total, PageSize)
	page := clampPage(args.Page, totalPages)

	items, err := s.repo.ListFiltered(ctx, args.MediaFilter, onlyApproved, (page-1)*PageSize, PageSize)
	if err != nil {
		return Page{}, err
	}

	return Page{Items: items, Page: page, TotalPages: totalPages}, nil
}

// Search is a capped, unpaginated case-insensitive substring match.
func (s *Service) Search(ctx context.Context, text string, isAdmin bool) ([]model.Media, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptySearch
	}
	return s.repo.SearchDescription(ctx, text, s.onlyApproved(isAdmin), SearchLimit)
}

func (s *Service) onlyApproved(isAdmin bool) bool {
	return s.moderationEnabled && !isAdmin
}

func totalPages(total int64, pageSize int) int {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
