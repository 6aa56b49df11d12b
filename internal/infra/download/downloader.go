package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/slvrxyzz/telegram-media-bot/internal/domain/enums"
)

// FileSource resolves a transport file id to a fetchable URL.
// *telegram.Client satisfies it.
type FileSource interface {
	FileDirectURL(fileID string) (string, error)
}

// Downloader persists media bytes locally, named by the content-stable
// unique id so repeated uploads of the same file overwrite one path.
type Downloader struct {
	files    FileSource
	client   *http.Client
	basePath string
}

func New(files FileSource, basePath string) *Downloader {
	return &Downloader{
		files:    files,
		client:   &http.Client{Timeout: 60 * time.Second},
		basePath: basePath,
	}
}

func (d *Downloader) Fetch(ctx context.Context, fileID, fileUniqueID string, mediaType enums.MediaType) (string, error) {
	if err := os.MkdirAll(d.basePath, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	url, err := d.files.FileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("resolve file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch media: unexpected status %d", resp.StatusCode)
	}

	targetPath := filepath.Join(d.basePath, fileUniqueID+"."+extensionFor(mediaType))
	out, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(targetPath)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	return targetPath, nil
}

func extensionFor(mediaType enums.MediaType) string {
	if mediaType == enums.MediaTypePhoto {
		return "jpg"
	}
	return "mp4"
}
