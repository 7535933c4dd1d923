package fileutil

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

const avatarMaxWidth = 150

// AvatarDownloadOptions holds options for downloading reviewer avatars.
type AvatarDownloadOptions struct {
	// URL is the source URL of the avatar image
	URL string
	// OutputDir is the markdown output directory; avatars land in its attachments/ subdir
	OutputDir string
	// Filename is the name of the avatar file (e.g., "username - avatar.jpg")
	Filename string
	// Overwrite forces re-downloading even if the avatar exists
	Overwrite bool
}

// AvatarDownloadResult holds the result of an avatar download operation.
type AvatarDownloadResult struct {
	// Downloaded indicates if a new file was fetched
	Downloaded bool
	// LocalPath is the full path to the avatar on disk
	LocalPath string
	// RelativePath is the path relative to the note (e.g., "attachments/username - avatar.jpg")
	RelativePath string
}

// DownloadAvatar downloads a reviewer's profile image into the attachments
// directory, resizing it down to a thumbnail. Existing files are kept unless
// Overwrite is set.
func DownloadAvatar(opts AvatarDownloadOptions) (*AvatarDownloadResult, error) {
	if opts.URL == "" {
		return nil, nil
	}

	attachmentsDir := filepath.Join(opts.OutputDir, "attachments")
	localPath := filepath.Join(attachmentsDir, opts.Filename)

	result := &AvatarDownloadResult{
		LocalPath:    localPath,
		RelativePath: filepath.Join("attachments", opts.Filename),
	}

	if FileExists(localPath) && !opts.Overwrite {
		return result, nil
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading avatar from %s", resp.StatusCode, opts.URL)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avatar image: %w", err)
	}

	if img.Bounds().Dx() > avatarMaxWidth {
		img = imaging.Resize(img, avatarMaxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(attachmentsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}

	if err := imaging.Save(img, localPath); err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	result.Downloaded = true
	return result, nil
}
