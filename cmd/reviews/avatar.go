package reviews

import (
	"fmt"
	"log/slog"
	"net/url"
	"path"

	"github.com/albertdiaaz/letterfin/internal/fileutil"
)

// downloadReviewerAvatars fetches the profile images of the reviewers into
// the note's attachments directory. Failures are logged and skipped; avatar
// downloads never fail the pipeline.
func downloadReviewerAvatars(movie MovieReviews) {
	for _, review := range movie.Reviews {
		if review.User == "" || review.UserImage == "" {
			continue
		}

		filename := fmt.Sprintf("%s - avatar%s",
			fileutil.SanitizeFilename(review.User), avatarExtension(review.UserImage))

		result, err := fileutil.DownloadAvatar(fileutil.AvatarDownloadOptions{
			URL:       review.UserImage,
			OutputDir: outputDir,
			Filename:  filename,
			Overwrite: overwrite,
		})
		if err != nil {
			slog.Warn("Failed to download avatar", "user", review.User, "error", err)
			continue
		}
		if result != nil && result.Downloaded {
			slog.Info("Downloaded avatar", "user", review.User, "path", result.RelativePath)
		}
	}
}

// avatarExtension picks a file extension from the image URL, defaulting to
// .jpg when the URL path has none.
func avatarExtension(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ".jpg"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".jpg"
}
