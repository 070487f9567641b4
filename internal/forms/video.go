package forms

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/edustore/dashboard/internal/validation"
)

// DefaultMaxVideoSize is the largest lesson video accepted for upload
const DefaultMaxVideoSize int64 = 100 << 20

// VideoField is the error field used for rejected video files
const VideoField = "video"

// VideoPolicy bounds the video files accepted for upload
type VideoPolicy struct {
	MaxBytes int64
}

// ValidateVideoFile checks a video against the default policy
func ValidateVideoFile(name, contentType string, size int64) error {
	return VideoPolicy{MaxBytes: DefaultMaxVideoSize}.Check(name, contentType, size)
}

// Check rejects empty files, files above the size limit and non-video content types.
// When contentType is empty it is derived from the file extension.
func (p VideoPolicy) Check(name, contentType string, size int64) error {
	maxBytes := p.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxVideoSize
	}

	vErr := &validation.Error{}
	switch {
	case size <= 0:
		vErr.Add(VideoField, "required", "video file is empty")
	case size > maxBytes:
		vErr.Add(VideoField, "max_size", fmt.Sprintf("video must be at most %dMB", maxBytes>>20))
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "video/") {
		vErr.Add(VideoField, "mimetype", "only video files are allowed")
	}

	return vErr.OrNil()
}
