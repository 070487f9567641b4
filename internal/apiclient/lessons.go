package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/edustore/dashboard/internal/models"
)

// UploadField is the multipart field the upload endpoint reads videos from
const UploadField = "videos"

// ErrEmptyUpload is returned when the upload endpoint answers without a video URL
var ErrEmptyUpload = errors.New("upload response contains no video url")

// CreateLesson creates a lesson inside a chapter
func (c *Client) CreateLesson(ctx context.Context, req models.CreateLessonRequest) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/lessons", nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

// UpdateLesson replaces a lesson
func (c *Client) UpdateLesson(ctx context.Context, id string, req models.CreateLessonRequest) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/lessons/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

// UploadVideo uploads one video file and returns its public URL.
// "filename" and "contentType" describe the file, "body" is streamed into the multipart request.
func (c *Client) UploadVideo(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadBody(mw, filename, contentType, body))
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/upload/videos", nil, pr)
	if err != nil {
		pr.Close()
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := c.send(req)
	if err != nil {
		return "", err
	}
	return parseUploadURL(raw)
}

// writeUploadBody writes the single video part and the closing boundary
func writeUploadBody(mw *multipart.Writer, filename, contentType string, body io.Reader) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, UploadField, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create upload part: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return fmt.Errorf("failed to read video: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finish upload body: %w", err)
	}
	return nil
}

// parseUploadURL reads "data" as either a URL or a list of URLs and returns the first one
func parseUploadURL(raw []byte) (string, error) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	var single string
	if err := json.Unmarshal(env.Data, &single); err == nil {
		if single = strings.TrimSpace(single); single != "" {
			return single, nil
		}
		return "", ErrEmptyUpload
	}

	var list []string
	if err := json.Unmarshal(env.Data, &list); err == nil {
		for _, u := range list {
			if u = strings.TrimSpace(u); u != "" {
				return u, nil
			}
		}
	}
	return "", ErrEmptyUpload
}
