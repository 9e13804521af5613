// Package imagehost talks to the external image-hosting collaborator:
// raw image bytes in, durable public URL out.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUploadFailed wraps any upload failure; the create paths map it to a
// server error response.
var ErrUploadFailed = errors.New("image upload failed")

// Uploader uploads image bytes and returns a durable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}

// HTTPUploader posts images to an unsigned-upload endpoint and reads the
// secure URL from its JSON response.
type HTTPUploader struct {
	uploadURL string
	preset    string
	client    *http.Client
}

// NewHTTPUploader builds an uploader for the given endpoint and preset.
func NewHTTPUploader(uploadURL, preset string) *HTTPUploader {
	return &HTTPUploader{
		uploadURL: uploadURL,
		preset:    preset,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends the image as a multipart form. folder names the target
// collection on the host ("cars" or "car_categories").
func (u *HTTPUploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if u.uploadURL == "" {
		return "", fmt.Errorf("%w: no upload endpoint configured", ErrUploadFailed)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", ErrUploadFailed)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	_ = mw.WriteField("upload_preset", u.preset)
	_ = mw.WriteField("folder", folder)
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, resp.Status)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if out.SecureURL == "" && out.URL == "" {
		return "", fmt.Errorf("%w: response carried no URL", ErrUploadFailed)
	}
	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	return out.URL, nil
}
