package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// driveUploadURL is the Drive v3 multipart upload endpoint.
const driveUploadURL = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart"

// CredentialProvider supplies an authenticated HTTP client for the drive
// API. Injected so tests can substitute a fake that always succeeds.
type CredentialProvider interface {
	Client(ctx context.Context) (*http.Client, error)
}

// TokenCredentials authenticates with a static OAuth2 access token.
type TokenCredentials struct {
	AccessToken string
}

// Client returns an HTTP client that attaches the bearer token.
func (t TokenCredentials) Client(ctx context.Context) (*http.Client, error) {
	if t.AccessToken == "" {
		return nil, errors.New("drive access token is required")
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: t.AccessToken})
	return oauth2.NewClient(ctx, src), nil
}

// DriveUploader pushes local files to cloud drive storage.
type DriveUploader struct {
	creds     CredentialProvider
	uploadURL string
}

// NewDriveUploader creates an uploader using the given credentials.
func NewDriveUploader(creds CredentialProvider) *DriveUploader {
	return &DriveUploader{
		creds:     creds,
		uploadURL: driveUploadURL,
	}
}

// Upload creates a remote file named after filePath's base name and
// attaches the file's content in a single multipart request.
func (u *DriveUploader) Upload(ctx context.Context, filePath string) error {
	client, err := u.creds.Client(ctx)
	if err != nil {
		return fmt.Errorf("drive authentication failed: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := w.CreatePart(metaHeader)
	if err != nil {
		return fmt.Errorf("failed to create metadata part: %w", err)
	}
	meta := map[string]string{"name": filepath.Base(filePath)}
	if err := json.NewEncoder(metaPart).Encode(meta); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	contentHeader := textproto.MIMEHeader{}
	contentHeader.Set("Content-Type", "application/octet-stream")
	contentPart, err := w.CreatePart(contentHeader)
	if err != nil {
		return fmt.Errorf("failed to create content part: %w", err)
	}
	if _, err := contentPart.Write(data); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+w.Boundary())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload failed: HTTP %s: %s", resp.Status, body)
	}

	return nil
}
