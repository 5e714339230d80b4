package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Uploader stores raw media bytes and returns a durable public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType, hint string) (string, error)
}

// GCSUploader writes objects to a Cloud Storage bucket with a download token
// so the returned URL is publicly fetchable.
type GCSUploader struct {
	client *storage.Client
	bucket string
}

func NewGCSUploader(ctx context.Context, bucket, credentialsFile string) (*GCSUploader, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{client: client, bucket: bucket}, nil
}

func (u *GCSUploader) Upload(ctx context.Context, data []byte, contentType, hint string) (string, error) {
	objectPath := fmt.Sprintf("items/%s_%s", sanitizeHint(hint), uuid.NewString()[:8])
	token := uuid.NewString()

	obj := u.client.Bucket(u.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	escapedPath := url.PathEscape(objectPath)
	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		u.bucket, escapedPath, token)
	return publicURL, nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}

func sanitizeHint(hint string) string {
	hint = strings.TrimSpace(strings.ToLower(hint))
	if hint == "" {
		hint = time.Now().UTC().Format("20060102")
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, hint)
}
