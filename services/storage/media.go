// Package storage uploads site media to an S3-compatible object store
// (DigitalOcean Spaces, MinIO, AWS S3) and hands back public URLs.
// Content rows store only these URLs, never inline image data.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// MaxUploadSize caps multipart uploads at 5MB.
const MaxUploadSize = 5 * 1024 * 1024

// Categories map to folders in the bucket. Unknown categories fall
// back to "misc".
var Categories = map[string]bool{
	"hero":         true,
	"courses":      true,
	"branches":     true,
	"gallery":      true,
	"testimonials": true,
	"team":         true,
	"settings":     true,
	"misc":         true,
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// MediaStore handles object storage operations for site media
type MediaStore struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnURL   string
}

// Config holds configuration for the media store
type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// NewMediaStore creates a media store against an S3-compatible endpoint
func NewMediaStore(config Config) (*MediaStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return &MediaStore{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		endpoint: config.Endpoint,
		cdnURL:   config.CDNURL,
	}, nil
}

// Upload stores an image under <category>/<uuid><ext> with public-read
// ACL and returns its public URL plus the storage key.
func (m *MediaStore) Upload(ctx context.Context, category, filename string, data io.Reader) (string, string, error) {
	contentType, err := ImageContentType(filename)
	if err != nil {
		return "", "", err
	}

	key := GenerateKey(category, filename)
	_, err = m.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return m.FileURL(key), key, nil
}

// Delete removes an object from the bucket
func (m *MediaStore) Delete(ctx context.Context, key string) error {
	_, err := m.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FileURL returns the public URL for a key, preferring the CDN host
func (m *MediaStore) FileURL(key string) string {
	if m.cdnURL != "" {
		return fmt.Sprintf("%s/%s", m.cdnURL, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", m.bucket, m.endpoint, key)
}

// GenerateKey builds a unique storage key for an uploaded file
func GenerateKey(category, filename string) string {
	if !Categories[category] {
		category = "misc"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", category, uuid.New().String(), ext)
}

// ImageContentType returns the content type for an image filename, or
// an error when the extension is not an accepted image format.
func ImageContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	return contentType, nil
}
