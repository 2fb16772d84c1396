package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cortylix/site-go/internal/config"
	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
)

// MaxImageSize is the upload ceiling for portfolio images.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrNotAnImage    = errors.New("file must be an image")
	ErrImageTooLarge = errors.New("image must be 5 MiB or smaller")
)

// ValidateImage rejects bad uploads before any network call is made.
func ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// UploadImage validates and stores a portfolio image, returning its public
// URL. Objects are named by uuid so repeated uploads of the same filename
// never collide.
var UploadImage = func(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return "", err
	}

	objectName := uuid.New().String() + path.Ext(filename)
	_, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return PublicURL(objectName), nil
}

// DeleteObject removes a stored image; used when an admin replaces or
// deletes a portfolio entry.
var DeleteObject = func(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}

func PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(config.MinioPublicURL, "/"), BucketName, objectName)
}

// ObjectNameFromURL reverses PublicURL. The second return is false for URLs
// outside our bucket, so externally hosted images are left alone.
func ObjectNameFromURL(imageURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", strings.TrimRight(config.MinioPublicURL, "/"), BucketName)
	objectName := strings.TrimPrefix(imageURL, prefix)
	if objectName == imageURL || objectName == "" {
		return "", false
	}
	return objectName, true
}
