package identity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
)

// BucketPhotos stores profile photos in the project's storage bucket and
// serves them through the Firebase download-token URL scheme.
type BucketPhotos struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewBucketPhotos(ctx context.Context, bucketName string) (*BucketPhotos, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucketName must be provided to create a photo store")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &BucketPhotos{bucket: client.Bucket(bucketName), bucketName: bucketName}, nil
}

func (b *BucketPhotos) Save(ctx context.Context, uid, fileName string, data []byte, contentType string) (string, error) {
	objectName := fmt.Sprintf("usuarios/%s/%s", uid, fileName)

	writer := b.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	// The uid doubles as the Firebase download token.
	writer.Metadata = map[string]string{"firebaseStorageDownloadTokens": uid}

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write photo %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize photo write %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		b.bucketName, url.QueryEscape(objectName), uid), nil
}
