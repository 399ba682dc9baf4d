package supabase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// objectUploader is the part of the storage-go client used for uploads.
type objectUploader interface {
	UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
}

type StorageClient struct {
	client  objectUploader
	bucket  string
	baseURL string
}

func NewStorageClient(client objectUploader, supabaseURL, bucket string) *StorageClient {
	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(supabaseURL, "/"),
	}
}

// ObjectPath returns users/{user_id}/thumbnails/{thumbnail_id}/{filename}.
func ObjectPath(userID, thumbnailID uuid.UUID, filename string) string {
	return fmt.Sprintf("users/%s/thumbnails/%s/%s", userID.String(), thumbnailID.String(), filename)
}

// Upload stores the image read from r and returns its public URL.
func (s *StorageClient) Upload(ctx context.Context, userID, thumbnailID uuid.UUID, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	storagePath := ObjectPath(userID, thumbnailID, filename)

	contentType := "image/png"
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, r, storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}
