package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/TechnetDev/kaamhai-backend-sub001/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// BucketStorage uploads employee documents to an object storage bucket
// over its HTTP API.
type BucketStorage struct {
	projectID  string
	bucketName string
	http       *resty.Client
}

func NewBucketStorage(cfg *config.Config) *BucketStorage {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetAuthToken(cfg.BucketApiKey)

	return &BucketStorage{
		projectID:  cfg.BucketProjectID,
		bucketName: cfg.BucketName,
		http:       client,
	}
}

// UploadFile streams a multipart upload into the bucket and returns the
// public URI of the stored object.
func (s *BucketStorage) UploadFile(file *multipart.FileHeader, prefix string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %v", err)
	}

	ext := filepath.Ext(file.Filename)
	objectPath := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)

	url := fmt.Sprintf("https://%s.supabase.co/storage/v1/object/%s/%s",
		s.projectID, s.bucketName, objectPath)

	contentType := file.Header.Get("Content-Type")
	resp, err := s.http.R().
		SetHeader("Content-Type", contentType).
		SetBody(fileBytes).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %v", err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return s.PublicURL(objectPath), nil
}

// DeleteFile removes an object from the bucket.
func (s *BucketStorage) DeleteFile(objectPath string) error {
	url := fmt.Sprintf("https://%s.supabase.co/storage/v1/object/%s/%s",
		s.projectID, s.bucketName, objectPath)

	resp, err := s.http.R().Delete(url)
	if err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 204 {
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

// PublicURL returns the public URL for a stored object.
func (s *BucketStorage) PublicURL(objectPath string) string {
	return fmt.Sprintf("https://%s.supabase.co/storage/v1/object/public/%s/%s",
		s.projectID, s.bucketName, objectPath)
}

// StoreDocumentFile picks bucket storage when configured, local disk
// otherwise. Returns the URI to persist on the document entry.
func StoreDocumentFile(file *multipart.FileHeader, prefix string) (string, error) {
	cfg := config.AppConfig
	if cfg.BucketProjectID != "" {
		return NewBucketStorage(cfg).UploadFile(file, prefix)
	}

	path, err := SaveUploadedFile(file, filepath.Join(cfg.UploadDir, prefix))
	if err != nil {
		return "", err
	}
	return GetFileURL(path), nil
}
