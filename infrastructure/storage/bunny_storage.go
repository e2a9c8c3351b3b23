package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"geoshare/pkg/config"
	"geoshare/pkg/logger"
)

const thumbnailWidth = 320

// BunnyStorage stores files in a Bunny CDN storage zone over its HTTP API
// and serves them through the zone's pull CDN.
type BunnyStorage struct {
	storageZone string
	accessKey   string
	baseURL     string
	cdnURL      string
	client      *http.Client
}

func NewBunnyStorage(cfg config.BunnyConfig) *BunnyStorage {
	return &BunnyStorage{
		storageZone: cfg.StorageZone,
		accessKey:   cfg.AccessKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		cdnURL:      strings.TrimRight(cfg.CDNUrl, "/"),
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *BunnyStorage) Upload(ctx context.Context, key, contentType string, data []byte) error {
	url := fmt.Sprintf("%s/%s/%s", s.baseURL, s.storageZone, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("AccessKey", s.accessKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	logger.Storage("file_uploaded", "File uploaded to storage", map[string]interface{}{
		"key":  key,
		"size": len(data),
	})
	return nil
}

func (s *BunnyStorage) Delete(ctx context.Context, key string) error {
	url := fmt.Sprintf("%s/%s/%s", s.baseURL, s.storageZone, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("AccessKey", s.accessKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	defer resp.Body.Close()

	// 404 means the file is already gone, which is what we wanted.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete failed with status %d", resp.StatusCode)
	}

	logger.Storage("file_deleted", "File deleted from storage", map[string]interface{}{
		"key": key,
	})
	return nil
}

func (s *BunnyStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.cdnURL, key)
}

// ThumbnailURL serves a downscaled variant through the Bunny optimizer.
func (s *BunnyStorage) ThumbnailURL(key string) string {
	return fmt.Sprintf("%s/%s?width=%d", s.cdnURL, key, thumbnailWidth)
}
