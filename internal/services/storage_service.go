package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrStorageNotConfigured is returned when an upload is attempted without a
// storage backend configured.
var ErrStorageNotConfigured = errors.New("file storage is not configured")

// StorageService is a client for the external object-storage HTTP API that
// holds uploaded print files.
type StorageService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewStorageService creates a new StorageService.
func NewStorageService(baseURL, apiKey string) *StorageService {
	return &StorageService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// StoredObject identifies an uploaded file in external storage.
type StoredObject struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Upload stores the file content and returns its storage reference.
func (s *StorageService) Upload(filename, contentType string, content io.Reader) (*StoredObject, error) {
	if s.baseURL == "" {
		return nil, ErrStorageNotConfigured
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := writer.WriteField("content_type", contentType); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/objects", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Storage] Upload of %s failed: %v", filename, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[Storage] Unexpected status for %s: %d", filename, resp.StatusCode)
		return nil, fmt.Errorf("storage returned status %d", resp.StatusCode)
	}

	var stored StoredObject
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, err
	}

	return &stored, nil
}

// Delete removes a stored file by its storage reference.
func (s *StorageService) Delete(storageID string) error {
	if s.baseURL == "" || storageID == "" {
		return nil
	}

	req, err := http.NewRequest(http.MethodDelete, s.baseURL+"/v1/objects/"+storageID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Storage] Delete of %s failed: %v", storageID, err)
		return err
	}
	defer resp.Body.Close()

	// A missing object is fine: the goal is that it no longer exists.
	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && resp.StatusCode != http.StatusNotFound {
		log.Printf("[Storage] Unexpected delete status for %s: %d", storageID, resp.StatusCode)
		return fmt.Errorf("storage returned status %d", resp.StatusCode)
	}

	return nil
}
