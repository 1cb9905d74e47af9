package storage

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
)

// Ensure MemoryDocumentStorage implements DocumentStorage
var _ ledger.DocumentStorage = (*MemoryDocumentStorage)(nil)

// StoredObject is a file held by MemoryDocumentStorage
type StoredObject struct {
	Data        []byte
	ContentType string
}

// MemoryDocumentStorage keeps files in memory. Use it for development and
// tests; buckets listed in Refuse reject every upload.
type MemoryDocumentStorage struct {
	BaseURL string
	Refuse  map[string]bool

	mu      sync.RWMutex
	objects map[string]StoredObject
}

// NewMemoryDocumentStorage creates an empty MemoryDocumentStorage
func NewMemoryDocumentStorage(baseURL string) *MemoryDocumentStorage {
	if baseURL == "" {
		baseURL = "http://localhost/storage"
	}
	return &MemoryDocumentStorage{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Refuse:  map[string]bool{},
		objects: map[string]StoredObject{},
	}
}

// Upload stores data in the first bucket not listed in Refuse
func (s *MemoryDocumentStorage) Upload(ctx context.Context, buckets []string, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	if len(buckets) == 0 {
		return "", ErrNoBucket
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bucket := range buckets {
		if s.Refuse[bucket] {
			continue
		}
		s.objects[bucket+"/"+key] = StoredObject{Data: append([]byte(nil), data...), ContentType: contentType}
		telemetry.RecordUpload(ctx, bucket)
		return s.PublicURL(bucket, key), nil
	}
	return "", errors.New("failed to upload object: every bucket refused")
}

// PublicURL returns the address an object would be served from
func (s *MemoryDocumentStorage) PublicURL(bucket, key string) string {
	return s.BaseURL + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

// Object returns a stored object
func (s *MemoryDocumentStorage) Object(bucket, key string) (StoredObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[bucket+"/"+key]
	return obj, ok
}

// Len returns the number of stored objects
func (s *MemoryDocumentStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
