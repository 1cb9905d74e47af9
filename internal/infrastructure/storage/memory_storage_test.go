package storage

import (
	"context"
	"testing"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryDocumentStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDocumentStorage("")
	buckets := []string{ledger.BucketInvoices, ledger.BucketDocuments}

	url, err := s.Upload(ctx, buckets, "k.pdf", []byte("data"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/storage/invoices/k.pdf", url)

	obj, ok := s.Object(ledger.BucketInvoices, "k.pdf")
	require.True(t, ok)
	assert.Equal(t, "data", string(obj.Data))
	assert.Equal(t, "application/pdf", obj.ContentType)

	s.Refuse[ledger.BucketInvoices] = true
	url, err = s.Upload(ctx, buckets, "k2.pdf", []byte("data"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/storage/documents/k2.pdf", url)

	s.Refuse[ledger.BucketDocuments] = true
	_, err = s.Upload(ctx, buckets, "k3.pdf", nil, "")
	assert.Error(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNew(t *testing.T) {
	s, err := New(&config.StorageConfig{Driver: config.StorageMemory}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryDocumentStorage{}, s)

	_, err = New(&config.StorageConfig{Driver: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
