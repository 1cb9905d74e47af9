package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	repos := newTestRepos()
	storage := new(MockStorage)
	svc := NewDocumentService(repos.repositories(), storage, &recordingPublisher{}, zaptest.NewLogger(t))

	storage.On("Upload", ctx, []string{ledger.BucketInvoices, ledger.BucketDocuments}, mock.MatchedBy(func(k string) bool {
		return strings.HasPrefix(k, "beton/") && strings.HasSuffix(k, "_facture-mars.pdf")
	}), mock.Anything, mock.Anything).Return("https://cdn/beton/a.pdf", nil)
	storage.On("Upload", ctx, mock.Anything, mock.MatchedBy(func(k string) bool {
		return strings.HasSuffix(k, ".png")
	}), mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))
	repos.documents.On("Create", ctx, mock.MatchedBy(func(d *ledger.UploadedDocument) bool {
		return d.FileName == "facture-mars.pdf" || d.FileName == "Facture Mars.pdf"
	})).Return(nil)

	var progress [][2]int
	result, err := svc.Upload(ctx, projectID, "beton", []UploadFile{
		{Name: "Facture Mars.pdf", ContentType: "application/pdf", Data: []byte("a")},
		{Name: "photo.png", ContentType: "image/png", Data: []byte("b")},
	}, func(done, total int) { progress = append(progress, [2]int{done, total}) })

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Uploaded, 1)
	assert.Equal(t, "https://cdn/beton/a.pdf", result.Uploaded[0].FileURL)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "photo.png", result.Failed[0].FileName)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
	assert.Equal(t, []FileProgress{
		{FileName: "Facture Mars.pdf", Status: FileStatusUploaded, Completed: 1, Total: 2},
		{FileName: "photo.png", Status: FileStatusFailed, Completed: 2, Total: 2},
	}, result.Progress)
}

func TestDocumentService_ReplaceAndUndo(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	docID := uuid.New()
	original := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*DocumentService, *testRepos, *fakeClock, *ledger.UploadedDocument) {
		repos := newTestRepos()
		storage := new(MockStorage)
		clock := &fakeClock{now: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)}
		svc := NewDocumentService(repos.repositories(), storage, &recordingPublisher{}, zaptest.NewLogger(t),
			WithClock(clock.Now), WithUndoWindow(5*time.Second))

		doc := &ledger.UploadedDocument{
			ID: docID, ProjectID: projectID, SupplierID: "beton",
			FileURL: "https://cdn/old.pdf", FileName: "old.pdf", UploadedAt: original,
		}
		repos.documents.On("FindByID", ctx, docID).Return(doc, nil)
		repos.documents.On("Save", ctx, doc).Return(nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/new.pdf", nil)
		return svc, repos, clock, doc
	}

	t.Run("undo within the window restores url and name", func(t *testing.T) {
		svc, _, clock, doc := setup(t)

		replaced, err := svc.Replace(ctx, docID, UploadFile{Name: "new.pdf", Data: []byte("x")})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/new.pdf", replaced.FileURL)

		clock.Advance(4 * time.Second)
		undo, err := svc.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.True(t, undo.Restored)
		assert.Equal(t, "https://cdn/old.pdf", doc.FileURL)
		assert.Equal(t, "old.pdf", doc.FileName)
		assert.Equal(t, original, doc.UploadedAt)

		again, err := svc.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.False(t, again.Restored)
	})

	t.Run("undo after the window is a no-op", func(t *testing.T) {
		svc, repos, clock, doc := setup(t)

		_, err := svc.Replace(ctx, docID, UploadFile{Name: "new.pdf", Data: []byte("x")})
		require.NoError(t, err)

		clock.Advance(6 * time.Second)
		undo, err := svc.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.False(t, undo.Restored)
		assert.Equal(t, "https://cdn/new.pdf", doc.FileURL)
		repos.documents.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("a second replace overwrites the slot", func(t *testing.T) {
		svc, _, _, doc := setup(t)

		_, err := svc.Replace(ctx, docID, UploadFile{Name: "new.pdf"})
		require.NoError(t, err)
		_, err = svc.Replace(ctx, docID, UploadFile{Name: "newer.pdf"})
		require.NoError(t, err)

		undo, err := svc.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.True(t, undo.Restored)
		assert.Equal(t, "new.pdf", doc.FileName)
	})
}

func TestDocumentService_SharedUndoStore(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	docID := uuid.New()

	t.Run("undo on another instance restores the document", func(t *testing.T) {
		repos := newTestRepos()
		storage := new(MockStorage)
		slots := newLocalUndoSlots()
		doc := &ledger.UploadedDocument{ID: docID, ProjectID: projectID, SupplierID: "beton", FileURL: "https://cdn/old.pdf", FileName: "old.pdf"}
		repos.documents.On("FindByID", ctx, docID).Return(doc, nil)
		repos.documents.On("Save", ctx, doc).Return(nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/new.pdf", nil)

		first := NewDocumentService(repos.repositories(), storage, nil, zaptest.NewLogger(t), WithUndoStore(slots))
		second := NewDocumentService(repos.repositories(), storage, nil, zaptest.NewLogger(t), WithUndoStore(slots))

		_, err := first.Replace(ctx, docID, UploadFile{Name: "new.pdf"})
		require.NoError(t, err)

		undo, err := second.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.True(t, undo.Restored)
		assert.Equal(t, "https://cdn/old.pdf", doc.FileURL)

		again, err := first.UndoReplace(ctx, projectID)
		require.NoError(t, err)
		assert.False(t, again.Restored)
	})

	t.Run("store failure aborts the replace before saving", func(t *testing.T) {
		repos := newTestRepos()
		storage := new(MockStorage)
		undo := new(MockUndoStore)
		doc := &ledger.UploadedDocument{ID: docID, ProjectID: projectID, FileURL: "https://cdn/old.pdf"}
		repos.documents.On("FindByID", ctx, docID).Return(doc, nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/new.pdf", nil)
		undo.On("Put", ctx, projectID, mock.Anything).Return(errors.New("redis down"))

		svc := NewDocumentService(repos.repositories(), storage, nil, zaptest.NewLogger(t), WithUndoStore(undo))
		_, err := svc.Replace(ctx, docID, UploadFile{Name: "new.pdf"})
		require.Error(t, err)
		repos.documents.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.Equal(t, "https://cdn/old.pdf", doc.FileURL)
	})

	t.Run("failed save discards its own slot", func(t *testing.T) {
		repos := newTestRepos()
		storage := new(MockStorage)
		undo := new(MockUndoStore)
		doc := &ledger.UploadedDocument{ID: docID, ProjectID: projectID, FileURL: "https://cdn/old.pdf"}
		repos.documents.On("FindByID", ctx, docID).Return(doc, nil)
		repos.documents.On("Save", ctx, doc).Return(errors.New("db down"))
		storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn/new.pdf", nil)
		undo.On("Put", ctx, projectID, mock.Anything).Return(nil)
		undo.On("Discard", ctx, projectID, mock.MatchedBy(func(r ledger.DocumentReplacement) bool {
			return r.DocumentID == docID && r.PrevURL == "https://cdn/old.pdf"
		})).Return(nil)

		svc := NewDocumentService(repos.repositories(), storage, nil, zaptest.NewLogger(t), WithUndoStore(undo))
		_, err := svc.Replace(ctx, docID, UploadFile{Name: "new.pdf"})
		require.Error(t, err)
		undo.AssertExpectations(t)
	})
}

func TestDocumentService_Link(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos()
	svc := NewDocumentService(repos.repositories(), new(MockStorage), &recordingPublisher{}, zaptest.NewLogger(t))

	doc := &ledger.UploadedDocument{ID: uuid.New(), FileURL: "https://cdn/f.pdf"}
	expense := &ledger.Expense{Item: "BL 1"}
	expense.ID = uuid.New()
	deposit := &ledger.Deposit{}
	deposit.ID = uuid.New()

	repos.documents.On("FindByID", ctx, doc.ID).Return(doc, nil)
	repos.expenses.On("FindByID", ctx, expense.ID).Return(expense, nil)
	repos.expenses.On("SetInvoiceImage", ctx, expense.ID, "https://cdn/f.pdf").Return(nil)
	repos.deposits.On("FindByID", ctx, deposit.ID).Return(deposit, nil)
	repos.deposits.On("SetReceiptImage", ctx, deposit.ID, "https://cdn/f.pdf").Return(nil)

	e, err := svc.LinkToExpense(ctx, expense.ID, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, e.InvoiceImage)
	assert.Equal(t, "https://cdn/f.pdf", *e.InvoiceImage)

	d, err := svc.LinkToDeposit(ctx, deposit.ID, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, d.ReceiptImage)

	repos.documents.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCleanFileName(t *testing.T) {
	assert.Equal(t, "a-b-c.pdf", CleanFileName(`a/b\c.pdf`))
	assert.Equal(t, "12-30 scan.jpg", CleanFileName("12:30 scan.jpg"))
	assert.Equal(t, "document", CleanFileName("  "))
}
