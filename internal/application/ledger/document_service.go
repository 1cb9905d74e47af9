package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultUndoWindow is how long a document replacement can be undone
const DefaultUndoWindow = 5 * time.Second

// ProgressFunc is called after each file of a batch with the count handled so far
type ProgressFunc func(completed, total int)

// localUndoSlots keeps undo slots in process memory. Entries are only
// removed by Take or Discard; UndoReplace enforces the window.
type localUndoSlots struct {
	mu    sync.Mutex
	slots map[uuid.UUID]ledger.DocumentReplacement
}

func newLocalUndoSlots() *localUndoSlots {
	return &localUndoSlots{slots: make(map[uuid.UUID]ledger.DocumentReplacement)}
}

func (l *localUndoSlots) Put(_ context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slots[projectID] = r
	return nil
}

func (l *localUndoSlots) Take(_ context.Context, projectID uuid.UUID) (*ledger.DocumentReplacement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.slots[projectID]
	if !ok {
		return nil, nil
	}
	delete(l.slots, projectID)
	return &r, nil
}

func (l *localUndoSlots) Discard(_ context.Context, projectID uuid.UUID, r ledger.DocumentReplacement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.slots[projectID]; ok && cur.Same(r) {
		delete(l.slots, projectID)
	}
	return nil
}

// DocumentService manages a supplier's document pool within a project
type DocumentService struct {
	repos      Repositories
	storage    ledger.DocumentStorage
	notifier   notifier
	logger     *zap.Logger
	undoWindow time.Duration
	now        func() time.Time
	undo       ledger.UndoStore
}

// DocumentServiceOption configures a DocumentService
type DocumentServiceOption func(*DocumentService)

// WithUndoWindow overrides how long a replacement can be undone
func WithUndoWindow(d time.Duration) DocumentServiceOption {
	return func(s *DocumentService) {
		if d > 0 {
			s.undoWindow = d
		}
	}
}

// WithUndoStore keeps undo slots in store instead of process memory, so an
// undo can land on any instance
func WithUndoStore(store ledger.UndoStore) DocumentServiceOption {
	return func(s *DocumentService) {
		if store != nil {
			s.undo = store
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) DocumentServiceOption {
	return func(s *DocumentService) {
		s.now = now
	}
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	repos Repositories,
	storage ledger.DocumentStorage,
	publisher ledger.ChangePublisher,
	logger *zap.Logger,
	opts ...DocumentServiceOption,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DocumentService{
		repos:      repos,
		storage:    storage,
		notifier:   notifier{publisher: publisher, logger: logger},
		logger:     logger,
		undoWindow: DefaultUndoWindow,
		now:        time.Now,
		undo:       newLocalUndoSlots(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var documentBuckets = []string{ledger.BucketInvoices, ledger.BucketDocuments}

// Upload stores files one after another into the supplier's pool. A failed
// file is recorded and the batch continues. progress, when given, is called
// after every file; the same positions are returned in UploadResult.Progress.
func (s *DocumentService) Upload(ctx context.Context, projectID uuid.UUID, supplierID string, files []UploadFile, progress ProgressFunc) (*UploadResult, error) {
	if strings.TrimSpace(supplierID) == "" {
		return nil, ledger.ErrSupplierRequired
	}
	result := &UploadResult{
		Total:    len(files),
		Uploaded: make([]DocumentResponse, 0, len(files)),
		Progress: make([]FileProgress, 0, len(files)),
	}
	for i, f := range files {
		step := FileProgress{FileName: f.Name, Status: FileStatusUploaded, Completed: i + 1, Total: len(files)}
		doc, err := s.storeOne(ctx, projectID, supplierID, f)
		if err != nil {
			step.Status = FileStatusFailed
			s.logger.Warn("Document upload failed",
				zap.String("project_id", projectID.String()),
				zap.String("supplier_id", supplierID),
				zap.String("file_name", f.Name),
				zap.Error(err))
			result.Failed = append(result.Failed, FileFailure{FileName: f.Name, Error: err.Error()})
		} else {
			result.Uploaded = append(result.Uploaded, ToDocumentResponse(doc))
		}
		result.Progress = append(result.Progress, step)
		if progress != nil {
			progress(i+1, len(files))
		}
	}
	if len(result.Uploaded) > 0 {
		s.notifier.notify(ctx, ledger.TableDocuments, projectID)
	}
	return result, nil
}

func (s *DocumentService) storeOne(ctx context.Context, projectID uuid.UUID, supplierID string, f UploadFile) (*ledger.UploadedDocument, error) {
	url, err := s.storage.Upload(ctx, documentBuckets, DocumentObjectKey(supplierID, f.Name), f.Data, f.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}
	doc := ledger.NewUploadedDocument(projectID, supplierID, url, CleanFileName(f.Name))
	doc.UploadedAt = s.now()
	if err := s.repos.Documents.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("record document: %w", err)
	}
	return doc, nil
}

// LinkToExpense copies the document URL onto an expense; the document stays in the pool
func (s *DocumentService) LinkToExpense(ctx context.Context, expenseID, documentID uuid.UUID) (*ExpenseResponse, error) {
	doc, err := s.repos.Documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	expense, err := s.repos.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Expenses.SetInvoiceImage(ctx, expenseID, doc.FileURL); err != nil {
		return nil, fmt.Errorf("link document: %w", err)
	}
	expense.LinkDocument(doc.FileURL)
	s.notifier.notify(ctx, ledger.TableExpenses, expense.ProjectID)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// LinkToDeposit copies the document URL onto a deposit's receipt
func (s *DocumentService) LinkToDeposit(ctx context.Context, depositID, documentID uuid.UUID) (*DepositResponse, error) {
	doc, err := s.repos.Documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	deposit, err := s.repos.Deposits.FindByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Deposits.SetReceiptImage(ctx, depositID, doc.FileURL); err != nil {
		return nil, fmt.Errorf("link receipt: %w", err)
	}
	deposit.LinkReceipt(doc.FileURL)
	s.notifier.notify(ctx, ledger.TableDeposits, deposit.ProjectID)
	resp := ToDepositResponse(deposit)
	return &resp, nil
}

// Replace uploads a new file for a document and remembers the previous one
// in the project's undo slot, overwriting any earlier entry. The old file is
// left in storage.
func (s *DocumentService) Replace(ctx context.Context, documentID uuid.UUID, file UploadFile) (*DocumentResponse, error) {
	doc, err := s.repos.Documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	url, err := s.storage.Upload(ctx, documentBuckets, DocumentObjectKey(doc.SupplierID, file.Name), file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	now := s.now()
	prev := ledger.DocumentReplacement{
		DocumentID:     doc.ID,
		PrevURL:        doc.FileURL,
		PrevName:       doc.FileName,
		PrevUploadedAt: doc.UploadedAt,
		ReplacedAt:     now,
	}
	if err := s.undo.Put(ctx, doc.ProjectID, prev); err != nil {
		return nil, fmt.Errorf("remember replacement: %w", err)
	}

	doc.FileURL = url
	doc.FileName = CleanFileName(file.Name)
	doc.UploadedAt = now
	if err := s.repos.Documents.Save(ctx, doc); err != nil {
		if derr := s.undo.Discard(ctx, doc.ProjectID, prev); derr != nil {
			s.logger.Warn("Failed to discard undo slot",
				zap.String("project_id", doc.ProjectID.String()),
				zap.Error(derr))
		}
		return nil, fmt.Errorf("save document: %w", err)
	}

	s.notifier.notify(ctx, ledger.TableDocuments, doc.ProjectID)
	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// UndoReplace restores the last replaced document of a project when called
// within the undo window. Afterwards it does nothing and reports Restored=false.
func (s *DocumentService) UndoReplace(ctx context.Context, projectID uuid.UUID) (*UndoResult, error) {
	prev, err := s.undo.Take(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load undo slot: %w", err)
	}
	if prev == nil {
		return &UndoResult{Restored: false}, nil
	}
	if s.now().Sub(prev.ReplacedAt) > s.undoWindow {
		s.logger.Debug("Undo window elapsed", zap.String("document_id", prev.DocumentID.String()))
		return &UndoResult{Restored: false}, nil
	}

	doc, err := s.repos.Documents.FindByID(ctx, prev.DocumentID)
	if err != nil {
		return nil, err
	}
	doc.FileURL = prev.PrevURL
	doc.FileName = prev.PrevName
	doc.UploadedAt = prev.PrevUploadedAt
	if err := s.repos.Documents.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("restore document: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableDocuments, projectID)
	resp := ToDocumentResponse(doc)
	return &UndoResult{Restored: true, Document: &resp}, nil
}

// Delete removes one document. Expenses or deposits that copied its URL keep it.
func (s *DocumentService) Delete(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.repos.Documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.repos.Documents.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableDocuments, doc.ProjectID)
	return nil
}

// DeleteAll removes every document of a supplier in a project
func (s *DocumentService) DeleteAll(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error) {
	n, err := s.repos.Documents.DeleteBySupplier(ctx, projectID, supplierID)
	if err != nil {
		return 0, fmt.Errorf("delete documents: %w", err)
	}
	if n > 0 {
		s.notifier.notify(ctx, ledger.TableDocuments, projectID)
	}
	return n, nil
}

// UpdateNote replaces a document's note
func (s *DocumentService) UpdateNote(ctx context.Context, documentID uuid.UUID, req UpdateDocumentNoteRequest) (*DocumentResponse, error) {
	doc, err := s.repos.Documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Documents.UpdateNote(ctx, documentID, req.Note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	doc.Note = req.Note
	s.notifier.notify(ctx, ledger.TableDocuments, doc.ProjectID)
	resp := ToDocumentResponse(doc)
	return &resp, nil
}
