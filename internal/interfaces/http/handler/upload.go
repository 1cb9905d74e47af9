package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const maxBatchFiles = 50

// formFiles reads every file sent under field. It writes the error response
// and returns false when the request carries none.
func (h *BaseHandler) formFiles(c *gin.Context, field string) ([]ledgerapp.UploadFile, bool) {
	if c.ContentType() != "multipart/form-data" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeUnsupportedContent, "Expected multipart/form-data")
		return nil, false
	}
	form, err := c.MultipartForm()
	if err != nil {
		h.BadRequest(c, "Malformed multipart body")
		return nil, false
	}
	headers := form.File[field]
	if len(headers) == 0 {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, fmt.Sprintf("No file in field %q", field))
		return nil, false
	}
	if len(headers) > maxBatchFiles {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, fmt.Sprintf("At most %d files per request", maxBatchFiles))
		return nil, false
	}

	files := make([]ledgerapp.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readFormFile(fh)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, err.Error())
			return nil, false
		}
		files = append(files, f)
	}
	return files, true
}

// optionalFormFile returns the single file under field, or nil when absent
func (h *BaseHandler) optionalFormFile(c *gin.Context, field string) (*ledgerapp.UploadFile, bool) {
	fh, err := c.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, true
	}
	if err != nil {
		h.BadRequest(c, "Malformed multipart body")
		return nil, false
	}
	f, err := readFormFile(fh)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, err.Error())
		return nil, false
	}
	return &f, true
}

func readFormFile(fh *multipart.FileHeader) (ledgerapp.UploadFile, error) {
	if fh.Size == 0 {
		return ledgerapp.UploadFile{}, fmt.Errorf("file %q is empty", fh.Filename)
	}
	src, err := fh.Open()
	if err != nil {
		return ledgerapp.UploadFile{}, fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return ledgerapp.UploadFile{}, fmt.Errorf("read %q: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return ledgerapp.UploadFile{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}
