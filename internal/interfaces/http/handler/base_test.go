package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestGetRequestID(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		c, _ := newTestContext()
		c.Set(middleware.RequestIDKey, "ctx-id")
		c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
		assert.Equal(t, "ctx-id", getRequestID(c))
	})

	t.Run("from header", func(t *testing.T) {
		c, _ := newTestContext()
		c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
		assert.Equal(t, "header-id", getRequestID(c))
	})

	t.Run("missing", func(t *testing.T) {
		c, _ := newTestContext()
		assert.Empty(t, getRequestID(c))
	})
}

func TestBaseHandler_Responses(t *testing.T) {
	h := &BaseHandler{}

	t.Run("Success", func(t *testing.T) {
		c, w := newTestContext()
		h.Success(c, map[string]string{"k": "v"})
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Meta)
	})

	t.Run("SuccessList", func(t *testing.T) {
		c, w := newTestContext()
		h.SuccessList(c, []int{1, 2, 3}, 3)
		resp := decode(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 3, resp.Meta.Total)
	})

	t.Run("Created", func(t *testing.T) {
		c, w := newTestContext()
		h.Created(c, "x")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("NoContent", func(t *testing.T) {
		c, w := newTestContext()
		h.NoContent(c)
		c.Writer.WriteHeaderNow()
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error carries request id", func(t *testing.T) {
		c, w := newTestContext()
		c.Set(middleware.RequestIDKey, "req-1")
		h.Error(c, http.StatusConflict, dto.ErrCodeConflict, "clash")
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeConflict, resp.Error.Code)
		assert.Equal(t, "req-1", resp.Error.RequestID)
	})
}

func TestBaseHandler_HandleError(t *testing.T) {
	h := &BaseHandler{}

	tests := []struct {
		name      string
		err       error
		status    int
		code      string
		step      string
		completed []string
	}{
		{
			name:   "domain error",
			err:    ledger.ErrLabelRequired,
			status: http.StatusBadRequest,
			code:   dto.ErrCodeLabelRequired,
		},
		{
			name:   "wrapped not found",
			err:    fmt.Errorf("load expense: %w", shared.ErrNotFound),
			status: http.StatusNotFound,
			code:   dto.ErrCodeNotFound,
		},
		{
			name:   "missing schema",
			err:    shared.ErrSystemNotProvisioned,
			status: http.StatusServiceUnavailable,
			code:   dto.ErrCodeUnavailable,
		},
		{
			name: "saga with domain cause",
			err: &ledgerapp.SagaError{
				Saga: "invoice_commit", Failed: "create_supplier",
				Err: ledger.ErrConfirmationMismatch,
			},
			status: http.StatusUnprocessableEntity,
			code:   dto.ErrCodeConfirmMismatch,
			step:   "create_supplier",
		},
		{
			name: "saga with infrastructure cause",
			err: &ledgerapp.SagaError{
				Saga: "invoice_commit", Failed: "upload_attachment",
				Completed: []string{"insert_expense", "insert_line_items"},
				Err:       errors.New("s3 timeout"),
			},
			status:    http.StatusBadGateway,
			code:      dto.ErrCodePartialFailure,
			step:      "upload_attachment",
			completed: []string{"insert_expense", "insert_line_items"},
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.step, resp.Error.Step)
			assert.Equal(t, tt.completed, resp.Error.Completed)
		})
	}

	t.Run("nil is a no-op", func(t *testing.T) {
		c, w := newTestContext()
		h.HandleError(c, nil)
		assert.Empty(t, w.Body.String())
	})
}

func TestBaseHandler_Params(t *testing.T) {
	h := &BaseHandler{}

	t.Run("invalid project id", func(t *testing.T) {
		c, w := newTestContext()
		c.Params = gin.Params{{Key: "project_id", Value: "nope"}}
		_, ok := h.projectID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decode(t, w).Error.Code)
	})

	t.Run("blank supplier id", func(t *testing.T) {
		c, w := newTestContext()
		c.Params = gin.Params{{Key: "supplier_id", Value: "  "}}
		_, ok := h.supplierID(c)
		assert.False(t, ok)
		assert.Equal(t, dto.ErrCodeSupplierRequired, decode(t, w).Error.Code)
	})

	t.Run("supplier slug", func(t *testing.T) {
		c, _ := newTestContext()
		c.Params = gin.Params{{Key: "supplier_id", Value: "beton-du-nord"}}
		id, ok := h.supplierID(c)
		assert.True(t, ok)
		assert.Equal(t, "beton-du-nord", id)
	})
}
