package handler

import (
	"errors"
	"net/http"
	"strings"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessList sends a list with its length in meta
func (h *BaseHandler) SuccessList(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, total))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response for a binding error
func (h *BaseHandler) ValidationError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleError converts an application error to an HTTP response.
//
// Domain errors map through their code. A *SagaError reports the failed
// step and the steps that already took effect; its status follows the cause
// when the cause is a domain error and is 502 otherwise. Anything else is a
// 500 and is logged.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := getRequestID(c)

	var sagaErr *ledgerapp.SagaError
	if errors.As(err, &sagaErr) {
		code := dto.ErrCodePartialFailure
		message := "The operation stopped part way: " + sagaErr.Failed + " failed"
		if de, ok := shared.AsDomainError(sagaErr.Err); ok {
			code = dto.NormalizeErrorCode(de.Code)
			message = de.Message
		} else {
			logger.L(c.Request.Context()).Error("saga failed",
				zap.String("saga", sagaErr.Saga),
				zap.String("step", sagaErr.Failed),
				zap.Strings("completed", sagaErr.Completed),
				zap.Error(sagaErr.Err))
		}
		resp := dto.NewErrorResponseWithRequestID(code, message, requestID)
		resp.Error.Step = sagaErr.Failed
		resp.Error.Completed = sagaErr.Completed
		c.JSON(dto.GetHTTPStatus(code), resp)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, domainErr.Message, requestID))
		return
	}

	logger.L(c.Request.Context()).Error("unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal,
		"An unexpected error occurred",
		requestID,
	))
}

// bindJSON binds the body into req and writes the validation response on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.ValidationError(c, err)
		return false
	}
	return true
}

// projectID parses :project_id
func (h *BaseHandler) projectID(c *gin.Context) (uuid.UUID, bool) {
	return h.uuidParam(c, "project_id", "Invalid project ID")
}

// uuidParam parses a UUID route parameter and writes a 400 when it is invalid
func (h *BaseHandler) uuidParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, message)
		return uuid.Nil, false
	}
	return id, true
}

// supplierID returns :supplier_id. Supplier IDs are slugs, not UUIDs.
func (h *BaseHandler) supplierID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("supplier_id"))
	if id == "" {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeSupplierRequired, "Supplier ID is required")
		return "", false
	}
	return id, true
}
