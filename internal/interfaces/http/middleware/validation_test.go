package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reorderInput struct {
	SupplierIDs []string `json:"supplier_ids" binding:"required,min=1,dive,required"`
	Status      string   `json:"status" binding:"omitempty,oneof=pending paid"`
}

func validationRouter() *gin.Engine {
	SetupValidator()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/test", func(c *gin.Context) {
		var req reorderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestHandleValidationError(t *testing.T) {
	r := validationRouter()

	t.Run("reports json field names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"supplier_ids": [], "status": "late"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDHeader, "rid-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "rid-1", resp.Error.RequestID)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "Must contain at least 1 entries", fields["supplier_ids"])
		assert.Equal(t, "Must be one of: pending paid", fields["status"])
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"supplier_ids": `))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeInvalidJSON)
	})

	t.Run("valid input", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"supplier_ids": ["lafarge"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Name   string  `json:"name" validate:"required"`
		Short  string  `json:"short" validate:"min=5"`
		Long   string  `json:"long" validate:"max=3"`
		ID     string  `json:"id" validate:"uuid"`
		Amount float64 `json:"amount" validate:"gt=0"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	err := v.Struct(input{Short: "ab", Long: "abcdef", ID: "nope"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	got := map[string]string{}
	for _, e := range verrs {
		got[e.Field()] = getValidationMessage(e)
	}
	assert.Equal(t, "This field is required", got["name"])
	assert.Equal(t, "Must be at least 5 characters", got["short"])
	assert.Equal(t, "Must be at most 3 characters", got["long"])
	assert.Equal(t, "Invalid UUID format", got["id"])
	assert.Equal(t, "Must be greater than 0", got["amount"])
}
