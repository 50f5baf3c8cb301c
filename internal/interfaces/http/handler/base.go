package handler

import (
	"errors"
	"net/http"

	"github.com/erp/labeler/internal/domain/shared"
	"github.com/erp/labeler/internal/infrastructure/printing"
	"github.com/erp/labeler/internal/interfaces/http/dto"
	"github.com/erp/labeler/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// BindJSON binds the request body, answering the request on failure
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleBindError(c, err)
		return false
	}
	return true
}

// HandleError converts domain and rendering errors to HTTP responses.
// Anything else becomes an opaque 500 and is recorded on the gin context
// for the request logger.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	_ = c.Error(err)

	var renderErr *printing.RenderError
	if errors.As(err, &renderErr) {
		code := dto.NormalizeErrorCode(renderErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, "Failed to generate label PDF")
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
