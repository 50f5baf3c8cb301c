package handler

import (
	"net/http"
	"strconv"

	labelingapp "github.com/erp/labeler/internal/application/labeling"
	"github.com/gin-gonic/gin"
)

// LabelHandler serves label sheet rendering and part lookups
type LabelHandler struct {
	BaseHandler
	service *labelingapp.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(service *labelingapp.LabelService) *LabelHandler {
	return &LabelHandler{service: service}
}

// GeneratePDF renders the posted records and returns labels.pdf as a download.
// Body: {"labels_data": [{"left": {...}, "right": {...}}, ...]}
func (h *LabelHandler) GeneratePDF(c *gin.Context) {
	var req labelingapp.GenerateSheetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.GenerateSheet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Header("X-Label-Count", strconv.Itoa(result.LabelCount))
	c.Header("X-Page-Count", strconv.Itoa(result.PageCount))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// CheckFloorStock reports whether a part number is supplied from floor stock
func (h *LabelHandler) CheckFloorStock(c *gin.Context) {
	var req labelingapp.PartNumberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status, err := h.service.CheckFloorStock(c.Request.Context(), req.PartNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// SearchPart lists the workstations whose labels carry a part number
func (h *LabelHandler) SearchPart(c *gin.Context) {
	var req labelingapp.PartNumberRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.SearchPart(c.Request.Context(), req.PartNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
