package handler

import (
	labelingapp "github.com/erp/labeler/internal/application/labeling"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves product lines and workstations
type CatalogHandler struct {
	BaseHandler
	service *labelingapp.LabelService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *labelingapp.LabelService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListProductLines returns the stored product line names
func (h *CatalogHandler) ListProductLines(c *gin.Context) {
	resp, err := h.service.ListProductLines(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveProductLines replaces the product line list
func (h *CatalogHandler) SaveProductLines(c *gin.Context) {
	var req labelingapp.SaveProductLinesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.SaveProductLines(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListWorkstations returns every stored workstation
func (h *CatalogHandler) ListWorkstations(c *gin.Context) {
	resp, err := h.service.ListWorkstations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SaveWorkstations merges the posted workstations into the store
func (h *CatalogHandler) SaveWorkstations(c *gin.Context) {
	var req labelingapp.SaveWorkstationsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.SaveWorkstations(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListWorkstationsByProductLine returns the workstations of the product line in the path
func (h *CatalogHandler) ListWorkstationsByProductLine(c *gin.Context) {
	resp, err := h.service.ListWorkstationsByProductLine(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
