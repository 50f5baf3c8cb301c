package handler

import (
	"github.com/erp/labeler/internal/interfaces/http/router"
)

// LabelRoutes creates the route group for sheet rendering and lookups
func LabelRoutes(h *LabelHandler) *router.DomainGroup {
	return router.NewDomainGroup("/labels").
		POST("/pdf", h.GeneratePDF).
		POST("/floor-stock/check", h.CheckFloorStock).
		POST("/search", h.SearchPart)
}

// ProductLineRoutes creates the route group for product lines
func ProductLineRoutes(h *CatalogHandler) *router.DomainGroup {
	return router.NewDomainGroup("/product-lines").
		GET("", h.ListProductLines).
		PUT("", h.SaveProductLines)
}

// WorkstationRoutes creates the route group for workstations
func WorkstationRoutes(h *CatalogHandler) *router.DomainGroup {
	return router.NewDomainGroup("/workstations").
		GET("", h.ListWorkstations).
		PUT("", h.SaveWorkstations).
		GET("/by-product-line/:name", h.ListWorkstationsByProductLine)
}

// SystemRoutes creates the route group for system endpoints
func SystemRoutes(h *SystemHandler) *router.DomainGroup {
	return router.NewDomainGroup("/system").
		GET("/ping", h.Ping).
		GET("/info", h.GetSystemInfo)
}
