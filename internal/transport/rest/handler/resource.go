package handler

import (
	"net/http"

	"studyhub/internal/service"
)

// ResourceHandler serves the study resource list
type ResourceHandler struct {
	resourceSvc *service.ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceSvc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceSvc: resourceSvc}
}

// List handles GET /v1/resources
// @Summary List study resources
// @Tags resources
// @Produce json
// @Success 200 {array} model.Resource
// @Router /resources [get]
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resourceSvc.List())
}
