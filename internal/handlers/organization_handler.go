package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpspoonia/project-management-system/internal/services"
)

type OrganizationHandler struct {
	service services.OrganizationService
}

func NewOrganizationHandler(service services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// POST /organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		ContactEmail string `json:"contact_email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[org][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.service.Create(c.Request.Context(), req.Name, req.ContactEmail)
	if err != nil {
		log.Printf("[org][create][err] name=%q: %v", req.Name, err)
		writeError(c, err)
		return
	}
	log.Printf("[org][create][ok] id=%d slug=%q", org.ID, org.Slug)
	c.JSON(http.StatusCreated, org)
}

// GET /organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("[org][list][err] %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// DELETE /organizations/:slug
func (h *OrganizationHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")
	if err := h.service.Delete(c.Request.Context(), slug); err != nil {
		log.Printf("[org][delete][err] slug=%q: %v", slug, err)
		writeError(c, err)
		return
	}
	log.Printf("[org][delete][ok] slug=%q", slug)
	c.JSON(http.StatusOK, gin.H{"message": "organization deleted"})
}
