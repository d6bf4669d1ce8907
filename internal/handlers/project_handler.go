package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/services"
)

type ProjectHandler struct {
	service services.ProjectService
}

func NewProjectHandler(service services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// POST /organizations/:slug/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		DueDate     *string `json:"due_date"` // YYYY-MM-DD
	}
	orgSlug := c.Param("slug")

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := parseOptionalTime(req.DueDate, dateLayout)
	if err != nil {
		log.Printf("[project][create][err] invalid due_date=%q: %v", *req.DueDate, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (YYYY-MM-DD)"})
		return
	}

	in := services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     due,
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		in.Status = &status
	}

	project, err := h.service.Create(c.Request.Context(), orgSlug, in)
	if err != nil {
		log.Printf("[project][create][err] org=%q name=%q: %v", orgSlug, req.Name, err)
		writeError(c, err)
		return
	}
	log.Printf("[project][create][ok] id=%d org=%q name=%q", project.ID, orgSlug, project.Name)
	c.JSON(http.StatusCreated, project)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		DueDate     *string `json:"due_date"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := parseOptionalTime(req.DueDate, dateLayout)
	if err != nil {
		log.Printf("[project][update][err] invalid due_date=%q: %v", *req.DueDate, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (YYYY-MM-DD)"})
		return
	}

	patch := models.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     due,
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		patch.Status = &status
	}

	project, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[project][update][err] id=%d: %v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[project][update][ok] id=%d", id)
	c.JSON(http.StatusOK, project)
}

// GET /organizations/:slug/projects
func (h *ProjectHandler) ListByOrganization(c *gin.Context) {
	orgSlug := c.Param("slug")
	projects, err := h.service.ListByOrganization(c.Request.Context(), orgSlug)
	if err != nil {
		log.Printf("[project][list][err] org=%q: %v", orgSlug, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
