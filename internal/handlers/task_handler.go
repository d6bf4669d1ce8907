package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// POST /projects/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title         string  `json:"title" binding:"required"`
		Description   *string `json:"description"`
		Status        *string `json:"status"`
		AssigneeEmail *string `json:"assignee_email"`
		DueDate       *string `json:"due_date"` // RFC3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := parseOptionalTime(req.DueDate, time.RFC3339)
	if err != nil {
		log.Printf("[task][create][err] invalid due_date=%q: %v", *req.DueDate, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (RFC3339)"})
		return
	}

	in := services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       due,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		in.Status = &status
	}

	task, err := h.service.Create(c.Request.Context(), projectID, in)
	if err != nil {
		log.Printf("[task][create][err] project_id=%d title=%q: %v", projectID, req.Title, err)
		writeError(c, err)
		return
	}
	log.Printf("[task][create][ok] id=%d project_id=%d title=%q", task.ID, projectID, task.Title)
	c.JSON(http.StatusCreated, task)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title         *string `json:"title"`
		Description   *string `json:"description"`
		Status        *string `json:"status"`
		AssigneeEmail *string `json:"assignee_email"`
		DueDate       *string `json:"due_date"` // RFC3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	due, err := parseOptionalTime(req.DueDate, time.RFC3339)
	if err != nil {
		log.Printf("[task][update][err] invalid due_date=%q: %v", *req.DueDate, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date (RFC3339)"})
		return
	}

	patch := models.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		AssigneeEmail: req.AssigneeEmail,
		DueDate:       due,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[task][update][err] id=%d: %v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[task][update][ok] id=%d", id)
	c.JSON(http.StatusOK, task)
}

// GET /projects/:id/tasks
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.service.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		log.Printf("[task][list][err] project_id=%d: %v", projectID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// POST /tasks/:id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// content and author_email must be present; blank values pass through,
	// the schema permits them.
	var req struct {
		Content     string `json:"content"`
		AuthorEmail string `json:"author_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][comment][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), taskID, req.Content, req.AuthorEmail)
	if err != nil {
		log.Printf("[task][comment][err] task_id=%d: %v", taskID, err)
		writeError(c, err)
		return
	}
	log.Printf("[task][comment][ok] id=%d task_id=%d", comment.ID, taskID)
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Comment added successfully",
		"comment_id": comment.ID,
	})
}
