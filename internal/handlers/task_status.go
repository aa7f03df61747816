package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
)

// TaskStatusHandler coordinates task status HTTP handlers.
type TaskStatusHandler struct {
	statusService *services.TaskStatusService
}

// NewTaskStatusHandler creates a new TaskStatusHandler.
func NewTaskStatusHandler(statusService *services.TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{
		statusService: statusService,
	}
}

// List returns all task statuses.
func (h *TaskStatusHandler) List(c *gin.Context) {
	statuses, err := h.statusService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch task statuses")
		return
	}

	setTotalCount(c, len(statuses))
	c.JSON(http.StatusOK, dto.ToTaskStatusDTOs(statuses))
}

// Get returns a single task status.
func (h *TaskStatusHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task status ID")
		return
	}

	status, err := h.statusService.Get(id)
	if err != nil {
		respondTaskStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatusDTO(*status))
}

// Create adds a new task status.
func (h *TaskStatusHandler) Create(c *gin.Context) {
	var req dto.TaskStatusCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.statusService.Create(services.CreateTaskStatusInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondTaskStatusError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskStatusDTO(*status))
}

// Update applies a partial update to a task status.
func (h *TaskStatusHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task status ID")
		return
	}

	var req dto.TaskStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.statusService.Update(id, req)
	if err != nil {
		respondTaskStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatusDTO(*status))
}

// Delete removes a task status.
func (h *TaskStatusHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task status ID")
		return
	}

	if err := h.statusService.Delete(id); err != nil {
		respondTaskStatusError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskStatusNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrStatusNameTaken),
		errors.Is(err, services.ErrStatusSlugTaken):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrStatusNameBlank),
		errors.Is(err, services.ErrStatusSlugBlank):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStatusInUse):
		apierrors.InvalidOperation(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
