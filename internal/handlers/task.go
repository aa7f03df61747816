package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/repository"
	"taskmanager/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns tasks matching the optional query filters. Omitting every
// filter returns the full set.
func (h *TaskHandler) List(c *gin.Context) {
	filter, ok := buildTaskFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	setTotalCount(c, len(tasks))
	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// Get returns a single task.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Create adds a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(req)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var req dto.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(id, req)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// buildTaskFilter assembles the list filter from the query string. On a
// malformed parameter it responds 400 and reports false.
func buildTaskFilter(c *gin.Context) (repository.TaskFilter, bool) {
	var filter repository.TaskFilter

	titleCont := c.Query("titleCont")
	if titleCont == "" {
		titleCont = c.Query("title")
	}
	if titleCont != "" {
		filter.TitleCont = &titleCont
	}

	if raw := c.Query("assigneeId"); raw != "" {
		assigneeID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid assigneeId")
			return filter, false
		}
		filter.AssigneeID = &assigneeID
	}

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	for _, raw := range c.QueryArray("labelId") {
		labelID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid labelId")
			return filter, false
		}
		filter.LabelIDs = append(filter.LabelIDs, labelID)
	}

	return filter, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskStatusNotFound),
		errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskTitleBlank):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
