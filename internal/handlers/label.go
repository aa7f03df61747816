package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
)

// LabelHandler coordinates label HTTP handlers.
type LabelHandler struct {
	labelService *services.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelService *services.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
	}
}

// List returns all labels.
func (h *LabelHandler) List(c *gin.Context) {
	labels, err := h.labelService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch labels")
		return
	}

	setTotalCount(c, len(labels))
	c.JSON(http.StatusOK, dto.ToLabelDTOs(labels))
}

// Get returns a single label.
func (h *LabelHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid label ID")
		return
	}

	label, err := h.labelService.Get(id)
	if err != nil {
		respondLabelError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

// Create adds a new label.
func (h *LabelHandler) Create(c *gin.Context) {
	var req dto.LabelCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	label, err := h.labelService.Create(req.Name)
	if err != nil {
		respondLabelError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLabelDTO(*label))
}

// Update applies a partial update to a label.
func (h *LabelHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid label ID")
		return
	}

	var req dto.LabelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	label, err := h.labelService.Update(id, req)
	if err != nil {
		respondLabelError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelDTO(*label))
}

// Delete removes a label.
func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid label ID")
		return
	}

	if err := h.labelService.Delete(id); err != nil {
		respondLabelError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondLabelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLabelNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLabelNameTaken):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrLabelNameInvalid):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLabelInUse):
		apierrors.InvalidOperation(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
