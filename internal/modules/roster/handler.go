package roster

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinicops/internal/pkg/response"
	"clinicops/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shifts", h.ListShifts)
	rg.GET("/shifts/:id", h.GetShift)
	rg.POST("/shifts", h.CreateShift)
	rg.PUT("/shifts/:id", h.UpdateShift)
	rg.DELETE("/shifts/:id", h.CancelShift)
	rg.GET("/shift-templates", h.ListTemplates)
	rg.GET("/leave-requests", h.ListLeaves)
	rg.POST("/leave-requests", h.CreateLeave)
	rg.PUT("/leave-requests/:id/decision", h.DecideLeave)
}

func (h *Handler) CreateShift(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	shift, err := h.service.CreateShift(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"shift": shift})
}

func (h *Handler) UpdateShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	shift, err := h.service.UpdateShift(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"shift": shift})
}

func (h *Handler) CancelShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.CancelShift(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Shift cancelled"})
}

func (h *Handler) GetShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	shift, err := h.service.GetShift(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"shift": shift})
}

func (h *Handler) ListShifts(c *gin.Context) {
	f := repository.ShiftFilter{Status: c.Query("status")}
	if v := c.Query("user_id"); v != "" {
		f.UserID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("date_from"); v != "" {
		f.DateFrom, _ = time.ParseInLocation(dateLayout, v, time.UTC)
	}
	if v := c.Query("date_to"); v != "" {
		f.DateTo, _ = time.ParseInLocation(dateLayout, v, time.UTC)
	}

	shifts, err := h.service.ListShifts(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"shifts": shifts})
}

func (h *Handler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"templates": templates})
}

func (h *Handler) CreateLeave(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	lr, err := h.service.CreateLeave(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"leave_request": lr})
}

func (h *Handler) DecideLeave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	lr, err := h.service.DecideLeave(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_request": lr})
}

func (h *Handler) ListLeaves(c *gin.Context) {
	f := repository.LeaveFilter{Status: c.Query("status")}
	if v := c.Query("user_id"); v != "" {
		f.UserID, _ = strconv.ParseInt(v, 10, 64)
	}
	leaves, err := h.service.ListLeaves(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leave_requests": leaves})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid shift or leave data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrShiftConflict):
		response.Error(c, http.StatusConflict, "SHIFT_CONFLICT", "Schedule conflict detected for this staff member")
	case errors.Is(err, ErrLeaveDecided):
		response.Error(c, http.StatusConflict, "ALREADY_DECIDED", "Leave request has already been decided")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
