package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/service"
)

// WarningHeader carries non-fatal problems of a successful request.
const WarningHeader = "Warning"

// EnrollmentHandler handles enrollment-related HTTP requests.
type EnrollmentHandler struct {
	enrollments service.EnrollmentServiceInterface
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollments service.EnrollmentServiceInterface) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// CreateEnrollmentRequest is the body of POST /api/v1/enrollments.
type CreateEnrollmentRequest struct {
	StudentID string                   `json:"student_id" binding:"required"`
	CourseID  string                   `json:"course_id" binding:"required"`
	Status    *domain.EnrollmentStatus `json:"status"`
	Grade     *float64                 `json:"grade"`
	Notes     *string                  `json:"notes"`
}

// UpdateEnrollmentRequest is the body of PUT /api/v1/enrollments/:id.
// Timestamps are derived by the service and cannot be set here.
type UpdateEnrollmentRequest struct {
	Status   *domain.EnrollmentStatus `json:"status"`
	Progress *float64                 `json:"progress"`
	Grade    *float64                 `json:"grade"`
	Notes    *string                  `json:"notes"`
}

type listEnrollmentsQuery struct {
	pageQuery
	Status    *string `form:"status"`
	StudentID string  `form:"student_id" binding:"omitempty,uuid"`
	CourseID  string  `form:"course_id" binding:"omitempty,uuid"`
}

// CreateEnrollment handles POST /api/v1/enrollments
//
// When the enrollment was stored but the course counter could not be updated
// the response is still 201, with the problem reported in the Warning header.
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req CreateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollments.CreateEnrollment(c.Request.Context(), service.CreateEnrollmentInput{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    req.Status,
		Grade:     req.Grade,
		Notes:     req.Notes,
	})
	if err != nil {
		if enrollment == nil || !errors.Is(err, domain.ErrCounterNotUpdated) {
			respondError(c, err)
			return
		}
		logger.FromContext(c.Request.Context()).Warn("Enrollment created with stale course counter",
			slog.String("enrollment_id", enrollment.ID),
			slog.String("error", err.Error()))
		c.Header(WarningHeader, `199 - "course enrollment count was not updated"`)
	}

	c.JSON(http.StatusCreated, enrollment)
}

// ListEnrollments handles GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	var q listEnrollmentsQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := domain.EnrollmentFilter{StudentID: q.StudentID, CourseID: q.CourseID}
	if q.Status != nil {
		if !domain.IsValidEnrollmentStatus(*q.Status) {
			badRequest(c, "status must be one of: active, completed, dropped, suspended")
			return
		}
		status := domain.EnrollmentStatus(*q.Status)
		filter.Status = &status
	}

	enrollments, err := h.enrollments.ListEnrollments(c.Request.Context(), filter, q.page())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// ListStudentEnrollments handles GET /api/v1/enrollments/student/:id
func (h *EnrollmentHandler) ListStudentEnrollments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}

	enrollments, err := h.enrollments.ListStudentEnrollments(c.Request.Context(), id, q.page())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// GetEnrollment handles GET /api/v1/enrollments/:id and embeds student and course.
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.enrollments.GetEnrollmentWithDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateEnrollment handles PUT /api/v1/enrollments/:id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollments.UpdateEnrollment(c.Request.Context(), id, domain.EnrollmentPatch{
		Status:   req.Status,
		Progress: req.Progress,
		Grade:    req.Grade,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// DeleteEnrollment handles DELETE /api/v1/enrollments/:id
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.enrollments.DeleteEnrollment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
