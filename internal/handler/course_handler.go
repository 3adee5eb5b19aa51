package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/service"
)

// CourseHandler handles course-related HTTP requests.
type CourseHandler struct {
	courses     service.CourseServiceInterface
	enrollments service.EnrollmentServiceInterface
	reconciler  service.ReconcilerInterface
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(
	courses service.CourseServiceInterface,
	enrollments service.EnrollmentServiceInterface,
	reconciler service.ReconcilerInterface,
) *CourseHandler {
	return &CourseHandler{
		courses:     courses,
		enrollments: enrollments,
		reconciler:  reconciler,
	}
}

// CreateCourseRequest is the body of POST /api/v1/courses.
type CreateCourseRequest struct {
	Title            string              `json:"title" binding:"required"`
	Description      string              `json:"description" binding:"required"`
	ShortDescription *string             `json:"short_description"`
	Status           domain.CourseStatus `json:"status"`
	Price            float64             `json:"price"`
	DurationHours    *int                `json:"duration_hours"`
	MaxStudents      *int                `json:"max_students"`
	Tags             []string            `json:"tags"`
	ThumbnailURL     *string             `json:"thumbnail_url"`
	Prerequisites    []string            `json:"prerequisites"`
	InstructorID     string              `json:"instructor_id" binding:"required"`
}

type listCoursesQuery struct {
	pageQuery
	Status       *string `form:"status"`
	InstructorID string  `form:"instructor_id" binding:"omitempty,uuid"`
	Search       string  `form:"search"`
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courses.CreateCourse(c.Request.Context(), &domain.Course{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Status:           req.Status,
		Price:            req.Price,
		DurationHours:    req.DurationHours,
		MaxStudents:      req.MaxStudents,
		Tags:             req.Tags,
		ThumbnailURL:     req.ThumbnailURL,
		Prerequisites:    req.Prerequisites,
		InstructorID:     req.InstructorID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var q listCoursesQuery
	if !bindQuery(c, &q) {
		return
	}

	filter := domain.CourseFilter{InstructorID: q.InstructorID, Search: q.Search}
	if q.Status != nil {
		if !domain.IsValidStatus(*q.Status) {
			badRequest(c, "status must be one of: draft, published, archived")
			return
		}
		status := domain.CourseStatus(*q.Status)
		filter.Status = &status
	}

	courses, err := h.courses.ListCourses(c.Request.Context(), filter, q.page())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/:id and embeds the instructor.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.courses.GetCourseWithInstructor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch domain.CoursePatch
	if !bindJSON(c, &patch) {
		return
	}
	patch.UpdatedAt = nil

	course, err := h.courses.UpdateCourse(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.courses.DeleteCourse(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCourseEnrollments handles GET /api/v1/courses/:id/enrollments
func (h *CourseHandler) ListCourseEnrollments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}

	enrollments, err := h.enrollments.ListCourseEnrollments(c.Request.Context(), id, q.page())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// ReconcileCourse handles POST /api/v1/courses/:id/reconcile
func (h *CourseHandler) ReconcileCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.reconciler.ReconcileCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
