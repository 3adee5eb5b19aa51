package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/repository"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

// CourseService handles course catalogue operations.
type CourseService struct {
	store        repository.Store
	validator    *validator.Validator
	storeTimeout time.Duration
}

// NewCourseService creates a new CourseService.
func NewCourseService(store repository.Store, v *validator.Validator, storeTimeout time.Duration) *CourseService {
	return &CourseService{
		store:        store,
		validator:    v,
		storeTimeout: orDefaultTimeout(storeTimeout),
	}
}

// CreateCourse stores a new course owned by an existing instructor or admin.
// Server-managed fields of course are overwritten.
func (s *CourseService) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	now := time.Now().UTC()
	c := *course
	c.ID = uuid.New().String()
	c.Title = strings.TrimSpace(c.Title)
	c.EnrollmentCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = domain.CourseStatusDraft
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Prerequisites == nil {
		c.Prerequisites = []string{}
	}

	if err := s.validator.ValidateCourse(&c); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}

	instructor, err := storeCall(ctx, s.storeTimeout, "users.get", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.GetByID(ctx, c.InstructorID)
	})
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	if instructor == nil {
		return nil, domain.ErrInstructorNotFound
	}
	if !instructor.CanTeach() {
		return nil, domain.ErrNotAnInstructor
	}

	err = storeExec(ctx, s.storeTimeout, "courses.create", func(ctx context.Context) error {
		return s.store.Courses.Create(ctx, &c)
	})
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	logger.FromContext(ctx).Info("Course created",
		slog.String("course_id", c.ID),
		slog.String("instructor_id", c.InstructorID))
	return &c, nil
}

// GetCourse returns the course with the given id.
func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := storeCall(ctx, s.storeTimeout, "courses.get", func(ctx context.Context) (*domain.Course, error) {
		return s.store.Courses.GetByID(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, domain.ErrCourseMissing
	}
	return course, nil
}

// GetCourseWithInstructor returns the course and a snapshot of its instructor.
// A deleted instructor yields a nil snapshot.
func (s *CourseService) GetCourseWithInstructor(ctx context.Context, id string) (*domain.CourseView, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	instructor, err := storeCall(ctx, s.storeTimeout, "users.get", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.GetByID(ctx, course.InstructorID)
	})
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}

	return &domain.CourseView{
		Course:     *course,
		Instructor: domain.NewUserSummary(instructor),
	}, nil
}

// ListCourses returns one page of courses matching filter, oldest first.
func (s *CourseService) ListCourses(ctx context.Context, filter domain.CourseFilter, page domain.Page) ([]domain.Course, error) {
	if err := s.validator.ValidateCourseFilter(&filter); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	if err := s.validator.ValidatePage(&page); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	courses, err := storeCall(ctx, s.storeTimeout, "courses.list", func(ctx context.Context) ([]domain.Course, error) {
		return collect(func(cb func(domain.Course) error) error {
			return s.store.Courses.List(ctx, filter, page, cb)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies the fields present in patch.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	if err := s.validator.ValidateCoursePatch(&patch); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	if patch.IsEmpty() {
		return s.GetCourse(ctx, id)
	}

	now := time.Now().UTC()
	patch.UpdatedAt = &now

	course, err := storeCall(ctx, s.storeTimeout, "courses.update", func(ctx context.Context) (*domain.Course, error) {
		return s.store.Courses.Update(ctx, id, patch)
	})
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if course == nil {
		return nil, domain.ErrCourseMissing
	}
	return course, nil
}

// DeleteCourse removes a course that no enrollment references.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	if _, err := s.GetCourse(ctx, id); err != nil {
		return err
	}

	enrolled, err := storeCall(ctx, s.storeTimeout, "enrollments.count", func(ctx context.Context) (int64, error) {
		return s.store.Enrollments.Count(ctx, domain.EnrollmentFilter{CourseID: id})
	})
	if err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}
	if enrolled > 0 {
		return domain.InvalidState(domain.CodeHasDependents,
			fmt.Sprintf("course has %d enrollments", enrolled))
	}

	deleted, err := storeCall(ctx, s.storeTimeout, "courses.delete", func(ctx context.Context) (bool, error) {
		return s.store.Courses.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if !deleted {
		return domain.ErrCourseMissing
	}

	logger.FromContext(ctx).Info("Course deleted", slog.String("course_id", id))
	return nil
}
