package service

import (
	"context"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// UserServiceInterface defines the interface for user operations.
// Used for dependency injection and mocking in tests.
type UserServiceInterface interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter, page domain.Page) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	// DeleteUser fails with domain.ErrHasDependents while the user is enrolled or teaches a course.
	DeleteUser(ctx context.Context, id string) error
}

// CourseServiceInterface defines the interface for course operations.
type CourseServiceInterface interface {
	CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	GetCourseWithInstructor(ctx context.Context, id string) (*domain.CourseView, error)
	ListCourses(ctx context.Context, filter domain.CourseFilter, page domain.Page) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error)
	// DeleteCourse fails with domain.ErrHasDependents while enrollments reference the course.
	DeleteCourse(ctx context.Context, id string) error
}

// EnrollmentServiceInterface defines the interface for the enrollment lifecycle.
type EnrollmentServiceInterface interface {
	// CreateEnrollment may return a non-nil enrollment together with
	// domain.ErrCounterNotUpdated: the enrollment was written but the course
	// counter was not adjusted.
	CreateEnrollment(ctx context.Context, input CreateEnrollmentInput) (*domain.Enrollment, error)
	GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error)
	GetEnrollmentWithDetails(ctx context.Context, id string) (*domain.EnrollmentView, error)
	ListEnrollments(ctx context.Context, filter domain.EnrollmentFilter, page domain.Page) ([]domain.Enrollment, error)
	ListStudentEnrollments(ctx context.Context, studentID string, page domain.Page) ([]domain.Enrollment, error)
	ListCourseEnrollments(ctx context.Context, courseID string, page domain.Page) ([]domain.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id string, patch domain.EnrollmentPatch) (*domain.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}

// ReconcilerInterface repairs denormalized enrollment counters.
type ReconcilerInterface interface {
	ReconcileCourse(ctx context.Context, courseID string) (*ReconcileResult, error)
	ReconcileAll(ctx context.Context) (int, error)
}
