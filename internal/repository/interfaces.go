package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// Lookups return (nil, nil) when the entity does not exist.
// Update returns (nil, nil) and Delete returns false when the id does not resolve.

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter, page domain.Page, callback func(domain.User) error) error
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CourseRepository defines methods for course data access.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context, filter domain.CourseFilter, page domain.Page, callback func(domain.Course) error) error
	StreamAll(ctx context.Context, callback func(domain.Course) error) error
	Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByInstructor(ctx context.Context, instructorID string) (int64, error)
	// IncrementEnrollmentCount adds delta to the counter atomically, never going below zero.
	// It reports whether the course exists.
	IncrementEnrollmentCount(ctx context.Context, id string, delta int) (bool, error)
	SetEnrollmentCount(ctx context.Context, id string, count int) (bool, error)
}

// EnrollmentRepository defines methods for enrollment data access.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	GetByID(ctx context.Context, id string) (*domain.Enrollment, error)
	GetByPair(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error)
	// List streams matching enrollments ordered by enrolled_at, then id.
	List(ctx context.Context, filter domain.EnrollmentFilter, page domain.Page, callback func(domain.Enrollment) error) error
	Update(ctx context.Context, id string, patch domain.EnrollmentPatch) (*domain.Enrollment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter domain.EnrollmentFilter) (int64, error)
}

// Store bundles the repositories of one storage engine.
type Store struct {
	Users       UserRepository
	Courses     CourseRepository
	Enrollments EnrollmentRepository
}

// NewPostgresStore wires the PostgreSQL repositories over one pool.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return Store{
		Users:       NewPostgresUserRepository(pool),
		Courses:     NewPostgresCourseRepository(pool),
		Enrollments: NewPostgresEnrollmentRepository(pool),
	}
}

// NewMongoStore wires the MongoDB repositories over one database.
func NewMongoStore(db *mongo.Database) Store {
	return Store{
		Users:       NewMongoUserRepository(db),
		Courses:     NewMongoCourseRepository(db),
		Enrollments: NewMongoEnrollmentRepository(db),
	}
}
