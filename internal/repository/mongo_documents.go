package repository

import (
	"time"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// Collection names in the Mongo store.
const (
	usersCollection       = "users"
	coursesCollection     = "courses"
	enrollmentsCollection = "enrollments"
)

// Documents keep the domain ids as string _id values so both engines share one id format.

type userDocument struct {
	ID             string     `bson:"_id"`
	Email          string     `bson:"email"`
	Username       string     `bson:"username"`
	FirstName      string     `bson:"first_name"`
	LastName       string     `bson:"last_name"`
	Role           string     `bson:"role"`
	IsActive       bool       `bson:"is_active"`
	ProfilePicture *string    `bson:"profile_picture,omitempty"`
	HashedPassword string     `bson:"hashed_password"`
	CreatedAt      time.Time  `bson:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at"`
	LastLogin      *time.Time `bson:"last_login,omitempty"`
}

func newUserDocument(u *domain.User) userDocument {
	return userDocument{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           string(u.Role),
		IsActive:       u.Active,
		ProfilePicture: u.ProfilePicture,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		LastLogin:      u.LastLogin,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID,
		Email:          d.Email,
		Username:       d.Username,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Role:           domain.Role(d.Role),
		Active:         d.IsActive,
		ProfilePicture: d.ProfilePicture,
		HashedPassword: d.HashedPassword,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		LastLogin:      d.LastLogin,
	}
}

type courseDocument struct {
	ID               string    `bson:"_id"`
	Title            string    `bson:"title"`
	Description      string    `bson:"description"`
	ShortDescription *string   `bson:"short_description,omitempty"`
	Status           string    `bson:"status"`
	Price            float64   `bson:"price"`
	DurationHours    *int      `bson:"duration_hours,omitempty"`
	MaxStudents      *int      `bson:"max_students,omitempty"`
	Tags             []string  `bson:"tags"`
	ThumbnailURL     *string   `bson:"thumbnail_url,omitempty"`
	Prerequisites    []string  `bson:"prerequisites"`
	InstructorID     string    `bson:"instructor_id"`
	EnrollmentCount  int       `bson:"enrollment_count"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}

func newCourseDocument(c *domain.Course) courseDocument {
	return courseDocument{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Status:           string(c.Status),
		Price:            c.Price,
		DurationHours:    c.DurationHours,
		MaxStudents:      c.MaxStudents,
		Tags:             nonNil(c.Tags),
		ThumbnailURL:     c.ThumbnailURL,
		Prerequisites:    nonNil(c.Prerequisites),
		InstructorID:     c.InstructorID,
		EnrollmentCount:  c.EnrollmentCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (d courseDocument) toDomain() *domain.Course {
	return &domain.Course{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		Status:           domain.CourseStatus(d.Status),
		Price:            d.Price,
		DurationHours:    d.DurationHours,
		MaxStudents:      d.MaxStudents,
		Tags:             nonNil(d.Tags),
		ThumbnailURL:     d.ThumbnailURL,
		Prerequisites:    nonNil(d.Prerequisites),
		InstructorID:     d.InstructorID,
		EnrollmentCount:  d.EnrollmentCount,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type enrollmentDocument struct {
	ID             string     `bson:"_id"`
	StudentID      string     `bson:"student_id"`
	CourseID       string     `bson:"course_id"`
	Status         string     `bson:"status"`
	Progress       float64    `bson:"progress"`
	Grade          *float64   `bson:"grade,omitempty"`
	Notes          *string    `bson:"notes,omitempty"`
	EnrolledAt     time.Time  `bson:"enrolled_at"`
	CompletionDate *time.Time `bson:"completion_date,omitempty"`
	LastAccessed   *time.Time `bson:"last_accessed,omitempty"`
}

func newEnrollmentDocument(e *domain.Enrollment) enrollmentDocument {
	return enrollmentDocument{
		ID:             e.ID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		Status:         string(e.Status),
		Progress:       e.Progress,
		Grade:          e.Grade,
		Notes:          e.Notes,
		EnrolledAt:     e.EnrolledAt,
		CompletionDate: e.CompletionDate,
		LastAccessed:   e.LastAccessed,
	}
}

func (d enrollmentDocument) toDomain() *domain.Enrollment {
	return &domain.Enrollment{
		ID:             d.ID,
		StudentID:      d.StudentID,
		CourseID:       d.CourseID,
		Status:         domain.EnrollmentStatus(d.Status),
		Progress:       d.Progress,
		Grade:          d.Grade,
		Notes:          d.Notes,
		EnrolledAt:     d.EnrolledAt,
		CompletionDate: d.CompletionDate,
		LastAccessed:   d.LastAccessed,
	}
}
