package domain

import "time"

// CourseStatus represents the publication state of a course.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Course represents a course entity owned by one instructor.
type Course struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	ShortDescription *string      `json:"short_description,omitempty"`
	Status           CourseStatus `json:"status"`
	Price            float64      `json:"price"`
	DurationHours    *int         `json:"duration_hours,omitempty"`
	MaxStudents      *int         `json:"max_students,omitempty"`
	Tags             []string     `json:"tags"`
	ThumbnailURL     *string      `json:"thumbnail_url,omitempty"`
	Prerequisites    []string     `json:"prerequisites"`
	InstructorID     string       `json:"instructor_id"`
	EnrollmentCount  int          `json:"enrollment_count"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// IsEnrollable reports whether students may enroll into the course.
func (c *Course) IsEnrollable() bool {
	return c.Status == CourseStatusPublished
}

// CourseView is a course with a snapshot of its instructor.
// Instructor is nil when the instructor no longer exists.
type CourseView struct {
	Course
	Instructor *UserSummary `json:"instructor"`
}

// CoursePatch carries a partial course update. Nil fields are left untouched.
type CoursePatch struct {
	Title            *string       `json:"title,omitempty"`
	Description      *string       `json:"description,omitempty"`
	ShortDescription *string       `json:"short_description,omitempty"`
	Status           *CourseStatus `json:"status,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	DurationHours    *int          `json:"duration_hours,omitempty"`
	MaxStudents      *int          `json:"max_students,omitempty"`
	Tags             *[]string     `json:"tags,omitempty"`
	ThumbnailURL     *string       `json:"thumbnail_url,omitempty"`
	Prerequisites    *[]string     `json:"prerequisites,omitempty"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p CoursePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ShortDescription == nil && p.Status == nil &&
		p.Price == nil && p.DurationHours == nil && p.MaxStudents == nil && p.Tags == nil &&
		p.ThumbnailURL == nil && p.Prerequisites == nil
}

// CourseFilter narrows a course listing. Empty fields are not applied.
// Search is a case-insensitive substring match on title or description.
type CourseFilter struct {
	Status       *CourseStatus
	InstructorID string
	Search       string
}

// ValidStatuses contains all valid course statuses.
var ValidStatuses = []CourseStatus{CourseStatusDraft, CourseStatusPublished, CourseStatusArchived}

// IsValidStatus checks if a course status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
