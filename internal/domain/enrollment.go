package domain

import "time"

// EnrollmentStatus represents the state of a student's enrollment in a course.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusSuspended EnrollmentStatus = "suspended"
)

// Enrollment links one student to one course.
type Enrollment struct {
	ID             string           `json:"id"`
	StudentID      string           `json:"student_id"`
	CourseID       string           `json:"course_id"`
	Status         EnrollmentStatus `json:"status"`
	Progress       float64          `json:"progress"`
	Grade          *float64         `json:"grade,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	CompletionDate *time.Time       `json:"completion_date,omitempty"`
	LastAccessed   *time.Time       `json:"last_accessed,omitempty"`
}

// EnrollmentPatch carries a partial enrollment update. Nil fields are left untouched.
// LastAccessed and CompletionDate are never supplied by callers; see Stamped.
type EnrollmentPatch struct {
	Status         *EnrollmentStatus `json:"status,omitempty"`
	Progress       *float64          `json:"progress,omitempty"`
	Grade          *float64          `json:"grade,omitempty"`
	Notes          *string           `json:"notes,omitempty"`
	LastAccessed   *time.Time        `json:"last_accessed,omitempty"`
	CompletionDate *time.Time        `json:"completion_date,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EnrollmentPatch) IsEmpty() bool {
	return p.Status == nil && p.Progress == nil && p.Grade == nil && p.Notes == nil &&
		p.LastAccessed == nil && p.CompletionDate == nil
}

// Stamped returns a copy of the patch with the derived timestamps set.
// Touching progress records an access; moving to completed records the completion,
// every time it happens.
func (p EnrollmentPatch) Stamped(now time.Time) EnrollmentPatch {
	out := p
	out.LastAccessed = nil
	out.CompletionDate = nil
	if p.Progress != nil {
		t := now
		out.LastAccessed = &t
	}
	if p.Status != nil && *p.Status == EnrollmentStatusCompleted {
		t := now
		out.CompletionDate = &t
	}
	return out
}

// Apply copies the non-nil patch fields onto e.
func (p EnrollmentPatch) Apply(e *Enrollment) {
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Progress != nil {
		e.Progress = *p.Progress
	}
	if p.Grade != nil {
		g := *p.Grade
		e.Grade = &g
	}
	if p.Notes != nil {
		n := *p.Notes
		e.Notes = &n
	}
	if p.LastAccessed != nil {
		t := *p.LastAccessed
		e.LastAccessed = &t
	}
	if p.CompletionDate != nil {
		t := *p.CompletionDate
		e.CompletionDate = &t
	}
}

// EnrollmentFilter narrows an enrollment listing. Empty fields are not applied.
type EnrollmentFilter struct {
	Status    *EnrollmentStatus
	StudentID string
	CourseID  string
}

// UserSummary is the user snapshot embedded in enrollment and course views.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CourseSummary is the course snapshot embedded in an EnrollmentView.
type CourseSummary struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      CourseStatus `json:"status"`
}

// EnrollmentView is an enrollment with snapshots of the entities it references.
// A snapshot is nil when the referenced entity no longer exists.
type EnrollmentView struct {
	Enrollment
	Student *UserSummary   `json:"student"`
	Course  *CourseSummary `json:"course"`
}

// NewUserSummary builds the snapshot of u.
func NewUserSummary(u *User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// NewCourseSummary builds the course snapshot of c.
func NewCourseSummary(c *Course) *CourseSummary {
	if c == nil {
		return nil
	}
	return &CourseSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
	}
}

// ValidEnrollmentStatuses contains all valid enrollment statuses.
var ValidEnrollmentStatuses = []EnrollmentStatus{
	EnrollmentStatusActive,
	EnrollmentStatusCompleted,
	EnrollmentStatusDropped,
	EnrollmentStatusSuspended,
}

// IsValidEnrollmentStatus checks if an enrollment status is valid.
func IsValidEnrollmentStatus(status string) bool {
	for _, s := range ValidEnrollmentStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

const (
	// DefaultPageLimit is used when a listing does not ask for a limit.
	DefaultPageLimit = 100
	// MaxPageLimit is the largest page a listing may return.
	MaxPageLimit = 1000
)

// Page is a skip/limit window over a listing.
type Page struct {
	Skip  int `json:"skip,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}
