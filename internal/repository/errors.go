package repository

import "errors"

// Unique-index violations reported by Create and Update.
var (
	ErrDuplicateEmail      = errors.New("duplicate email")
	ErrDuplicateUsername   = errors.New("duplicate username")
	ErrDuplicateEnrollment = errors.New("duplicate enrollment")
)

// Index and constraint names shared by both engines.
const (
	usersEmailIndex          = "users_email_key"
	usersUsernameIndex       = "users_username_key"
	enrollmentsPairIndex     = "enrollments_student_course_key"
	enrollmentsCourseIndex   = "enrollments_course_id_idx"
	coursesInstructorIndex   = "courses_instructor_id_idx"
	enrollmentsEnrolledIndex = "enrollments_enrolled_at_idx"
)

// duplicateFor maps a violated unique index to its sentinel.
func duplicateFor(index string) error {
	switch index {
	case usersEmailIndex:
		return ErrDuplicateEmail
	case usersUsernameIndex:
		return ErrDuplicateUsername
	case enrollmentsPairIndex:
		return ErrDuplicateEnrollment
	}
	return nil
}
