package validator

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

var (
	validRoles              = interfaces(domain.ValidRoles)
	validCourseStatuses     = interfaces(domain.ValidStatuses)
	validEnrollmentStatuses = interfaces(domain.ValidEnrollmentStatuses)
)

func interfaces[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUser validates a User entity.
func (v *Validator) ValidateUser(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&u.Username,
			validation.Required.Error("username_required"),
			validation.RuneLength(3, 50).Error("username_length"),
		),
		validation.Field(&u.FirstName,
			validation.Required.Error("first_name_required"),
			validation.RuneLength(1, 100).Error("first_name_length"),
		),
		validation.Field(&u.LastName,
			validation.Required.Error("last_name_required"),
			validation.RuneLength(1, 100).Error("last_name_length"),
		),
		validation.Field(&u.Role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
		validation.Field(&u.ProfilePicture,
			validation.NilOrNotEmpty.Error("profile_picture_empty"),
		),
	)
}

// ValidateUserPatch validates the fields present in a user patch.
func (v *Validator) ValidateUserPatch(p *domain.UserPatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Email,
			validation.NilOrNotEmpty.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&p.Username,
			validation.NilOrNotEmpty.Error("username_required"),
			validation.RuneLength(3, 50).Error("username_length"),
		),
		validation.Field(&p.FirstName,
			validation.NilOrNotEmpty.Error("first_name_required"),
			validation.RuneLength(1, 100).Error("first_name_length"),
		),
		validation.Field(&p.LastName,
			validation.NilOrNotEmpty.Error("last_name_required"),
			validation.RuneLength(1, 100).Error("last_name_length"),
		),
		validation.Field(&p.Role,
			validation.In(validRoles...).Error("invalid_role"),
		),
	)
}

// ValidateCourse validates a Course entity.
func (v *Validator) ValidateCourse(c *domain.Course) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(1, 200).Error("title_length"),
		),
		validation.Field(&c.Description,
			validation.Required.Error("description_required"),
			validation.RuneLength(1, 1000).Error("description_length"),
		),
		validation.Field(&c.ShortDescription,
			validation.RuneLength(0, 300).Error("short_description_length"),
		),
		validation.Field(&c.Status,
			validation.Required.Error("status_required"),
			validation.In(validCourseStatuses...).Error("invalid_status"),
		),
		validation.Field(&c.Price,
			validation.Min(0.0).Error("price_negative"),
		),
		validation.Field(&c.DurationHours,
			validation.Min(1).Error("duration_hours_min"),
		),
		validation.Field(&c.MaxStudents,
			validation.Min(1).Error("max_students_min"),
		),
		validation.Field(&c.ThumbnailURL,
			is.URL.Error("invalid_thumbnail_url"),
		),
		validation.Field(&c.InstructorID,
			validation.Required.Error("instructor_id_required"),
			is.UUID.Error("invalid_instructor_id"),
		),
	)
}

// ValidateCoursePatch validates the fields present in a course patch.
func (v *Validator) ValidateCoursePatch(p *domain.CoursePatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.NilOrNotEmpty.Error("title_required"),
			validation.RuneLength(1, 200).Error("title_length"),
		),
		validation.Field(&p.Description,
			validation.NilOrNotEmpty.Error("description_required"),
			validation.RuneLength(1, 1000).Error("description_length"),
		),
		validation.Field(&p.ShortDescription,
			validation.RuneLength(0, 300).Error("short_description_length"),
		),
		validation.Field(&p.Status,
			validation.In(validCourseStatuses...).Error("invalid_status"),
		),
		validation.Field(&p.Price,
			validation.Min(0.0).Error("price_negative"),
		),
		validation.Field(&p.DurationHours,
			validation.Min(1).Error("duration_hours_min"),
		),
		validation.Field(&p.MaxStudents,
			validation.Min(1).Error("max_students_min"),
		),
		validation.Field(&p.ThumbnailURL,
			is.URL.Error("invalid_thumbnail_url"),
		),
	)
}

// ValidateEnrollment validates an Enrollment entity.
func (v *Validator) ValidateEnrollment(e *domain.Enrollment) error {
	return validation.ValidateStruct(e,
		validation.Field(&e.StudentID,
			validation.Required.Error("student_id_required"),
			is.UUID.Error("invalid_student_id"),
		),
		validation.Field(&e.CourseID,
			validation.Required.Error("course_id_required"),
			is.UUID.Error("invalid_course_id"),
		),
		validation.Field(&e.Status,
			validation.Required.Error("status_required"),
			validation.In(validEnrollmentStatuses...).Error("invalid_status"),
		),
		validation.Field(&e.Progress,
			validation.Min(0.0).Error("progress_range"),
			validation.Max(100.0).Error("progress_range"),
		),
		validation.Field(&e.Grade,
			validation.Min(0.0).Error("grade_range"),
			validation.Max(100.0).Error("grade_range"),
		),
		validation.Field(&e.Notes,
			validation.RuneLength(0, 1000).Error("notes_length"),
		),
	)
}

// ValidateEnrollmentPatch validates the fields present in an enrollment patch.
func (v *Validator) ValidateEnrollmentPatch(p *domain.EnrollmentPatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Status,
			validation.In(validEnrollmentStatuses...).Error("invalid_status"),
		),
		validation.Field(&p.Progress,
			validation.Min(0.0).Error("progress_range"),
			validation.Max(100.0).Error("progress_range"),
		),
		validation.Field(&p.Grade,
			validation.Min(0.0).Error("grade_range"),
			validation.Max(100.0).Error("grade_range"),
		),
		validation.Field(&p.Notes,
			validation.RuneLength(0, 1000).Error("notes_length"),
		),
	)
}

// ValidateEnrollmentFilter checks that the id filters, when set, are UUIDs.
func (v *Validator) ValidateEnrollmentFilter(f *domain.EnrollmentFilter) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Status,
			validation.In(validEnrollmentStatuses...).Error("invalid_status"),
		),
		validation.Field(&f.StudentID,
			is.UUID.Error("invalid_student_id"),
		),
		validation.Field(&f.CourseID,
			is.UUID.Error("invalid_course_id"),
		),
	)
}

// ValidateCourseFilter checks that the instructor filter, when set, is a UUID.
func (v *Validator) ValidateCourseFilter(f *domain.CourseFilter) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Status,
			validation.In(validCourseStatuses...).Error("invalid_status"),
		),
		validation.Field(&f.InstructorID,
			is.UUID.Error("invalid_instructor_id"),
		),
	)
}

// ValidatePage validates a skip/limit window.
func (v *Validator) ValidatePage(p *domain.Page) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Skip,
			validation.Min(0).Error("skip_negative"),
		),
		validation.Field(&p.Limit,
			validation.Required.Error("limit_range"),
			validation.Min(1).Error("limit_range"),
			validation.Max(domain.MaxPageLimit).Error("limit_range"),
		),
	)
}

// ConvertValidationErrors turns ozzo validation errors into a domain validation error.
// Field messages are listed in field order so the message is stable.
func ConvertValidationErrors(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.Validation(domain.CodeInvalidInput, err.Error())
	}

	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+ve[field].Error())
	}
	return domain.Validation(domain.CodeInvalidInput, strings.Join(parts, "; "))
}
