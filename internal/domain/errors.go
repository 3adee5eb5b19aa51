package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error by how callers should react to it.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindReference      Kind = "reference"
	KindInvalidState   Kind = "invalid_state"
	KindConflict       Kind = "conflict"
	KindStorageTimeout Kind = "storage_timeout"
	KindValidation     Kind = "validation"
	KindInternal       Kind = "internal"
)

// Code is the machine-readable reason carried by an Error.
type Code string

const (
	CodeUserNotFound        Code = "USER_NOT_FOUND"
	CodeCourseNotFound      Code = "COURSE_NOT_FOUND"
	CodeEnrollmentNotFound  Code = "ENROLLMENT_NOT_FOUND"
	CodeStudentNotFound     Code = "STUDENT_NOT_FOUND"
	CodeInstructorNotFound  Code = "INSTRUCTOR_NOT_FOUND"
	CodeNotAnInstructor     Code = "NOT_AN_INSTRUCTOR"
	CodeCourseNotEnrollable Code = "COURSE_NOT_ENROLLABLE"
	CodeHasDependents       Code = "HAS_DEPENDENTS"
	CodeDuplicateEnrollment Code = "DUPLICATE_ENROLLMENT"
	CodeEmailTaken          Code = "EMAIL_TAKEN"
	CodeUsernameTaken       Code = "USERNAME_TAKEN"
	CodeStorageTimeout      Code = "STORAGE_TIMEOUT"
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeWeakPassword        Code = "WEAK_PASSWORD"
	CodeCounterNotUpdated   Code = "COUNTER_NOT_UPDATED"
)

// Error is the domain error type returned by services.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same kind and code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && e.Code == t.Code
	}
	return false
}

// NewError creates a domain error.
func NewError(kind Kind, code Code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// WrapError creates a domain error that wraps an underlying cause.
func WrapError(kind Kind, code Code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Cause: cause}
}

func NotFound(code Code, message string) *Error {
	return NewError(KindNotFound, code, message)
}

func Reference(code Code, message string) *Error {
	return NewError(KindReference, code, message)
}

func InvalidState(code Code, message string) *Error {
	return NewError(KindInvalidState, code, message)
}

func Conflict(code Code, message string) *Error {
	return NewError(KindConflict, code, message)
}

func Validation(code Code, message string) *Error {
	return NewError(KindValidation, code, message)
}

// StorageTimeout wraps a store deadline overrun.
func StorageTimeout(cause error) *Error {
	return WrapError(KindStorageTimeout, CodeStorageTimeout, "storage operation timed out", cause)
}

// Sentinels for errors.Is checks.
var (
	ErrStudentNotFound     = Reference(CodeStudentNotFound, "student not found")
	ErrCourseNotFound      = Reference(CodeCourseNotFound, "course not found")
	ErrInstructorNotFound  = Reference(CodeInstructorNotFound, "instructor not found")
	ErrNotAnInstructor     = Reference(CodeNotAnInstructor, "user is not an instructor")
	ErrCourseNotEnrollable = InvalidState(CodeCourseNotEnrollable, "course is not open for enrollment")
	ErrHasDependents       = InvalidState(CodeHasDependents, "entity is still referenced")
	ErrDuplicateEnrollment = Conflict(CodeDuplicateEnrollment, "student is already enrolled in this course")
	ErrEmailTaken          = Conflict(CodeEmailTaken, "email already registered")
	ErrUsernameTaken       = Conflict(CodeUsernameTaken, "username already taken")
	ErrUserNotFound        = NotFound(CodeUserNotFound, "user not found")
	ErrCourseMissing       = NotFound(CodeCourseNotFound, "course not found")
	ErrEnrollmentNotFound  = NotFound(CodeEnrollmentNotFound, "enrollment not found")
	// ErrCounterNotUpdated accompanies a written enrollment whose course counter
	// could not be adjusted. The reconciler repairs the counter later.
	ErrCounterNotUpdated = NewError(KindInternal, CodeCounterNotUpdated, "course enrollment count was not updated")
)

// KindOf returns the kind of the first domain error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// CodeOf returns the code of the first domain error in err's chain.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
