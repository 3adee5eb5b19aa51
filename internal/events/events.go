// Package events publishes enrollment lifecycle events for downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// Event types.
const (
	TypeEnrollmentCreated = "enrollment.created"
	TypeEnrollmentUpdated = "enrollment.updated"
	TypeEnrollmentDeleted = "enrollment.deleted"
)

// EnrollmentEvent is the message body published for an enrollment change.
type EnrollmentEvent struct {
	Type         string                  `json:"type"`
	EnrollmentID string                  `json:"enrollment_id"`
	StudentID    string                  `json:"student_id"`
	CourseID     string                  `json:"course_id"`
	Status       domain.EnrollmentStatus `json:"status"`
	Progress     float64                 `json:"progress"`
	RequestID    string                  `json:"request_id,omitempty"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

// NewEnrollmentEvent builds an event of the given type from e.
func NewEnrollmentEvent(eventType string, e *domain.Enrollment, now time.Time) EnrollmentEvent {
	return EnrollmentEvent{
		Type:         eventType,
		EnrollmentID: e.ID,
		StudentID:    e.StudentID,
		CourseID:     e.CourseID,
		Status:       e.Status,
		Progress:     e.Progress,
		OccurredAt:   now.UTC(),
	}
}

// Publisher delivers enrollment events.
type Publisher interface {
	PublishEnrollment(ctx context.Context, event EnrollmentEvent) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

// PublishEnrollment does nothing.
func (Noop) PublishEnrollment(context.Context, EnrollmentEvent) error { return nil }

// Close does nothing.
func (Noop) Close() error { return nil }
