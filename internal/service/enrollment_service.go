package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/events"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/metrics"
	"github.com/scottmc500/ScottLMS/internal/repository"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

// CreateEnrollmentInput is the data needed to enroll a student.
type CreateEnrollmentInput struct {
	StudentID string
	CourseID  string
	Status    *domain.EnrollmentStatus
	Grade     *float64
	Notes     *string
}

// EnrollmentService owns the enrollment lifecycle: pair uniqueness,
// reference checks and the denormalized course enrollment counter.
//
// Each operation is a short sequence of independent store calls without a
// transaction. The unique (student, course) index closes the duplicate race;
// the counter is adjusted with atomic store increments and repaired by the
// Reconciler when a side effect is lost.
type EnrollmentService struct {
	store        repository.Store
	validator    *validator.Validator
	publisher    events.Publisher
	storeTimeout time.Duration
	now          func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService. A nil publisher disables events.
func NewEnrollmentService(store repository.Store, v *validator.Validator, publisher events.Publisher, storeTimeout time.Duration) *EnrollmentService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &EnrollmentService{
		store:        store,
		validator:    v,
		publisher:    publisher,
		storeTimeout: orDefaultTimeout(storeTimeout),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for enrollment timestamps.
func (s *EnrollmentService) WithClock(now func() time.Time) *EnrollmentService {
	s.now = now
	return s
}

// CreateEnrollment enrolls a student into a published course.
//
// Preconditions are checked in order and the first failure is returned:
// the student exists with role student, the course exists, the course is
// published, and the pair is not enrolled yet. An enrollment created as
// completed gets its completion date stamped. The enrollment is inserted
// first and the course counter incremented second. When only the increment
// fails the enrollment is returned together with domain.ErrCounterNotUpdated.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, input CreateEnrollmentInput) (enrollment *domain.Enrollment, err error) {
	defer func() { metrics.ObserveEnrollmentOperation("create", resultLabel(err)) }()

	status := domain.EnrollmentStatusActive
	if input.Status != nil {
		status = *input.Status
	}
	e := &domain.Enrollment{
		ID:         uuid.New().String(),
		StudentID:  input.StudentID,
		CourseID:   input.CourseID,
		Status:     status,
		Progress:   0,
		Grade:      input.Grade,
		Notes:      input.Notes,
		EnrolledAt: s.now(),
	}
	if status == domain.EnrollmentStatusCompleted {
		completed := e.EnrolledAt
		e.CompletionDate = &completed
	}
	if err := s.validator.ValidateEnrollment(e); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}

	student, err := storeCall(ctx, s.storeTimeout, "users.get", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.GetByID(ctx, e.StudentID)
	})
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil || student.Role != domain.RoleStudent {
		return nil, domain.ErrStudentNotFound
	}

	course, err := storeCall(ctx, s.storeTimeout, "courses.get", func(ctx context.Context) (*domain.Course, error) {
		return s.store.Courses.GetByID(ctx, e.CourseID)
	})
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, domain.ErrCourseNotFound
	}
	if !course.IsEnrollable() {
		return nil, domain.ErrCourseNotEnrollable
	}

	existing, err := storeCall(ctx, s.storeTimeout, "enrollments.get_by_pair", func(ctx context.Context) (*domain.Enrollment, error) {
		return s.store.Enrollments.GetByPair(ctx, e.StudentID, e.CourseID)
	})
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEnrollment
	}

	err = storeExec(ctx, s.storeTimeout, "enrollments.create", func(ctx context.Context) error {
		return s.store.Enrollments.Create(ctx, e)
	})
	if err != nil {
		// A concurrent request for the same pair won the race past the check above.
		if errors.Is(err, repository.ErrDuplicateEnrollment) {
			return nil, domain.ErrDuplicateEnrollment
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	log := logger.FromContext(ctx).With(slog.String("enrollment_id", e.ID), slog.String("course_id", e.CourseID))
	log.Info("Enrollment created", slog.String("student_id", e.StudentID))

	if err := s.adjustCounter(ctx, e.CourseID, 1); err != nil {
		metrics.CounterUpdateFailures.WithLabelValues("create").Inc()
		log.Error("Enrollment count not incremented", slog.String("error", err.Error()))
		s.publish(ctx, events.TypeEnrollmentCreated, e)
		return e, domain.WrapError(domain.KindInternal, domain.CodeCounterNotUpdated,
			"enrollment created but course enrollment count was not updated", err)
	}

	s.publish(ctx, events.TypeEnrollmentCreated, e)
	return e, nil
}

// adjustCounter adds delta to the course counter. A course that vanished
// between the checks and the write is reported as an error.
func (s *EnrollmentService) adjustCounter(ctx context.Context, courseID string, delta int) error {
	found, err := storeCall(ctx, s.storeTimeout, "courses.increment_enrollment_count", func(ctx context.Context) (bool, error) {
		return s.store.Courses.IncrementEnrollmentCount(ctx, courseID, delta)
	})
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCourseNotFound
	}
	return nil
}

// GetEnrollment returns the enrollment with the given id.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id string) (*domain.Enrollment, error) {
	e, err := storeCall(ctx, s.storeTimeout, "enrollments.get", func(ctx context.Context) (*domain.Enrollment, error) {
		return s.store.Enrollments.GetByID(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	if e == nil {
		return nil, domain.ErrEnrollmentNotFound
	}
	return e, nil
}

// GetEnrollmentWithDetails returns the enrollment with snapshots of its student
// and course taken now. A referenced entity that no longer exists yields a nil
// snapshot rather than an error.
func (s *EnrollmentService) GetEnrollmentWithDetails(ctx context.Context, id string) (*domain.EnrollmentView, error) {
	e, err := s.GetEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := storeCall(ctx, s.storeTimeout, "users.get", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.GetByID(ctx, e.StudentID)
	})
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	course, err := storeCall(ctx, s.storeTimeout, "courses.get", func(ctx context.Context) (*domain.Course, error) {
		return s.store.Courses.GetByID(ctx, e.CourseID)
	})
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	return &domain.EnrollmentView{
		Enrollment: *e,
		Student:    domain.NewUserSummary(student),
		Course:     domain.NewCourseSummary(course),
	}, nil
}

// ListEnrollments returns one page of enrollments matching every provided
// filter, ordered by enrolled_at then id. Id filters must be UUIDs.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, filter domain.EnrollmentFilter, page domain.Page) ([]domain.Enrollment, error) {
	if err := s.validator.ValidateEnrollmentFilter(&filter); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	if err := s.validator.ValidatePage(&page); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}

	list, err := storeCall(ctx, s.storeTimeout, "enrollments.list", func(ctx context.Context) ([]domain.Enrollment, error) {
		return collect(func(cb func(domain.Enrollment) error) error {
			return s.store.Enrollments.List(ctx, filter, page, cb)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return list, nil
}

// ListStudentEnrollments lists the enrollments of one student.
func (s *EnrollmentService) ListStudentEnrollments(ctx context.Context, studentID string, page domain.Page) ([]domain.Enrollment, error) {
	return s.ListEnrollments(ctx, domain.EnrollmentFilter{StudentID: studentID}, page)
}

// ListCourseEnrollments lists the enrollments of one course.
func (s *EnrollmentService) ListCourseEnrollments(ctx context.Context, courseID string, page domain.Page) ([]domain.Enrollment, error) {
	return s.ListEnrollments(ctx, domain.EnrollmentFilter{CourseID: courseID}, page)
}

// UpdateEnrollment applies the fields present in patch. Setting progress
// stamps last_accessed; setting status to completed stamps completion_date.
// An empty patch returns the stored enrollment unchanged.
func (s *EnrollmentService) UpdateEnrollment(ctx context.Context, id string, patch domain.EnrollmentPatch) (updated *domain.Enrollment, err error) {
	defer func() { metrics.ObserveEnrollmentOperation("update", resultLabel(err)) }()

	if err := s.validator.ValidateEnrollmentPatch(&patch); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	patch = patch.Stamped(s.now())
	if patch.IsEmpty() {
		return s.GetEnrollment(ctx, id)
	}

	e, err := storeCall(ctx, s.storeTimeout, "enrollments.update", func(ctx context.Context) (*domain.Enrollment, error) {
		return s.store.Enrollments.Update(ctx, id, patch)
	})
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	if e == nil {
		return nil, domain.ErrEnrollmentNotFound
	}

	s.publish(ctx, events.TypeEnrollmentUpdated, e)
	return e, nil
}

// DeleteEnrollment removes an enrollment and decrements its course counter,
// never below zero. When the course no longer exists the enrollment is
// deleted and no counter is touched.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id string) (err error) {
	defer func() { metrics.ObserveEnrollmentOperation("delete", resultLabel(err)) }()

	e, err := s.GetEnrollment(ctx, id)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx).With(slog.String("enrollment_id", e.ID), slog.String("course_id", e.CourseID))

	course, err := storeCall(ctx, s.storeTimeout, "courses.get", func(ctx context.Context) (*domain.Course, error) {
		return s.store.Courses.GetByID(ctx, e.CourseID)
	})
	if err != nil {
		return fmt.Errorf("get course: %w", err)
	}

	decremented := false
	if course != nil {
		if err := s.adjustCounter(ctx, e.CourseID, -1); err != nil {
			if !errors.Is(err, domain.ErrCourseNotFound) {
				return fmt.Errorf("decrement enrollment count: %w", err)
			}
		} else {
			decremented = true
		}
	} else {
		log.Warn("Deleting enrollment of a missing course, counter left unchanged")
	}

	deleted, err := storeCall(ctx, s.storeTimeout, "enrollments.delete", func(ctx context.Context) (bool, error) {
		return s.store.Enrollments.Delete(ctx, id)
	})
	if err == nil && !deleted {
		err = domain.ErrEnrollmentNotFound
	}
	if err != nil {
		if decremented {
			s.restoreCounter(ctx, log, e.CourseID)
		}
		if domain.KindOf(err) == domain.KindNotFound {
			return err
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}

	log.Info("Enrollment deleted")
	s.publish(ctx, events.TypeEnrollmentDeleted, e)
	return nil
}

// restoreCounter undoes a decrement whose enrollment delete did not happen.
func (s *EnrollmentService) restoreCounter(ctx context.Context, log *slog.Logger, courseID string) {
	if err := s.adjustCounter(ctx, courseID, 1); err != nil {
		metrics.CounterUpdateFailures.WithLabelValues("delete").Inc()
		log.Error("Enrollment count not restored after failed delete", slog.String("error", err.Error()))
	}
}

// publish sends an event without failing the operation.
func (s *EnrollmentService) publish(ctx context.Context, eventType string, e *domain.Enrollment) {
	event := events.NewEnrollmentEvent(eventType, e, s.now())
	event.RequestID = logger.RequestIDFromContext(ctx)

	pubCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	err := s.publisher.PublishEnrollment(pubCtx, event)
	metrics.EventsPublishedTotal.WithLabelValues(eventType, resultLabel(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to publish enrollment event",
			slog.String("type", eventType),
			slog.String("enrollment_id", e.ID),
			slog.String("error", err.Error()))
	}
}
