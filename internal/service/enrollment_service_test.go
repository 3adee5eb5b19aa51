package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/events"
	"github.com/scottmc500/ScottLMS/internal/mocks"
	"github.com/scottmc500/ScottLMS/internal/repository"
	"github.com/scottmc500/ScottLMS/internal/service"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

const testPassword = "Xq7!mZ2#pL9w"

// tickingClock returns a strictly increasing time on every call.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	fake        *fakeStore
	clock       *tickingClock
	users       *service.UserService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	reconciler  *service.Reconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := newFakeStore()
	store := fake.Store()
	v := validator.NewValidator()
	clock := newTickingClock()
	return &fixture{
		fake:        fake,
		clock:       clock,
		users:       service.NewUserService(store, v, time.Second).WithBcryptCost(bcrypt.MinCost),
		courses:     service.NewCourseService(store, v, time.Second),
		enrollments: service.NewEnrollmentService(store, v, nil, time.Second).WithClock(clock.Now),
		reconciler:  service.NewReconciler(store, time.Second),
	}
}

func (fx *fixture) user(t *testing.T, username string, role domain.Role) *domain.User {
	t.Helper()
	u, err := fx.users.CreateUser(context.Background(), service.CreateUserInput{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "Person",
		Role:      role,
		Password:  testPassword,
	})
	require.NoError(t, err)
	return u
}

func (fx *fixture) course(t *testing.T, instructorID string, status domain.CourseStatus) *domain.Course {
	t.Helper()
	c, err := fx.courses.CreateCourse(context.Background(), &domain.Course{
		Title:        "Course " + uuid.NewString()[:8],
		Description:  "A course",
		Status:       status,
		InstructorID: instructorID,
	})
	require.NoError(t, err)
	return c
}

func (fx *fixture) enroll(t *testing.T, studentID, courseID string) *domain.Enrollment {
	t.Helper()
	e, err := fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
		StudentID: studentID,
		CourseID:  courseID,
	})
	require.NoError(t, err)
	return e
}

func TestEnrollmentService_Scenario(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	s1 := fx.user(t, "student1", domain.RoleStudent)
	i1 := fx.user(t, "instructor1", domain.RoleInstructor)
	c1 := fx.course(t, i1.ID, domain.CourseStatusPublished)

	e, err := fx.enrollments.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: s1.ID, CourseID: c1.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusActive, e.Status)
	assert.Equal(t, 0.0, e.Progress)
	assert.Equal(t, 1, fx.fake.course(c1.ID).EnrollmentCount)

	_, err = fx.enrollments.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: s1.ID, CourseID: c1.ID})
	assert.ErrorIs(t, err, domain.ErrDuplicateEnrollment)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, 1, fx.fake.course(c1.ID).EnrollmentCount)

	require.NoError(t, fx.enrollments.DeleteEnrollment(ctx, e.ID))
	assert.Equal(t, 0, fx.fake.course(c1.ID).EnrollmentCount)
	assert.Equal(t, 0, fx.fake.enrollmentCount())
}

func TestEnrollmentService_CreateEnrollment_NotEnrollable(t *testing.T) {
	for _, status := range []domain.CourseStatus{domain.CourseStatusDraft, domain.CourseStatusArchived} {
		t.Run(string(status), func(t *testing.T) {
			fx := newFixture(t)
			student := fx.user(t, "student1", domain.RoleStudent)
			instructor := fx.user(t, "instructor1", domain.RoleInstructor)
			course := fx.course(t, instructor.ID, status)

			_, err := fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
				StudentID: student.ID,
				CourseID:  course.ID,
			})

			assert.ErrorIs(t, err, domain.ErrCourseNotEnrollable)
			assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
			assert.Equal(t, 0, fx.fake.enrollmentCount())
			assert.Equal(t, 0, fx.fake.course(course.ID).EnrollmentCount)
		})
	}
}

func TestEnrollmentService_CreateEnrollment_References(t *testing.T) {
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	published := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	draft := fx.course(t, instructor.ID, domain.CourseStatusDraft)

	tests := []struct {
		name      string
		studentID string
		courseID  string
		want      error
	}{
		{"unknown student", uuid.NewString(), published.ID, domain.ErrStudentNotFound},
		{"user is not a student", instructor.ID, published.ID, domain.ErrStudentNotFound},
		{"unknown course", student.ID, uuid.NewString(), domain.ErrCourseNotFound},
		{"student checked before course state", uuid.NewString(), draft.ID, domain.ErrStudentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
				StudentID: tt.studentID,
				CourseID:  tt.courseID,
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.KindReference, domain.KindOf(err))
			assert.Equal(t, 0, fx.fake.enrollmentCount())
			assert.Equal(t, 0, fx.fake.course(published.ID).EnrollmentCount)
		})
	}
}

func TestEnrollmentService_CreateEnrollment_InvalidInput(t *testing.T) {
	fx := newFixture(t)
	bad := domain.EnrollmentStatus("paused")

	_, err := fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
		StudentID: "s1",
		CourseID:  uuid.NewString(),
		Status:    &bad,
	})

	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Contains(t, err.Error(), "student_id")
	assert.Contains(t, err.Error(), "status")
}

func TestEnrollmentService_CreateEnrollment_OptionalFields(t *testing.T) {
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	status := domain.EnrollmentStatusSuspended
	grade := 75.0
	notes := "transfer credit pending"

	e, err := fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    &status,
		Grade:     &grade,
		Notes:     &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusSuspended, e.Status)
	require.NotNil(t, e.Grade)
	assert.Equal(t, 75.0, *e.Grade)
	require.NotNil(t, e.Notes)
	assert.Equal(t, notes, *e.Notes)
	assert.Nil(t, e.CompletionDate)
}

func TestEnrollmentService_CreateEnrollment_CompletedStampsCompletionDate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	completed := domain.EnrollmentStatusCompleted

	e, err := fx.enrollments.CreateEnrollment(ctx, service.CreateEnrollmentInput{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    &completed,
	})

	require.NoError(t, err)
	require.NotNil(t, e.CompletionDate)
	assert.Equal(t, e.EnrolledAt, *e.CompletionDate)

	stored, err := fx.enrollments.GetEnrollment(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CompletionDate)
	assert.True(t, stored.CompletionDate.Equal(*e.CompletionDate))
}

func TestEnrollmentService_Counter(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)

	const n, m = 5, 3
	var enrolled []*domain.Enrollment
	for i := 0; i < n; i++ {
		student := fx.user(t, "student"+string(rune('a'+i))+"x", domain.RoleStudent)
		enrolled = append(enrolled, fx.enroll(t, student.ID, course.ID))
	}
	assert.Equal(t, n, fx.fake.course(course.ID).EnrollmentCount)

	for _, e := range enrolled[:m] {
		require.NoError(t, fx.enrollments.DeleteEnrollment(ctx, e.ID))
	}
	assert.Equal(t, n-m, fx.fake.course(course.ID).EnrollmentCount)

	t.Run("decrement is clamped at zero", func(t *testing.T) {
		// Simulated drift: the counter already lost the remaining enrollments.
		_, err := fx.fake.Store().Courses.SetEnrollmentCount(ctx, course.ID, 0)
		require.NoError(t, err)

		for _, e := range enrolled[m:] {
			require.NoError(t, fx.enrollments.DeleteEnrollment(ctx, e.ID))
		}
		assert.Equal(t, 0, fx.fake.course(course.ID).EnrollmentCount)
	})
}

func TestEnrollmentService_CreateEnrollment_ConcurrentDuplicates(t *testing.T) {
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.enrollments.CreateEnrollment(context.Background(), service.CreateEnrollmentInput{
				StudentID: student.ID,
				CourseID:  course.ID,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateEnrollment)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, fx.fake.enrollmentCount())
	assert.Equal(t, 1, fx.fake.course(course.ID).EnrollmentCount)
}

func TestEnrollmentService_CreateEnrollment_IncrementFails(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)

	fx.fake.incrementErr = errors.New("connection reset")
	e, err := fx.enrollments.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: student.ID, CourseID: course.ID})
	fx.fake.incrementErr = nil

	require.NotNil(t, e, "the enrollment is kept")
	assert.ErrorIs(t, err, domain.ErrCounterNotUpdated)
	assert.Equal(t, 1, fx.fake.enrollmentCount())
	assert.Equal(t, 0, fx.fake.course(course.ID).EnrollmentCount)

	result, err := fx.reconciler.ReconcileCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, result.Repaired)
	assert.Equal(t, 1, fx.fake.course(course.ID).EnrollmentCount)
}

func TestEnrollmentService_UpdateEnrollment(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	e := fx.enroll(t, student.ID, course.ID)

	completed := domain.EnrollmentStatusCompleted
	updated, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletionDate)
	assert.Nil(t, updated.LastAccessed, "status alone does not record an access")
	firstCompletion := *updated.CompletionDate

	progress := 10.0
	updated, err = fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletionDate)
	assert.True(t, firstCompletion.Equal(*updated.CompletionDate))
	require.NotNil(t, updated.LastAccessed)
	assert.Equal(t, 10.0, updated.Progress)

	t.Run("completing again re-stamps", func(t *testing.T) {
		again, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Status: &completed})
		require.NoError(t, err)
		assert.True(t, again.CompletionDate.After(firstCompletion))
	})

	t.Run("progress 100 does not complete", func(t *testing.T) {
		active := domain.EnrollmentStatusActive
		_, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Status: &active})
		require.NoError(t, err)

		full := 100.0
		got, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Progress: &full})
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentStatusActive, got.Status)
	})

	t.Run("absent fields are untouched", func(t *testing.T) {
		notes := "needs review"
		got, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.Progress)
		require.NotNil(t, got.Notes)
		assert.Equal(t, notes, *got.Notes)
	})

	t.Run("empty patch returns current", func(t *testing.T) {
		got, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{})
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := fx.enrollments.UpdateEnrollment(ctx, uuid.NewString(), domain.EnrollmentPatch{Progress: &progress})
		assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("progress out of range", func(t *testing.T) {
		over := 150.0
		_, err := fx.enrollments.UpdateEnrollment(ctx, e.ID, domain.EnrollmentPatch{Progress: &over})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestEnrollmentService_GetEnrollmentWithDetails(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	student := fx.user(t, "student1", domain.RoleStudent)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	course := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	e := fx.enroll(t, student.ID, course.ID)

	view, err := fx.enrollments.GetEnrollmentWithDetails(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Student)
	require.NotNil(t, view.Course)
	assert.Equal(t, student.Username, view.Student.Username)
	assert.Equal(t, student.Email, view.Student.Email)
	assert.Equal(t, course.Title, view.Course.Title)
	assert.Equal(t, domain.CourseStatusPublished, view.Course.Status)

	t.Run("deleted course yields a nil snapshot", func(t *testing.T) {
		_, err := fx.fake.Store().Courses.Delete(ctx, course.ID)
		require.NoError(t, err)

		view, err := fx.enrollments.GetEnrollmentWithDetails(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.ID, view.ID)
		assert.Nil(t, view.Course)
		assert.NotNil(t, view.Student)
	})

	t.Run("deleting an enrollment of a deleted course leaves no counter to adjust", func(t *testing.T) {
		require.NoError(t, fx.enrollments.DeleteEnrollment(ctx, e.ID))
		assert.Equal(t, 0, fx.fake.enrollmentCount())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := fx.enrollments.GetEnrollmentWithDetails(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
	})
}

func TestEnrollmentService_DeleteEnrollment_NotFound(t *testing.T) {
	fx := newFixture(t)
	err := fx.enrollments.DeleteEnrollment(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestEnrollmentService_ListEnrollments(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "instructor1", domain.RoleInstructor)
	courseA := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	courseB := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	alice := fx.user(t, "alice", domain.RoleStudent)
	bob := fx.user(t, "bobby", domain.RoleStudent)

	e1 := fx.enroll(t, alice.ID, courseA.ID)
	e2 := fx.enroll(t, bob.ID, courseA.ID)
	e3 := fx.enroll(t, alice.ID, courseB.ID)

	completed := domain.EnrollmentStatusCompleted
	_, err := fx.enrollments.UpdateEnrollment(ctx, e2.ID, domain.EnrollmentPatch{Status: &completed})
	require.NoError(t, err)

	ids := func(list []domain.Enrollment) []string {
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.ID
		}
		return out
	}

	all, err := fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{}, domain.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []string{e1.ID, e2.ID, e3.ID}, ids(all), "ordered by enrolled_at")

	byCourse, err := fx.enrollments.ListCourseEnrollments(ctx, courseA.ID, domain.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []string{e1.ID, e2.ID}, ids(byCourse))

	byStudent, err := fx.enrollments.ListStudentEnrollments(ctx, alice.ID, domain.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []string{e1.ID, e3.ID}, ids(byStudent))

	conjunction, err := fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{
		Status:   &completed,
		CourseID: courseA.ID,
	}, domain.DefaultPage())
	require.NoError(t, err)
	assert.Equal(t, []string{e2.ID}, ids(conjunction))

	paged, err := fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{}, domain.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{e2.ID}, ids(paged))

	none, err := fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{StudentID: uuid.NewString()}, domain.DefaultPage())
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	_, err = fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{}, domain.Page{Limit: 1001})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = fx.enrollments.ListEnrollments(ctx, domain.EnrollmentFilter{StudentID: "abc"}, domain.DefaultPage())
	assert.Equal(t, domain.KindValidation, domain.KindOf(err), "malformed student id")
	_, err = fx.enrollments.ListCourseEnrollments(ctx, "abc", domain.DefaultPage())
	assert.Equal(t, domain.KindValidation, domain.KindOf(err), "malformed course id")
}

func TestEnrollmentService_CreateEnrollment_WithMocks(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.NewString()
	courseID := uuid.NewString()
	student := &domain.User{ID: studentID, Role: domain.RoleStudent}
	course := &domain.Course{ID: courseID, Status: domain.CourseStatusPublished}

	newService := func(t *testing.T) (*service.EnrollmentService, *mocks.MockUserRepository, *mocks.MockCourseRepository, *mocks.MockEnrollmentRepository, *mocks.MockPublisher) {
		users := mocks.NewMockUserRepository(t)
		courses := mocks.NewMockCourseRepository(t)
		enrollments := mocks.NewMockEnrollmentRepository(t)
		publisher := mocks.NewMockPublisher(t)
		store := repository.Store{Users: users, Courses: courses, Enrollments: enrollments}
		svc := service.NewEnrollmentService(store, validator.NewValidator(), publisher, 50*time.Millisecond)
		return svc, users, courses, enrollments, publisher
	}

	t.Run("inserts before incrementing and publishes", func(t *testing.T) {
		svc, users, courses, enrollments, publisher := newService(t)

		users.EXPECT().GetByID(mock.Anything, studentID).Return(student, nil)
		courses.EXPECT().GetByID(mock.Anything, courseID).Return(course, nil)
		enrollments.EXPECT().GetByPair(mock.Anything, studentID, courseID).Return(nil, nil)
		insert := enrollments.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Enrollment")).
			Return(nil)
		courses.EXPECT().
			IncrementEnrollmentCount(mock.Anything, courseID, 1).
			Return(true, nil).
			NotBefore(insert.Call)
		publisher.EXPECT().
			PublishEnrollment(mock.Anything, mock.MatchedBy(func(ev events.EnrollmentEvent) bool {
				return ev.Type == events.TypeEnrollmentCreated && ev.CourseID == courseID
			})).
			Return(nil)

		e, err := svc.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: studentID, CourseID: courseID})
		require.NoError(t, err)
		assert.Equal(t, studentID, e.StudentID)
	})

	t.Run("unique index violation maps to conflict without touching the counter", func(t *testing.T) {
		svc, users, courses, enrollments, _ := newService(t)

		users.EXPECT().GetByID(mock.Anything, studentID).Return(student, nil)
		courses.EXPECT().GetByID(mock.Anything, courseID).Return(course, nil)
		enrollments.EXPECT().GetByPair(mock.Anything, studentID, courseID).Return(nil, nil)
		enrollments.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(repository.ErrDuplicateEnrollment)

		_, err := svc.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: studentID, CourseID: courseID})
		assert.ErrorIs(t, err, domain.ErrDuplicateEnrollment)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, users, courses, enrollments, publisher := newService(t)

		users.EXPECT().GetByID(mock.Anything, studentID).Return(student, nil)
		courses.EXPECT().GetByID(mock.Anything, courseID).Return(course, nil)
		enrollments.EXPECT().GetByPair(mock.Anything, studentID, courseID).Return(nil, nil)
		enrollments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		courses.EXPECT().IncrementEnrollmentCount(mock.Anything, courseID, 1).Return(true, nil)
		publisher.EXPECT().PublishEnrollment(mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := svc.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: studentID, CourseID: courseID})
		assert.NoError(t, err)
	})

	t.Run("slow store surfaces a storage timeout", func(t *testing.T) {
		svc, users, _, _, _ := newService(t)

		users.EXPECT().
			GetByID(mock.Anything, studentID).
			RunAndReturn(func(ctx context.Context, _ string) (*domain.User, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := svc.CreateEnrollment(ctx, service.CreateEnrollmentInput{StudentID: studentID, CourseID: courseID})
		assert.Equal(t, domain.KindStorageTimeout, domain.KindOf(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestEnrollmentService_DeleteEnrollment_WithMocks(t *testing.T) {
	ctx := context.Background()
	e := &domain.Enrollment{ID: uuid.NewString(), StudentID: uuid.NewString(), CourseID: uuid.NewString()}
	course := &domain.Course{ID: e.CourseID, Status: domain.CourseStatusPublished, EnrollmentCount: 1}

	newService := func(t *testing.T) (*service.EnrollmentService, *mocks.MockCourseRepository, *mocks.MockEnrollmentRepository) {
		courses := mocks.NewMockCourseRepository(t)
		enrollments := mocks.NewMockEnrollmentRepository(t)
		store := repository.Store{Users: mocks.NewMockUserRepository(t), Courses: courses, Enrollments: enrollments}
		return service.NewEnrollmentService(store, validator.NewValidator(), events.Noop{}, time.Second), courses, enrollments
	}

	t.Run("decrements before deleting", func(t *testing.T) {
		svc, courses, enrollments := newService(t)

		enrollments.EXPECT().GetByID(mock.Anything, e.ID).Return(e, nil)
		courses.EXPECT().GetByID(mock.Anything, e.CourseID).Return(course, nil)
		decrement := courses.EXPECT().IncrementEnrollmentCount(mock.Anything, e.CourseID, -1).Return(true, nil)
		enrollments.EXPECT().Delete(mock.Anything, e.ID).Return(true, nil).NotBefore(decrement.Call)

		require.NoError(t, svc.DeleteEnrollment(ctx, e.ID))
	})

	t.Run("missing course skips the counter", func(t *testing.T) {
		svc, courses, enrollments := newService(t)

		enrollments.EXPECT().GetByID(mock.Anything, e.ID).Return(e, nil)
		courses.EXPECT().GetByID(mock.Anything, e.CourseID).Return(nil, nil)
		enrollments.EXPECT().Delete(mock.Anything, e.ID).Return(true, nil)

		require.NoError(t, svc.DeleteEnrollment(ctx, e.ID))
	})

	t.Run("failed delete restores the counter", func(t *testing.T) {
		svc, courses, enrollments := newService(t)

		enrollments.EXPECT().GetByID(mock.Anything, e.ID).Return(e, nil)
		courses.EXPECT().GetByID(mock.Anything, e.CourseID).Return(course, nil)
		courses.EXPECT().IncrementEnrollmentCount(mock.Anything, e.CourseID, -1).Return(true, nil)
		enrollments.EXPECT().Delete(mock.Anything, e.ID).Return(false, errors.New("write conflict"))
		courses.EXPECT().IncrementEnrollmentCount(mock.Anything, e.CourseID, 1).Return(true, nil)

		err := svc.DeleteEnrollment(ctx, e.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write conflict")
	})

	t.Run("failed decrement keeps the enrollment", func(t *testing.T) {
		svc, courses, enrollments := newService(t)

		enrollments.EXPECT().GetByID(mock.Anything, e.ID).Return(e, nil)
		courses.EXPECT().GetByID(mock.Anything, e.CourseID).Return(course, nil)
		courses.EXPECT().IncrementEnrollmentCount(mock.Anything, e.CourseID, -1).Return(false, errors.New("timeout"))

		assert.Error(t, svc.DeleteEnrollment(ctx, e.ID))
	})
}
