package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

func TestCourseService_CreateCourse(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "prof1", domain.RoleInstructor)

	c, err := fx.courses.CreateCourse(ctx, &domain.Course{
		Title:           "  Distributed Systems ",
		Description:     "Consensus and replication",
		InstructorID:    instructor.ID,
		EnrollmentCount: 42,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Distributed Systems", c.Title)
	assert.Equal(t, domain.CourseStatusDraft, c.Status, "status defaults to draft")
	assert.Equal(t, 0, c.EnrollmentCount, "the counter is server managed")
	assert.NotNil(t, c.Tags)
	assert.NotNil(t, c.Prerequisites)

	t.Run("admin may own a course", func(t *testing.T) {
		admin := fx.user(t, "admin1", domain.RoleAdmin)
		_, err := fx.courses.CreateCourse(ctx, &domain.Course{Title: "Ops", Description: "Runbooks", InstructorID: admin.ID})
		assert.NoError(t, err)
	})

	t.Run("student may not own a course", func(t *testing.T) {
		student := fx.user(t, "student1", domain.RoleStudent)
		_, err := fx.courses.CreateCourse(ctx, &domain.Course{Title: "X", Description: "Y", InstructorID: student.ID})
		assert.ErrorIs(t, err, domain.ErrNotAnInstructor)
		assert.Equal(t, domain.KindReference, domain.KindOf(err))
	})

	t.Run("unknown instructor", func(t *testing.T) {
		_, err := fx.courses.CreateCourse(ctx, &domain.Course{Title: "X", Description: "Y", InstructorID: uuid.NewString()})
		assert.ErrorIs(t, err, domain.ErrInstructorNotFound)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := fx.courses.CreateCourse(ctx, &domain.Course{Description: "Y", Price: -1, InstructorID: instructor.ID})
		require.Error(t, err)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestCourseService_GetCourseWithInstructor(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "prof1", domain.RoleInstructor)
	c := fx.course(t, instructor.ID, domain.CourseStatusPublished)

	view, err := fx.courses.GetCourseWithInstructor(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Instructor)
	assert.Equal(t, "prof1", view.Instructor.Username)

	_, err = fx.fake.Store().Users.Delete(ctx, instructor.ID)
	require.NoError(t, err)

	view, err = fx.courses.GetCourseWithInstructor(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Instructor)

	_, err = fx.courses.GetCourseWithInstructor(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCourseMissing)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestCourseService_ListCourses(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	alice := fx.user(t, "prof1", domain.RoleInstructor)
	bob := fx.user(t, "prof2", domain.RoleInstructor)

	golang, err := fx.courses.CreateCourse(ctx, &domain.Course{Title: "Go in Practice", Description: "Concurrency", Status: domain.CourseStatusPublished, InstructorID: alice.ID})
	require.NoError(t, err)
	_, err = fx.courses.CreateCourse(ctx, &domain.Course{Title: "SQL Basics", Description: "Joins", Status: domain.CourseStatusDraft, InstructorID: alice.ID})
	require.NoError(t, err)
	rust, err := fx.courses.CreateCourse(ctx, &domain.Course{Title: "Rust", Description: "Ownership and concurrency", Status: domain.CourseStatusPublished, InstructorID: bob.ID})
	require.NoError(t, err)

	published := domain.CourseStatusPublished
	got, err := fx.courses.ListCourses(ctx, domain.CourseFilter{Status: &published}, domain.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, golang.ID, got[0].ID)
	assert.Equal(t, rust.ID, got[1].ID)

	got, err = fx.courses.ListCourses(ctx, domain.CourseFilter{Search: " CONCURRENCY "}, domain.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, got, 2, "search matches description case-insensitively")

	got, err = fx.courses.ListCourses(ctx, domain.CourseFilter{InstructorID: alice.ID, Status: &published}, domain.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, golang.ID, got[0].ID)

	_, err = fx.courses.ListCourses(ctx, domain.CourseFilter{InstructorID: "abc"}, domain.DefaultPage())
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestCourseService_UpdateCourse(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "prof1", domain.RoleInstructor)
	c := fx.course(t, instructor.ID, domain.CourseStatusDraft)

	published := domain.CourseStatusPublished
	price := 49.5
	updated, err := fx.courses.UpdateCourse(ctx, c.ID, domain.CoursePatch{Status: &published, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, domain.CourseStatusPublished, updated.Status)
	assert.Equal(t, 49.5, updated.Price)
	assert.Equal(t, c.Title, updated.Title)

	bad := domain.CourseStatus("hidden")
	_, err = fx.courses.UpdateCourse(ctx, c.ID, domain.CoursePatch{Status: &bad})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = fx.courses.UpdateCourse(ctx, uuid.NewString(), domain.CoursePatch{Price: &price})
	assert.ErrorIs(t, err, domain.ErrCourseMissing)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	instructor := fx.user(t, "prof1", domain.RoleInstructor)
	student := fx.user(t, "student1", domain.RoleStudent)
	c := fx.course(t, instructor.ID, domain.CourseStatusPublished)
	e := fx.enroll(t, student.ID, c.ID)

	err := fx.courses.DeleteCourse(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	require.NoError(t, fx.enrollments.DeleteEnrollment(ctx, e.ID))
	require.NoError(t, fx.courses.DeleteCourse(ctx, c.ID))

	err = fx.courses.DeleteCourse(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCourseMissing)
}
