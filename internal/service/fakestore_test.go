package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/repository"
)

// fakeStore is an in-memory store with the same uniqueness, ordering and
// counter semantics as the real engines.
type fakeStore struct {
	mu          sync.Mutex
	users       map[string]domain.User
	courses     map[string]domain.Course
	enrollments map[string]domain.Enrollment

	// incrementErr, when set, fails every counter increment.
	incrementErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[string]domain.User),
		courses:     make(map[string]domain.Course),
		enrollments: make(map[string]domain.Enrollment),
	}
}

func (f *fakeStore) Store() repository.Store {
	return repository.Store{
		Users:       fakeUsers{f},
		Courses:     fakeCourses{f},
		Enrollments: fakeEnrollments{f},
	}
}

func (f *fakeStore) course(id string) domain.Course {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.courses[id]
}

func (f *fakeStore) enrollmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enrollments)
}

func page[T any](items []T, p domain.Page, cb func(T) error) error {
	for i, item := range items {
		if i < p.Skip {
			continue
		}
		if p.Limit > 0 && i >= p.Skip+p.Limit {
			break
		}
		if err := cb(item); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
	return nil
}

type fakeUsers struct{ f *fakeStore }

func (r fakeUsers) Create(_ context.Context, u *domain.User) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	r.f.users[u.ID] = *u
	return nil
}

func (r fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if u, ok := r.f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r fakeUsers) find(match func(domain.User) bool) *domain.User {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, u := range r.f.users {
		if match(u) {
			return &u
		}
	}
	return nil
}

func (r fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email }), nil
}

func (r fakeUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username }), nil
}

func (r fakeUsers) List(_ context.Context, filter domain.UserFilter, p domain.Page, cb func(domain.User) error) error {
	r.f.mu.Lock()
	var out []domain.User
	for _, u := range r.f.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		out = append(out, u)
	}
	r.f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return page(out, p, cb)
}

func (r fakeUsers) Update(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	u, ok := r.f.users[id]
	if !ok {
		return nil, nil
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Active != nil {
		u.Active = *p.Active
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = *p.UpdatedAt
	}
	r.f.users[id] = u
	return &u, nil
}

func (r fakeUsers) Delete(_ context.Context, id string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	_, ok := r.f.users[id]
	delete(r.f.users, id)
	return ok, nil
}

type fakeCourses struct{ f *fakeStore }

func (r fakeCourses) Create(_ context.Context, c *domain.Course) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.courses[c.ID] = *c
	return nil
}

func (r fakeCourses) GetByID(_ context.Context, id string) (*domain.Course, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if c, ok := r.f.courses[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r fakeCourses) sorted(match func(domain.Course) bool) []domain.Course {
	r.f.mu.Lock()
	var out []domain.Course
	for _, c := range r.f.courses {
		if match(c) {
			out = append(out, c)
		}
	}
	r.f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r fakeCourses) List(_ context.Context, filter domain.CourseFilter, p domain.Page, cb func(domain.Course) error) error {
	search := strings.ToLower(filter.Search)
	out := r.sorted(func(c domain.Course) bool {
		if filter.Status != nil && c.Status != *filter.Status {
			return false
		}
		if filter.InstructorID != "" && c.InstructorID != filter.InstructorID {
			return false
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Description), search) {
			return false
		}
		return true
	})
	return page(out, p, cb)
}

func (r fakeCourses) StreamAll(_ context.Context, cb func(domain.Course) error) error {
	return page(r.sorted(func(domain.Course) bool { return true }), domain.Page{}, cb)
}

func (r fakeCourses) Update(_ context.Context, id string, p domain.CoursePatch) (*domain.Course, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	c, ok := r.f.courses[id]
	if !ok {
		return nil, nil
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.UpdatedAt != nil {
		c.UpdatedAt = *p.UpdatedAt
	}
	r.f.courses[id] = c
	return &c, nil
}

func (r fakeCourses) Delete(_ context.Context, id string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	_, ok := r.f.courses[id]
	delete(r.f.courses, id)
	return ok, nil
}

func (r fakeCourses) CountByInstructor(_ context.Context, instructorID string) (int64, error) {
	return int64(len(r.sorted(func(c domain.Course) bool { return c.InstructorID == instructorID }))), nil
}

func (r fakeCourses) IncrementEnrollmentCount(_ context.Context, id string, delta int) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.incrementErr != nil {
		return false, r.f.incrementErr
	}
	c, ok := r.f.courses[id]
	if !ok {
		return false, nil
	}
	c.EnrollmentCount = max(c.EnrollmentCount+delta, 0)
	r.f.courses[id] = c
	return true, nil
}

func (r fakeCourses) SetEnrollmentCount(_ context.Context, id string, count int) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	c, ok := r.f.courses[id]
	if !ok {
		return false, nil
	}
	c.EnrollmentCount = count
	r.f.courses[id] = c
	return true, nil
}

type fakeEnrollments struct{ f *fakeStore }

func (r fakeEnrollments) Create(_ context.Context, e *domain.Enrollment) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return repository.ErrDuplicateEnrollment
		}
	}
	r.f.enrollments[e.ID] = *e
	return nil
}

func (r fakeEnrollments) GetByID(_ context.Context, id string) (*domain.Enrollment, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if e, ok := r.f.enrollments[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r fakeEnrollments) matching(filter domain.EnrollmentFilter) []domain.Enrollment {
	r.f.mu.Lock()
	var out []domain.Enrollment
	for _, e := range r.f.enrollments {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.StudentID != "" && e.StudentID != filter.StudentID {
			continue
		}
		if filter.CourseID != "" && e.CourseID != filter.CourseID {
			continue
		}
		out = append(out, e)
	}
	r.f.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EnrolledAt.Equal(out[j].EnrolledAt) {
			return out[i].EnrolledAt.Before(out[j].EnrolledAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r fakeEnrollments) GetByPair(_ context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	out := r.matching(domain.EnrollmentFilter{StudentID: studentID, CourseID: courseID})
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r fakeEnrollments) List(_ context.Context, filter domain.EnrollmentFilter, p domain.Page, cb func(domain.Enrollment) error) error {
	return page(r.matching(filter), p, cb)
}

func (r fakeEnrollments) Update(_ context.Context, id string, p domain.EnrollmentPatch) (*domain.Enrollment, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	e, ok := r.f.enrollments[id]
	if !ok {
		return nil, nil
	}
	p.Apply(&e)
	r.f.enrollments[id] = e
	return &e, nil
}

func (r fakeEnrollments) Delete(_ context.Context, id string) (bool, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	_, ok := r.f.enrollments[id]
	delete(r.f.enrollments, id)
	return ok, nil
}

func (r fakeEnrollments) Count(_ context.Context, filter domain.EnrollmentFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}
