package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

const courseColumns = `id, title, description, short_description, status, price, duration_hours,
	max_students, tags, thumbnail_url, prerequisites, instructor_id, enrollment_count, created_at, updated_at`

// PostgresCourseRepository implements CourseRepository using PostgreSQL.
type PostgresCourseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository.
func NewPostgresCourseRepository(pool *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{pool: pool}
}

// Create inserts a new course.
func (r *PostgresCourseRepository) Create(ctx context.Context, c *domain.Course) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, description, short_description, status, price, duration_hours,
			max_students, tags, thumbnail_url, prerequisites, instructor_id, enrollment_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, c.ID, c.Title, c.Description, c.ShortDescription, string(c.Status), c.Price, c.DurationHours,
		c.MaxStudents, nonNil(c.Tags), c.ThumbnailURL, nonNil(c.Prerequisites), c.InstructorID,
		c.EnrollmentCount, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	c, err := scanCourse(r.pool.QueryRow(ctx, "SELECT "+courseColumns+" FROM courses WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

// List streams courses matching filter, oldest first.
func (r *PostgresCourseRepository) List(ctx context.Context, filter domain.CourseFilter, page domain.Page, callback func(domain.Course) error) error {
	var q queryArgs
	if filter.Status != nil {
		q.add("status = $%d", string(*filter.Status))
	}
	if filter.InstructorID != "" {
		q.add("instructor_id = $%d", filter.InstructorID)
	}
	if filter.Search != "" {
		q.add("(strpos(lower(title), lower($%[1]d)) > 0 OR strpos(lower(description), lower($%[1]d)) > 0)", filter.Search)
	}
	query := "SELECT " + courseColumns + " FROM courses" + q.where() + " ORDER BY created_at, id" + q.page(page.Skip, page.Limit)
	return r.stream(ctx, query, q.args, callback)
}

// StreamAll streams every course with O(1) memory.
func (r *PostgresCourseRepository) StreamAll(ctx context.Context, callback func(domain.Course) error) error {
	return r.stream(ctx, "SELECT "+courseColumns+" FROM courses ORDER BY created_at, id", nil, callback)
}

func (r *PostgresCourseRepository) stream(ctx context.Context, query string, args []interface{}, callback func(domain.Course) error) error {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return fmt.Errorf("scan course: %w", err)
		}
		if err := callback(*c); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// Update applies patch to the course and returns the stored result.
func (r *PostgresCourseRepository) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var q queryArgs
	if patch.Title != nil {
		q.add("title = $%d", *patch.Title)
	}
	if patch.Description != nil {
		q.add("description = $%d", *patch.Description)
	}
	if patch.ShortDescription != nil {
		q.add("short_description = $%d", *patch.ShortDescription)
	}
	if patch.Status != nil {
		q.add("status = $%d", string(*patch.Status))
	}
	if patch.Price != nil {
		q.add("price = $%d", *patch.Price)
	}
	if patch.DurationHours != nil {
		q.add("duration_hours = $%d", *patch.DurationHours)
	}
	if patch.MaxStudents != nil {
		q.add("max_students = $%d", *patch.MaxStudents)
	}
	if patch.Tags != nil {
		q.add("tags = $%d", nonNil(*patch.Tags))
	}
	if patch.ThumbnailURL != nil {
		q.add("thumbnail_url = $%d", *patch.ThumbnailURL)
	}
	if patch.Prerequisites != nil {
		q.add("prerequisites = $%d", nonNil(*patch.Prerequisites))
	}
	if patch.UpdatedAt != nil {
		q.add("updated_at = $%d", *patch.UpdatedAt)
	}
	q.args = append(q.args, id)

	query := fmt.Sprintf("UPDATE courses SET %s WHERE id = $%d RETURNING %s", q.set(), len(q.args), courseColumns)
	c, err := scanCourse(r.pool.QueryRow(ctx, query, q.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return c, nil
}

// Delete removes a course.
func (r *PostgresCourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByInstructor counts the courses owned by an instructor.
func (r *PostgresCourseRepository) CountByInstructor(ctx context.Context, instructorID string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE instructor_id = $1`, instructorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

// IncrementEnrollmentCount adds delta to enrollment_count in a single statement, clamped at zero.
func (r *PostgresCourseRepository) IncrementEnrollmentCount(ctx context.Context, id string, delta int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET enrollment_count = GREATEST(enrollment_count + $2, 0)
		WHERE id = $1
	`, id, delta)
	if err != nil {
		return false, fmt.Errorf("increment enrollment count: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetEnrollmentCount overwrites enrollment_count.
func (r *PostgresCourseRepository) SetEnrollmentCount(ctx context.Context, id string, count int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE courses SET enrollment_count = $2 WHERE id = $1`, id, count)
	if err != nil {
		return false, fmt.Errorf("set enrollment count: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	var status string
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ShortDescription, &status, &c.Price,
		&c.DurationHours, &c.MaxStudents, &c.Tags, &c.ThumbnailURL, &c.Prerequisites, &c.InstructorID,
		&c.EnrollmentCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = domain.CourseStatus(status)
	return &c, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
