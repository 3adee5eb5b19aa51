package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

const enrollmentColumns = `id, student_id, course_id, status, progress, grade, notes,
	enrolled_at, completion_date, last_accessed`

// PostgresEnrollmentRepository implements EnrollmentRepository using PostgreSQL.
type PostgresEnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEnrollmentRepository creates a new PostgresEnrollmentRepository.
func NewPostgresEnrollmentRepository(pool *pgxpool.Pool) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{pool: pool}
}

// Create inserts a new enrollment. A second enrollment for the same
// (student, course) pair fails with ErrDuplicateEnrollment.
func (r *PostgresEnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO enrollments (id, student_id, course_id, status, progress, grade, notes,
			enrolled_at, completion_date, last_accessed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, e.ID, e.StudentID, e.CourseID, string(e.Status), e.Progress, e.Grade, e.Notes,
		e.EnrolledAt, e.CompletionDate, e.LastAccessed)
	if err != nil {
		if dup := pgUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment by ID.
func (r *PostgresEnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.pool.QueryRow(ctx, "SELECT "+enrollmentColumns+" FROM enrollments WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

// GetByPair retrieves the enrollment of a student in a course.
func (r *PostgresEnrollmentRepository) GetByPair(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.pool.QueryRow(ctx,
		"SELECT "+enrollmentColumns+" FROM enrollments WHERE student_id = $1 AND course_id = $2",
		studentID, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment by pair: %w", err)
	}
	return e, nil
}

// List streams enrollments matching filter.
func (r *PostgresEnrollmentRepository) List(ctx context.Context, filter domain.EnrollmentFilter, page domain.Page, callback func(domain.Enrollment) error) error {
	q := enrollmentFilterArgs(filter)
	query := "SELECT " + enrollmentColumns + " FROM enrollments" + q.where() +
		" ORDER BY enrolled_at, id" + q.page(page.Skip, page.Limit)

	rows, err := r.pool.Query(ctx, query, q.args...)
	if err != nil {
		return fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return fmt.Errorf("scan enrollment: %w", err)
		}
		if err := callback(*e); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// Update applies patch to the enrollment and returns the stored result.
func (r *PostgresEnrollmentRepository) Update(ctx context.Context, id string, patch domain.EnrollmentPatch) (*domain.Enrollment, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var q queryArgs
	if patch.Status != nil {
		q.add("status = $%d", string(*patch.Status))
	}
	if patch.Progress != nil {
		q.add("progress = $%d", *patch.Progress)
	}
	if patch.Grade != nil {
		q.add("grade = $%d", *patch.Grade)
	}
	if patch.Notes != nil {
		q.add("notes = $%d", *patch.Notes)
	}
	if patch.LastAccessed != nil {
		q.add("last_accessed = $%d", *patch.LastAccessed)
	}
	if patch.CompletionDate != nil {
		q.add("completion_date = $%d", *patch.CompletionDate)
	}
	q.args = append(q.args, id)

	query := fmt.Sprintf("UPDATE enrollments SET %s WHERE id = $%d RETURNING %s", q.set(), len(q.args), enrollmentColumns)
	e, err := scanEnrollment(r.pool.QueryRow(ctx, query, q.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return e, nil
}

// Delete removes an enrollment.
func (r *PostgresEnrollmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count counts enrollments matching filter.
func (r *PostgresEnrollmentRepository) Count(ctx context.Context, filter domain.EnrollmentFilter) (int64, error) {
	q := enrollmentFilterArgs(filter)
	var n int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM enrollments"+q.where(), q.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return n, nil
}

func enrollmentFilterArgs(filter domain.EnrollmentFilter) *queryArgs {
	q := &queryArgs{}
	if filter.Status != nil {
		q.add("status = $%d", string(*filter.Status))
	}
	if filter.StudentID != "" {
		q.add("student_id = $%d", filter.StudentID)
	}
	if filter.CourseID != "" {
		q.add("course_id = $%d", filter.CourseID)
	}
	return q
}

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	var status string
	if err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &status, &e.Progress, &e.Grade, &e.Notes,
		&e.EnrolledAt, &e.CompletionDate, &e.LastAccessed); err != nil {
		return nil, err
	}
	e.Status = domain.EnrollmentStatus(status)
	return &e, nil
}
