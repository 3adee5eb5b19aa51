package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

const userColumns = `id, email, username, first_name, last_name, role, is_active,
	profile_picture, hashed_password, created_at, updated_at, last_login`

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create inserts a new user.
func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, username, first_name, last_name, role, is_active,
			profile_picture, hashed_password, created_at, updated_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.Role, u.Active,
		u.ProfilePicture, u.HashedPassword, u.CreatedAt, u.UpdatedAt, u.LastLogin)
	if err != nil {
		if dup := pgUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail retrieves a user by email.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

// GetByUsername retrieves a user by username.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return u, nil
}

// List streams users matching filter, oldest first.
func (r *PostgresUserRepository) List(ctx context.Context, filter domain.UserFilter, page domain.Page, callback func(domain.User) error) error {
	var q queryArgs
	if filter.Role != nil {
		q.add("role = $%d", string(*filter.Role))
	}
	if filter.Active != nil {
		q.add("is_active = $%d", *filter.Active)
	}
	query := "SELECT " + userColumns + " FROM users" + q.where() + " ORDER BY created_at, id" + q.page(page.Skip, page.Limit)

	rows, err := r.pool.Query(ctx, query, q.args...)
	if err != nil {
		return fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return fmt.Errorf("scan user: %w", err)
		}
		if err := callback(*u); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// Update applies patch to the user and returns the stored result.
func (r *PostgresUserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var q queryArgs
	if patch.Email != nil {
		q.add("email = $%d", *patch.Email)
	}
	if patch.Username != nil {
		q.add("username = $%d", *patch.Username)
	}
	if patch.FirstName != nil {
		q.add("first_name = $%d", *patch.FirstName)
	}
	if patch.LastName != nil {
		q.add("last_name = $%d", *patch.LastName)
	}
	if patch.Role != nil {
		q.add("role = $%d", string(*patch.Role))
	}
	if patch.Active != nil {
		q.add("is_active = $%d", *patch.Active)
	}
	if patch.ProfilePicture != nil {
		q.add("profile_picture = $%d", *patch.ProfilePicture)
	}
	if patch.UpdatedAt != nil {
		q.add("updated_at = $%d", *patch.UpdatedAt)
	}
	q.args = append(q.args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s", q.set(), len(q.args), userColumns)
	u, err := scanUser(r.pool.QueryRow(ctx, query, q.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if dup := pgUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete removes a user.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &role, &u.Active,
		&u.ProfilePicture, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
