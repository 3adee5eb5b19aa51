package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// queryArgs accumulates positional arguments and the SQL fragments that use them.
type queryArgs struct {
	args  []interface{}
	parts []string
}

func (q *queryArgs) add(format string, value interface{}) {
	q.args = append(q.args, value)
	q.parts = append(q.parts, fmt.Sprintf(format, len(q.args)))
}

func (q *queryArgs) where() string {
	if len(q.parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.parts, " AND ")
}

func (q *queryArgs) set() string {
	return strings.Join(q.parts, ", ")
}

// page appends OFFSET/LIMIT placeholders.
func (q *queryArgs) page(skip, limit int) string {
	q.args = append(q.args, skip, limit)
	return fmt.Sprintf(" OFFSET $%d LIMIT $%d", len(q.args)-1, len(q.args))
}

// pgUniqueViolation returns the repository sentinel for a unique violation,
// or nil when err is something else.
func pgUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return duplicateFor(pgErr.ConstraintName)
	}
	return nil
}
