package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"adminapi/internal/model"
	"adminapi/internal/repository"
)

const uniqueViolation = "23505"

const columns = "id, name, description, created_at, updated_at"

// Table names backed by NamedPostgres.
const (
	DepartmentsTable = "departments"
	RolesTable       = "roles"
)

// NamedPostgres is a PostgreSQL implementation of repository.NamedRepository.
// One instance serves one table; the table name is fixed at construction and never
// comes from user input.
type NamedPostgres struct {
	db *sql.DB

	qInsert    string
	qList      string
	qFind      string
	qNameTaken string
	qUpdate    string
	qDelete    string
}

// NewNamedPostgres creates a repository over table.
func NewNamedPostgres(db *sql.DB, table string) *NamedPostgres {
	return &NamedPostgres{
		db: db,
		qInsert: fmt.Sprintf(`
		INSERT INTO %s (name, description)
		VALUES ($1, $2)
		RETURNING %s`, table, columns),
		qList: fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY created_at ASC, id ASC`, columns, table),
		qFind: fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1`, columns, table),
		qNameTaken: fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE name = $1 AND ($2 = '' OR id::text <> $2)
		)`, table),
		qUpdate: fmt.Sprintf(`
		UPDATE %s
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $1
		RETURNING %s`, table, columns),
		qDelete: fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING %s`, table, columns),
	}
}

var _ repository.NamedRepository = (*NamedPostgres)(nil)


// Create inserts a new row and returns the stored record.
func (r *NamedPostgres) Create(ctx context.Context, name, description string) (*model.NamedEntity, error) {
	e, err := scanOne(r.db.QueryRowContext(ctx, r.qInsert, name, description))
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// List returns all rows ordered by creation time.
func (r *NamedPostgres) List(ctx context.Context) ([]model.NamedEntity, error) {
	rows, err := r.db.QueryContext(ctx, r.qList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NamedEntity, 0)
	for rows.Next() {
		var e model.NamedEntity
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single row by its ID.
func (r *NamedPostgres) FindByID(ctx context.Context, id string) (*model.NamedEntity, error) {
	return scanOne(r.db.QueryRowContext(ctx, r.qFind, id))
}

// NameTaken reports whether another row already holds name.
func (r *NamedPostgres) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var taken bool
	if err := r.db.QueryRowContext(ctx, r.qNameTaken, name, excludeID).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

// Update applies patch to the row and returns the new value.
func (r *NamedPostgres) Update(ctx context.Context, id string, patch model.NamedPatch) (*model.NamedEntity, error) {
	e, err := scanOne(r.db.QueryRowContext(ctx, r.qUpdate, id, nullString(patch.Name), nullString(patch.Description)))
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// Delete removes the row and returns what was stored.
func (r *NamedPostgres) Delete(ctx context.Context, id string) (*model.NamedEntity, error) {
	return scanOne(r.db.QueryRowContext(ctx, r.qDelete, id))
}

func scanOne(row *sql.Row) (*model.NamedEntity, error) {
	var e model.NamedEntity
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// translate maps a unique-constraint violation to repository.ErrDuplicateName.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateName, pgErr.ConstraintName)
	}
	return err
}
