package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pattarap/shop-api/internal/apperror"
)

// emailUniqueConstraint is the name of the unique constraint on users.email;
// Create inspects it to distinguish duplicates from other failures.
const emailUniqueConstraint = "users_email_key"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	findUserByIDQuery = `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	findUserByEmailQuery = `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	insertUserQuery = `
		INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, username, password_hash, created_at, updated_at
	`
	updateUserQuery = `
		UPDATE users
		SET email = COALESCE($1, email),
			username = COALESCE($2, username),
			password_hash = COALESCE($3, password_hash),
			updated_at = $4
		WHERE id = $5
		RETURNING id, email, username, password_hash, created_at, updated_at
	`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
	listUsersQuery  = `
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.db.QueryRowContext(ctx, findUserByIDQuery, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, findUserByEmailQuery, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, input CreateUserInput) (User, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, insertUserQuery,
		uuid.New(), input.Email, input.Username, input.Password, now, now)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			pgErr.ConstraintName == emailUniqueConstraint {
			return User{}, apperror.ErrDuplicateEntry
		}
		return User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (User, error) {
	row := r.db.QueryRowContext(ctx, updateUserQuery,
		input.Email, input.Username, input.Password, time.Now().UTC(), id)

	u, err := scanUser(row)
	if err != nil {
		// a row vanishing between the service pre-check and this write is a
		// storage failure, not a not-found outcome
		return User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func scanUser(scanner rowScanner) (User, error) {
	var u User
	if err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return User{}, err
	}
	return u, nil
}
