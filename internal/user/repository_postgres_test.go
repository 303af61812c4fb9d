package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pattarap/shop-api/internal/apperror"
)

const userColumnsPattern = `SELECT id, email, username, password_hash, created_at, updated_at`

func userRows(id uuid.UUID, email, username, hash string, created, updated time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}).
		AddRow(id.String(), email, username, hash, created, updated)
}

func TestPostgresFindByID_Absent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	id := uuid.New()
	mock.ExpectQuery(userColumnsPattern).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}))

	u, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "j@example.com", "jdoe", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err = repo.Create(context.Background(), CreateUserInput{
		Email: "j@example.com", Username: "jdoe", Password: "hash",
	})
	if !errors.Is(err, apperror.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_OtherConstraintIsDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})

	_, err = repo.Create(context.Background(), CreateUserInput{
		Email: "j@example.com", Username: "jdoe", Password: "hash",
	})
	if errors.Is(err, apperror.ErrDuplicateEntry) {
		t.Fatal("only the email constraint maps to ErrDuplicateEntry")
	}
	if err == nil {
		t.Fatal("expected a database error")
	}
}

func TestPostgresUpdate_CoalesceMerge(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	id := uuid.New()
	now := time.Now().UTC()
	email := "j.new@example.com"

	// unset fields are bound as NULL so COALESCE keeps the stored value
	mock.ExpectQuery("UPDATE users").
		WithArgs(email, nil, nil, sqlmock.AnyArg(), id).
		WillReturnRows(userRows(id, email, "jdoe", "hash", now.Add(-time.Hour), now))

	updated, err := repo.Update(context.Background(), id, UpdateUserInput{Email: &email})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != email {
		t.Fatalf("expected email %q, got %q", email, updated.Email)
	}
	if updated.Username != "jdoe" {
		t.Fatalf("unset field changed: %q", updated.Username)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_RowVanished(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	id := uuid.New()
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}))

	_, err = repo.Update(context.Background(), id, UpdateUserInput{})
	if err == nil {
		t.Fatal("expected an error when the row vanished during the write")
	}
	if errors.Is(err, apperror.ErrNotFound) {
		t.Fatal("mid-write disappearance is a database error, not ErrNotFound")
	}
}

func TestPostgresDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	id := uuid.New()
	mock.ExpectExec("DELETE FROM users").WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), id); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_OrderedByCreationDescending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}).
		AddRow(uuid.New().String(), "c@example.com", "c", "h", now, now).
		AddRow(uuid.New().String(), "b@example.com", "b", "h", now.Add(-time.Minute), now.Add(-time.Minute)).
		AddRow(uuid.New().String(), "a@example.com", "a", "h", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(rows)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Username != "c" || users[2].Username != "a" {
		t.Fatalf("unexpected order: %q, %q, %q", users[0].Username, users[1].Username, users[2].Username)
	}
}
