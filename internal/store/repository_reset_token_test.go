package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jovanamartatilova/librareads/internal/logger"
	"github.com/jovanamartatilova/librareads/models"
)

func newTestResetTokenRepo(t *testing.T) (*resetTokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &resetTokenRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func resetTokenColumns() []string {
	return []string{"id", "user_id", "token", "expires_at", "created_at"}
}

func TestReplace_Success(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	now := time.Now()
	expiresAt := now.Add(10 * time.Minute)
	token := models.ResetToken{UserID: 7, Token: "482915", ExpiresAt: expiresAt}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reset_tokens").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO reset_tokens").
		WithArgs(int64(7), "482915", expiresAt).
		WillReturnRows(sqlmock.NewRows(resetTokenColumns()).AddRow(3, 7, "482915", expiresAt, now))
	mock.ExpectCommit()

	saved, err := repo.Replace(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 3 || saved.Token != "482915" {
		t.Errorf("unexpected token returned: %+v", saved)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplace_DeleteFails(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reset_tokens").
		WillReturnError(pgError(pgerrcode.ConnectionFailure, ""))
	mock.ExpectRollback()

	_, err := repo.Replace(context.Background(), models.ResetToken{UserID: 7, Token: "482915"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestReplace_InsertFails(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reset_tokens").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO reset_tokens").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Replace(context.Background(), models.ResetToken{UserID: 7, Token: "482915"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestReplace_BeginFails(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	_, err := repo.Replace(context.Background(), models.ResetToken{UserID: 7})
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestFindByToken_Success(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM reset_tokens").
		WithArgs("482915").
		WillReturnRows(sqlmock.NewRows(resetTokenColumns()).AddRow(3, 7, "482915", now.Add(10*time.Minute), now))

	found, err := repo.FindByToken(context.Background(), "482915")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
}

func TestFindByToken_NotFound(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM reset_tokens").
		WithArgs("000000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByToken(context.Background(), "000000")
	if !errors.Is(err, ErrResetTokenNotFound) {
		t.Fatalf("expected ErrResetTokenNotFound, got %v", err)
	}
}

func TestDeleteByToken_Idempotent(t *testing.T) {
	repo, mock, db := newTestResetTokenRepo(t)
	defer db.Close()

	// zero rows affected is still a success
	mock.ExpectExec("DELETE FROM reset_tokens").
		WithArgs("482915").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByToken(context.Background(), "482915"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
