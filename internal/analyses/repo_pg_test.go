package analyses

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:         "analysis-1",
		SessionID:  "session-1",
		DocumentID: "doc-1",
		Status:     StatusQueued,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.SessionID,
			sqlmock.AnyArg(), // document_id
			analysis.Status,
			analysis.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDParsesResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "session_id", "document_id", "status", "error_code", "error_message",
		"overall_score", "result", "created_at", "started_at", "completed_at", "updated_at",
	}).AddRow(
		"analysis-1", "session-1", "doc-1", StatusCompleted, nil, nil,
		87.5, []byte(`{"overall":{"averageScore":87.5,"tier":"excellent"}}`), now, now, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	analysis, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if analysis.Status != StatusCompleted {
		t.Fatalf("status = %s", analysis.Status)
	}
	if analysis.OverallScore == nil || *analysis.OverallScore != 87.5 {
		t.Fatalf("overall score = %v", analysis.OverallScore)
	}
	if analysis.Result == nil {
		t.Fatalf("expected parsed result")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE analyses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatusResultAndError(context.Background(), "missing", StatusProcessing, nil, nil, nil, nil, nil, nil)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
