package storage

import (
	"log/slog"
	"time"

	"pngstash/models"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

type OperationHistory interface {
	RecordOperation(op *models.Operation) (*models.Operation, error)
	ListOperations(limit int) ([]models.Operation, error)
	GetOperationByID(id uint32) (*models.Operation, error)
	RemoveOperation(id uint32) error
	Close() error
}

type ProviderSQL struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func (p ProviderSQL) RecordOperation(op *models.Operation) (*models.Operation, error) {
	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now()
	}
	query := `
        INSERT INTO operations (kind, source, output, payload_size, output_size, chunks, valid_chunks, created_at)
        VALUES (:kind, :source, :output, :payload_size, :output_size, :chunks, :valid_chunks, :created_at)
        RETURNING *;`
	stmt, err := p.db.PrepareNamed(query)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	var resp models.Operation
	err = stmt.Get(&resp, op)
	return &resp, err
}

// ListOperations returns the newest operations first; limit <= 0 means all of them.
func (p ProviderSQL) ListOperations(limit int) ([]models.Operation, error) {
	resp := []models.Operation{}
	if limit <= 0 {
		limit = -1
	}
	err := p.db.Select(&resp, "SELECT * FROM operations ORDER BY created_at DESC, id DESC LIMIT $1;", limit)
	return resp, err
}

func (p ProviderSQL) GetOperationByID(id uint32) (*models.Operation, error) {
	resp := models.Operation{}
	err := p.db.Get(&resp, "SELECT * FROM operations WHERE id=$1;", id)
	return &resp, err
}

func (p ProviderSQL) RemoveOperation(id uint32) error {
	query := "DELETE FROM operations WHERE id = $1;"
	_, err := p.db.Exec(query, id)
	return err
}

func (p ProviderSQL) Close() error {
	return p.db.Close()
}

// NewProviderSQL opens the sqlite file at dbPath and applies the migrations. Returns nil on failure.
func NewProviderSQL(dbPath string, logger *slog.Logger) OperationHistory {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		logger.Error("failed to open db connection", "error", err, "path", dbPath)
		return nil
	}
	var version string
	if err := db.Get(&version, "select sqlite_version()"); err != nil {
		logger.Error("failed to query sqlite version", "error", err, "path", dbPath)
		db.Close()
		return nil
	}
	logger.Debug("opened history db", "path", dbPath, "sqlite_version", version)
	p := ProviderSQL{db: db, logger: logger}
	if err := p.Migrate(); err != nil {
		logger.Error("failed to migrate history db", "error", err, "path", dbPath)
		db.Close()
		return nil
	}
	return p
}
