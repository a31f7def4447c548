package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

const (
	journalPathKey    = "journal.path"
	journalDirMode    = 0o700
	journalConfigDir  = ".ashell"
	journalConfigFile = "journal.db"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
}

const schema = `
CREATE TABLE IF NOT EXISTS sync_journal (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	bytes INTEGER NOT NULL,
	synced_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sync_journal_path ON sync_journal(path);
`

// Journal records every file written through the sync endpoint.
type Journal struct {
	db   *sql.DB
	path string
}

var _ ports.SyncJournal = (*Journal)(nil)

// NewJournal opens the database named by journal.path, defaulting to
// ~/.ashell/journal.db.
func NewJournal(cfg *viper.Viper) (*Journal, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(journalPathKey, filepath.Join(homeDir, journalConfigDir, journalConfigFile))

	path := cfg.GetString(journalPathKey)
	if path == "" {
		return nil, errors.New("journal path is empty")
	}

	return Open(path)
}

func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve journal path: %w", err)
		}
		path = absPath

		if err := os.MkdirAll(filepath.Dir(path), journalDirMode); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set journal pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize journal schema: %w", err)
	}

	return &Journal{db: db, path: path}, nil
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) Record(ctx context.Context, record domain.SyncRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	syncedAt := record.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO sync_journal (path, bytes, synced_at) VALUES (?, ?, ?)`,
		record.Path, record.Bytes, syncedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert sync record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.SyncRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, path, bytes, synced_at FROM sync_journal ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sync records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]domain.SyncRecord, 0, limit)
	for rows.Next() {
		var (
			record   domain.SyncRecord
			syncedAt string
		)
		if err := rows.Scan(&record.ID, &record.Path, &record.Bytes, &syncedAt); err != nil {
			return nil, fmt.Errorf("scan sync record: %w", err)
		}

		record.SyncedAt, err = time.Parse(time.RFC3339Nano, syncedAt)
		if err != nil {
			return nil, fmt.Errorf("parse sync time %q: %w", syncedAt, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync records: %w", err)
	}

	return records, nil
}
