package sqlitestore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/scholars-chronicle/api/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements store.SlotStore over a local SQLite file.
//
// Per the adapter contract, Read and Write never return errors: every
// storage fault is logged and degraded to an absent read or a dropped
// write. Callers must tolerate loss.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure Store implements the store.SlotStore interface
var _ store.SlotStore = (*Store)(nil)

// slogGooseLogger forwards goose migration output to slog.
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error
// messages to slog.Error. Unlike the standard Fatalf behavior this does
// NOT call os.Exit; the error is returned to the caller which decides.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

// Open opens (or creates) the slot database at path and applies the
// bundled migrations. If logger is nil, the default logger is used.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	// The store is single-writer; one connection avoids SQLITE_BUSY races
	// between the WAL writer and concurrent readers.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		logger: logger.With(slog.String("component", "slot_store")),
	}, nil
}

// migrate applies the embedded goose migrations.
func migrate(db *sql.DB) error {
	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Read implements store.SlotStore.Read.
func (s *Store) Read(ctx context.Context, slot string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM slots WHERE key = ?`, slot,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false
	}

	if err != nil {
		s.logger.Warn("slot read failed, reporting absent",
			slog.String("slot", slot),
			slog.String("error", err.Error()))
		return nil, false
	}

	return value, true
}

// Write implements store.SlotStore.Write.
func (s *Store) Write(ctx context.Context, slot string, value []byte) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		slot, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		s.logger.Error("slot write dropped",
			slog.String("slot", slot),
			slog.String("error", err.Error()))
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
