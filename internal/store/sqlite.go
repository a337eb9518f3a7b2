// internal/store/sqlite.go
//
// SQLite implementation of Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, immediate tx).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Read-modify-write of a round inside one transaction.
//
// Only live round state is kept here so rounds survive a restart; finished
// rounds are never aggregated into scores.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the SQLite file at path and applies
// migrations.
func OpenSQLite(path string) (Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB opens a SQLite database file.
//
//   - Ensures parent directory exists for relative paths (e.g. ./data/rounds.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Starts transactions with BEGIN IMMEDIATE so concurrent updates of a
//     round queue on the write lock instead of failing at commit.
func openDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// migrate applies the embedded sql/*.sql files in lexical order.
//
//   - Uses a _migrations table to track applied files.
//   - Each file runs inside its own transaction.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *sqliteStore) Save(ctx context.Context, r *game.Round) error {
	return put(ctx, s.db, r)
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Round, error) {
	return load(ctx, s.db, id)
}

// Update runs fn between a SELECT and an UPDATE of one transaction.
func (s *sqliteStore) Update(ctx context.Context, id string, fn func(*game.Round) error) (*game.Round, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := load(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	if err := put(ctx, tx, r); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.Clone(), nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func put(ctx context.Context, q queryer, r *game.Round) error {
	snap := r.Snapshot()
	_, err := q.ExecContext(ctx, `
        INSERT INTO rounds (id, owner, secret, mask, attempts, guessed, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            owner=excluded.owner, secret=excluded.secret, mask=excluded.mask,
            attempts=excluded.attempts, guessed=excluded.guessed,
            updated_at=excluded.updated_at`,
		snap.ID, snap.Owner, snap.Secret, snap.Mask, snap.Attempts, snap.Guessed,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save round %s: %w", snap.ID, err)
	}
	return nil
}

func load(ctx context.Context, q queryer, id string) (*game.Round, error) {
	var snap game.Snapshot
	err := q.QueryRowContext(ctx,
		`SELECT id, owner, secret, mask, attempts, guessed FROM rounds WHERE id=?`, id,
	).Scan(&snap.ID, &snap.Owner, &snap.Secret, &snap.Mask, &snap.Attempts, &snap.Guessed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load round %s: %w", id, err)
	}
	return game.Restore(snap)
}
