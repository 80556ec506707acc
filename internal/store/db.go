package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Store holds the offer corpus in an in-process sqlite database. The corpus
// is written once at startup (seed + generated records) and read-only
// afterwards, which is why a single connection is enough.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory store.
func Open() (*Store, error) {
	// One shared connection: each new conn to :memory: would get its own
	// empty database.
	db, err := sql.Open("sqlite", "file::memory:?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS offers (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  description TEXT NOT NULL,
  salary TEXT NOT NULL DEFAULT '',
  contract_type TEXT NOT NULL,
  duration TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL,
  posted_at TEXT NOT NULL DEFAULT '',
  logo_url TEXT NOT NULL DEFAULT '',
  title_fold TEXT NOT NULL,
  location_fold TEXT NOT NULL,
  freshness INTEGER NOT NULL DEFAULT 0
);
`); err != nil {
		return err
	}

	// Substring filters scan the fold columns; index them anyway for the
	// exact-id detail lookup path.
	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_offers_location_fold ON offers(location_fold);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}
