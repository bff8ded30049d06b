// Copyright 2020 Dragonchain, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history keeps a local log of transactions submitted through dctl,
// so operators can find transaction ids after the terminal scrollback is
// gone.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded transaction submission.
type Entry struct {
	// ID is the local row id, assigned on append.
	ID string
	// DragonchainID is the chain the transaction was posted to.
	DragonchainID string
	// TransactionType is the type the transaction posted under.
	TransactionType string
	// TransactionID is the id the chain assigned. Empty when the
	// submission failed.
	TransactionID string
	// Tag is the optional transaction tag.
	Tag string
	// SubmittedAt is when dctl posted the transaction, in UTC.
	SubmittedAt time.Time
}

// Store is a SQLite-backed submission log.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the standard history database location,
// ~/.dragonchain/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".dragonchain", "history.db"), nil
}

// Open opens (or creates) the history database at path. The parent
// directory is created when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// SQLite serializes writes; one connection avoids lock churn.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.configure(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) configure(ctx context.Context) error {
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA journal_mode=WAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS submissions (
			id TEXT PRIMARY KEY,
			dragonchain_id TEXT NOT NULL,
			txn_type TEXT NOT NULL,
			txn_id TEXT,
			tag TEXT,
			submitted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_chain ON submissions(dragonchain_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("history migration failed: %w", err)
		}
	}
	return nil
}

// Append records a submission. A missing ID or SubmittedAt is filled in.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	if entry.DragonchainID == "" {
		return errors.New("history entry needs a dragonchain id")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, dragonchain_id, txn_type, txn_id, tag, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.DragonchainID, entry.TransactionType,
		entry.TransactionID, entry.Tag,
		entry.SubmittedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// List returns recorded submissions, newest first. An empty dragonchainID
// lists every chain; limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, dragonchainID string, limit int) ([]Entry, error) {
	query := `SELECT id, dragonchain_id, txn_type, txn_id, tag, submitted_at FROM submissions`
	args := []any{}
	if dragonchainID != "" {
		query += ` WHERE dragonchain_id = ?`
		args = append(args, dragonchainID)
	}
	query += ` ORDER BY submitted_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var txnID, tag sql.NullString
		var submittedAt string
		if err := rows.Scan(&e.ID, &e.DragonchainID, &e.TransactionType, &txnID, &tag, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		e.TransactionID = txnID.String
		e.Tag = tag.String
		if t, err := time.Parse(time.RFC3339, submittedAt); err == nil {
			e.SubmittedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
