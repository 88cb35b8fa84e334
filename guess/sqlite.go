package guess

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS guesses (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session    TEXT    NOT NULL,
	n          INTEGER NOT NULL,
	verdict    TEXT    NOT NULL,
	created_at TEXT    NOT NULL
)`

// timeLayout is RFC 3339 with nanoseconds and a seconds-precision offset, so
// historical zone offsets like -00:17:30 survive the round trip.
const timeLayout = "2006-01-02T15:04:05.999999999Z07:00:00"

// SQLiteStore is the production Store.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (and migrates) the database at dsn.
//
// Use ":memory:" for a throwaway database; the pool is pinned to one connection so
// every query sees the same in-memory database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("guess: open %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("guess: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Create implements Store.
func (s *SQLiteStore) Create(ctx context.Context, g Guess) (int64, error) {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	if err := CheckTime(g.CreatedAt); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO guesses (session, n, verdict, created_at) VALUES (?, ?, ?, ?)`,
		g.Session, g.N, g.Verdict, g.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("guess: create: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("guess: create: %w", err)
	}
	return id, nil
}

// Read implements Store.
func (s *SQLiteStore) Read(ctx context.Context, id int64) (Guess, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session, n, verdict, created_at FROM guesses WHERE id = ?`, id)

	g, err := scanGuess(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Guess{}, ErrNotFound
	}
	if err != nil {
		return Guess{}, fmt.Errorf("guess: read %d: %w", id, err)
	}
	return g, nil
}

// Update implements Store.
func (s *SQLiteStore) Update(ctx context.Context, id int64, g Guess) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE guesses SET session = ?, n = ?, verdict = ? WHERE id = ?`,
		g.Session, g.N, g.Verdict, id,
	)
	if err != nil {
		return fmt.Errorf("guess: update %d: %w", id, err)
	}
	return requireOneRow(res)
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM guesses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("guess: delete %d: %w", id, err)
	}
	return requireOneRow(res)
}

// List implements Store. Guesses come back in id order.
func (s *SQLiteStore) List(ctx context.Context) ([]Guess, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session, n, verdict, created_at FROM guesses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("guess: list: %w", err)
	}
	defer rows.Close()

	var out []Guess
	for rows.Next() {
		g, err := scanGuess(rows)
		if err != nil {
			return nil, fmt.Errorf("guess: list: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("guess: list: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGuess(sc scanner) (Guess, error) {
	var (
		g  Guess
		at string
	)
	if err := sc.Scan(&g.ID, &g.Session, &g.N, &g.Verdict, &at); err != nil {
		return Guess{}, err
	}
	t, err := time.Parse(timeLayout, at)
	if err != nil {
		return Guess{}, fmt.Errorf("created_at: %w", err)
	}
	g.CreatedAt = t
	return g, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("guess: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
