// Package store persists evaluated calculations in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	"github.com/msto63/complexkit/foundation/utils/complexx"
	"github.com/msto63/complexkit/internal/calc"
)

// Filter defines criteria for listing calculations
type Filter struct {
	Op    calc.Op
	Limit int
}

// Store defines the interface for calculation history persistence
type Store interface {
	Record(ctx context.Context, c calc.Calculation) error
	Get(ctx context.Context, id string) (calc.Calculation, error)
	List(ctx context.Context, filter Filter) ([]calc.Calculation, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) (int64, error)
	Close() error
}

var (
	_ Store         = (*SQLiteStore)(nil)
	_ calc.Recorder = (*SQLiteStore)(nil)
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/history.db"}
}

// NewSQLiteStore opens (and creates if needed) the history database
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory", "store.Open").WithDetail("dir", dir)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open").WithDetail("path", cfg.Path)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.Open").WithDetail("path", cfg.Path)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		op TEXT NOT NULL,
		left_re TEXT NOT NULL,
		left_im TEXT NOT NULL,
		right_re TEXT NOT NULL,
		right_im TEXT NOT NULL,
		result_re TEXT NOT NULL,
		result_im TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_op ON calculations(op);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a calculation
func (s *SQLiteStore) Record(ctx context.Context, c calc.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, op, left_re, left_im, right_re, right_im, result_re, result_im, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, string(c.Op),
		encodeFloat(c.Left.RealPart()), encodeFloat(c.Left.ImaginaryPart()),
		encodeFloat(c.Right.RealPart()), encodeFloat(c.Right.ImaginaryPart()),
		encodeFloat(c.Result.RealPart()), encodeFloat(c.Result.ImaginaryPart()),
		c.CreatedAt.UnixNano(),
	)
	if err != nil {
		return dbError(err, "failed to insert calculation", "store.Record").WithDetail("id", c.ID)
	}
	return nil
}

// Get returns the calculation with the given id
func (s *SQLiteStore) Get(ctx context.Context, id string) (calc.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	c, err := scanCalculation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return calc.Calculation{}, mdwerror.New("calculation not found").
			WithCode(mdwerror.CodeNotFound).
			WithSeverity(mdwerror.SeverityLow).
			WithOperation("store.Get").
			WithDetail("id", id)
	}
	if err != nil {
		return calc.Calculation{}, dbError(err, "failed to read calculation", "store.Get").WithDetail("id", id)
	}
	return c, nil
}

// List returns calculations matching filter, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]calc.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectColumns
	var args []interface{}

	if filter.Op != "" {
		query += " WHERE op = ?"
		args = append(args, string(filter.Op))
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query calculations", "store.List")
	}
	defer rows.Close()

	var result []calc.Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan calculation", "store.List")
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to iterate calculations", "store.List")
	}
	return result, nil
}

// Count returns the number of stored calculations
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations").Scan(&n); err != nil {
		return 0, dbError(err, "failed to count calculations", "store.Count")
	}
	return n, nil
}

// Clear deletes all calculations and returns how many were removed
func (s *SQLiteStore) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM calculations")
	if err != nil {
		return 0, dbError(err, "failed to clear calculations", "store.Clear")
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const selectColumns = `SELECT id, op, left_re, left_im, right_re, right_im, result_re, result_im, created_at FROM calculations`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCalculation(row scanner) (calc.Calculation, error) {
	var (
		c         calc.Calculation
		op        string
		parts     [6]string
		createdAt int64
	)

	if err := row.Scan(&c.ID, &op, &parts[0], &parts[1], &parts[2], &parts[3], &parts[4], &parts[5], &createdAt); err != nil {
		return calc.Calculation{}, err
	}

	var values [6]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return calc.Calculation{}, err
		}
		values[i] = v
	}

	c.Op = calc.Op(op)
	c.Left = complexx.New(values[0], values[1])
	c.Right = complexx.New(values[2], values[3])
	c.Result = complexx.New(values[4], values[5])
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	return c, nil
}

// encodeFloat keeps NaN, ±Inf and -0 intact, which REAL columns do not.
func encodeFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func dbError(err error, message, operation string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithSeverity(mdwerror.SeverityHigh).
		WithOperation(operation)
}
