// Package sqlite implements the binding and token stores on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var (
	_ out.BindingStore = (*Store)(nil)
	_ out.TokenStore   = (*Store)(nil)
)

// Fixed-width UTC timestamps sort lexically in creation order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// The partial unique indexes hold the one-live-record rules even when two
// processes share the database file.
const schema = `
CREATE TABLE IF NOT EXISTS containers (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	name TEXT NOT NULL,
	runtime_id TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL,
	state TEXT NOT NULL CHECK (state IN ('pending', 'active', 'destroyed')),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	destroyed_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS containers_live_owner
	ON containers(owner_id) WHERE state IN ('pending', 'active');
CREATE UNIQUE INDEX IF NOT EXISTS containers_live_name
	ON containers(name) WHERE state IN ('pending', 'active');
CREATE INDEX IF NOT EXISTS containers_created_at ON containers(created_at);
CREATE TABLE IF NOT EXISTS terminal_tokens (
	runtime_id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	token TEXT NOT NULL,
	expires_at TEXT NOT NULL
);
`

const recordColumns = `id, owner_id, name, runtime_id, image, state, created_at, updated_at, destroyed_at`

// Store is a SQLite-backed store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	log := logging.FromCtx(ctx).With(logging.FieldLayer, "adapter", logging.FieldAdapter, "sqlite")

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection serializes every transaction in this process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Debug("database ready", "path", path)
	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// dsn takes the write lock at BEGIN so a transaction that reads before it
// writes waits on busy_timeout for another process instead of failing with
// SQLITE_BUSY. The pragmas apply to every new connection.
func dsn(path string) string {
	return "file:" + path +
		"?_txlock=immediate" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)"
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// FindActive returns the owner's live record, or nil.
func (s *Store) FindActive(ctx context.Context, owner domain.OwnerID) (*domain.ContainerRecord, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM containers WHERE owner_id = ? AND state IN ('pending', 'active')`,
		owner.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("find active record", err)
	}
	return rec, nil
}

// InsertPending checks both uniqueness rules and inserts in one transaction.
func (s *Store) InsertPending(ctx context.Context, owner domain.OwnerID, name, image string) (*domain.ContainerRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin insert", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing string
	err = tx.QueryRowContext(ctx,
		`SELECT name FROM containers WHERE owner_id = ? AND state IN ('pending', 'active')`,
		owner.String()).Scan(&existing)
	switch {
	case err == nil:
		return nil, domain.NewError(domain.KindConflict, "owner "+owner.String()+" already has container "+existing, nil)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, storeErr("check owner", err)
	}

	var taken int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM containers WHERE name = ? AND state IN ('pending', 'active')`,
		name).Scan(&taken); err != nil {
		return nil, storeErr("check name", err)
	}
	if taken > 0 {
		return nil, domain.NewError(domain.KindNameInUse, "container name "+name+" is already in use", nil)
	}

	now := s.now()
	rec := &domain.ContainerRecord{
		ID:        uuid.New().String(),
		Owner:     owner,
		Name:      name,
		Image:     image,
		State:     domain.RecordPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO containers (id, owner_id, name, runtime_id, image, state, created_at, updated_at)
		 VALUES (?, ?, ?, '', ?, ?, ?, ?)`,
		rec.ID, owner.String(), name, image, string(domain.RecordPending),
		formatTime(now), formatTime(now)); err != nil {
		return nil, classifyInsert(owner, name, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, classifyInsert(owner, name, err)
	}
	return rec, nil
}

// MarkActive moves a pending record to active.
func (s *Store) MarkActive(ctx context.Context, recordID, runtimeID string) (*domain.ContainerRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin activate", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE containers SET runtime_id = ?, state = 'active', updated_at = ?
		 WHERE id = ? AND state = 'pending'`,
		runtimeID, formatTime(s.now()), recordID)
	if err != nil {
		return nil, storeErr("activate record", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, storeErr("activate record", err)
	} else if n == 0 {
		return nil, domain.NewError(domain.KindNotFound, "pending record "+recordID+" not found", nil)
	}

	rec, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM containers WHERE id = ?`, recordID))
	if err != nil {
		return nil, storeErr("reload record", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr("commit activate", err)
	}
	return rec, nil
}

// MarkDestroyed moves a record to destroyed; repeated calls are no-ops.
func (s *Store) MarkDestroyed(ctx context.Context, recordID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin destroy", err)
	}
	defer func() { _ = tx.Rollback() }()

	var state string
	err = tx.QueryRowContext(ctx, `SELECT state FROM containers WHERE id = ?`, recordID).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewError(domain.KindNotFound, "record "+recordID+" not found", nil)
	}
	if err != nil {
		return storeErr("load record", err)
	}
	if domain.RecordState(state) == domain.RecordDestroyed {
		return nil
	}

	now := formatTime(s.now())
	if _, err := tx.ExecContext(ctx,
		`UPDATE containers SET state = 'destroyed', updated_at = ?, destroyed_at = ? WHERE id = ?`,
		now, now, recordID); err != nil {
		return storeErr("destroy record", err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit destroy", err)
	}
	return nil
}

// RemovePending deletes a pending record.
func (s *Store) RemovePending(ctx context.Context, recordID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM containers WHERE id = ? AND state = 'pending'`, recordID); err != nil {
		return storeErr("remove pending record", err)
	}
	return nil
}

// ListAll returns every record sorted by creation time.
func (s *Store) ListAll(ctx context.Context) ([]domain.ContainerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM containers ORDER BY created_at, rowid`)
	if err != nil {
		return nil, storeErr("list records", err)
	}
	defer rows.Close()

	records := make([]domain.ContainerRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, storeErr("scan record", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate records", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.ContainerRecord, error) {
	var (
		rec                  domain.ContainerRecord
		owner, state         string
		createdAt, updatedAt string
		destroyedAt          sql.NullString
	)
	if err := row.Scan(&rec.ID, &owner, &rec.Name, &rec.RuntimeID, &rec.Image, &state,
		&createdAt, &updatedAt, &destroyedAt); err != nil {
		return nil, err
	}
	rec.Owner = domain.OwnerID(owner)
	rec.State = domain.RecordState(state)

	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if destroyedAt.Valid {
		if rec.DestroyedAt, err = parseTime(destroyedAt.String); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

// classifyInsert maps a unique index violation raised by a concurrent writer
// in another process to the matching domain kind.
func classifyInsert(owner domain.OwnerID, name string, err error) error {
	var sqlErr *sqlitedriver.Error
	if errors.As(err, &sqlErr) && sqlErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		if strings.Contains(sqlErr.Error(), "containers.owner_id") {
			return domain.NewError(domain.KindConflict, "owner "+owner.String()+" already has a container", nil)
		}
		return domain.NewError(domain.KindNameInUse, "container name "+name+" is already in use", nil)
	}
	return storeErr("insert record", err)
}

func storeErr(op string, err error) error {
	return domain.NewError(domain.KindStore, op, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(timeFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return t, nil
}
