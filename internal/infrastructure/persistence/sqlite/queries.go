package sqlite

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries holds the statements of the focus memory schema.
type Queries struct {
	db DBTX
}

func newQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

// focusMemoryRow mirrors a focus_memory row. updated_at is unix nanoseconds.
type focusMemoryRow struct {
	Screen    string
	FocusKey  string
	UpdatedAt int64
}

const getFocusMemory = `SELECT screen, focus_key, updated_at FROM focus_memory WHERE screen = ?`

func (q *Queries) GetFocusMemory(ctx context.Context, screen string) (focusMemoryRow, error) {
	var row focusMemoryRow
	err := q.db.QueryRowContext(ctx, getFocusMemory, screen).Scan(&row.Screen, &row.FocusKey, &row.UpdatedAt)
	return row, err
}

const upsertFocusMemory = `INSERT INTO focus_memory (screen, focus_key, updated_at) VALUES (?, ?, ?)
ON CONFLICT(screen) DO UPDATE SET focus_key = excluded.focus_key, updated_at = excluded.updated_at`

func (q *Queries) UpsertFocusMemory(ctx context.Context, row focusMemoryRow) error {
	_, err := q.db.ExecContext(ctx, upsertFocusMemory, row.Screen, row.FocusKey, row.UpdatedAt)
	return err
}

const deleteFocusMemory = `DELETE FROM focus_memory WHERE screen = ?`

func (q *Queries) DeleteFocusMemory(ctx context.Context, screen string) error {
	_, err := q.db.ExecContext(ctx, deleteFocusMemory, screen)
	return err
}

const listFocusMemory = `SELECT screen, focus_key, updated_at FROM focus_memory ORDER BY updated_at DESC, screen`

func (q *Queries) ListFocusMemory(ctx context.Context) ([]focusMemoryRow, error) {
	rows, err := q.db.QueryContext(ctx, listFocusMemory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []focusMemoryRow
	for rows.Next() {
		var row focusMemoryRow
		if err := rows.Scan(&row.Screen, &row.FocusKey, &row.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

const clearFocusMemory = `DELETE FROM focus_memory`

func (q *Queries) ClearFocusMemory(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, clearFocusMemory)
	return err
}

const getFlag = `SELECT value FROM app_flags WHERE name = ?`

func (q *Queries) GetFlag(ctx context.Context, name string) (int64, error) {
	var value int64
	err := q.db.QueryRowContext(ctx, getFlag, name).Scan(&value)
	return value, err
}

const setFlag = `INSERT INTO app_flags (name, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (q *Queries) SetFlag(ctx context.Context, name string, value, updatedAt int64) error {
	_, err := q.db.ExecContext(ctx, setFlag, name, value, updatedAt)
	return err
}
