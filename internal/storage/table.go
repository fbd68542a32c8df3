// ABOUTME: Generic typed table over database/sql shared by every entity.
// ABOUTME: Provides get, list, insert, upsert, update, delete, count, and prefix lookup.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type scanner interface {
	Scan(dest ...any) error
}

// table maps one entity type onto one SQLite table. The first column is
// always the "id" primary key and values must return columns in order.
type table[T any] struct {
	name    string
	entity  string
	columns []string
	values  func(*T) []any
	scan    func(scanner) (*T, error)
}

func (t *table[T]) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t *table[T]) insertSQL() string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(t.columns, ", "), marks)
}

func (t *table[T]) upsertSQL() string {
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return t.insertSQL() + " ON CONFLICT(id) DO UPDATE SET " + strings.Join(sets, ", ")
}

func (t *table[T]) updateSQL() string {
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns[1:] {
		sets = append(sets, c+" = ?")
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.name, strings.Join(sets, ", "))
}

func (t *table[T]) get(ctx context.Context, q querier, id string) (*T, error) {
	v, err := t.scan(q.QueryRowContext(ctx, t.selectSQL()+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Entity: t.entity, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", t.entity, err)
	}
	return v, nil
}

// list runs a select with the given trailing clause (WHERE / ORDER BY).
// The result is never nil.
func (t *table[T]) list(ctx context.Context, q querier, clause string, args ...any) ([]*T, error) {
	query := t.selectSQL()
	if clause != "" {
		query += " " + clause
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		v, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.entity, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return out, nil
}

func (t *table[T]) insert(ctx context.Context, q querier, v *T) error {
	if _, err := q.ExecContext(ctx, t.insertSQL(), t.values(v)...); err != nil {
		return fmt.Errorf("insert %s: %w", t.entity, err)
	}
	return nil
}

func (t *table[T]) upsert(ctx context.Context, q querier, v *T) error {
	if _, err := q.ExecContext(ctx, t.upsertSQL(), t.values(v)...); err != nil {
		return fmt.Errorf("upsert %s: %w", t.entity, err)
	}
	return nil
}

func (t *table[T]) insertAll(ctx context.Context, q querier, vs []*T) (int, error) {
	return t.execAll(ctx, q, t.insertSQL(), "insert", vs)
}

func (t *table[T]) upsertAll(ctx context.Context, q querier, vs []*T) (int, error) {
	return t.execAll(ctx, q, t.upsertSQL(), "upsert", vs)
}

func (t *table[T]) execAll(ctx context.Context, q querier, query, verb string, vs []*T) (int, error) {
	if len(vs) == 0 {
		return 0, nil
	}

	stmt, err := q.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare %s %s: %w", verb, t.name, err)
	}
	defer stmt.Close()

	for i, v := range vs {
		if v == nil {
			return i, fmt.Errorf("%s %s: nil record at index %d", verb, t.entity, i)
		}
		if _, err := stmt.ExecContext(ctx, t.values(v)...); err != nil {
			return i, fmt.Errorf("%s %s at index %d: %w", verb, t.entity, i, err)
		}
	}
	return len(vs), nil
}

// update rewrites every non-key column of an existing row.
func (t *table[T]) update(ctx context.Context, q querier, v *T) error {
	vals := t.values(v)
	args := append(vals[1:len(vals):len(vals)], vals[0])

	res, err := q.ExecContext(ctx, t.updateSQL(), args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.entity, err)
	}
	return t.checkAffected(res, vals[0])
}

func (t *table[T]) delete(ctx context.Context, q querier, id string) error {
	res, err := q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.entity, err)
	}
	return t.checkAffected(res, id)
}

func (t *table[T]) deleteWhere(ctx context.Context, q querier, clause string, args ...any) (int64, error) {
	query := "DELETE FROM " + t.name
	if clause != "" {
		query += " " + clause
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", t.name, err)
	}
	return res.RowsAffected()
}

func (t *table[T]) count(ctx context.Context, q querier, clause string, args ...any) (int, error) {
	query := "SELECT COUNT(*) FROM " + t.name
	if clause != "" {
		query += " " + clause
	}
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// resolveID finds a full ID from an exact ID or unique prefix.
func (t *table[T]) resolveID(ctx context.Context, q querier, idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", &NotFoundError{Entity: t.entity, ID: idOrPrefix}
	}

	var exact int
	if err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", t.name), idOrPrefix).Scan(&exact); err != nil {
		return "", fmt.Errorf("resolve %s id: %w", t.entity, err)
	}
	if exact == 1 {
		return idOrPrefix, nil
	}

	rows, err := q.QueryContext(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE substr(id, 1, ?) = ? LIMIT 2", t.name),
		len(idOrPrefix), idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve %s id: %w", t.entity, err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolve %s id: %w", t.entity, err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve %s id: %w", t.entity, err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Entity: t.entity, ID: idOrPrefix}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w for %s: %s", ErrAmbiguousID, t.entity, idOrPrefix)
	}
}

func (t *table[T]) checkAffected(res sql.Result, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", t.entity, err)
	}
	if n == 0 {
		return &NotFoundError{Entity: t.entity, ID: fmt.Sprint(id)}
	}
	return nil
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
