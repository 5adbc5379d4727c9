package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgClient runs the generic query surface directly against Postgres. Rows
// travel as jsonb so the same decode path serves all drivers.
type pgClient struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pgx pool and returns a Client over it.
func NewPostgres(ctx context.Context, databaseURL string, maxConns, minConns int32) (Client, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &pgClient{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool, for callers that manage the
// pool lifecycle themselves.
func NewPostgresFromPool(pool *pgxpool.Pool) Client {
	return &pgClient{pool: pool}
}

// Close releases the pool. Callers that built the client through
// NewPostgres discover it via io.Closer.
func (c *pgClient) Close() error {
	c.pool.Close()
	return nil
}

// whereClause renders the query's predicates. Identifier safety is the
// caller's concern (validateIdents); values always travel as placeholders.
func whereClause(q Query) (string, []any) {
	var parts []string
	var args []any
	for _, f := range q.activeFilters() {
		args = append(args, f.Value)
		parts = append(parts, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}
	if !q.Search.empty() {
		args = append(args, "%"+q.Search.Term+"%")
		n := len(args)
		var ors []string
		for _, col := range q.Search.Columns {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		parts = append(parts, "("+strings.Join(ors, " OR ")+")")
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func orderClause(q Query) string {
	if len(q.Order) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q.Order))
	for _, o := range q.Order {
		dir := "ASC"
		if o.Descending {
			dir = "DESC"
		}
		keys = append(keys, o.Column+" "+dir)
	}
	return " ORDER BY " + strings.Join(keys, ", ")
}

func (c *pgClient) Select(ctx context.Context, q Query) ([]Row, error) {
	if err := validateIdents(q); err != nil {
		return nil, err
	}
	where, args := whereClause(q)
	sql := fmt.Sprintf("SELECT to_jsonb(t) FROM %s t%s%s", q.Collection, where, orderClause(q))
	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		var r Row
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode row: %v", ErrUnavailable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

func (c *pgClient) Get(ctx context.Context, collection, id string) (Row, error) {
	if err := validateIdents(Query{Collection: collection}); err != nil {
		return nil, err
	}
	sql := fmt.Sprintf("SELECT to_jsonb(t) FROM %s t WHERE t.id = $1", collection)
	var raw []byte
	err := c.pool.QueryRow(ctx, sql, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var r Row
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: decode row: %v", ErrUnavailable, err)
	}
	return r, nil
}

func (c *pgClient) Count(ctx context.Context, q Query) (int, error) {
	if err := validateIdents(q); err != nil {
		return 0, err
	}
	where, args := whereClause(q)
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s t%s", q.Collection, where)
	var total int
	if err := c.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return total, nil
}

func (c *pgClient) Insert(ctx context.Context, collection string, row Row) (Row, error) {
	if err := validateIdents(Query{Collection: collection}); err != nil {
		return nil, err
	}
	cols := make([]string, 0, len(row))
	for col := range row {
		if !identPattern.MatchString(col) {
			return nil, fmt.Errorf("store: invalid identifier %q", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	holders := make([]string, 0, len(cols))
	for i, col := range cols {
		v := row[col]
		// Nested structures land in jsonb columns.
		switch v.(type) {
		case map[string]any, []any:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("store: encode insert: %w", err)
			}
			v = b
		}
		args = append(args, v)
		holders = append(holders, fmt.Sprintf("$%d", i+1))
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING to_jsonb(%s)",
		collection, strings.Join(cols, ", "), strings.Join(holders, ", "), collection)
	var raw []byte
	if err := c.pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var stored Row
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: decode row: %v", ErrUnavailable, err)
	}
	return stored, nil
}
