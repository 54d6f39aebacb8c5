package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pagepulse/pagepulse/internal/tracking"
)

// PostgresStore is a PostgreSQL implementation of tracking.Store. It keeps
// the same sliding-window retention semantics as the file store: rows past
// the cap are pruned oldest-first on every append.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed event store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the events table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tracking_events (
			id       BIGSERIAL PRIMARY KEY,
			event_id TEXT,
			ts       BIGINT NOT NULL,
			ip       TEXT,
			country  TEXT,
			path     TEXT,
			referrer TEXT,
			ua       TEXT
		)
	`

	_, err := p.pool.Exec(ctx, query)

	return err
}

func (p *PostgresStore) Append(ctx context.Context, event tracking.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	query := `
		INSERT INTO tracking_events (event_id, ts, ip, country, path, referrer, ua)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		nullableString(event.ID),
		event.Timestamp,
		nullableString(event.ClientIP),
		nullableString(event.Country),
		nullableString(event.Path),
		nullableString(event.Referrer),
		nullableString(event.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	prune := `
		DELETE FROM tracking_events
		WHERE id IN (
			SELECT id FROM tracking_events ORDER BY id DESC OFFSET $1
		)
	`

	if _, err := p.pool.Exec(ctx, prune, tracking.MaxEvents); err != nil {
		return fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	return nil
}

func (p *PostgresStore) All(ctx context.Context) ([]tracking.Event, error) {
	query := `
		SELECT event_id, ts, ip, country, path, referrer, ua
		FROM tracking_events
		ORDER BY id ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}
	defer rows.Close()

	var events []tracking.Event

	for rows.Next() {
		var (
			event                          tracking.Event
			id, ip, country, path, ref, ua *string
		)

		if err := rows.Scan(&id, &event.Timestamp, &ip, &country, &path, &ref, &ua); err != nil {
			return nil, fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
		}

		event.ID = derefString(id)
		event.ClientIP = derefString(ip)
		event.Country = derefString(country)
		event.Path = derefString(path)
		event.Referrer = derefString(ref)
		event.UserAgent = derefString(ua)

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	return events, nil
}

// Ping checks database connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
