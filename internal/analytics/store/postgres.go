package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/golinks/internal/analytics"
)

// Postgres persists visit events to the link_visits table.
//
// Schema:
//
//	CREATE TABLE link_visits (
//	    id         TEXT PRIMARY KEY,
//	    shortcut   TEXT NOT NULL,
//	    referrer   TEXT NOT NULL,
//	    user_agent TEXT NOT NULL,
//	    country    TEXT NOT NULL,
//	    visited_at TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX link_visits_shortcut_idx ON link_visits (shortcut);
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveLinkVisited(ctx context.Context, event *analytics.LinkVisitedEvent) error {
	query := `
		INSERT INTO link_visits (id, shortcut, referrer, user_agent, country, visited_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Shortcut,
		event.Referrer,
		event.UserAgent,
		event.Country,
		event.VisitedAt,
	)

	return err
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
