package postgres

import (
	"context"
	"fmt"

	"github.com/event-booker/booker/internal/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id              BIGINT PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL,
	event_date      TEXT NOT NULL DEFAULT '',
	price           NUMERIC(10, 2) NOT NULL DEFAULT 0,
	available_seats INTEGER NOT NULL CHECK (available_seats >= 0)
)`

// CatalogSource serves the catalog from the events table. It only reads;
// bookings made in the browser never reach the database.
type CatalogSource struct {
	pool *pgxpool.Pool
}

func NewCatalogSource(pool *pgxpool.Pool) *CatalogSource {
	return &CatalogSource{pool: pool}
}

func (s *CatalogSource) Name() string { return "postgres" }

// Events returns every row ordered by id.
func (s *CatalogSource) Events(ctx context.Context) ([]catalog.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, category, event_date, price::text, available_seats
		FROM events
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []catalog.Event{}
	for rows.Next() {
		var (
			e     catalog.Event
			cat   string
			price string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &cat, &e.Date, &price, &e.AvailableSeats); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Category = catalog.Category(cat)
		if e.Price, err = catalog.NewPrice(price); err != nil {
			return nil, fmt.Errorf("event %d price %q: %w", e.ID, price, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Migrate creates the events table if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}
	return nil
}

// Seed upserts events by id in one transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool, events []catalog.Event) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(`
			INSERT INTO events (id, title, description, category, event_date, price, available_seats)
			VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				category = EXCLUDED.category,
				event_date = EXCLUDED.event_date,
				price = EXCLUDED.price,
				available_seats = EXCLUDED.available_seats`,
			e.ID, e.Title, e.Description, string(e.Category), e.Date, e.Price.String(), e.AvailableSeats)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	return tx.Commit(ctx)
}
