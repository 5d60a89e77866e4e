// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

var recordColumns = []string{
	"id", "title", "abstract", "authors", "year", "venue",
	"citations", "doi", "url", "keywords", "category",
}

// SQLite is a catalog stored in a SQLite database. It supports filter
// pushdown through Filter.
type SQLite struct {
	db *sql.DB
}

var (
	_ Catalog  = (*SQLite)(nil)
	_ Filterer = (*SQLite)(nil)
)

// OpenSQLite opens or creates the catalog database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	c := &SQLite{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *SQLite) Close() error {
	return c.db.Close()
}

func (c *SQLite) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			position INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			abstract TEXT,
			authors TEXT,
			year INTEGER NOT NULL,
			venue TEXT,
			citations INTEGER NOT NULL DEFAULT 0,
			doi TEXT,
			url TEXT,
			keywords TEXT,
			category TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_year ON records(year)`,
		`CREATE INDEX IF NOT EXISTS idx_records_venue ON records(venue)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import upserts records. New records are appended to catalog order;
// existing IDs keep their position.
func (c *SQLite) Import(ctx context.Context, records []types.Record) error {
	if err := Validate(records); err != nil {
		return fmt.Errorf("invalid records: %w", err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, title, abstract, authors, year, venue, citations, doi, url, keywords, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract, authors=excluded.authors,
			year=excluded.year, venue=excluded.venue, citations=excluded.citations,
			doi=excluded.doi, url=excluded.url, keywords=excluded.keywords,
			category=excluded.category`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		authorsJSON, _ := json.Marshal(r.Authors)
		keywordsJSON, _ := json.Marshal(r.Keywords)
		_, err := stmt.ExecContext(ctx,
			r.ID, r.Title, r.Abstract, string(authorsJSON), r.Year, r.Venue,
			r.Citations, r.DOI, r.URL, string(keywordsJSON), string(r.Category),
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// Records returns every record in catalog order.
func (c *SQLite) Records(ctx context.Context) ([]types.Record, error) {
	return c.query(ctx, sq.Select(recordColumns...).From("records").OrderBy("position"))
}

// Filter returns the records satisfying f, in catalog order.
func (c *SQLite) Filter(ctx context.Context, f types.Filters) ([]types.Record, error) {
	q := sq.Select(recordColumns...).From("records").
		Where(sq.GtOrEq{"year": f.YearMin}).
		Where(sq.LtOrEq{"year": f.YearMax})

	if f.MinCitations > 0 {
		q = q.Where(sq.GtOrEq{"citations": f.MinCitations})
	}
	if len(f.Categories) > 0 {
		cats := make([]string, len(f.Categories))
		for i, cat := range f.Categories {
			cats[i] = string(cat)
		}
		q = q.Where(sq.Eq{"category": cats})
	}
	if len(f.Venues) > 0 {
		q = q.Where(sq.Eq{"venue": f.Venues})
	}

	return c.query(ctx, q.OrderBy("position"))
}

// Count returns the number of records stored.
func (c *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (c *SQLite) query(ctx context.Context, q sq.SelectBuilder) ([]types.Record, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var (
			r            types.Record
			abstract     sql.NullString
			authorsJSON  sql.NullString
			venue        sql.NullString
			doi          sql.NullString
			url          sql.NullString
			keywordsJSON sql.NullString
			category     string
		)
		if err := rows.Scan(
			&r.ID, &r.Title, &abstract, &authorsJSON, &r.Year, &venue,
			&r.Citations, &doi, &url, &keywordsJSON, &category,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		r.Abstract = abstract.String
		r.Venue = venue.String
		r.DOI = doi.String
		r.URL = url.String
		r.Category = types.Category(category)
		if authorsJSON.Valid {
			if err := json.Unmarshal([]byte(authorsJSON.String), &r.Authors); err != nil {
				slog.Warn("ignoring malformed authors column", "id", r.ID, "err", err)
			}
		}
		if keywordsJSON.Valid {
			if err := json.Unmarshal([]byte(keywordsJSON.String), &r.Keywords); err != nil {
				slog.Warn("ignoring malformed keywords column", "id", r.ID, "err", err)
			}
		}

		records = append(records, r)
	}

	return records, rows.Err()
}
