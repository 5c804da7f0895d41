package readinglist

import (
	"database/sql"
	"time"
)

// SQLiteProvider implements Provider on the reading_list table of the
// shared tabdash database.
type SQLiteProvider struct {
	db *sql.DB
}

// NewSQLiteProvider creates a provider over the given database handle,
// typically storage.SQLiteStore.DB().
func NewSQLiteProvider(db *sql.DB) *SQLiteProvider {
	return &SQLiteProvider{db: db}
}

// Query returns all entries, newest first.
func (p *SQLiteProvider) Query() ([]Entry, error) {
	rows, err := p.db.Query(`
		SELECT url, title, added_at, read
		FROM reading_list
		ORDER BY added_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var addedAt string
		var read int

		if err := rows.Scan(&e.URL, &e.Title, &addedAt, &read); err != nil {
			return nil, err
		}
		e.AddedAt, _ = time.Parse(time.RFC3339, addedAt)
		e.Read = read == 1

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AddEntry upserts by URL.
func (p *SQLiteProvider) AddEntry(e Entry) error {
	read := 0
	if e.Read {
		read = 1
	}
	_, err := p.db.Exec(`
		INSERT INTO reading_list (url, title, added_at, read)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET title = excluded.title, read = excluded.read
	`, e.URL, e.Title, e.AddedAt.Format(time.RFC3339), read)
	return err
}

// RemoveEntry deletes by URL.
func (p *SQLiteProvider) RemoveEntry(url string) error {
	_, err := p.db.Exec("DELETE FROM reading_list WHERE url = ?", url)
	return err
}
