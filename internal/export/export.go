// Package export writes a snapshot of the session's contacts to a new
// SQLite file. The file is write-only from the app's point of view; it is
// never loaded back.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdxmph/contact-manager/internal/contact"
)

const schema = `
CREATE TABLE contacts (
    position INTEGER PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    contact_no TEXT,
    address_line1 TEXT NOT NULL,
    address_line2 TEXT,
    pincode TEXT NOT NULL,
    state TEXT NOT NULL,
    exported_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_contacts_state ON contacts (state);`

// ErrExists is returned by Write when the target file is already there.
var ErrExists = errors.New("database already exists")

// maxSnapshotNames bounds the numbered names tried for one timestamp.
const maxSnapshotNames = 100

// SnapshotPath names a snapshot file in dir for the given time.
func SnapshotPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("contacts-%s.db", now.Format("20060102-150405")))
}

// WriteSnapshot writes contacts to a fresh file in dir named after now and
// returns its path. When the name is taken, -2, -3 and so on are appended.
func WriteSnapshot(ctx context.Context, dir string, now time.Time, contacts []contact.Contact) (string, error) {
	base := SnapshotPath(dir, now)
	for n := 1; n <= maxSnapshotNames; n++ {
		path := base
		if n > 1 {
			path = fmt.Sprintf("%s-%d.db", strings.TrimSuffix(base, ".db"), n)
		}
		err := Write(ctx, path, contacts)
		if errors.Is(err, ErrExists) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("no free snapshot name for %s", base)
}

// Write creates a new database at dbPath holding contacts in display order.
// It refuses to overwrite an existing file and removes the file again if
// any step after creating it fails.
func Write(ctx context.Context, dbPath string, contacts []contact.Contact) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	// Claim the name atomically; sqlite treats an empty file as a new database.
	f, err := os.OpenFile(dbPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w at %s", ErrExists, dbPath)
	}
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dbPath)
		return fmt.Errorf("creating database: %w", err)
	}

	if err := populate(ctx, dbPath, contacts); err != nil {
		os.Remove(dbPath)
		os.Remove(dbPath + "-journal")
		return err
	}
	return nil
}

func populate(ctx context.Context, dbPath string, contacts []contact.Contact) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO contacts (
			position, id, name, email, contact_no,
			address_line1, address_line2, pincode, state
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range contacts {
		_, err := stmt.ExecContext(ctx,
			i+1,
			c.ID,
			c.Name,
			c.Email,
			nullString(c.ContactNo),
			c.AddressLine1,
			nullString(c.AddressLine2),
			c.Pincode,
			c.State,
		)
		if err != nil {
			return fmt.Errorf("inserting contact %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// nullString stores optional fields as NULL when absent.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
