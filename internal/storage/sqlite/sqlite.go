package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverLibSQL = "libsql" // tursodatabase/go-libsql, cgo
	DriverSQLite = "sqlite" // modernc.org/sqlite, pure Go
)

// Store implements storage.Storage on a relational database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to dsn with the given driver and creates the schema.
// File DSNs ("file:/path/to/notes.db") get their parent directory created.
func Open(driver, dsn string, logger *slog.Logger) (*Store, error) {
	if driver != DriverLibSQL && driver != DriverSQLite {
		return nil, fmt.Errorf("%w: unknown driver %q", storage.ErrStorage, driver)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if path, ok := filePath(dsn); ok {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}
	// One connection, owned by the single control loop.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connecting to database: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("opened note database", "driver", driver, "dsn", dsn)
	return &Store{db: db, logger: logger}, nil
}

// New opens the default libSQL database inside dataDir.
func New(dataDir string) (*Store, error) {
	return Open(DriverLibSQL, "file:"+filepath.Join(dataDir, "notectl.db"), nil)
}

func filePath(dsn string) (string, bool) {
	path, ok := strings.CutPrefix(dsn, "file:")
	if !ok || path == "" || strings.HasPrefix(path, ":memory:") {
		return "", false
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path, true
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS notes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			title      TEXT NOT NULL UNIQUE CHECK(length(trim(title)) > 0),
			content    TEXT NOT NULL DEFAULT '',
			archived   INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS note_tags (
			note_id  INTEGER NOT NULL,
			position INTEGER NOT NULL,
			tag      TEXT NOT NULL,
			PRIMARY KEY (note_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag);
	`
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every note ordered by ID, tags included.
func (s *Store) List() ([]note.Note, error) {
	rows, err := s.db.Query(
		"SELECT id, title, content, archived, created_at, updated_at FROM notes ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing notes: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	notes := []note.Note{}
	index := make(map[int64]int)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		index[n.ID] = len(notes)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing notes: %v", storage.ErrStorage, err)
	}

	tagRows, err := s.db.Query("SELECT note_id, tag FROM note_tags ORDER BY note_id, position")
	if err != nil {
		return nil, fmt.Errorf("%w: listing tags: %v", storage.ErrStorage, err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var id int64
		var tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("%w: scanning tag: %v", storage.ErrStorage, err)
		}
		if i, ok := index[id]; ok {
			notes[i].Tags = append(notes[i].Tags, tag)
		}
	}
	return notes, tagRows.Err()
}

// Get retrieves a note by ID.
func (s *Store) Get(id int64) (note.Note, error) {
	row := s.db.QueryRow(
		"SELECT id, title, content, archived, created_at, updated_at FROM notes WHERE id = ?", id,
	)
	n, err := scanNote(row)
	if err != nil {
		return note.Note{}, err
	}

	tags, err := s.tags(id)
	if err != nil {
		return note.Note{}, err
	}
	n.Tags = tags
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (note.Note, error) {
	var n note.Note
	var archived int
	var createdStr, updatedStr string
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &archived, &createdStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return note.Note{}, storage.ErrNotFound
		}
		return note.Note{}, fmt.Errorf("%w: scanning note: %v", storage.ErrStorage, err)
	}
	n.Archived = archived != 0
	n.Tags = []string{}

	var err error
	n.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}
	n.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: parsing updated_at: %v", storage.ErrStorage, err)
	}
	return n, nil
}

func (s *Store) tags(id int64) ([]string, error) {
	rows, err := s.db.Query("SELECT tag FROM note_tags WHERE note_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("%w: querying tags: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("%w: scanning tag: %v", storage.ErrStorage, err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Create inserts a new note with empty content and no tags.
func (s *Store) Create(title string) (note.Note, error) {
	if err := note.ValidateTitle(title); err != nil {
		return note.Note{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"INSERT INTO notes (title, content, archived, created_at, updated_at) VALUES (?, '', 0, ?, ?)",
		title, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return note.Note{}, fmt.Errorf("%w: %q", storage.ErrConflict, title)
		}
		return note.Note{}, fmt.Errorf("%w: inserting note: %v", storage.ErrStorage, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: reading new note id: %v", storage.ErrStorage, err)
	}
	s.logger.Info("note created", "id", id, "title", title)
	return s.Get(id)
}

// UpdateContent replaces a note's content.
func (s *Store) UpdateContent(id int64, content string) error {
	return s.exec(id, "updating content",
		"UPDATE notes SET content = ?, updated_at = ? WHERE id = ?",
		content, now(), id)
}

// Rename changes a note's title.
func (s *Store) Rename(id int64, title string) error {
	if err := note.ValidateTitle(title); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	err := s.exec(id, "renaming note",
		"UPDATE notes SET title = ?, updated_at = ? WHERE id = ?",
		title, now(), id)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %q", storage.ErrConflict, title)
	}
	return err
}

// SetArchived persists the archived flag.
func (s *Store) SetArchived(id int64, archived bool) error {
	flag := 0
	if archived {
		flag = 1
	}
	return s.exec(id, "updating archive status",
		"UPDATE notes SET archived = ?, updated_at = ? WHERE id = ?",
		flag, now(), id)
}

// UpdateTags replaces the note's tags, preserving the given order.
func (s *Store) UpdateTags(id int64, tags []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("UPDATE notes SET updated_at = ? WHERE id = ?", now(), id)
	if err != nil {
		return fmt.Errorf("%w: updating tags: %v", storage.ErrStorage, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	if _, err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("%w: clearing tags: %v", storage.ErrStorage, err)
	}
	for i, tag := range tags {
		if _, err := tx.Exec(
			"INSERT INTO note_tags (note_id, position, tag) VALUES (?, ?, ?)", id, i, tag,
		); err != nil {
			return fmt.Errorf("%w: inserting tag: %v", storage.ErrStorage, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	s.logger.Info("note tags updated", "id", id, "tags", tags)
	return nil
}

// Delete removes a note and its tags permanently.
func (s *Store) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: deleting note: %v", storage.ErrStorage, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking rows affected: %v", storage.ErrStorage, err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	if _, err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("%w: deleting tags: %v", storage.ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	s.logger.Info("note deleted", "id", id)
	return nil
}

// exec runs a single-row UPDATE and maps "no rows" to ErrNotFound. Unique
// violations are returned unwrapped so callers can classify them.
func (s *Store) exec(id int64, what, query string, args ...any) error {
	result, err := s.db.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", storage.ErrStorage, what, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking rows affected: %v", storage.ErrStorage, err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	s.logger.Debug("note updated", "id", id, "op", what)
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Both drivers report constraint failures with SQLite's message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
