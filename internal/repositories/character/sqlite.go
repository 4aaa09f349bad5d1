package character

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	sqliteParams   = "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	migrationTable = "schema_migrations"
	migrateUp      = "-- +migrate Up"
	migrateDown    = "-- +migrate Down"
)

// SQLiteRepository stores characters as JSON rows with an indexed
// campaign column
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies
// the embedded migrations
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path)+sqliteParams)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db %s", path)
	}
	if err := applyMigrations(ctx, db, migrationFS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get retrieves a character by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, input.ID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", input.ID)
	}

	character, err := decodeCharacter(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: character}, nil
}

// List returns all characters or those in one campaign
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	query := `SELECT data FROM characters ORDER BY created_at, id`
	args := []any{}
	if input.CampaignID != "" {
		query = `SELECT data FROM characters WHERE campaign_id = ? ORDER BY created_at, id`
		args = append(args, input.CampaignID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := []*dnd5e.Character{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrap(err, "failed to scan character row")
		}
		character, err := decodeCharacter(data)
		if err != nil {
			return nil, err
		}
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate character rows")
	}

	return &ListOutput{Characters: characters}, nil
}

// Save upserts a character
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	character := input.Character

	data, err := json.Marshal(character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, campaign_id, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   campaign_id = excluded.campaign_id,
		   data = excluded.data,
		   created_at = excluded.created_at,
		   updated_at = excluded.updated_at`,
		character.ID,
		character.CampaignID,
		string(data),
		character.CreatedAt,
		character.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", character.ID)
	}

	slog.DebugContext(ctx, "saved character",
		"character_id", character.ID,
		"campaign_id", character.CampaignID)

	return &SaveOutput{Character: character}, nil
}

// Delete removes a character
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	got, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	return &DeleteOutput{Deleted: got.Character}, nil
}

func decodeCharacter(data string) (*dnd5e.Character, error) {
	var character dnd5e.Character
	if err := json.Unmarshal([]byte(data), &character); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal character data")
	}
	return &character, nil
}

// applyMigrations runs each embedded .sql file once, in name order,
// recording applied files in schema_migrations
func applyMigrations(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`)
	if err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to read migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		var applied int
		err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+migrationTable+` WHERE name = ?`, file).Scan(&applied)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration %s", file)
		}
		if applied > 0 {
			continue
		}

		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", file)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrapf(err, "failed to begin migration %s", file)
		}
		if _, err := tx.ExecContext(ctx, upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", file)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %s", file)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", file)
		}
	}

	return nil
}

// upSection returns the SQL between the Up and Down markers
func upSection(content string) string {
	if i := strings.Index(content, migrateUp); i >= 0 {
		content = content[i+len(migrateUp):]
	}
	if i := strings.Index(content, migrateDown); i >= 0 {
		content = content[:i]
	}
	return content
}
