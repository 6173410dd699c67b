// Package migrate applies the SQL migration files under migrations/ in order,
// tracking applied files in a bookkeeping table.
package migrate

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const migrationsTable = "schema_migrations"

// Runner executes SQL migrations stored on disk against one database.
type Runner struct {
	db  *sql.DB
	dir string
}

// NewRunner is the constructor for Runner.
func NewRunner(db *sql.DB, dir string) *Runner {
	return &Runner{db: db, dir: dir}
}

// Up applies every pending *.up.sql file in lexical order.
func (r *Runner) Up(ctx context.Context) error {
	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	applied, err := r.applied(ctx)
	if err != nil {
		return err
	}

	files, err := collectSQL(r.dir, ".up.sql")
	if err != nil {
		return err
	}

	for _, file := range files {
		if applied[file.base] {
			continue
		}
		if err := r.exec(ctx, file.path); err != nil {
			return errors.Wrapf(err, "failed to apply migration %s", file.base)
		}
		if err := r.record(ctx, file.base); err != nil {
			return err
		}
	}

	return nil
}

// Down rolls back the most recently applied migration via its *.down.sql twin.
func (r *Runner) Down(ctx context.Context) error {
	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	history, err := r.history(ctx)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return errors.New("no migrations applied")
	}

	last := history[len(history)-1]
	downPath := strings.TrimSuffix(filepath.Join(r.dir, last), ".up.sql") + ".down.sql"
	if _, err := os.Stat(downPath); err != nil {
		return errors.Wrapf(err, "missing down migration for %s", last)
	}

	if err := r.exec(ctx, downPath); err != nil {
		return errors.Wrapf(err, "failed to roll back migration %s", last)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM "+migrationsTable+" WHERE name = $1", last); err != nil {
		return errors.Wrap(err, "failed to delete migration record")
	}

	return nil
}

// Status returns applied migrations in application order.
func (r *Runner) Status(ctx context.Context) ([]string, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	return r.history(ctx)
}

func (r *Runner) ensureTable(ctx context.Context) error {
	ddl := "CREATE TABLE IF NOT EXISTS " + migrationsTable + ` (
		name text PRIMARY KEY,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "failed to ensure migrations table")
	}

	return nil
}

// exec runs one migration file in a single transaction.
func (r *Runner) exec(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read migration file")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin migration transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range splitStatements(string(raw)) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to execute migration statement")
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit migration")
}

func (r *Runner) record(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO "+migrationsTable+" (name, applied_at) VALUES ($1, $2)", name, time.Now().UTC())

	return errors.Wrap(err, "failed to record migration")
}

func (r *Runner) applied(ctx context.Context) (map[string]bool, error) {
	history, err := r.history(ctx)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(history))
	for _, name := range history {
		applied[name] = true
	}

	return applied, nil
}

func (r *Runner) history(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM "+migrationsTable+" ORDER BY applied_at ASC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applied migrations")
	}
	defer rows.Close()

	var history []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan migration name")
		}
		history = append(history, name)
	}

	return history, errors.Wrap(rows.Err(), "failed to iterate migration rows")
}

type sqlFile struct {
	base string
	path string
}

func collectSQL(dir, suffix string) ([]sqlFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations directory")
	}

	var files []sqlFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		files = append(files, sqlFile{
			base: entry.Name(),
			path: filepath.Join(dir, entry.Name()),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].base < files[j].base
	})

	return files, nil
}

// splitStatements splits on semicolons outside single-quoted strings.
func splitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	var inString bool

	for _, r := range script {
		switch r {
		case '\'':
			current.WriteRune(r)
			inString = !inString
		case ';':
			current.WriteRune(r)
			if !inString {
				stmts = append(stmts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		stmts = append(stmts, current.String())
	}

	return stmts
}
