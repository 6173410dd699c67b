package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectSQL_SortsAndFilters(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"0002_add_index.up.sql", "0001_init.up.sql", "0001_init.down.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := collectSQL(dir, ".up.sql")

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "0001_init.up.sql", files[0].base)
	assert.Equal(t, "0002_add_index.up.sql", files[1].base)
}

func TestCollectSQL_MissingDir(t *testing.T) {
	_, err := collectSQL(filepath.Join(t.TempDir(), "absent"), ".up.sql")

	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	script := `CREATE TABLE a (id int);
INSERT INTO a VALUES (1);
UPDATE a SET note = 'semi; colon' WHERE id = 1;`

	stmts := splitStatements(script)

	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE")
	assert.Contains(t, stmts[2], "'semi; colon'")
}

func TestCommittedMigrations_HaveDownTwins(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "..", "migrations")

	ups, err := collectSQL(dir, ".up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up.path, ".up.sql") + ".down.sql"
		_, err := os.Stat(down)
		assert.NoError(t, err, up.base)
	}
}

func TestInitMigration_EnforcesTenantlessEmailUniqueness(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "0001_init.up.sql"))
	require.NoError(t, err)

	ddl := string(raw)

	// The tenant-less partition only gets store-level email uniqueness through
	// the expression index; a plain composite index treats NULLs as distinct.
	assert.Contains(t, ddl, "CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_tenant")
	assert.Contains(t, ddl, "COALESCE(tenant_id")
}
