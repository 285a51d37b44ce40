package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, dbPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:       "cli:run",
			Action:       "generate",
			Command:      "code-review",
			ResolvedPath: "/test/project/.promptcraft/commands/code-review.md",
			Success:      true,
		})

		db, err := sql.Open("sqlite", dbPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, command string
		var success int
		err = db.QueryRow("SELECT source, action, command, success FROM log WHERE id = 1").
			Scan(&source, &action, &command, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:run", source)
		assert.Equal(t, "generate", action)
		assert.Equal(t, "code-review", command)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "cli:run",
			Action:  "generate",
			Command: "missing",
			Success: false,
			Error:   "command not found",
		})

		db, err := sql.Open("sqlite", dbPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "command not found", errMsg)
	})

	t.Run("builder write", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		Event("cli:list", "list").Detail("count", 3).Write(nil)
		Event("cli:run", "generate").Command("broken").Write(errors.New("boom"))

		db, err := sql.Open("sqlite", dbPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log WHERE source = 'cli:list' ORDER BY id DESC LIMIT 1").
			Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, `"count":3`)

		var success int
		err = db.QueryRow("SELECT success FROM log WHERE command = 'broken' ORDER BY id DESC LIMIT 1").
			Scan(&success)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
	})

	t.Run("log without open is a no-op", func(t *testing.T) {
		Close()
		Log(Entry{Source: "cli:run", Action: "generate"})
	})
}
