package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/promptcraft/internal/command"
)

func TestInit(t *testing.T) {
	t.Run("fresh directory", func(t *testing.T) {
		base := t.TempDir()

		res, err := Init(base)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, ".promptcraft", "commands"), res.Dir)
		assert.Len(t, res.Created, len(Examples))
		assert.Empty(t, res.Skipped)

		for _, ex := range Examples {
			data, err := os.ReadFile(filepath.Join(res.Dir, ex.Name+".md"))
			require.NoError(t, err)
			assert.Contains(t, string(data), command.Placeholder)
		}
	})

	t.Run("rerun skips existing", func(t *testing.T) {
		base := t.TempDir()
		_, err := Init(base)
		require.NoError(t, err)

		// User edits survive a second init.
		edited := filepath.Join(base, ".promptcraft", "commands", Examples[0].Name+".md")
		require.NoError(t, os.WriteFile(edited, []byte("# Mine now"), 0o644))

		res, err := Init(base)
		require.NoError(t, err)
		assert.Empty(t, res.Created)
		assert.Len(t, res.Skipped, len(Examples))

		data, err := os.ReadFile(edited)
		require.NoError(t, err)
		assert.Equal(t, "# Mine now", string(data))
	})

	t.Run("scaffolded templates are discoverable", func(t *testing.T) {
		base := t.TempDir()
		_, err := Init(base)
		require.NoError(t, err)

		p := command.NewPaths(base, t.TempDir())
		infos := p.Discover()
		require.Len(t, infos, len(Examples))
		for _, info := range infos {
			assert.Equal(t, command.SourceProject, info.Source)
			assert.False(t, strings.HasPrefix(info.Description, "No description"),
				"example %s should have a real description", info.Name)
		}
	})
}
