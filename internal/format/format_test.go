package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/promptcraft/internal/command"
)

func TestCommands(t *testing.T) {
	t.Run("empty list points at init", func(t *testing.T) {
		var b strings.Builder
		Commands(&b, nil)

		assert.Contains(t, b.String(), "No commands found")
		assert.Contains(t, b.String(), "promptcraft init")
	})

	t.Run("aligns names and tags tiers", func(t *testing.T) {
		infos := []command.Info{
			{Name: "fix", Source: command.SourceProject, Description: "Fix a bug"},
			{Name: "code-review", Source: command.SourceGlobal, Description: "Review code"},
		}

		var b strings.Builder
		Commands(&b, infos)
		lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], "/fix")
		assert.Contains(t, lines[0], "[Project]")
		assert.Contains(t, lines[1], "/code-review")
		assert.Contains(t, lines[1], "[Global ]")
		// Descriptions start in the same column.
		assert.Equal(t, strings.Index(lines[0], "Fix a bug"), strings.Index(lines[1], "Review code"))
	})
}
