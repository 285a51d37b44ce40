/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// show.go implements the "promptcraft show" command for template preview.
//
// Terminal output gets glamour rendering for readability; pipe/redirect
// gets the raw template markdown, before any argument substitution.

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/command"
	"github.com/jpl-au/promptcraft/internal/log"
)

var showCmd = &cobra.Command{
	Use:   "show <command>",
	Short: "Preview a template without substituting arguments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimPrefix(args[0], "/")
		p := command.DefaultPaths()

		l := log.Event("cli:show", "read").Command(name)
		path, err := p.Find(name)
		if err != nil {
			l.Write(err)
			return printRunError(cmd, name, err)
		}
		content, err := command.Read(path)
		l.Resolved(path).Write(err)
		if err != nil {
			return printRunError(cmd, name, err)
		}

		if terminal() {
			rendered, err := glamour.Render(content, conf().Theme())
			if err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}

		fmt.Fprint(out, content)
		return nil
	},
}
