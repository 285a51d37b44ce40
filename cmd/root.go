/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// The root command doubles as the runner: "promptcraft code-review main.go"
// resolves the code-review template, substitutes the arguments, and
// delivers the prompt. Named subcommands (list, init, show, diff, guide,
// serve) take precedence over template names; --list and --init are kept
// as flag aliases for the subcommands.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/clipboard"
	"github.com/jpl-au/promptcraft/internal/command"
	"github.com/jpl-au/promptcraft/internal/config"
	"github.com/jpl-au/promptcraft/internal/log"
	"github.com/jpl-au/promptcraft/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "promptcraft <command> [arguments...]",
	Short: "Generate prompts from markdown templates",
	Long: `PromptCraft - a command-line tool for managing prompt templates.

Commands are markdown files in .promptcraft/commands/ directories, searched
in the current directory first and your home directory second. Every
occurrence of $ARGUMENTS in a template is replaced with the arguments you
pass, and the result is copied to your clipboard.

  promptcraft /create-story "Epic Story" feature
  promptcraft fix-bug urgent security
  promptcraft code-review main.go`,
	Version:      version.Short(),
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Flag aliases for the corresponding subcommands.
	if listFlag {
		return runList(cmd, nil)
	}
	if initFlag {
		return runInit(cmd, nil)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	// Accept the slash-command spelling users type in chat clients.
	name := strings.TrimPrefix(args[0], "/")
	p := command.DefaultPaths()

	l := log.Event("cli:run", "generate").Command(name).Detail("args", len(args)-1)
	result, err := p.Process(name, args[1:])
	l.Write(err)
	if err != nil {
		return printRunError(cmd, name, err)
	}

	return deliver(cmd, name, result)
}

// printRunError prints a user-facing message for the two domain error
// kinds and suppresses cobra's generic error line for them; anything else
// falls through to cobra.
func printRunError(cmd *cobra.Command, name string, err error) error {
	var nf *command.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(os.Stderr, "❌ Command '/%s' not found\n", name)
		fmt.Fprintln(os.Stderr, "Run 'promptcraft list' to see available commands")
		cmd.SilenceErrors = true
		return err
	}
	var re *command.ReadError
	if errors.As(err, &re) {
		fmt.Fprintf(os.Stderr, "❌ %s\n", re.Message)
		cmd.SilenceErrors = true
		return err
	}
	return err
}

// deliver sends the generated prompt to the clipboard, or prints it when
// --stdout is set, the clipboard is disabled by config, or no clipboard
// exists (headless SSH sessions, containers). Clipboard failure is not a
// command failure: the user still gets their prompt.
func deliver(_ *cobra.Command, name, result string) error {
	if stdoutFlag || !conf().ClipboardEnabled() {
		printPrompt(result)
		return nil
	}

	if err := clipboard.Copy(result); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️ Clipboard unavailable, printing prompt instead (%v)\n", err)
		printPrompt(result)
		return nil
	}

	fmt.Fprintf(out, "✅ Prompt for '/%s' copied to clipboard!\n", name)
	return nil
}

// printPrompt writes the prompt itself to stdout, ensuring a trailing
// newline so shell pipelines behave.
func printPrompt(result string) {
	fmt.Fprint(out, result)
	if !strings.HasSuffix(result, "\n") {
		fmt.Fprintln(out)
	}
}

// Execute runs the root command and handles process lifecycle.
// Opens the usage log, executes the command, and closes the log before
// exit. Exit code 1 indicates error.
func Execute() {
	loadConfig()

	if conf().LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: usage log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(listCmd, initCmd, showCmd, diffCmd, guideCmd, serveCmd, versionCmd)
}

// loadConfig reads the two-tier config, degrading to defaults with a
// warning rather than refusing to run on a broken config file.
func loadConfig() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		c = &config.Config{}
	}
	cfg = c
}
