package cmd

import (
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	t.Run("empty tiers", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("list")
		env.contains(out, "No commands found")
		env.contains(out, "promptcraft init")
	})

	t.Run("both tiers tagged", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProject("local-cmd", "# Local helper")
		env.writeGlobal("home-cmd", "# Home helper")

		out := env.run("list")
		env.contains(out, "/local-cmd")
		env.contains(out, "[Project]")
		env.contains(out, "Local helper")
		env.contains(out, "/home-cmd")
		env.contains(out, "[Global")
		env.contains(out, "Home helper")
	})

	t.Run("case-insensitive order", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProject("zebra", "# Z")
		env.writeProject("Alpha", "# A")
		env.writeProject("beta", "# B")

		out := env.run("list")
		iAlpha := strings.Index(out, "/Alpha")
		iBeta := strings.Index(out, "/beta")
		iZebra := strings.Index(out, "/zebra")
		if !(iAlpha < iBeta && iBeta < iZebra) {
			t.Errorf("list order wrong: Alpha=%d beta=%d zebra=%d\noutput: %s", iAlpha, iBeta, iZebra, out)
		}
	})

	t.Run("duplicate names listed twice", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProject("greet", "# Project greeting")
		env.writeGlobal("greet", "# Global greeting")

		out := env.run("list")
		if n := strings.Count(out, "/greet"); n != 2 {
			t.Errorf("duplicate command listed %d times, want 2\noutput: %s", n, out)
		}
	})

	t.Run("missing description falls back", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProject("blank", "")

		out := env.run("list")
		env.contains(out, "No description available")
	})

	t.Run("--list flag alias", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeProject("greet", "# Greeting")

		out := env.run("--list")
		env.contains(out, "/greet")
	})
}
