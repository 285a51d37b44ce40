package scaffold

// Example is a starter template written by Init.
type Example struct {
	Name    string
	Content string
}

// Examples are the starter templates. Each demonstrates the $ARGUMENTS
// placeholder so users see the substitution mechanics immediately.
var Examples = []Example{
	{
		Name: "code-review",
		Content: `# Review code for issues

Please review the following code or file: $ARGUMENTS

Focus on:
- Correctness and edge cases
- Error handling
- Naming and readability
- Anything that would surprise a maintainer

Point out specific lines and suggest concrete fixes.
`,
	},
	{
		Name: "fix-bug",
		Content: `# Diagnose and fix a bug

I'm seeing the following bug: $ARGUMENTS

Work through it step by step:
1. Restate the expected and actual behaviour.
2. List the most likely causes, ordered by probability.
3. Propose the smallest fix and explain why it is safe.
`,
	},
	{
		Name: "create-story",
		Content: `# Draft a user story

Write a user story for: $ARGUMENTS

Include:
- A one-line summary in "As a ..., I want ..., so that ..." form
- Acceptance criteria as a checklist
- Open questions for the product owner
`,
	},
}
