package command

import (
	"errors"
	"fmt"
)

// Process resolves a command name and generates its prompt in one call.
// This is the entry point the CLI and MCP layers use for end-to-end
// execution.
//
// Failures from either stage are re-wrapped with the command name so the
// user-facing message carries context, while the original error stays
// reachable through errors.Unwrap and the sub-code is preserved.
func (p Paths) Process(name string, arguments []string) (string, error) {
	templatePath, err := p.Find(name)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return "", &NotFoundError{
				Message: fmt.Sprintf("Command '%s' processing failed: %s", name, nf.Message),
				Code:    nf.Code,
				Err:     nf,
			}
		}
		return "", err
	}

	prompt, err := Generate(templatePath, arguments)
	if err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			return "", &ReadError{
				Message: fmt.Sprintf("Command '%s' template processing failed: %s", name, re.Message),
				Code:    re.Code,
				Err:     re,
			}
		}
		return "", err
	}

	return prompt, nil
}
