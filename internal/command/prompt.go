package command

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Generate reads a template file and replaces every occurrence of
// [Placeholder] with the space-joined arguments. An empty argument list
// substitutes the empty string. The result is all-or-nothing: on any read
// failure a *ReadError is returned and no partial content escapes.
func Generate(templatePath string, arguments []string) (string, error) {
	content, err := Read(templatePath)
	if err != nil {
		return "", err
	}

	substitution := strings.Join(arguments, " ")
	return strings.ReplaceAll(content, Placeholder, substitution), nil
}

// Read returns a template's raw content, mapping any failure to a
// *ReadError. The content must be valid UTF-8.
func Read(templatePath string) (string, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return "", readError(templatePath, err)
	}

	if !utf8.Valid(data) {
		return "", &ReadError{
			Message: fmt.Sprintf("Failed to decode template file %s: content is not valid UTF-8", templatePath),
			Code:    CodeEncodingError,
		}
	}

	return string(data), nil
}

// readError translates an OS-level read failure into a *ReadError with the
// matching sub-code. Raw platform errors never cross this boundary
// unwrapped; they are retained as the cause for diagnostics.
func readError(path string, err error) *ReadError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ReadError{
			Message: fmt.Sprintf("Template file not found: %s", path),
			Code:    CodeTemplateNotFound,
			Err:     err,
		}
	case errors.Is(err, fs.ErrPermission):
		return &ReadError{
			Message: fmt.Sprintf("Permission denied reading template file: %s", path),
			Code:    CodePermissionDenied,
			Err:     err,
		}
	default:
		return &ReadError{
			Message: fmt.Sprintf("I/O error reading template file %s: %v", path, err),
			Code:    CodeIOError,
			Err:     err,
		}
	}
}
