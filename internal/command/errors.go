package command

// Error codes surfaced to callers. Stable strings for programmatic handling.
const (
	CodeCommandNotFound  = "COMMAND_NOT_FOUND"
	CodeTemplateNotFound = "TEMPLATE_FILE_NOT_FOUND"
	CodePermissionDenied = "TEMPLATE_PERMISSION_DENIED"
	CodeEncodingError    = "TEMPLATE_ENCODING_ERROR"
	CodeIOError          = "TEMPLATE_IO_ERROR"
)

// NotFoundError reports that a command template could not be resolved:
// either the name was invalid or no template exists in any search tier.
type NotFoundError struct {
	Message string
	Code    string // always CodeCommandNotFound
	Err     error  // wrapped cause, nil at the point of first detection
}

func (e *NotFoundError) Error() string { return e.Message }

// Unwrap returns the wrapped cause, preserving the error chain when the
// processor adds command-name context.
func (e *NotFoundError) Unwrap() error { return e.Err }

// ReadError reports a failure reading a resolved template file. Code
// distinguishes missing files, permission failures, non-UTF-8 content, and
// other I/O errors.
type ReadError struct {
	Message string
	Code    string
	Err     error // wrapped OS-level cause
}

func (e *ReadError) Error() string { return e.Message }

// Unwrap returns the wrapped cause.
func (e *ReadError) Unwrap() error { return e.Err }
