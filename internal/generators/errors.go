package generators

import "fmt"

type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s: anchor %q not found", e.Path, e.Anchor)
}

// MalformedExportError is returned when the registration file has no
// single-line "export { ... }" statement.
type MalformedExportError struct {
	Path string
	Line string
}

func (e *MalformedExportError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("%s: no export statement found", e.Path)
	}
	return fmt.Sprintf("%s: malformed export statement %q", e.Path, e.Line)
}

type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
