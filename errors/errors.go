package errors

import (
	stderrors "errors"
	"fmt"
)

// The digest path has no failure modes; these errors belong to the tool
// layer around it (file access, checksum-file parsing, verification).
var (
	ErrChecksumMismatch = stderrors.New("checksum mismatch")
	ErrMalformedSumLine = stderrors.New("malformed checksum line")
	ErrEmptySumFile     = stderrors.New("no checksum lines found")
	ErrIsDirectory      = stderrors.New("is a directory")
)

type ToolError struct {
	Op   string
	Path string
	Err  error
}

func (e *ToolError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("sha1-go %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sha1-go %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func NewToolError(op, path string, err error) *ToolError {
	return &ToolError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
