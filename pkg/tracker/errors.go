package tracker

import "fmt"

// NotFoundError means the backing sheet is absent from the store.
type NotFoundError struct {
	Sheet string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}

// ColumnNotFoundError means a field key matched no header column.
type ColumnNotFoundError struct {
	Key string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("no column matches field %q", e.Key)
}

// WriteError means the store rejected a write, e.g. bad coordinates.
type WriteError struct {
	Row int
	Col int
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to row %d col %d failed: %v", e.Row, e.Col, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UnknownError wraps any other fault from the backing store.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return e.Err.Error()
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

func wrapUnknown(err error) error {
	if err == nil {
		return nil
	}
	return &UnknownError{Err: err}
}
