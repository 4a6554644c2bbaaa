package core

import "errors"

var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrRowOutOfRange    = errors.New("row index out of range")
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrInvalidConfig    = errors.New("invalid column configuration")
)
