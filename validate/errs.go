package validate

import (
	"errors"
	"fmt"

	"github.com/mattias-p/mkjson/ir"
)

var (
	ErrConflict        = errors.New("conflicting directives")
	ErrKeyEncoding     = errors.New("inconsistent key encodings")
	ErrKindConflict    = errors.New("structural conflict")
	ErrIncompleteArray = errors.New("incomplete array")
)

// PathErr locates a batch-level semantic error at a path.
type PathErr struct {
	Path *ir.Path
	Err  error
}

func (e *PathErr) Unwrap() error {
	return e.Err
}

func (e *PathErr) Error() string {
	return fmt.Sprintf("path %s: %s", e.Path, e.Err.Error())
}

// KeyEncodingErr reports two spellings of the same decoded key at one
// path.
type KeyEncodingErr struct {
	Key1, Key2 ir.Segment
}

func (e *KeyEncodingErr) Unwrap() error {
	return ErrKeyEncoding
}

func (e *KeyEncodingErr) Error() string {
	return fmt.Sprintf("path has equivalent but inconsistently encoded keys %s and %s", e.Key1, e.Key2)
}

// KindConflictErr reports a path referred to as two different node kinds,
// in the order the batch revealed them.
type KindConflictErr struct {
	Kind1, Kind2 ir.Type
}

func (e *KindConflictErr) Unwrap() error {
	return ErrKindConflict
}

func (e *KindConflictErr) Error() string {
	return fmt.Sprintf("path referred to as both %s and %s", e.Kind1, e.Kind2)
}

// IncompleteArrayErr reports a gap in an array's index set: Missing is the
// smallest absent index and Seen the smallest present index above it.
type IncompleteArrayErr struct {
	Seen, Missing uint32
}

func (e *IncompleteArrayErr) Unwrap() error {
	return ErrIncompleteArray
}

func (e *IncompleteArrayErr) Error() string {
	return fmt.Sprintf("array at path has index %d but lacks index %d", e.Seen, e.Missing)
}
