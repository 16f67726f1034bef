package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8       = errors.New("bad utf8")
	ErrUnexpectedEOF = errors.New("unexpected end of string")
	ErrUnexpected    = errors.New("unexpected character")
	ErrIndex         = errors.New("invalid index")
	ErrKey           = errors.New("invalid key")
	ErrJSONValue     = errors.New("invalid json value")
)

// SyntaxErr is a syntax error at a 1-based rune position within one
// directive. Ch carries the offending character when Err is ErrUnexpected.
type SyntaxErr struct {
	Err error
	Pos int
	Ch  rune
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	if errors.Is(e.Err, ErrUnexpected) {
		return fmt.Sprintf("position %d: unexpected character %q", e.Pos, e.Ch)
	}
	if errors.Is(e.Err, ErrUnexpectedEOF) {
		return e.Err.Error()
	}
	return fmt.Sprintf("position %d: %s", e.Pos, e.Err.Error())
}

func NewSyntaxErr(e error, pos int) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: pos}
}

func UnexpectedErr(ch rune, pos int) *SyntaxErr {
	return &SyntaxErr{Err: ErrUnexpected, Pos: pos, Ch: ch}
}

func UnexpectedEOFErr() *SyntaxErr {
	return &SyntaxErr{Err: ErrUnexpectedEOF}
}
