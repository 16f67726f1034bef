// Package mkjson compiles a batch of path directives, expressions such as
// "a.b:true" or "c.0.d=foobar", into one well-formed JSON document.
package mkjson

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/parse"
	"github.com/mattias-p/mkjson/token"
	"github.com/mattias-p/mkjson/validate"
)

// Compose parses the whole batch, validates it and merges it into one
// document tree. An empty batch yields (nil, nil): no document, which is
// distinct from an empty object or array. The batch is atomic; the first
// syntax error in input order, or the first semantic violation across the
// batch, fails the whole call.
func Compose(directives []string) (*ir.Node, error) {
	parsed := make([]ir.Directive, 0, len(directives))
	for _, text := range directives {
		d, err := parse.Parse(text)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, d)
	}
	if err := validate.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}
	return ir.BuildTree(parsed), nil
}

// ComposeBytes is Compose over raw argument bytes, rejecting any directive
// that is not valid UTF-8.
func ComposeBytes(directives [][]byte) (*ir.Node, error) {
	texts := make([]string, 0, len(directives))
	for _, d := range directives {
		if !utf8.Valid(d) {
			return nil, &EncodingErr{Text: strconv.Quote(string(d))}
		}
		texts = append(texts, string(d))
	}
	return Compose(texts)
}

// EncodingErr reports a directive that was not valid UTF-8. Text is a
// display-safe rendering of the offending bytes.
type EncodingErr struct {
	Text string
}

func (e *EncodingErr) Unwrap() error {
	return token.ErrBadUTF8
}

func (e *EncodingErr) Error() string {
	return fmt.Sprintf("directive %s: invalid utf-8", e.Text)
}
