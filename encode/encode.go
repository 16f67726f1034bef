// Package encode renders a document tree as compact JSON text.
package encode

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/token"
)

var errInternal = errors.New("internal error")

// Encode writes node as one line of compact JSON. Raw values are emitted
// exactly as captured at parse time, which preserves arbitrary-precision
// numeric literals and idiosyncratic escape spellings byte for byte.
// Arrays render in ascending index order and object keys sort by the code
// point sequence of the decoded key, so output is deterministic.
func Encode(node *ir.Node, w io.Writer) error {
	switch node.Type {
	case ir.ValueType:
		return writeString(w, node.Raw)
	case ir.ArrayType:
		return encodeArray(node, w)
	case ir.ObjectType:
		return encodeObject(node, w)
	default:
		return fmt.Errorf("%w: cannot encode node type %s", errInternal, node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer) error {
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i := uint32(0); i < uint32(len(node.Elems)); i++ {
		child, ok := node.Elems[i]
		if !ok {
			return fmt.Errorf("%w: array gap at index %d", errInternal, i)
		}
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := Encode(child, w); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

func encodeObject(node *ir.Node, w io.Writer) error {
	spellings := make([]string, 0, len(node.Fields))
	for spelling := range node.Fields {
		spellings = append(spellings, spelling)
	}
	slices.SortFunc(spellings, func(a, b string) int {
		return strings.Compare(token.Unescape(a), token.Unescape(b))
	})

	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i, spelling := range spellings {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeString(w, `"`+spelling+`":`); err != nil {
			return err
		}
		if err := Encode(node.Fields[spelling], w); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
