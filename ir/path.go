package ir

import (
	"strconv"
	"strings"

	"github.com/mattias-p/mkjson/token"
)

// Segment is one path component: an array index, or an object key held in
// its escaped spelling exactly as given (quoted segments keep their escape
// sequences, bare segments need none).
type Segment struct {
	Field *string // escaped key spelling, nil for an array element
	Index uint32
}

func KeySegment(spelling string) Segment {
	return Segment{Field: &spelling}
}

func IndexSegment(i uint32) Segment {
	return Segment{Index: i}
}

func (s Segment) IsKey() bool {
	return s.Field != nil
}

// Unescape returns the segment with its key spelling decoded to concrete
// code points. Index segments are returned unchanged.
func (s Segment) Unescape() Segment {
	if s.Field == nil {
		return s
	}
	return KeySegment(token.Unescape(*s.Field))
}

// String renders the segment in directive path syntax: indexes in decimal,
// keys bare when possible and quoted otherwise.
func (s Segment) String() string {
	if s.Field == nil {
		return strconv.FormatUint(uint64(s.Index), 10)
	}
	if token.NeedsQuote(*s.Field) {
		return `"` + *s.Field + `"`
	}
	return *s.Field
}

func (s Segment) Equal(o Segment) bool {
	return s.Compare(o) == 0
}

// Compare orders index segments before key segments, indexes numerically
// and keys by spelling.
func (s Segment) Compare(o Segment) int {
	switch {
	case s.Field == nil && o.Field == nil:
		switch {
		case s.Index < o.Index:
			return -1
		case s.Index > o.Index:
			return 1
		}
		return 0
	case s.Field == nil:
		return -1
	case o.Field == nil:
		return 1
	}
	return strings.Compare(*s.Field, *o.Field)
}

// Path is a persistent location identifier. The nil *Path is the root and
// every Append shares its prefix structurally, so a batch of directives
// with common ancestry holds one copy of each prefix.
type Path struct {
	Prefix *Path // nil at the root
	Seg    Segment
}

// Root returns the root path.
func Root() *Path {
	return nil
}

func (p *Path) Append(seg Segment) *Path {
	return &Path{Prefix: p, Seg: seg}
}

func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Prefix {
		n++
	}
	return n
}

// Segments lists the path's segments from the root down.
func (p *Path) Segments() []Segment {
	segs := make([]Segment, p.Len())
	i := len(segs)
	for x := p; x != nil; x = x.Prefix {
		i--
		segs[i] = x.Seg
	}
	return segs
}

// Unescape returns the path with every key spelling decoded, for grouping
// spellings that encode identical code points.
func (p *Path) Unescape() *Path {
	if p == nil {
		return nil
	}
	return p.Prefix.Unescape().Append(p.Seg.Unescape())
}

// String renders the path in directive syntax. The rendering is injective
// over paths, which makes it usable as a map key standing in for
// structural equality.
func (p *Path) String() string {
	if p == nil {
		return "."
	}
	parts := make([]string, 0, p.Len())
	for x := p; x != nil; x = x.Prefix {
		parts = append(parts, x.Seg.String())
	}
	b := &strings.Builder{}
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (p *Path) Equal(o *Path) bool {
	return p.Compare(o) == 0
}

// Compare is a total order over paths: prefixes compare first, then the
// final segment, with the root greater than everything else.
func (p *Path) Compare(o *Path) int {
	switch {
	case p == nil && o == nil:
		return 0
	case p == nil:
		return 1
	case o == nil:
		return -1
	}
	if c := p.Prefix.Compare(o.Prefix); c != 0 {
		return c
	}
	return p.Seg.Compare(o.Seg)
}

// Directive is one parsed path assignment. Value is JSON text: the raw
// capture of a ':' directive, or the freshly escaped string literal of an
// '=' directive.
type Directive struct {
	Path  *Path
	Value string
}
