// Package parse turns directive strings into parsed directives with exact
// error positions.
package parse

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/mattias-p/mkjson/ir"
	"github.com/mattias-p/mkjson/token"
)

// Parse parses one directive: a path, an operator and a value. For the ':'
// operator the value is captured verbatim after validating it as one
// complete JSON value; for '=' the remainder of the directive is escaped
// into a JSON string literal. Errors carry 1-based rune positions and wrap
// the directive text for display.
func Parse(text string) (ir.Directive, error) {
	d, err := parse(text)
	if err != nil {
		return ir.Directive{}, &DirectiveErr{Text: text, Err: err}
	}
	return d, nil
}

func parse(text string) (ir.Directive, error) {
	p := &parser{src: text, pos: 1}
	path, err := p.path()
	if err != nil {
		return ir.Directive{}, err
	}
	op, err := p.operator()
	if err != nil {
		return ir.Directive{}, err
	}
	value := p.rest()
	if op == ':' {
		if err := token.JSONSpan(value, p.pos); err != nil {
			return ir.Directive{}, err
		}
	} else {
		value = `"` + token.Escape(value) + `"`
	}
	return ir.Directive{Path: path, Value: value}, nil
}

// ParsePath parses a bare path with no operator or value, for callers that
// address locations directly.
func ParsePath(text string) (*ir.Path, error) {
	p := &parser{src: text, pos: 1}
	path, err := p.path()
	if err != nil {
		return nil, err
	}
	if ch, ok := p.peek(); ok {
		return nil, token.UnexpectedErr(ch, p.pos)
	}
	return path, nil
}

type parser struct {
	src string
	off int // byte offset of the next unread character
	pos int // 1-based rune position of the next unread character
}

func (p *parser) peek() (rune, bool) {
	if p.off >= len(p.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.off:])
	return r, true
}

func (p *parser) advance(bytes, runes int) {
	p.off += bytes
	p.pos += runes
}

func (p *parser) rest() string {
	return p.src[p.off:]
}

func (p *parser) path() (*ir.Path, error) {
	if ch, ok := p.peek(); ok && ch == '.' {
		p.advance(1, 1)
		return ir.Root(), nil
	}
	seg, err := p.segment()
	if err != nil {
		return nil, err
	}
	path := ir.Root().Append(seg)
	for {
		ch, ok := p.peek()
		if !ok || ch != '.' {
			return path, nil
		}
		p.advance(1, 1)
		seg, err := p.segment()
		if err != nil {
			return nil, err
		}
		path = path.Append(seg)
	}
}

func (p *parser) segment() (ir.Segment, error) {
	ch, ok := p.peek()
	if !ok {
		return ir.Segment{}, token.UnexpectedEOFErr()
	}
	switch {
	case ch == '"':
		return p.quotedKey()
	case token.IsXIDStart(ch):
		return p.bareKey()
	case ch == '0':
		p.advance(1, 1)
		return ir.IndexSegment(0), nil
	case ch >= '1' && ch <= '9':
		return p.index()
	default:
		return ir.Segment{}, token.UnexpectedErr(ch, p.pos)
	}
}

func (p *parser) quotedKey() (ir.Segment, error) {
	d := p.rest()
	n, err := token.QuotedSpan(d, p.pos)
	if err != nil {
		return ir.Segment{}, err
	}
	spelling := d[1 : n-1]
	p.advance(n, utf8.RuneCountInString(d[:n]))
	return ir.KeySegment(spelling), nil
}

func (p *parser) bareKey() (ir.Segment, error) {
	d := p.rest()
	i, runes := 0, 0
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if !token.IsXIDContinue(r) {
			break
		}
		i += sz
		runes++
	}
	p.advance(i, runes)
	return ir.KeySegment(d[:i]), nil
}

func (p *parser) index() (ir.Segment, error) {
	d := p.rest()
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	digits := d[:i]
	p.advance(i, i)
	index, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return ir.Segment{}, token.NewSyntaxErr(fmt.Errorf("%w: %v", token.ErrIndex, err), p.pos)
	}
	return ir.IndexSegment(uint32(index)), nil
}

func (p *parser) operator() (byte, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, token.UnexpectedEOFErr()
	}
	switch ch {
	case ':', '=':
		p.advance(1, 1)
		return byte(ch), nil
	default:
		return 0, token.UnexpectedErr(ch, p.pos)
	}
}
