package token

import "unicode/utf8"

// JSONSpan checks that d holds exactly one complete JSON value, optionally
// surrounded by whitespace. pos is the 1-based rune position of the first
// character of d within its directive. The scan tracks span boundaries
// only: numeric literals are never materialized into fixed-width types, so
// magnitude and precision are unbounded and the source spelling survives
// verbatim.
func JSONSpan(d string, pos int) error {
	i := ws(d, 0)
	if i == len(d) {
		return UnexpectedEOFErr()
	}
	n, ok := jsonValue(d[i:])
	if !ok {
		return NewSyntaxErr(ErrJSONValue, pos)
	}
	j := ws(d, i+n)
	if j < len(d) {
		ch, _ := utf8.DecodeRuneInString(d[j:])
		return UnexpectedErr(ch, pos+utf8.RuneCountInString(d[:j]))
	}
	return nil
}

func jsonValue(d string) (int, bool) {
	if len(d) == 0 {
		return 0, false
	}
	switch d[0] {
	case '{':
		return jsonObject(d)
	case '[':
		return jsonArray(d)
	case '"':
		return jsonString(d)
	case 't':
		return keyword(d, "true")
	case 'f':
		return keyword(d, "false")
	case 'n':
		return keyword(d, "null")
	default:
		return jsonNumber(d)
	}
}

func jsonObject(d string) (int, bool) {
	i := ws(d, 1)
	if i < len(d) && d[i] == '}' {
		return i + 1, true
	}
	for {
		if i >= len(d) || d[i] != '"' {
			return 0, false
		}
		n, ok := jsonString(d[i:])
		if !ok {
			return 0, false
		}
		i = ws(d, i+n)
		if i >= len(d) || d[i] != ':' {
			return 0, false
		}
		i = ws(d, i+1)
		n, ok = jsonValue(d[i:])
		if !ok {
			return 0, false
		}
		i = ws(d, i+n)
		if i >= len(d) {
			return 0, false
		}
		switch d[i] {
		case ',':
			i = ws(d, i+1)
		case '}':
			return i + 1, true
		default:
			return 0, false
		}
	}
}

func jsonArray(d string) (int, bool) {
	i := ws(d, 1)
	if i < len(d) && d[i] == ']' {
		return i + 1, true
	}
	for {
		n, ok := jsonValue(d[i:])
		if !ok {
			return 0, false
		}
		i = ws(d, i+n)
		if i >= len(d) {
			return 0, false
		}
		switch d[i] {
		case ',':
			i = ws(d, i+1)
		case ']':
			return i + 1, true
		default:
			return 0, false
		}
	}
}

func jsonString(d string) (int, bool) {
	if len(d) == 0 || d[0] != '"' {
		return 0, false
	}
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, true
		case c == '\\':
			n, ok := jsonEscape(d[i:])
			if !ok {
				return 0, false
			}
			i += n
		case c < 0x20:
			return 0, false
		default:
			r, sz := utf8.DecodeRuneInString(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return 0, false
			}
			i += sz
		}
	}
	return 0, false
}

// jsonEscape scans one escape sequence at d, where d[0] == '\\'. Escaped
// code points beyond the BMP must form a full surrogate pair.
func jsonEscape(d string) (int, bool) {
	if len(d) < 2 {
		return 0, false
	}
	switch d[1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, true
	case 'u':
		r, ok := hex4(d[2:])
		if !ok {
			return 0, false
		}
		if r >= 0xdc00 && r <= 0xdfff {
			// low surrogate without a preceding high surrogate
			return 0, false
		}
		if r < 0xd800 || r > 0xdbff {
			return 6, true
		}
		if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
			return 0, false
		}
		lo, ok := hex4(d[8:])
		if !ok || lo < 0xdc00 || lo > 0xdfff {
			return 0, false
		}
		return 12, true
	default:
		return 0, false
	}
}

// keyword and jsonNumber require a JSON delimiter after the token, so that
// "nully" and "0xFF" fail as malformed values rather than pass as a value
// with trailing garbage.
func keyword(d, kw string) (int, bool) {
	if len(d) < len(kw) || d[:len(kw)] != kw {
		return 0, false
	}
	if !delimited(d, len(kw)) {
		return 0, false
	}
	return len(kw), true
}

func jsonNumber(d string) (int, bool) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, false
	}
	if n > 1 && d[i] == '0' {
		// leading zero, rfc 8259
		return 0, false
	}
	i += n
	i += fract(d[i:])
	i += exp(d[i:])
	if !delimited(d, i) {
		return 0, false
	}
	return i, true
}

func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return 1 + n
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[i] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func delimited(d string, i int) bool {
	if i >= len(d) {
		return true
	}
	switch d[i] {
	case ' ', '\t', '\n', '\r', ',', ']', '}':
		return true
	}
	return false
}

func ws(d string, i int) int {
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func hex4(d string) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		v := hexVal(d[i])
		if v < 0 {
			return 0, false
		}
		r = r<<4 | rune(v)
	}
	return r, true
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
