package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// QuotedSpan scans a double quoted key segment at the start of d, where
// d[0] == '"', and returns the number of bytes spanned including both
// quotes. pos is the 1-based rune position of the opening quote within the
// directive. The scan ends at the first unescaped quote; a raw control
// character terminates it with ErrUnexpected at its own position, and
// content that fails the JSON string grammar is ErrKey at the closing
// quote.
func QuotedSpan(d string, pos int) (int, error) {
	escaped := false
	ri := 0
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		if ri > 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				end := i + sz
				if n, ok := jsonString(d[:end]); !ok || n != end {
					return 0, NewSyntaxErr(ErrKey, pos+ri)
				}
				return end, nil
			case r < 0x20:
				return 0, UnexpectedErr(r, pos+ri)
			}
		}
		i += sz
		ri++
	}
	return 0, UnexpectedEOFErr()
}

// Escape renders raw text as the body of a JSON string. Quote and
// backslash are escaped, backspace, form feed, newline, carriage return
// and tab use their two character escapes, the remaining C0 controls use
// \u00xx, and everything else, DEL included, passes through unescaped.
func Escape(s string) string {
	d := make([]byte, 0, len(s)+2)
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u', '0', '0',
					hexDigit(byte(r>>4)), hexDigit(byte(r&0xf)))
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(d)
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + n - 10
}

// Unescape decodes the body of a valid JSON string, resolving surrogate
// pair escapes to single runes. The caller is responsible for only
// unescaping validated spellings.
func Unescape(s string) string {
	b := &strings.Builder{}
	i := 0
	for i < len(s) {
		if s[i] != '\\' {
			r, sz := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'u':
			hi, _ := hex4(s[i+1:])
			i += 5
			if utf16.IsSurrogate(hi) && i+1 < len(s) && s[i] == '\\' && s[i+1] == 'u' {
				lo, _ := hex4(s[i+2:])
				if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
					b.WriteRune(r)
					i += 6
					break
				}
			}
			b.WriteRune(hi)
		default:
			// '"', '\\' or '/'
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
