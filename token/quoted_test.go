package token

import (
	"errors"
	"testing"
)

func TestQuotedSpan(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: `""`, want: 2},
		{input: `"a"`, want: 3},
		{input: `"foo.bar"`, want: 9},
		{input: `"foo:bar"`, want: 9},
		{input: `" foo bar "`, want: 11},
		{input: `"\""`, want: 4},
		{input: `"\\"`, want: 4},
		{input: `"\\\""`, want: 6},
		{input: `"\b\f\n\r\t\/"`, want: 14},
		{input: `"\u2600"`, want: 8},
		{input: `"\ud83d\ude0a"`, want: 14},
		{input: `"😀"`, want: 6},
		{input: `""trailing`, want: 2},
		{input: `"a"=rest`, want: 3},
	}
	for _, tc := range tests {
		got, err := QuotedSpan(tc.input, 1)
		if err != nil {
			t.Errorf("QuotedSpan(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("QuotedSpan(%q): got %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestQuotedSpanErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
		wantPos int
		wantCh  rune
	}{
		{input: `"`, wantErr: ErrUnexpectedEOF},
		{input: `"unterminated`, wantErr: ErrUnexpectedEOF},
		{input: `"esc\"`, wantErr: ErrUnexpectedEOF},
		{input: "\"\b\"", wantErr: ErrUnexpected, wantPos: 2, wantCh: '\b'},
		{input: "\"a\x00b\"", wantErr: ErrUnexpected, wantPos: 3, wantCh: 0},
		{input: "\"\x1f\"", wantErr: ErrUnexpected, wantPos: 2, wantCh: 0x1f},
		{input: `"\x"`, wantErr: ErrKey, wantPos: 4},
		{input: `"\u12"`, wantErr: ErrKey, wantPos: 6},
		{input: `"\ud83d"`, wantErr: ErrKey, wantPos: 8},
		{input: `"\ude0a"`, wantErr: ErrKey, wantPos: 8},
	}
	for _, tc := range tests {
		_, err := QuotedSpan(tc.input, 1)
		if err == nil {
			t.Errorf("QuotedSpan(%q): expected error", tc.input)
			continue
		}
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("QuotedSpan(%q): got %v, want %v", tc.input, err, tc.wantErr)
			continue
		}
		se := &SyntaxErr{}
		if !errors.As(err, &se) {
			t.Errorf("QuotedSpan(%q): error %v is not a SyntaxErr", tc.input, err)
			continue
		}
		if tc.wantPos != 0 && se.Pos != tc.wantPos {
			t.Errorf("QuotedSpan(%q): pos %d, want %d", tc.input, se.Pos, tc.wantPos)
		}
		if tc.wantCh != se.Ch {
			t.Errorf("QuotedSpan(%q): ch %q, want %q", tc.input, se.Ch, tc.wantCh)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "hello", want: "hello"},
		{input: "", want: ""},
		{input: `"`, want: `\"`},
		{input: `\`, want: `\\`},
		{input: "\b\f\n\r\t", want: `\b\f\n\r\t`},
		{input: "\x00", want: `\u0000`},
		{input: "\x04", want: `\u0004`},
		{input: "\x16", want: `\u0016`},
		{input: "\x1f", want: `\u001f`},
		{input: "\x7f", want: "\x7f"},
		{input: "/", want: "/"},
		{input: "😊", want: "😊"},
		{input: "☀", want: "☀"},
		{input: "tab\tand\nnewline", want: `tab\tand\nnewline`},
	}
	for _, tc := range tests {
		if got := Escape(tc.input); got != tc.want {
			t.Errorf("Escape(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "hello", want: "hello"},
		{input: `\"`, want: `"`},
		{input: `\\`, want: `\`},
		{input: `\/`, want: "/"},
		{input: `\b\f\n\r\t`, want: "\b\f\n\r\t"},
		{input: `\u0041`, want: "A"},
		{input: `\u0061`, want: "a"},
		{input: `\u2600`, want: "☀"},
		{input: `\ud83d\ude0a`, want: "😊"},
		{input: `\u0061\u0308`, want: "ä"},
		{input: "😀", want: "😀"},
	}
	for _, tc := range tests {
		if got := Unescape(tc.input); got != tc.want {
			t.Errorf("Unescape(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with \"quotes\" and \\backslashes\\",
		"\x00\x01\x1f\x7f",
		"\b\f\n\r\t",
		"mixed ☀ and 😊 and ä",
		"/slashes/",
	}
	for _, s := range inputs {
		if got := Unescape(Escape(s)); got != s {
			t.Errorf("Unescape(Escape(%q)) = %q", s, got)
		}
	}
}
