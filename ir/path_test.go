package ir

import "testing"

func key(s string) Segment { return KeySegment(s) }
func idx(i uint32) Segment { return IndexSegment(i) }

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want string
	}{
		{name: "root", path: Root(), want: "."},
		{name: "bare key", path: Root().Append(key("foo")), want: "foo"},
		{name: "nested keys", path: Root().Append(key("foo")).Append(key("bar")), want: "foo.bar"},
		{name: "index", path: Root().Append(idx(0)), want: "0"},
		{name: "mixed", path: Root().Append(key("foo")).Append(idx(3)).Append(key("bar")), want: "foo.3.bar"},
		{name: "empty key quoted", path: Root().Append(key("")), want: `""`},
		{name: "dotted key quoted", path: Root().Append(key("foo.bar")), want: `"foo.bar"`},
		{name: "numeric key quoted", path: Root().Append(key("0")), want: `"0"`},
		{name: "spaced key quoted", path: Root().Append(key(" foo ")), want: `" foo "`},
		{name: "escape kept verbatim", path: Root().Append(key(`\u0041`)), want: `"\u0041"`},
		{name: "unicode bare", path: Root().Append(key("döner")), want: "döner"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// String doubles as a map key standing in for structural equality, so
// distinct paths must never collide. Bare keys cannot contain dots or
// quotes and numeric keys are always quoted, which keeps the rendering
// collision free.
func TestPathStringInjective(t *testing.T) {
	paths := []*Path{
		Root(),
		Root().Append(key("foo")),
		Root().Append(key("foo")).Append(key("bar")),
		Root().Append(key("foo.bar")),
		Root().Append(idx(0)),
		Root().Append(key("0")),
		Root().Append(key("")),
		Root().Append(key("")).Append(key("")),
		Root().Append(idx(1)).Append(idx(2)),
		Root().Append(key("1.2")),
	}
	seen := map[string]*Path{}
	for _, p := range paths {
		s := p.String()
		if prev, ok := seen[s]; ok {
			t.Errorf("paths %v and %v both render as %q", prev, p, s)
		}
		seen[s] = p
	}
}

func TestPathSharing(t *testing.T) {
	prefix := Root().Append(key("a")).Append(key("b"))
	p := prefix.Append(key("c"))
	q := prefix.Append(key("d"))
	if p.Prefix != prefix || q.Prefix != prefix {
		t.Fatal("appends must share their prefix")
	}
	if p.Len() != 3 || q.Len() != 3 {
		t.Fatalf("got lengths %d and %d, want 3", p.Len(), q.Len())
	}
}

func TestPathCompare(t *testing.T) {
	a := Root().Append(key("a"))
	b := Root().Append(key("b"))
	a0 := a.Append(idx(0))
	a1 := a.Append(idx(1))
	ak := a.Append(key("k"))

	tests := []struct {
		name string
		p, q *Path
		want int
	}{
		{name: "equal roots", p: Root(), q: Root(), want: 0},
		{name: "root is maximum", p: a, q: Root(), want: -1},
		{name: "key order", p: a, q: b, want: -1},
		{name: "index order", p: a0, q: a1, want: -1},
		{name: "index before key", p: a0, q: ak, want: -1},
		{name: "prefix is maximum over extensions", p: a0, q: a, want: -1},
		{name: "structural equality", p: Root().Append(key("a")).Append(idx(0)), q: a0, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Compare(tc.q); got != tc.want {
				t.Errorf("Compare: got %d, want %d", got, tc.want)
			}
			if got := tc.q.Compare(tc.p); got != -tc.want {
				t.Errorf("reverse Compare: got %d, want %d", got, -tc.want)
			}
			if (tc.want == 0) != tc.p.Equal(tc.q) {
				t.Errorf("Equal disagrees with Compare")
			}
		})
	}
}

func TestPathUnescape(t *testing.T) {
	p := Root().Append(key(`\u0061`)).Append(key("b"))
	got := p.Unescape().String()
	if got != "a.b" {
		t.Errorf("got %q, want %q", got, "a.b")
	}
}

func TestSegmentUnescape(t *testing.T) {
	tests := []struct {
		spelling string
		want     string
	}{
		{spelling: "plain", want: "plain"},
		{spelling: `\u0041`, want: "A"},
		{spelling: `\ud83d\ude0a`, want: "😊"},
		{spelling: `\u0061\u0308`, want: "ä"},
	}
	for _, tc := range tests {
		got := KeySegment(tc.spelling).Unescape()
		if !got.IsKey() || *got.Field != tc.want {
			t.Errorf("Unescape(%q): got %v, want %q", tc.spelling, got, tc.want)
		}
	}
	i := IndexSegment(7).Unescape()
	if i.IsKey() || i.Index != 7 {
		t.Errorf("index segment changed by Unescape: %v", i)
	}
}
