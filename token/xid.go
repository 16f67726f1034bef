package token

import "unicode"

// Identifier classification for bare path keys, per Unicode UAX #31
// XID properties derived from the stdlib range tables.

var (
	xidStart = []*unicode.RangeTable{
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	}
	xidContinue = []*unicode.RangeTable{
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	}
	xidExclude = []*unicode.RangeTable{
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	}
)

func IsXIDStart(r rune) bool {
	return unicode.In(r, xidStart...) && !unicode.In(r, xidExclude...)
}

func IsXIDContinue(r rune) bool {
	return unicode.In(r, xidContinue...) && !unicode.In(r, xidExclude...)
}

// NeedsQuote returns true if a key spelling cannot be written as a bare
// segment in directive path syntax.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i, r := range v {
		if i == 0 {
			if !IsXIDStart(r) {
				return true
			}
			continue
		}
		if !IsXIDContinue(r) {
			return true
		}
	}
	return false
}
