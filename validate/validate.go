// Package validate checks a parsed directive batch for semantic
// consistency before the tree is built.
package validate

import (
	"slices"

	"github.com/mattias-p/mkjson/ir"
)

// Validate runs the four consistency passes over the whole batch in fixed
// order, stopping at the first violation: key-encoding consistency, path
// uniqueness, node-kind consistency and array completeness. Each pass is a
// pure function of the directive slice.
func Validate(directives []ir.Directive) error {
	if err := checkKeyConsistency(directives); err != nil {
		return err
	}
	if err := checkPathUniqueness(directives); err != nil {
		return err
	}
	if err := checkNodeKinds(directives); err != nil {
		return err
	}
	return checkArrayCompleteness(directives)
}

// checkKeyConsistency groups concrete key spellings by the decoded form of
// their whole path and requires one spelling per group. Only differing
// encodings of identical code points are flagged; NFC and NFD forms of the
// same glyph decode to different code points and remain distinct keys.
func checkKeyConsistency(directives []ir.Directive) error {
	keys := map[string]ir.Segment{}
	for _, d := range directives {
		given := d.Path
		normalized := given.Unescape()
		for given != nil {
			if given.Seg.IsKey() {
				name := normalized.String()
				seen, ok := keys[name]
				if !ok {
					keys[name] = given.Seg
				} else if !seen.Equal(given.Seg) {
					return &PathErr{
						Path: given.Prefix,
						Err:  &KeyEncodingErr{Key1: seen, Key2: given.Seg},
					}
				}
			}
			given = given.Prefix
			normalized = normalized.Prefix
		}
	}
	return nil
}

func checkPathUniqueness(directives []ir.Directive) error {
	paths := map[string]bool{}
	for _, d := range directives {
		name := d.Path.String()
		if paths[name] {
			return &PathErr{Path: d.Path, Err: ErrConflict}
		}
		paths[name] = true
	}
	return nil
}

// checkNodeKinds infers a kind for every prefix of every path: the full
// path is a value, and each proper prefix is an object or array depending
// on the segment below it. A path inferred as two kinds is a conflict,
// reported with the kinds in discovery order.
func checkNodeKinds(directives []ir.Directive) error {
	kinds := map[string]ir.Type{}
	note := func(path *ir.Path, kind ir.Type) error {
		name := path.String()
		seen, ok := kinds[name]
		if !ok {
			kinds[name] = kind
			return nil
		}
		if seen != kind {
			return &PathErr{Path: path, Err: &KindConflictErr{Kind1: seen, Kind2: kind}}
		}
		return nil
	}
	for _, d := range directives {
		path := d.Path
		name := path.String()
		if _, ok := kinds[name]; ok {
			// a value leaf may not be revisited, whatever kind it
			// was seen as before
			return &PathErr{
				Path: path,
				Err:  &KindConflictErr{Kind1: kinds[name], Kind2: ir.ValueType},
			}
		}
		kinds[name] = ir.ValueType
		for path != nil {
			kind := ir.ArrayType
			if path.Seg.IsKey() {
				kind = ir.ObjectType
			}
			if err := note(path.Prefix, kind); err != nil {
				return err
			}
			path = path.Prefix
		}
	}
	return nil
}

// checkArrayCompleteness collects the index set of every array path and
// requires it to be exactly {0..max}. Arrays are examined in the order the
// batch first mentions them.
func checkArrayCompleteness(directives []ir.Directive) error {
	arrays := map[string]map[uint32]bool{}
	var order []*ir.Path
	for _, d := range directives {
		path := d.Path
		for path != nil {
			if !path.Seg.IsKey() {
				name := path.Prefix.String()
				if arrays[name] == nil {
					arrays[name] = map[uint32]bool{}
					order = append(order, path.Prefix)
				}
				arrays[name][path.Seg.Index] = true
			}
			path = path.Prefix
		}
	}

	for _, prefix := range order {
		seen := arrays[prefix.String()]
		indices := make([]uint32, 0, len(seen))
		for i := range seen {
			indices = append(indices, i)
		}
		slices.Sort(indices)

		if first := indices[0]; first != 0 {
			return &PathErr{
				Path: prefix,
				Err:  &IncompleteArrayErr{Seen: first, Missing: 0},
			}
		}
		for i := 1; i < len(indices); i++ {
			if indices[i] != indices[i-1]+1 {
				return &PathErr{
					Path: prefix,
					Err:  &IncompleteArrayErr{Seen: indices[i], Missing: indices[i-1] + 1},
				}
			}
		}
	}
	return nil
}
