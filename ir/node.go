package ir

// Node is the document tree under construction. Value nodes hold their
// JSON text verbatim; arrays index children by position and objects by
// escaped key spelling. A validated batch only ever grows a path-shaped
// tree through Insert, after which the encoder renders it.
type Node struct {
	Type   Type
	Raw    string           // JSON text of a value node
	Elems  map[uint32]*Node // array children
	Fields map[string]*Node // object children by escaped key spelling
}

// Create builds a fresh chain of nodes from path down to a value leaf.
func Create(path *Path, value string) *Node {
	return create(path.Segments(), value)
}

func create(segs []Segment, value string) *Node {
	if len(segs) == 0 {
		return &Node{Type: ValueType, Raw: value}
	}
	child := create(segs[1:], value)
	seg := segs[0]
	if seg.Field == nil {
		return &Node{Type: ArrayType, Elems: map[uint32]*Node{seg.Index: child}}
	}
	return &Node{Type: ObjectType, Fields: map[string]*Node{*seg.Field: child}}
}

// Insert walks existing nodes along path, creating children lazily the
// first time a segment is unseen, and places value at the leaf. It reports
// false when the path contradicts the kinds already in the tree; in a
// validated batch that never happens.
func (n *Node) Insert(path *Path, value string) bool {
	segs := path.Segments()
	if len(segs) == 0 {
		return false
	}
	for {
		seg := segs[0]
		if seg.Field == nil {
			if n.Type != ArrayType {
				return false
			}
			child, ok := n.Elems[seg.Index]
			if !ok {
				n.Elems[seg.Index] = create(segs[1:], value)
				return true
			}
			n = child
		} else {
			if n.Type != ObjectType {
				return false
			}
			child, ok := n.Fields[*seg.Field]
			if !ok {
				n.Fields[*seg.Field] = create(segs[1:], value)
				return true
			}
			n = child
		}
		segs = segs[1:]
		if len(segs) == 0 {
			return false
		}
	}
}

// BuildTree merges a validated batch into one tree, or nil for an empty
// batch: no document, as opposed to an empty object or array.
func BuildTree(directives []Directive) *Node {
	if len(directives) == 0 {
		return nil
	}
	node := Create(directives[0].Path, directives[0].Value)
	for _, d := range directives[1:] {
		if !node.Insert(d.Path, d.Value) {
			panic("mkjson: insert into validated directive tree failed")
		}
	}
	return node
}
