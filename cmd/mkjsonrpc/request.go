package main

import "github.com/mattias-p/mkjson/ir"

// request wraps the built params document, which may be nil, in a json-rpc
// 2.0 request envelope. The envelope does not touch the document itself.
func request(method, id string, params *ir.Node) *ir.Node {
	fields := map[string]*ir.Node{
		"jsonrpc": {Type: ir.ValueType, Raw: `"2.0"`},
		"method":  {Type: ir.ValueType, Raw: method},
	}
	if id != "" {
		fields["id"] = &ir.Node{Type: ir.ValueType, Raw: id}
	}
	if params != nil {
		fields["params"] = params
	}
	return &ir.Node{Type: ir.ObjectType, Fields: fields}
}
