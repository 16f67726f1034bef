package main

import (
	"testing"

	"github.com/mattias-p/mkjson"
	"github.com/mattias-p/mkjson/encode"
)

func TestRequest(t *testing.T) {
	params, err := mkjson.Compose([]string{"name=grace", "age:42"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		method string
		id     string
		want   string
	}{
		{
			name:   "full envelope",
			method: `"subtract"`,
			id:     `"1"`,
			want:   `{"id":"1","jsonrpc":"2.0","method":"subtract","params":{"age":42,"name":"grace"}}`,
		},
		{
			name:   "id omitted",
			method: `"notify"`,
			want:   `{"jsonrpc":"2.0","method":"notify","params":{"age":42,"name":"grace"}}`,
		},
		{
			name:   "null id",
			method: `"probe"`,
			id:     "null",
			want:   `{"id":null,"jsonrpc":"2.0","method":"probe","params":{"age":42,"name":"grace"}}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encode.MustString(request(tc.method, tc.id, params))
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRequestNoParams(t *testing.T) {
	got := encode.MustString(request(`"ping"`, "", nil))
	want := `{"jsonrpc":"2.0","method":"ping"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
