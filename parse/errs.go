package parse

import (
	"fmt"
	"strconv"
)

// DirectiveErr wraps a syntax error with the offending directive text,
// rendered display-safe so control characters cannot leak into error
// output.
type DirectiveErr struct {
	Text string
	Err  error
}

func (e *DirectiveErr) Unwrap() error {
	return e.Err
}

func (e *DirectiveErr) Error() string {
	return fmt.Sprintf("directive %s: %s", strconv.Quote(e.Text), e.Err.Error())
}
