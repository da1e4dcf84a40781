package models

import (
	"fmt"
	"strings"
)

// InvalidEnumError is returned by the ParseX helpers when an input string
// does not match any value of the target enum. The stored row is never
// touched when parsing fails.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q (use one of: %s)", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
