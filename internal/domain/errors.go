package domain

import (
	"fmt"
	"strings"
)

// Side identifies which input a fatal error refers to. Every abort must
// name the side so the operator knows which file to fix.
type Side string

const (
	SideBank       Side = "bank"
	SideAccounting Side = "accounting"
)

// InputReadError means a raw-row source failed to deliver rows at all.
type InputReadError struct {
	Side Side
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("reading %s input: %v", e.Side, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// SchemaError means mandatory columns are absent from a source. The run
// aborts before any matching.
type SchemaError struct {
	Side    Side
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s input is missing mandatory column(s): %s",
		e.Side, strings.Join(e.Missing, ", "))
}

// EmptyInputError means a source yielded zero usable canonical records.
type EmptyInputError struct {
	Side Side
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no usable records found in %s input", e.Side)
}
