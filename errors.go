package aoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies bad puzzle input.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota
	MismatchedRowSize
	EmptyInput
	MismatchedColumns
	UnknownOperation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case MismatchedRowSize:
		return "MismatchedRowSize"
	case EmptyInput:
		return "EmptyInput"
	case MismatchedColumns:
		return "MismatchedColumns"
	case UnknownOperation:
		return "UnknownOperation"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// InputError is one piece of input that could not be parsed. Text is the
// offending line or token, if there is one.
type InputError struct {
	Kind ErrorKind
	Text string
}

func (e InputError) Error() string {
	if e.Text == "" && e.Kind != InvalidInput {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v(%q)", e.Kind, e.Text)
}

// Invalid returns an InvalidInput error for text.
func Invalid(text string) InputError {
	return InputError{Kind: InvalidInput, Text: text}
}

// InputErrors is every error found in one input, in input order.
type InputErrors []InputError

func (es InputErrors) Error() string {
	var sb strings.Builder
	for i, e := range es {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Add appends the errors carried by err: an InputError, or every error of
// a *ParseError. Other errors are added as InvalidInput with no text.
func (es *InputErrors) Add(err error) {
	var pe *ParseError
	var ie InputError
	switch {
	case err == nil:
	case errors.As(err, &pe):
		*es = append(*es, pe.Errs...)
	case errors.As(err, &ie):
		*es = append(*es, ie)
	default:
		*es = append(*es, Invalid(""))
	}
}

// Err returns es as a *ParseError for what, or nil if es is empty.
func (es InputErrors) Err(what string) error {
	if len(es) == 0 {
		return nil
	}
	return &ParseError{What: what, Errs: es}
}

// ParseError is returned by a solver instead of an answer when its input
// does not parse. What names the thing being read, e.g. "ranges".
type ParseError struct {
	What string
	Errs InputErrors
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.What, e.Errs)
}

func (e *ParseError) Unwrap() error { return e.Errs }

// Report writes the heading and one error per line, like:
//
//	Cannot read ranges:
//	  InvalidInput("a-b")
func (e *ParseError) Report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cannot read %s:\n", e.What)
	for _, ie := range e.Errs {
		fmt.Fprintf(&sb, "  %v\n", ie)
	}
	return sb.String()
}

// ParseAll parses every token independently and returns the values only
// if all of them parsed. Otherwise it returns a *ParseError holding every
// failure. Errors from parse that aren't an InputError are reported as
// InvalidInput for the token.
func ParseAll[T any](what string, tokens []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(tokens))
	var errs InputErrors
	for _, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			ie, ok := err.(InputError)
			if !ok {
				ie = Invalid(tok)
			}
			errs = append(errs, ie)
			continue
		}
		out = append(out, v)
	}
	if len(errs) > 0 {
		return nil, &ParseError{What: what, Errs: errs}
	}
	return out, nil
}

// Fail returns a *ParseError with a single error.
func Fail(what string, e InputError) error {
	return &ParseError{What: what, Errs: InputErrors{e}}
}
