package cgtimport

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParsing matches every *ParsingError with errors.Is.
	ErrParsing = errors.New("parsing error")
	// ErrColumnCount matches every *UnexpectedColumnCountError with errors.Is.
	ErrColumnCount = errors.New("unexpected column count")
)

// ParsingError reports data that could not be understood, like an unknown
// action label or a malformed date or number.
type ParsingError struct {
	File    string // file (or logical source) being parsed
	Message string
	Err     error // underlying error, if any
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("while parsing %s: %s", e.File, e.Message)
}

func (e *ParsingError) Unwrap() error        { return e.Err }
func (e *ParsingError) Is(target error) bool { return target == ErrParsing }

// UnexpectedColumnCountError reports a row that does not have the number of
// fields the format requires.
type UnexpectedColumnCountError struct {
	Row      []string
	Expected int
	File     string
}

func (e *UnexpectedColumnCountError) Error() string {
	return fmt.Sprintf("the following row doesn't have the expected number of columns (%d) in %s: got %d in [%s]",
		e.Expected, e.File, len(e.Row), strings.Join(e.Row, ","))
}

func (e *UnexpectedColumnCountError) Is(target error) bool { return target == ErrColumnCount }
