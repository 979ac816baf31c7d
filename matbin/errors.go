package matbin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfBounds indicates a read past the end of the input buffer.
	ErrOutOfBounds = errors.New("read past end of buffer")
	// ErrTruncatedString indicates a string table run whose terminator
	// was not found before the table's byte budget was exhausted. The
	// run is preserved as the table's tail and the condition is reported
	// as a warning.
	ErrTruncatedString = errors.New("string table entry is missing its terminator")
)

// UnknownTypeError indicates a parameter discriminant not known by the
// codec. The variant record sizes diverge, so decoding cannot continue
// past an unknown discriminant.
type UnknownTypeError uint32

func (err UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown parameter type %d", uint32(err))
}

// SizeError indicates a declared payload length that overruns the
// remaining buffer.
type SizeError struct {
	// Declared is the payload length given by the file.
	Declared int64
	// Remaining is the number of bytes left in the buffer.
	Remaining int64
}

func (err SizeError) Error() string {
	return fmt.Sprintf("declared size %d exceeds remaining %d bytes", err.Declared, err.Remaining)
}

// DecodeError wraps the error that aborted a decode, along with the byte
// offset where it occurred.
type DecodeError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DecodeError) Error() string {
	var s strings.Builder
	s.WriteString("decode error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DecodeError) Unwrap() error {
	return err.Cause
}

// TrailingDataError reports bytes left unconsumed after a complete
// decode. Later format revisions may append data, so this is surfaced as
// a warning rather than an error.
type TrailingDataError struct {
	// Offset is where the unconsumed region starts.
	Offset int64
	// Count is the number of unconsumed bytes.
	Count int64
}

func (err TrailingDataError) Error() string {
	return fmt.Sprintf("%d unconsumed trailing bytes at offset %d", err.Count, err.Offset)
}

// Errors is a list of errors.
type Errors []error

// Error formats the list by separating each message with a newline. Each
// produced line is prefixed with a tab.
func (errs Errors) Error() string {
	switch len(errs) {
	case 0:
		return "no errors"
	case 1:
		return errs[0].Error()
	default:
		var buf strings.Builder
		buf.WriteString("multiple errors:")
		for _, err := range errs {
			buf.WriteString("\n\t")
			buf.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n\t"))
		}
		return buf.String()
	}
}

// Unwrap returns the list so that errors.Is and errors.As can match
// individual entries.
func (errs Errors) Unwrap() []error {
	return errs
}

// Append returns errs with each non-nil err appended to it.
func (errs Errors) Append(err ...error) Errors {
	for _, err := range err {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Return prepares errs to be returned by a function by returning nil if
// errs is empty.
func (errs Errors) Return() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
