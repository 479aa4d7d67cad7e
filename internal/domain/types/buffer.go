package types

import (
	"strings"
	"unicode/utf8"
)

// ErrorMarker is the sentinel display contents shown after a failed evaluation.
const ErrorMarker Buffer = "Error"

// Buffer is the single-line expression display. It holds either an
// in-progress expression or ErrorMarker.
type Buffer string

// String returns the display text.
func (b Buffer) String() string { return string(b) }

// IsError reports whether the buffer holds the error marker.
func (b Buffer) IsError() bool { return b == ErrorMarker }

// IsBlank reports whether the buffer is empty or whitespace only.
func (b Buffer) IsBlank() bool { return strings.TrimSpace(string(b)) == "" }

// DropLast returns the buffer without its final character.
func (b Buffer) DropLast() Buffer {
	if b == "" {
		return b
	}
	_, size := utf8.DecodeLastRuneInString(string(b))
	return b[:len(b)-size]
}
