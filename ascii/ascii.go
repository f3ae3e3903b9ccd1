// Package ascii provides the character class checks used when scanning
// email addresses: letters, digits and printable US-ASCII.
package ascii

import (
	"fmt"
	"strconv"
)

// ErrorKind identifies why a character is not printable ASCII.
type ErrorKind int

// Error kinds returned by `CheckPrintable`.
const (
	NonASCII ErrorKind = iota + 1
	ControlChar
)

// Error reports the first character of a string that is not printable ASCII.
//
// For `NonASCII`, `Char` holds the offending character. For `ControlChar`,
// `Position` holds its 1-based position in the string since control characters
// usually don't have a printable representation.
type Error struct {
	Kind     ErrorKind
	Char     rune
	Position int
}

func (e *Error) Error() string {
	switch e.Kind {
	case NonASCII:
		return fmt.Sprintf("non-ASCII character (%c)", e.Char)
	case ControlChar:
		return "control character at position " + strconv.Itoa(e.Position)
	}
	return "invalid character"
}

// CheckPrintable returns an `*Error` for the first character of the given
// string outside the printable US-ASCII range (32 to 126 inclusive).
// Returns `nil` if all the characters are printable.
//
// Invalid UTF-8 sequences are reported as the `NonASCII` character U+FFFD.
func CheckPrintable(s string) error {
	position := 0
	for _, r := range s {
		position++
		if r > 127 {
			return &Error{Kind: NonASCII, Char: r}
		}
		if r < 32 || r == 127 {
			return &Error{Kind: ControlChar, Char: r, Position: position}
		}
	}
	return nil
}

// IsPrintable returns true if the given character is printable US-ASCII.
func IsPrintable[T rune | byte](c T) bool {
	return c >= 32 && c <= 126
}

// IsLetter returns true if the given character is an ASCII letter.
func IsLetter[T rune | byte](c T) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDigit returns true if the given character is an ASCII digit.
func IsDigit[T rune | byte](c T) bool {
	return c >= '0' && c <= '9'
}
