// Package mailaddr checks that email addresses are syntactically valid,
// following the subset of RFC 5321, 5322, 3696 and 1034 that mail transfer
// agents actually accept:
//
//   - the local part is made of ASCII letters, digits and atom characters
//     (RFC 5322 section 3.2.3), optionally separated by single periods;
//   - the domain part is made of at least two dot-separated labels following
//     the LDH rule (RFC 1034 section 3.5).
//
// Quoted strings, comments, domain literals and internationalized addresses
// are rejected. No DNS lookup is performed.
//
//	if err := mailaddr.Validate("user+mailbox@example.com"); err != nil {
//		var e *mailaddr.Error
//		if errors.As(err, &e) {
//			fmt.Println(e.Kind, e.Char)
//		}
//	}
package mailaddr

import (
	"strings"

	"goyave.dev/mailaddr/ascii"
)

// Length limits in octets (RFC 5321 section 4.5.3.1, RFC 1034 section 3.5).
const (
	MaxLocalPart  = 64
	MaxDomainPart = 255
	MaxLabel      = 63
)

type scanState int

const (
	afterNonPeriod scanState = iota
	afterPeriod
)

// IsValid returns true if the given email address is valid.
// This is a shortcut for `Validate(address) == nil`.
func IsValid(address string) bool {
	return Validate(address) == nil
}

// Validate checks the given email address and returns an `*Error` describing
// the first rule it violates, or `nil` if it is valid.
//
// The address is checked as is: it is case-sensitive and surrounding
// whitespace is not trimmed. Checks are executed in this order:
//   - the address doesn't start or end with "@"
//   - every character is printable ASCII (RFC 5321 section 4.1.2)
//   - there is exactly one "@"
//   - the local part length, leading and trailing periods, then its characters
//   - the domain part length, leading and trailing periods, the presence of
//     at least one period, then each label from left to right
//
// Validate is safe for concurrent use.
func Validate(address string) error {
	if strings.HasPrefix(address, "@") {
		return newError(NoLocalPart)
	}
	if strings.HasSuffix(address, "@") {
		return newError(NoDomainPart)
	}

	if err := ascii.CheckPrintable(address); err != nil {
		return &Error{Kind: NonASCIIOrControl, Cause: err}
	}

	local, domain, found := strings.Cut(address, "@")
	if !found {
		return newError(NoSignAt)
	}
	if strings.Contains(domain, "@") {
		return newError(TooAt)
	}

	if err := validateLocalPart(local); err != nil {
		return err
	}
	if err := validateDomainPart(domain); err != nil {
		return err
	}
	return nil
}

// validateLocalPart expects a printable ASCII string.
func validateLocalPart(local string) error {
	if len(local) > MaxLocalPart {
		return newError(LocalTooLong)
	}
	// RFC 3696 section 3: period may not be used to start or end
	// the local part, nor may two or more consecutive periods appear.
	if strings.HasPrefix(local, ".") {
		return newError(LocalStartPeriod)
	}
	if strings.HasSuffix(local, ".") {
		return newError(LocalEndPeriod)
	}

	state := afterNonPeriod
	for i := 0; i < len(local); i++ {
		c := local[i]
		switch {
		case c == '.':
			if state == afterPeriod {
				return newError(ConsecutivePeriod)
			}
			state = afterPeriod
		case ascii.IsLetter(c), ascii.IsDigit(c), isAtomText(c):
			state = afterNonPeriod
		default:
			return newCharError(WrongCharLocal, rune(c))
		}
	}
	return nil
}

func isAtomText(c byte) bool {
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

// validateDomainPart expects a printable ASCII string.
func validateDomainPart(domain string) error {
	if len(domain) > MaxDomainPart {
		return newError(DomainTooLong)
	}
	if strings.HasPrefix(domain, ".") {
		return newError(DomainStartPeriod)
	}
	if strings.HasSuffix(domain, ".") {
		return newError(DomainEndPeriod)
	}

	// RFC 3696 section 2: the "at least one period" test.
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return newError(NoPeriodDomain)
	}

	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return err
		}
	}
	return nil
}

// validateLabel checks a label follows the LDH rule: it must start with a letter,
// end with a letter or digit, and have as interior characters only letters, digits
// and hyphen. The underscore is not permitted (RFC 5321 section 4.1.2).
func validateLabel(label string) error {
	if label == "" {
		return newError(ConsecutivePeriod)
	}
	if len(label) > MaxLabel {
		return newError(LabelTooLong)
	}

	for i := 0; i < len(label); i++ {
		c := label[i]
		if !ascii.IsLetter(c) && !ascii.IsDigit(c) && c != '-' {
			return newCharError(WrongCharDomain, rune(c))
		}
	}

	if first := label[0]; !ascii.IsLetter(first) {
		return newCharError(WrongStartLabel, rune(first))
	}
	if last := label[len(label)-1]; !ascii.IsLetter(last) && !ascii.IsDigit(last) {
		return newCharError(WrongEndLabel, rune(last))
	}
	return nil
}
