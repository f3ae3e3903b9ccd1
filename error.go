package mailaddr

import (
	"encoding/json"
	"fmt"
	"strconv"

	"goyave.dev/mailaddr/ascii"
	"goyave.dev/mailaddr/lang"
)

const errorPrefix = "invalid email address"

// Kind identifies the rule violated by an invalid email address.
type Kind int

// Kinds returned by `Validate`, in no particular order.
// The check order is documented on `Validate`.
const (
	NoLocalPart Kind = iota + 1
	NoDomainPart
	NoSignAt

	TooAt
	LocalTooLong
	DomainTooLong
	LabelTooLong

	LocalStartPeriod
	LocalEndPeriod
	DomainStartPeriod
	DomainEndPeriod
	ConsecutivePeriod
	NoPeriodDomain

	NonASCIIOrControl
	WrongCharLocal
	WrongCharDomain
	WrongStartLabel
	WrongEndLabel
)

var kindNames = map[Kind]string{
	NoLocalPart:       "no-local-part",
	NoDomainPart:      "no-domain-part",
	NoSignAt:          "no-sign-at",
	TooAt:             "too-at",
	LocalTooLong:      "local-too-long",
	DomainTooLong:     "domain-too-long",
	LabelTooLong:      "label-too-long",
	LocalStartPeriod:  "local-start-period",
	LocalEndPeriod:    "local-end-period",
	DomainStartPeriod: "domain-start-period",
	DomainEndPeriod:   "domain-end-period",
	ConsecutivePeriod: "consecutive-period",
	NoPeriodDomain:    "no-period-domain",
	NonASCIIOrControl: "non-ascii-or-control",
	WrongCharLocal:    "wrong-char-local",
	WrongCharDomain:   "wrong-char-domain",
	WrongStartLabel:   "wrong-start-label",
	WrongEndLabel:     "wrong-end-label",
}

var kindDescriptions = map[Kind]string{
	NoLocalPart:       "no local part",
	NoDomainPart:      "no domain part",
	NoSignAt:          "no at sign (@)",
	TooAt:             "wrong number of at sign (@)",
	LocalTooLong:      "the local part has more than 64 characters",
	DomainTooLong:     "the domain part has more than 255 characters",
	LabelTooLong:      "a domain label has more than 63 characters",
	LocalStartPeriod:  "the local part starts with a period",
	LocalEndPeriod:    "the local part ends with a period",
	DomainStartPeriod: "the domain part starts with a period",
	DomainEndPeriod:   "the domain part ends with a period",
	ConsecutivePeriod: "appear two or more consecutive periods",
	NoPeriodDomain:    "no period at domain part",
	NonASCIIOrControl: "character not printable ASCII",
	WrongCharLocal:    "character not valid in local part",
	WrongCharDomain:   "character not valid in domain part",
	WrongStartLabel:   "character not valid at start of domain label",
	WrongEndLabel:     "character not valid at end of domain label",
}

// String returns the stable identifier of the kind, for example "too-at".
// This identifier is used as language entry ("mailaddr.too-at") and as JSON value.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Description returns the English description of the kind.
func (k Kind) Description() string {
	if desc, ok := kindDescriptions[k]; ok {
		return desc
	}
	return "unknown error"
}

// HasChar returns true if errors of this kind carry the offending character.
func (k Kind) HasChar() bool {
	switch k {
	case WrongCharLocal, WrongCharDomain, WrongStartLabel, WrongEndLabel:
		return true
	}
	return false
}

// MarshalJSON marshals the kind as its string identifier.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Error describes why an email address is invalid. Only the first
// violated rule is reported.
//
// `Char` is set for the `WrongCharLocal`, `WrongCharDomain`, `WrongStartLabel`
// and `WrongEndLabel` kinds. For `NonASCIIOrControl`, `Cause` holds the
// `*ascii.Error` giving the non-ASCII character or the position of
// the control character.
type Error struct {
	Cause error
	Kind  Kind
	Char  rune
}

// Sentinel errors to be used with `errors.Is()`. They match any `*Error`
// of the same kind, regardless of the offending character.
var (
	ErrNoLocalPart       = &Error{Kind: NoLocalPart}
	ErrNoDomainPart      = &Error{Kind: NoDomainPart}
	ErrNoSignAt          = &Error{Kind: NoSignAt}
	ErrTooAt             = &Error{Kind: TooAt}
	ErrLocalTooLong      = &Error{Kind: LocalTooLong}
	ErrDomainTooLong     = &Error{Kind: DomainTooLong}
	ErrLabelTooLong      = &Error{Kind: LabelTooLong}
	ErrLocalStartPeriod  = &Error{Kind: LocalStartPeriod}
	ErrLocalEndPeriod    = &Error{Kind: LocalEndPeriod}
	ErrDomainStartPeriod = &Error{Kind: DomainStartPeriod}
	ErrDomainEndPeriod   = &Error{Kind: DomainEndPeriod}
	ErrConsecutivePeriod = &Error{Kind: ConsecutivePeriod}
	ErrNoPeriodDomain    = &Error{Kind: NoPeriodDomain}
	ErrNonASCIIOrControl = &Error{Kind: NonASCIIOrControl}
	ErrWrongCharLocal    = &Error{Kind: WrongCharLocal}
	ErrWrongCharDomain   = &Error{Kind: WrongCharDomain}
	ErrWrongStartLabel   = &Error{Kind: WrongStartLabel}
	ErrWrongEndLabel     = &Error{Kind: WrongEndLabel}
)

func newError(kind Kind) *Error {
	return &Error{Kind: kind}
}

func newCharError(kind Kind, c rune) *Error {
	return &Error{Kind: kind, Char: c}
}

func (e *Error) Error() string {
	return errorPrefix + ": " + e.reason()
}

func (e *Error) reason() string {
	if e.Kind == NonASCIIOrControl && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Kind.HasChar() {
		return fmt.Sprintf("%s (%c)", e.Kind.Description(), e.Char)
	}
	return e.Kind.Description()
}

// Unwrap returns the wrapped `*ascii.Error` for the `NonASCIIOrControl` kind.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is returns true if the target is an `*Error` of the same kind. If the target
// carries a character, the characters must be equal too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Char == 0 || t.Char == e.Char)
}

// Localize returns the error message translated in the given language,
// using the "mailaddr.invalid" language line as prefix followed by the
// reason returned by `LocalizeReason`.
// If the given language is `nil`, returns `e.Error()`.
func (e *Error) Localize(language *lang.Language) string {
	if language == nil {
		return e.Error()
	}
	return localizeLine(language, "mailaddr.invalid", errorPrefix) + ": " + e.LocalizeReason(language)
}

// LocalizeReason returns the description of the violated rule translated in the
// given language, without the "invalid email address" prefix.
//
// The "mailaddr.<kind>" language lines are used (for example "mailaddr.too-at").
// For the `NonASCIIOrControl` kind, the "mailaddr.non-ascii" (":char" placeholder)
// and "mailaddr.control-char" (":position" placeholder) lines are used instead.
// Missing lines fall back to English. If the given language is `nil`, the English
// description is returned.
func (e *Error) LocalizeReason(language *lang.Language) string {
	if language == nil {
		return e.reason()
	}

	if a, ok := e.Cause.(*ascii.Error); ok && e.Kind == NonASCIIOrControl {
		switch a.Kind {
		case ascii.NonASCII:
			return localizeLine(language, "mailaddr.non-ascii", a.Error(), ":char", string(a.Char))
		case ascii.ControlChar:
			return localizeLine(language, "mailaddr.control-char", a.Error(), ":position", strconv.Itoa(a.Position))
		}
	}

	desc := localizeLine(language, "mailaddr."+e.Kind.String(), e.Kind.Description())
	if e.Kind.HasChar() {
		return fmt.Sprintf("%s (%c)", desc, e.Char)
	}
	return desc
}

func localizeLine(language *lang.Language, entry, fallback string, placeholders ...string) string {
	line := language.Get(entry, placeholders...)
	if line == entry {
		return fallback
	}
	return line
}

type jsonError struct {
	Kind     Kind   `json:"kind"`
	Char     string `json:"char,omitempty"`
	Position int    `json:"position,omitempty"`
	Message  string `json:"message"`
}

// MarshalJSON marshals the error as an object containing its kind, the offending
// character (if any), the position of the control character (if any) and the message.
func (e *Error) MarshalJSON() ([]byte, error) {
	res := jsonError{
		Kind:    e.Kind,
		Message: e.Error(),
	}
	if e.Kind.HasChar() {
		res.Char = string(e.Char)
	}
	if a, ok := e.Cause.(*ascii.Error); ok {
		switch a.Kind {
		case ascii.NonASCII:
			res.Char = string(a.Char)
		case ascii.ControlChar:
			res.Position = a.Position
		}
	}
	return json.Marshal(res)
}
