package validation

import (
	"net/mail"

	"goyave.dev/mailaddr"
)

// EmailAddressValidator the field under validation must be a syntactically
// valid email address, as checked by `mailaddr.Validate()`.
//
// The field can be a string or a `*mail.Address`, which is converted to the
// string address if it is valid.
type EmailAddressValidator struct {
	BaseValidator
	err *mailaddr.Error
}

// Validate checks the field under validation satisfies this validator's criteria.
// Each rejected address is logged at the debug level.
func (v *EmailAddressValidator) Validate(ctx *Context) bool {
	v.err = nil
	var address string
	switch val := ctx.Value.(type) {
	case string:
		address = val
	case *mail.Address:
		if val == nil {
			return false
		}
		address = val.Address
	default:
		return false
	}

	err := mailaddr.Validate(address)
	if err == nil {
		ctx.Value = address
		return true
	}

	v.err, _ = err.(*mailaddr.Error)
	if v.err != nil {
		v.Logger().Debug("email address rejected", "field", ctx.Name, "kind", v.err.Kind.String())
	}
	return false
}

// Name returns the string name of the validator.
func (v *EmailAddressValidator) Name() string { return "email-address" }

// IsType returns true.
func (v *EmailAddressValidator) IsType() bool { return true }

// Reason returns why the last validated address was rejected, or `nil`.
func (v *EmailAddressValidator) Reason() *mailaddr.Error {
	return v.err
}

// MessagePlaceholders returns the ":reason" placeholder, which is the description
// of the violated rule translated in the validation language.
func (v *EmailAddressValidator) MessagePlaceholders(_ *Context) []string {
	if v.err == nil {
		return []string{":reason", v.Lang().Get("mailaddr.not-string")}
	}
	return []string{":reason", v.err.LocalizeReason(v.Lang())}
}

// EmailAddress the field under validation must be a syntactically valid email address.
// Unlike a regular expression check, the error message tells which rule the address
// violates, for example "The email address must be a valid email address: no period at domain part."
func EmailAddress() *EmailAddressValidator {
	return &EmailAddressValidator{}
}
