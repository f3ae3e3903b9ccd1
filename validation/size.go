package validation

import (
	"strconv"

	"github.com/Code-Hex/uniseg"
)

func validateSize(value any, v func(size int) bool) bool {
	if str, ok := value.(string); ok {
		return v(uniseg.GraphemeClusterCount(str))
	}
	return true // Pass if field type cannot be checked
}

// MaxValidator the field under validation must be a string having a length
// of at most n characters (calculated based on the number of grapheme clusters).
type MaxValidator struct {
	BaseValidator
	Max int
}

// Validate checks the field under validation satisfies this validator's criteria.
func (v *MaxValidator) Validate(ctx *Context) bool {
	return validateSize(ctx.Value, func(size int) bool {
		return size <= v.Max
	})
}

// Name returns the string name of the validator.
func (v *MaxValidator) Name() string { return "max" }

// MessagePlaceholders returns the ":max" placeholder.
func (v *MaxValidator) MessagePlaceholders(_ *Context) []string {
	return []string{
		":max", strconv.Itoa(v.Max),
	}
}

// Max the field under validation must be a string having a length
// of at most n characters (calculated based on the number of grapheme clusters).
// Values that are not strings pass.
func Max(max int) *MaxValidator {
	return &MaxValidator{Max: max}
}

//------------------------------

// MinValidator the field under validation must be a string having a length
// of at least n characters (calculated based on the number of grapheme clusters).
type MinValidator struct {
	BaseValidator
	Min int
}

// Validate checks the field under validation satisfies this validator's criteria.
func (v *MinValidator) Validate(ctx *Context) bool {
	return validateSize(ctx.Value, func(size int) bool {
		return size >= v.Min
	})
}

// Name returns the string name of the validator.
func (v *MinValidator) Name() string { return "min" }

// MessagePlaceholders returns the ":min" placeholder.
func (v *MinValidator) MessagePlaceholders(_ *Context) []string {
	return []string{
		":min", strconv.Itoa(v.Min),
	}
}

// Min the field under validation must be a string having a length
// of at least n characters (calculated based on the number of grapheme clusters).
// Values that are not strings pass.
func Min(min int) *MinValidator {
	return &MinValidator{Min: min}
}
