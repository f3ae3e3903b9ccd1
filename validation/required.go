package validation

// RequiredValidator the field under validation must be present and not `nil`.
type RequiredValidator struct{ BaseValidator }

// Validate checks the field under validation satisfies this validator's criteria.
func (v *RequiredValidator) Validate(ctx *Context) bool {
	return ctx.Value != nil
}

// Name returns the string name of the validator.
func (v *RequiredValidator) Name() string { return "required" }

// Required the field under validation must be present and not `nil`.
// If a field is not required and is absent, no other rule is checked on it.
func Required() *RequiredValidator {
	return &RequiredValidator{}
}
