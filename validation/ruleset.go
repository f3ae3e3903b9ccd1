package validation

import "github.com/samber/lo"

// Validator is a Component validating a field value.
// A validator should not be re-usable or usable concurrently. They are meant to be
// scoped to a single field validation in a single `Validate()` call.
type Validator interface {
	Composable
	init(*Options)

	// Validate checks the field under validation satisfies this validator's criteria.
	// If necessary, replaces the `Context.Value` with a converted value (see `IsType()`).
	Validate(*Context) bool

	// Name returns the string name of the validator.
	// This is used to generate the language entry for the
	// validation error message ("validation.rules.<name>").
	Name() string

	// IsType returns true if the validator if a type validator.
	// A type validator checks if a field has a certain type
	// and can convert the raw value to a value fitting.
	IsType() bool

	// MessagePlaceholders returns an associative slice of placeholders and their replacement.
	// This is use to generate the validation error message. An empty slice can be returned.
	// See `lang.Language.Get()` for more details.
	MessagePlaceholders(ctx *Context) []string
}

// BaseValidator composable structure that implements the basic functions required to
// satisfy the `Validator` interface.
type BaseValidator struct {
	component
}

func (v *BaseValidator) init(options *Options) {
	v.component = component{
		db:     options.DB,
		lang:   options.Language,
		logger: options.Logger,
	}
}

// IsType returns false.
func (v *BaseValidator) IsType() bool { return false }

// MessagePlaceholders returns an empty slice (no placeholders)
func (v *BaseValidator) MessagePlaceholders(_ *Context) []string { return []string{} }

// List of validators which will be applied on the field. The validators are executed in the
// order of the slice.
type List []Validator

// FieldRules structure associating the name of a field with a `List` of rules.
type FieldRules struct {
	Path  string
	Rules List
}

// IsRequired returns true if the field has the `Required` rule.
func (f *FieldRules) IsRequired() bool {
	return lo.ContainsBy(f.Rules, func(v Validator) bool {
		_, ok := v.(*RequiredValidator)
		return ok
	})
}

// RuleSet definition of the validation rules applied on each field.
// RuleSets are not meant to be re-used across multiple validations nor used concurrently.
type RuleSet []*FieldRules
