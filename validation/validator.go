package validation

import (
	"gorm.io/gorm"
	"goyave.dev/mailaddr/lang"
	"goyave.dev/mailaddr/slog"
	"goyave.dev/mailaddr/util/errors"
)

// Composable the accessors validators use to reach the DB,
// the Language and the Logger given through the validation `Options`.
type Composable interface {
	DB() *gorm.DB
	Lang() *lang.Language
	Logger() *slog.Logger
}

type component struct {
	db     *gorm.DB
	lang   *lang.Language
	logger *slog.Logger
}

// DB get the database instance given through the validation Options.
// Panics if there is none.
func (c *component) DB() *gorm.DB {
	if c.db == nil {
		panic(errors.NewSkip("DB is not set in validation options", 3))
	}
	return c.db
}

// Lang get the language given through the validation Options.
// Panics if there is none.
func (c *component) Lang() *lang.Language {
	if c.lang == nil {
		panic(errors.NewSkip("Language is not set in validation options", 3))
	}
	return c.lang
}

// Logger get the Logger given through the validation Options.
// Returns a Logger discarding all records if there is none.
func (c *component) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Discard()
	}
	return c.logger
}

// Options all the parameters required by `Validate()`.
//
// Only `Data` and `Rules` are mandatory. If `Language` is `nil`, the default
// language (en-US) is used.
type Options struct {
	Data  map[string]any
	Rules RuleSet

	// Extra can be used to store any extra information. It is passed to each `Validator`
	// via the validation `Context`.
	//
	// The keys must be comparable and should not be of type
	// string or any other built-in type to avoid collisions.
	Extra    map[any]any
	Language *lang.Language
	DB       *gorm.DB
	Logger   *slog.Logger
}

// Context is a structure unique per `Validator.Validate()` execution containing
// all the data required by a validator.
type Context struct {
	Data map[string]any

	// Extra the map of Extra from the validation Options.
	Extra map[any]any
	Value any

	// The name of the field under validation
	Name string

	errors []error

	// Invalid is true if at least one validator prior to the current one didn't pass
	// on the field under validation. This field is readonly.
	Invalid bool
}

// AddError adds an error to the validation context. This is NOT supposed
// to be used when the field under validation doesn't match the rule, but rather
// when there has been an operation error (such as a database error).
func (c *Context) AddError(err ...error) {
	for _, e := range err {
		c.errors = append(c.errors, errors.NewSkip(e, 3)) // Skipped: runtime.Callers, NewSkip, this func
	}
}

// Errors returns this validation context's errors.
// The errors returned are NOT validation errors but operation errors (such as database error).
func (c *Context) Errors() []error {
	return c.errors
}

type validator struct {
	validationErrors Errors
	options          *Options
	errors           []error
}

// Validate the given data using the given `Options`.
// If all validation rules pass and no error occurred, the first returned value will be `nil`.
//
// The second returned value is a slice of error that occurred during validation. These
// errors are not validation errors but error raised when a validator could not be executed correctly.
// For example if a validator using the database generated a DB error. They are also logged
// at the error level if `Options.Logger` is set.
//
// Fields are validated in the order of the `RuleSet`. Fields absent from the data (or `nil`)
// are skipped unless they have the `Required` rule. Validators of a field are executed
// in the order of their `List`, even if a previous one didn't pass.
//
// The `Options.Data` may be modified thanks to type rules.
func Validate(options *Options) (Errors, []error) {
	v := &validator{
		options:          options,
		errors:           []error{},
		validationErrors: Errors{},
	}
	if options.Extra == nil {
		options.Extra = map[any]any{}
	}
	if options.Language == nil {
		options.Language = lang.New().GetDefault()
	}
	if options.Data == nil {
		options.Data = map[string]any{}
	}

	for _, field := range options.Rules {
		v.validateField(field)
	}

	if len(v.errors) != 0 {
		if options.Logger != nil {
			for _, err := range v.errors {
				options.Logger.Error(err)
			}
		}
		return nil, v.errors
	}
	if len(v.validationErrors) != 0 {
		return v.validationErrors, nil
	}
	return nil, nil
}

func (v *validator) validateField(field *FieldRules) {
	value, found := v.options.Data[field.Path]
	if value == nil && !field.IsRequired() {
		return
	}

	valid := true
	for _, validator := range field.Rules {
		ctx := &Context{
			Data:    v.options.Data,
			Extra:   v.options.Extra,
			Value:   value,
			Name:    field.Path,
			Invalid: !valid,
		}
		validator.init(v.options)
		ok := validator.Validate(ctx)
		if len(ctx.errors) > 0 {
			valid = false
			v.errors = append(v.errors, ctx.errors...)
			continue
		}
		if !ok {
			valid = false
			v.validationErrors.Add(field.Path, v.getMessage(ctx, validator))
			if _, isRequired := validator.(*RequiredValidator); isRequired {
				// Nothing else to check on a missing field
				break
			}
			continue
		}

		value = ctx.Value
	}

	// Value may be modified (converting rule), replace it in the data
	if found {
		v.options.Data[field.Path] = value
	}
}

func (v *validator) processPlaceholders(ctx *Context, validator Validator) []string {
	return append([]string{":field", translateFieldName(v.options.Language, ctx.Name)}, validator.MessagePlaceholders(ctx)...)
}

func (v *validator) getMessage(ctx *Context, validator Validator) string {
	return v.options.Language.Get("validation.rules."+validator.Name(), v.processPlaceholders(ctx, validator)...)
}

// GetFieldName returns the localized name of the given field.
func GetFieldName(lang *lang.Language, field string) string {
	return translateFieldName(lang, field)
}

func translateFieldName(lang *lang.Language, fieldName string) string {
	entry := "validation.fields." + fieldName
	name := lang.Get(entry)
	if name == entry {
		return fieldName
	}
	return name
}
