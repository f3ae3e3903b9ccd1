package validation

import "github.com/samber/lo"

// Errors structure representing the validation error messages associated with each field
// of the validated data. The key is the name of the field.
type Errors map[string][]string

// Add an error message to the given field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Merge the given errors into this one. Messages of fields present in both
// are appended, without duplicates.
func (e Errors) Merge(other Errors) {
	for field, messages := range other {
		e[field] = lo.Uniq(append(e[field], messages...))
	}
}

// Fields returns the names of the fields having at least one error message.
func (e Errors) Fields() []string {
	return lo.Keys(e)
}
