package lang

import "strings"

const (
	rulesPrefix  = "validation.rules."
	fieldsPrefix = "validation.fields."
)

type validationLines struct {
	// Default messages for rules
	rules map[string]string

	// Field names translations
	fields map[string]string
}

// Language represents a full Language.
type Language struct {
	lines      map[string]string
	validation validationLines
	name       string
}

// Name returns the name of the language. For example "en-US".
func (l *Language) Name() string {
	return l.name
}

func (l *Language) clone() *Language {
	cpy := &Language{
		name:  l.name,
		lines: make(map[string]string, len(l.lines)),
		validation: validationLines{
			rules:  make(map[string]string, len(l.validation.rules)),
			fields: make(map[string]string, len(l.validation.fields)),
		},
	}

	mergeLang(cpy, l)

	return cpy
}

// Get a language line.
//
// For validation rules messages and field names, use a dot-separated path:
//   - "validation.rules.<rule_name>"
//   - "validation.fields.<field_name>"
//
// For normal lines, just use the name of the line, for example "mailaddr.too-at".
//
// If not found, returns the exact "line" argument.
//
// The placeholders parameter is a variadic associative slice of placeholders and their
// replacement:
//
//	lang.Get("mailaddr.control-char", ":position", "2")
func (l *Language) Get(line string, placeholders ...string) string {
	if name, ok := strings.CutPrefix(line, rulesPrefix); ok {
		return convertEmptyLine(line, l.validation.rules[name], placeholders)
	}
	if name, ok := strings.CutPrefix(line, fieldsPrefix); ok {
		return convertEmptyLine(line, l.validation.fields[name], placeholders)
	}

	return convertEmptyLine(line, l.lines[line], placeholders)
}

func convertEmptyLine(entry, line string, placeholders []string) string {
	if line == "" {
		return entry
	}
	return processPlaceholders(line, placeholders)
}

func processPlaceholders(message string, values []string) string {
	length := len(values) - 1
	result := message
	for i := 0; i < length; i += 2 {
		if strings.Contains(message, values[i]) {
			result = strings.ReplaceAll(result, values[i], values[i+1])
		}
	}
	return result
}
