package lang

import (
	"embed"
)

const embeddedDirectory = "resources"

//go:embed resources
var resources embed.FS

var enUS = mustReadEmbedded("en-US")

func mustReadEmbedded(name string) *Language {
	l, err := readLanguage(resources, name, embeddedDirectory+"/"+name)
	if err != nil {
		panic(err)
	}
	return l
}

// SetDefaultLine set the default "en-US" language line identified by the given key.
// Languages created with `New()` after this call will contain the line.
func SetDefaultLine(entry, line string) {
	enUS.lines[entry] = line
}

// SetDefaultValidationRule set the default language line of the
// validation rule identified by the given name.
func SetDefaultValidationRule(rule, line string) {
	enUS.validation.rules[rule] = line
}

// SetDefaultFieldName set the default name of the field identified
// by the given name.
func SetDefaultFieldName(field, name string) {
	enUS.validation.fields[field] = name
}
