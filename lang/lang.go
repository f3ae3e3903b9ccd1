// Package lang provides the localized lines used to describe invalid email
// addresses and validation failures.
//
// The "en-US" language is always available. Other languages are loaded
// from directories containing JSON files, either bundled with this package
// (see `LoadEmbedded`) or from any `fs.FS`.
package lang

import (
	"encoding/json"
	"io/fs"
	"strings"

	"github.com/samber/lo"
	"goyave.dev/mailaddr/util/errors"
)

// Languages container for all loaded languages.
//
// This structure is not protected for concurrent usage. Therefore, don't load
// more languages when this instance is expected to receive reads.
type Languages struct {
	languages map[string]*Language
	Default   string
}

// New create a `Languages` with preloaded default language "en-US".
//
// The default language can be replaced by modifying the `Default` field
// in the returned struct.
func New() *Languages {
	l := &Languages{
		languages: make(map[string]*Language, 1),
		Default:   enUS.name,
	}
	l.languages[enUS.name] = enUS.clone()
	return l
}

// LoadEmbedded loads a language bundled with this package.
// Available languages are "en-US" and "fr-FR".
func (l *Languages) LoadEmbedded(language string) error {
	return l.Load(resources, language, embeddedDirectory+"/"+language)
}

// LoadAllAvailableLanguages loads every language directory found
// in the "resources/lang" directory of the given FS.
func (l *Languages) LoadAllAvailableLanguages(fsys fs.FS) error {
	return l.LoadDirectory(fsys, "resources/lang")
}

// LoadDirectory loads every language directory
// in the given directory if it exists.
func (l *Languages) LoadDirectory(fsys fs.FS, directory string) error {
	if !isDirectory(fsys, directory) {
		return nil
	}

	files, err := fs.ReadDir(fsys, directory)
	if err != nil {
		return errors.New(err)
	}

	for _, f := range files {
		if f.IsDir() {
			path := lo.Ternary(directory == ".", f.Name(), directory+"/"+f.Name())
			if err := l.load(fsys, f.Name(), path); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load a language directory.
//
// Directory structure of a language directory:
//
//	fr-FR
//	  ├─ locale.json     (contains the normal language lines, such as "mailaddr.too-at")
//	  ├─ rules.json      (contains the validation messages)
//	  └─ fields.json     (contains the field names)
//
// Each file is optional. If the language is already loaded, the new lines
// are merged into the existing ones.
func (l *Languages) Load(fsys fs.FS, language, path string) error {
	if isDirectory(fsys, path) {
		return l.load(fsys, language, path)
	}

	return errors.Errorf("failed loading language \"%s\", directory \"%s\" doesn't exist or is not readable", language, path)
}

func (l *Languages) load(fsys fs.FS, lang string, path string) error {
	langStruct, err := readLanguage(fsys, lang, path)
	if err != nil {
		return err
	}

	if existingLang, exists := l.languages[lang]; exists {
		mergeLang(existingLang, langStruct)
	} else {
		l.languages[lang] = langStruct
	}
	return nil
}

func readLanguage(fsys fs.FS, lang string, path string) (*Language, error) {
	langStruct := &Language{
		name:  lang,
		lines: map[string]string{},
		validation: validationLines{
			rules:  map[string]string{},
			fields: map[string]string{},
		},
	}
	if err := readLangFile(fsys, path+"/locale.json", &langStruct.lines); err != nil {
		return nil, err
	}
	if err := readLangFile(fsys, path+"/rules.json", &langStruct.validation.rules); err != nil {
		return nil, err
	}
	if err := readLangFile(fsys, path+"/fields.json", &langStruct.validation.fields); err != nil {
		return nil, err
	}
	return langStruct, nil
}

// GetLanguage returns a language by its name.
// If the language is not available, returns a dummy language
// that will always return the entry name.
func (l *Languages) GetLanguage(lang string) *Language {
	if lang, ok := l.languages[lang]; ok {
		return lang
	}
	return &Language{
		name:  "dummy",
		lines: make(map[string]string, 0),
		validation: validationLines{
			rules:  make(map[string]string, 0),
			fields: make(map[string]string, 0),
		},
	}
}

// GetDefault is an alias for `l.GetLanguage(l.Default)`
func (l *Languages) GetDefault() *Language {
	return l.GetLanguage(l.Default)
}

// IsAvailable returns true if the language is available.
func (l *Languages) IsAvailable(lang string) bool {
	_, exists := l.languages[lang]
	return exists
}

// GetAvailableLanguages returns a slice of all loaded languages.
func (l *Languages) GetAvailableLanguages() []string {
	return lo.Keys(l.languages)
}

// DetectLanguage detects the language to use based on the given lang string.
// The given lang string can use the HTTP "Accept-Language" header format.
//
// If "*" is provided, the default language will be used.
// If multiple languages are given, the first available language will be used,
// and if none are available, the default language will be used.
// If no variant is given (for example "en"), the first available variant
// in alphabetical order will be used.
func (l *Languages) DetectLanguage(lang string) *Language {
	for _, tag := range parseAcceptLanguage(lang) {
		if tag.Value == "*" { // Accept anything, so return default language
			break
		}
		if match, ok := l.languages[tag.Value]; ok {
			return match
		}
		if match, ok := l.findVariant(tag.Value); ok {
			return match
		}
	}

	return l.GetLanguage(l.Default)
}

func (l *Languages) findVariant(prefix string) (*Language, bool) {
	names := lo.Filter(l.GetAvailableLanguages(), func(name string, _ int) bool {
		return strings.HasPrefix(name, prefix+"-")
	})
	if len(names) == 0 {
		return nil, false
	}
	return l.languages[lo.Min(names)], true
}

// Get a language line.
//
// For validation rules messages and field names, use a dot-separated path:
//   - "validation.rules.<rule_name>"
//   - "validation.fields.<field_name>"
//
// For normal lines, just use the name of the line. Note that if you have
// a line called "validation", it won't conflict with the dot-separated paths.
//
// If not found, returns the exact "line" argument.
//
// The placeholders parameter is a variadic associative slice of placeholders and their
// replacement. In the following example, the placeholder ":char" will be replaced
// with the offending character.
//
//	lang.Get("en-US", "mailaddr.non-ascii", ":char", "€")
func (l *Languages) Get(lang string, line string, placeholders ...string) string {
	language, exists := l.languages[lang]
	if !exists {
		return line
	}

	return language.Get(line, placeholders...)
}

func isDirectory(fsys fs.FS, path string) bool {
	stat, err := fs.Stat(fsys, path)
	return err == nil && stat.IsDir()
}

func readLangFile(fsys fs.FS, path string, dest any) (err error) {
	stat, statErr := fs.Stat(fsys, path)
	if statErr != nil || stat.IsDir() {
		return nil
	}

	langFile, err := fsys.Open(path)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		closeErr := langFile.Close()
		if err == nil && closeErr != nil {
			err = errors.New(closeErr)
		}
	}()

	err = json.NewDecoder(langFile).Decode(&dest)
	if err != nil {
		err = errors.Errorf("failed to load language file %s: %w", path, err)
	}
	return
}

func mergeLang(dst *Language, src *Language) {
	mergeMap(dst.lines, src.lines)
	mergeMap(dst.validation.rules, src.validation.rules)
	mergeMap(dst.validation.fields, src.validation.fields)
}

func mergeMap(dst map[string]string, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
