package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the translations of every supported language. English is the reference
// language: any other language must define exactly the same keys.
type Bundle struct {
	mu           sync.RWMutex
	baseLang     language.Tag
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle creates a bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle creates a bundle without translations
func NewEmptyBundle() *Bundle {
	return &Bundle{
		baseLang:     language.English,
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir of fsys
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	// the reference language is loaded first so the others can be checked against it
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.TrimSuffix(entries[i].Name(), ".json") == b.baseLang.String() &&
			strings.TrimSuffix(entries[j].Name(), ".json") != b.baseLang.String()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := parseLanguage(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if err := b.loadFile(fsys, lang, path.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	if _, exists := b.translations[b.baseLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.baseLang)
	}

	return b, nil
}

// parseLanguage accepts names of the form language[_Script][_REGION]. Anything language.Parse
// would read as a variant or extension is rejected.
func parseLanguage(name string) (language.Tag, error) {
	lang, err := language.Parse(name)
	if err != nil {
		return language.Und, err
	}
	base, conf := lang.Base()
	if conf == language.No {
		return language.Und, fmt.Errorf("unknown language %q", name)
	}
	script, _ := lang.Script()
	region, _ := lang.Region()
	composed, err := language.Compose(base, script, region)
	if err != nil {
		return language.Und, err
	}
	if !strings.EqualFold(composed.String(), strings.ReplaceAll(name, "_", "-")) {
		return language.Und, fmt.Errorf("unsupported language tag %q", name)
	}

	return lang, nil
}

// T returns the translation for key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for key in lang, falling back to the reference language and finally to the key itself
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, l := range []language.Tag{lang, b.baseLang} {
		if _, ok := b.translations[l][key]; !ok {
			continue
		}
		if p, ok := b.printers[l]; ok {
			return render(p, key, args)
		}
	}

	return render(nil, key, args)
}

// render formats the message for key with args; without a printer the key itself is the pattern
func render(p *message.Printer, key string, args []interface{}) string {
	switch {
	case p != nil:
		return p.Sprintf(key, args...)
	case len(args) > 0:
		return fmt.Sprintf(key, args...)
	}
	return key
}

// Message returns the raw, unformatted message for key in the default language
func (b *Bundle) Message(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg, true
	}
	msg, ok := b.translations[b.baseLang][key]
	return msg, ok
}

// AddLanguage adds a language to the bundle or merges translations into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if existing == nil && lang != b.baseLang {
		if errs := b.validate(lang, merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang][key]
	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// SetDefaultLanguage selects the language used by T and by translatable errors
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.translations[lang]; !exists {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang
	return nil
}

// GetDefaultLanguage returns the language used by T
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validate(lang language.Tag, translations map[string]string) []error {
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}

	base, exists := b.translations[b.baseLang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, b.baseLang)}
	}

	var errs []error
	for key := range base {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, ok := base[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return errs
}
