package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
)

// Bundle holds UI copy per language, flat key => text.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads <dir>/<lang>.json for every supported language. Only the fallback file is
// required.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	for _, l := range supported {
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}

	// fallback first so the matcher prefers it on ties
	b.supported = append(b.supported, fallback)
	for l := range b.dict {
		if l != fallback {
			b.supported = append(b.supported, l)
		}
	}
	sort.Strings(b.supported[1:])
	tags := make([]language.Tag, 0, len(b.supported))
	for _, l := range b.supported {
		tags = append(tags, language.Make(l))
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported lists the loaded languages, fallback first.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Resolve chooses the best loaded language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	return b.supported[idx]
}
