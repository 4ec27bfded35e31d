// Package catalog resolves validation failure kinds to localized,
// human-facing messages. Locales ship embedded as YAML files; unknown
// locales and missing keys fall back to English.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/berroteran/promptstash/pkg/core"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is the fallback language.
const DefaultLocale = "en"

// Catalog implements core.MessageCatalog over an embedded locale.
type Catalog struct {
	messages map[core.Failure]string
	fallback map[core.Failure]string
}

// Load builds a catalog for the given locale ("en", "es"). The fallback
// locale is always available; an unknown locale yields the fallback and
// no error, so a misconfigured locale never breaks error reporting.
func Load(locale string) (*Catalog, error) {
	fallback, err := readLocale(DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback locale: %w", err)
	}

	c := &Catalog{messages: fallback, fallback: fallback}
	if locale == "" || locale == DefaultLocale {
		return c, nil
	}

	messages, err := readLocale(locale)
	if err != nil {
		return c, nil
	}
	c.messages = messages
	return c, nil
}

// Message implements core.MessageCatalog.
func (c *Catalog) Message(f core.Failure) string {
	if msg, ok := c.messages[f]; ok {
		return msg
	}
	if msg, ok := c.fallback[f]; ok {
		return msg
	}
	return string(f)
}

// Locales lists the embedded locale names.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		names = append(names, name[:len(name)-len(".yaml")])
	}
	return names
}

func readLocale(locale string) (map[core.Failure]string, error) {
	data, err := localeFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid locale file %s: %w", locale, err)
	}

	messages := make(map[core.Failure]string, len(raw))
	for key, msg := range raw {
		messages[core.Failure(key)] = msg
	}
	return messages, nil
}

var _ core.MessageCatalog = (*Catalog)(nil)
