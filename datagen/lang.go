package datagen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LangProvider buffers translation keys and writes the locale's language
// file.
type LangProvider struct {
	namespace string
	locale    string
	entries   map[string]string
}

// NewLangProvider creates a provider for the default "en_us" locale.
func NewLangProvider(namespace string) *LangProvider {
	return &LangProvider{
		namespace: namespace,
		locale:    "en_us",
		entries:   make(map[string]string),
	}
}

// Type implements Provider.
func (p *LangProvider) Type() ProviderType {
	return Lang
}

// Add records one translation. A later Add for the same key wins.
func (p *LangProvider) Add(key, value string) {
	p.entries[key] = value
}

// Get returns a recorded translation, for post-generation inspection.
func (p *LangProvider) Get(key string) (string, bool) {
	v, ok := p.entries[key]
	return v, ok
}

// Save writes the language file under dir. Keys are emitted sorted, so
// output is reproducible across runs.
func (p *LangProvider) Save(dir string) error {
	if len(p.entries) == 0 {
		return nil
	}
	langDir := filepath.Join(dir, "assets", p.namespace, "lang")
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		return fmt.Errorf("creating lang directory: %w", err)
	}
	data, err := json.MarshalIndent(p.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding lang file: %w", err)
	}
	path := filepath.Join(langDir, p.locale+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing lang file: %w", err)
	}
	return nil
}
