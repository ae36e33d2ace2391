package registrar

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/modforge/datagen"
	"github.com/vk/modforge/engine"
)

// builderBase carries what every kind builder shares: the owning
// registrar and the entry's (name, kind) identity.
type builderBase struct {
	reg  *Registrar
	name string
	kind engine.Kind
}

// id returns the entry's fully-qualified identity.
func (b *builderBase) id() engine.ID {
	return engine.MustID(b.reg.namespace, b.name)
}

// translationKey follows the "<kind>.<namespace>.<name>" convention.
func (b *builderBase) translationKey() string {
	return fmt.Sprintf("%s.%s.%s", b.kind, b.reg.namespace, b.name)
}

// defaultDisplayName derives a human-readable name: "copper_ingot"
// becomes "Copper Ingot".
func (b *builderBase) defaultDisplayName() string {
	words := strings.Split(b.name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// setLang associates the entry's lang callback, replacing any default.
func (b *builderBase) setLang(display string) {
	key := b.translationKey()
	b.reg.SetDataGenerator(b.name, datagen.Lang, func(ctx context.Context, p datagen.Provider) error {
		lang, ok := p.(*datagen.LangProvider)
		if !ok {
			return fmt.Errorf("lang callback received %T", p)
		}
		lang.Add(key, display)
		return nil
	})
}

// setDoc associates a single-document JSON callback for the entry.
func (b *builderBase) setDoc(typ datagen.ProviderType, id engine.ID, doc any) {
	b.reg.SetDataGenerator(b.name, typ, func(ctx context.Context, p datagen.Provider) error {
		jp, ok := p.(*datagen.JSONProvider)
		if !ok {
			return fmt.Errorf("%s callback received %T", typ, p)
		}
		jp.Put(id, doc)
		return nil
	})
}
