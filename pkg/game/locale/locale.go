// Package locale holds the game's message catalog. Text is looked up by key
// from embedded gettext .po files so that no player-facing sentence is
// hard-coded in game logic.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalog used when none is configured
const DefaultLanguage = "en"

//go:embed *.po
var catalogFS embed.FS

var current atomic.Pointer[gotext.Po]

func init() {
	po, err := load(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	current.Store(po)
}

// load parses the embedded catalog for lang
func load(lang string) (*gotext.Po, error) {
	buf, err := catalogFS.ReadFile(lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no message catalog for language %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(buf)
	return po, nil
}

// Configure switches the active catalog to lang
func Configure(lang string) error {
	po, err := load(lang)
	if err != nil {
		return err
	}
	current.Store(po)
	return nil
}

// noArgs keeps the catalog lookup from formatting; Get does that itself
var noArgs []any

// Get returns the message for key formatted with vars.
// Unknown keys come back unchanged, which makes missing entries easy to spot.
func Get(key string, vars ...any) string {
	msg := current.Load().Get(key, noArgs...)
	if len(vars) == 0 || msg == key {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}

// Has returns true if the active catalog defines key
func Has(key string) bool {
	return Get(key) != key
}

// Languages returns the languages with an embedded catalog
func Languages() []string {
	entries, err := catalogFS.ReadDir(".")
	if err != nil {
		return nil
	}

	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}
