// Package localization resolves holiday localization keys and maintains the
// bundle's Localizable.strings files.
package localization

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// KeyPrefix starts every derived localization key.
const KeyPrefix = "HOLIDAY_"

// ErrNoKey is returned when no key could be resolved for a name.
var ErrNoKey = errors.New("no localization key")

// FallbackFunc supplies a key for a name missing from the configured table.
type FallbackFunc func(name string) (string, error)

// Resolver maps holiday names to localization keys. Resolved keys are cached
// so later countries in the same run reuse them.
type Resolver struct {
	cache    map[string]string
	fallback FallbackFunc
}

// NewResolver creates a resolver seeded with known keys. A nil fallback uses
// DeriveKey.
func NewResolver(known map[string]string, fallback FallbackFunc) *Resolver {
	cache := make(map[string]string, len(known))
	for name, key := range known {
		cache[name] = key
	}

	if fallback == nil {
		fallback = DeriveKey
	}

	return &Resolver{cache: cache, fallback: fallback}
}

// Key returns the localization key for name.
func (r *Resolver) Key(name string) (string, error) {
	if key, ok := r.cache[name]; ok {
		return key, nil
	}

	key, err := r.fallback(name)
	if err != nil {
		return "", fmt.Errorf("resolve key for %q: %w", name, err)
	}

	if key == "" {
		return "", fmt.Errorf("%w for %q", ErrNoKey, name)
	}

	r.cache[name] = key

	return key, nil
}

// Len returns the number of cached keys.
func (r *Resolver) Len() int {
	return len(r.cache)
}

// DeriveKey builds an upper snake case key from name with diacritics folded,
// e.g. "Fête nationale" becomes "HOLIDAY_FETE_NATIONALE".
func DeriveKey(name string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	pendingSep := false

	for _, r := range folded {
		switch {
		case r == '\'' || r == '’' || r == '.':
			// apostrophes and abbreviation dots join words
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}

			pendingSep = false

			sb.WriteRune(unicode.ToUpper(r))
		default:
			pendingSep = true
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w for %q", ErrNoKey, name)
	}

	return KeyPrefix + sb.String(), nil
}
