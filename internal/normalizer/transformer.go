package normalizer

import (
	"regexp"
	"strings"

	"holidaygen/internal/provider"
	"holidaygen/pkg/utils"
)

// Transformer cleans raw provider labels into holiday names.
type Transformer struct {
	annotationPattern *regexp.Regexp
	strings           *utils.StringHelper
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		annotationPattern: regexp.MustCompile(`\[[^\]]*\]`),
		strings:           utils.NewStringHelper(),
	}
}

// StripAnnotations removes every "[...]" substring from label. Whitespace
// left behind is cleaned up by Split.
func (t *Transformer) StripAnnotations(label string) string {
	return t.annotationPattern.ReplaceAllString(label, "")
}

// ApplyCorrections rewrites known-bad names inside label. Corrections run
// before splitting so names containing the separator survive intact.
func (t *Transformer) ApplyCorrections(label string, corrections []Correction) string {
	for _, c := range corrections {
		label = strings.ReplaceAll(label, c.From, c.To)
	}

	return label
}

// Split breaks a combined label into its individual names.
func (t *Transformer) Split(label string) []string {
	return t.strings.SplitTrim(label, provider.LabelSeparator)
}

// StripObserved removes the observed marker from name and reports whether
// it was present.
func (t *Transformer) StripObserved(name string) (string, bool) {
	if !strings.Contains(name, provider.ObservedMarker) {
		return name, false
	}

	return t.strings.NormalizeWhitespace(strings.ReplaceAll(name, provider.ObservedMarker, "")), true
}
