// Package metadata computes content fingerprints for generated holiday files.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"holidaygen/internal/models"
)

// Metadata describes a written holiday file.
type Metadata struct {
	CreatedAt time.Time
	Path      string
	Hash      string
	Holidays  int
	Dates     int
}

// Describe collects the metadata of file written to path.
func Describe(path string, file *models.CountryHolidayFile) *Metadata {
	meta := &Metadata{
		CreatedAt: file.CreatedAt,
		Path:      path,
		Hash:      Fingerprint(file),
		Holidays:  len(file.Holidays),
	}

	for _, h := range file.Holidays {
		meta.Dates += len(h.Dates)
	}

	return meta
}

// Fingerprint returns the SHA-256 hash of the file's entries. The creation
// timestamp is excluded, so identical inputs give identical fingerprints.
func Fingerprint(file *models.CountryHolidayFile) string {
	var sb strings.Builder

	for _, h := range file.Holidays {
		fmt.Fprintf(&sb, "%s\x1f%s\x1f%t", h.Name, h.LocalizedNameKey, h.Selected)

		for _, d := range h.Dates {
			sb.WriteString("\x1f")
			sb.WriteString(d.UTC().Format(time.RFC3339))
		}

		sb.WriteString("\n")
	}

	hash := sha256.Sum256([]byte(sb.String()))

	return hex.EncodeToString(hash[:])
}

// Verify reports whether file hashes to want.
func Verify(file *models.CountryHolidayFile, want string) bool {
	return Fingerprint(file) == want
}
