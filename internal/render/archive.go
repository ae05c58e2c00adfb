package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ZipEntry is one file destined for the archive.
type ZipEntry struct {
	FileName string
	Data     []byte
}

// CreateZip bundles image buffers into a single archive. Entry names are
// sanitized and deduplicated so two entities with the same display name
// cannot clobber each other.
func CreateZip(entries []ZipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	seen := map[string]int{}
	for _, entry := range entries {
		name := uniqueEntryName(entry.FileName, seen)

		file, err := zipWriter.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %q: %w", name, err)
		}
		if _, err := file.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %q: %w", name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}

	return buf.Bytes(), nil
}

func uniqueEntryName(name string, seen map[string]int) string {
	stem := strings.TrimSuffix(name, ".png")
	stem = SanitizeFilename(stem)
	if stem == "" {
		stem = "image"
	}

	seen[stem]++
	if n := seen[stem]; n > 1 {
		return fmt.Sprintf("%s_%d.png", stem, n)
	}
	return stem + ".png"
}

// ZipFilename derives a slug-safe archive name from the template name with a
// timestamp component, so repeated downloads never collide in client caches.
func ZipFilename(templateName string, now time.Time) string {
	slug := SanitizeFilename(templateName)
	if slug == "" {
		slug = "images"
	}
	return fmt.Sprintf("%s_images_%d.zip", slug, now.Unix())
}

// ImageFilename derives a filesystem-safe name for one generated image from
// the entity display name and the template name.
func ImageFilename(entityName string, entityID string, templateName string) string {
	stem := SanitizeFilename(entityName)
	if stem == "" {
		stem = SanitizeFilename(entityID)
	}

	if slug := SanitizeFilename(templateName); slug != "" {
		stem = stem + "_" + slug
	}

	return stem + ".png"
}

// SanitizeFilename lowercases and reduces a string to [a-z0-9-_], collapsing
// runs of everything else into single dashes.
func SanitizeFilename(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteRune('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
