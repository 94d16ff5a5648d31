// internal/catalog/slug.go
//
// Category slug helper.
//
// • MakeSlug(name) converts arbitrary text into a URL-safe slug restricted
//   to ASCII a-z, 0-9 and “-”.  Products reference categories by this slug
//   (convention only, no foreign key), so the rules must be stable.
//
// Rules
// -----
// 1. Lower-case everything.
// 2. Convert any run of non-[a-z0-9] characters to one “-”.  That strips
//    spaces, punctuation, emoji, and non-ASCII.
// 3. Collapse consecutive “-” to a single “-”.
// 4. Trim leading / trailing “-”.
// 5. If the result is empty, return "category".
//
// Notes
// -----
// • No Unicode transliteration; the panel is English-only for now.
// • Slugs are max 100 bytes; callers may truncate earlier if they prefer.

package catalog

import (
	"strings"
)

// MakeSlug converts a category name into lower-kebab ASCII.
func MakeSlug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastWasDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			// any non-ASCII or punctuation becomes a single dash
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "category"
	}
	if len(slug) > 100 {
		slug = slug[:100]
		// trim trailing dash if the cut landed on one
		slug = strings.TrimRightFunc(slug, func(r rune) bool { return r == '-' })
	}
	return slug
}
