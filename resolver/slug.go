package resolver

import (
	"regexp"
	"strings"
)

var (
	htmlSuffix = regexp.MustCompile(`(?i)\.html?$`)
	numeric    = regexp.MustCompile(`^\d+$`)
	hintSplit  = regexp.MustCompile(`[-\s]+`)
)

// ExtractURLKey returns the last path segment of url without query string
// and .htm/.html suffix.
func ExtractURLKey(url string) string {
	clean := strings.SplitN(url, "?", 2)[0]
	clean = strings.TrimLeft(clean, "/")
	parts := strings.Split(clean, "/")
	return htmlSuffix.ReplaceAllString(parts[len(parts)-1], "")
}

// StripColorFromSlug drops the segment before a trailing numeric pair, so
// "teppich-rund-blau-120-170" becomes "teppich-rund-120-170". Slugs with fewer
// than four segments or without two trailing numbers give "".
// Sizes not encoded as two separate numbers are not recognized.
func StripColorFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	n := len(parts)
	if n < 4 {
		return ""
	}
	if !numeric.MatchString(parts[n-1]) || !numeric.MatchString(parts[n-2]) {
		return ""
	}
	kept := append(append([]string{}, parts[:n-3]...), parts[n-2], parts[n-1])
	return strings.Join(kept, "-")
}

// BuildSearchHint keeps the first three non-numeric words of input.
func BuildSearchHint(input string) string {
	if input == "" {
		return ""
	}
	clean := htmlSuffix.ReplaceAllString(input, "")
	words := make([]string, 0, 3)
	for _, p := range hintSplit.Split(clean, -1) {
		if p == "" || numeric.MatchString(p) {
			continue
		}
		words = append(words, p)
		if len(words) == 3 {
			break
		}
	}
	return strings.Join(words, " ")
}
