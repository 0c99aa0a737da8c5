package catalog

import (
	"regexp"
	"strings"
)

// NameVocabulary drives the name splitter.
type NameVocabulary struct {
	// ColorWords are matched case-insensitively against trailing tokens.
	ColorWords []string
	// SizePattern must capture the size token in group 1.
	SizePattern *regexp.Regexp
}

var defaultSizePattern = regexp.MustCompile(`(?i)(\d+\s*x\s*\d+(\s*(cm|mm|m))?)`)

var defaultColorWords = []string{
	"cream", "beige", "blue", "blau", "grau", "gray", "grey", "schwarz", "weiss", "weiß",
	"white", "black", "brown", "braun", "taupe", "rosa", "rose", "pink", "grün", "green",
	"red", "rot", "sand", "gold", "gelb", "ivory", "mint", "light", "dark", "creme",
	"orange", "silber", "multicolor",
}

// DefaultVocabulary returns the storefront vocabulary (English and German colors, WxH sizes).
func DefaultVocabulary() NameVocabulary {
	words := make([]string, len(defaultColorWords))
	copy(words, defaultColorWords)
	return NameVocabulary{ColorWords: words, SizePattern: defaultSizePattern}
}

// SplitName is the result of splitting a display name.
type SplitName struct {
	BaseName string
	// Detail is "<colors> • <size>", either part alone, or "".
	Detail string
	Colors string
	Size   string
}

// NameSplitter separates trailing color and size details from a product name.
// The split is heuristic: a base name ending in a color word loses it.
type NameSplitter struct {
	colors map[string]struct{}
	size   *regexp.Regexp
}

func NewNameSplitter(v NameVocabulary) *NameSplitter {
	s := &NameSplitter{colors: make(map[string]struct{}, len(v.ColorWords)), size: v.SizePattern}
	if s.size == nil {
		s.size = defaultSizePattern
	}
	for _, w := range v.ColorWords {
		s.colors[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Split splits name. The first size match is removed, then trailing color
// words and tokens containing "/" are collected.
func (s *NameSplitter) Split(name string) SplitName {
	trimmed := strings.TrimSpace(name)
	working := trimmed
	var size string
	if loc := s.size.FindStringSubmatchIndex(working); loc != nil {
		size = working[loc[2]:loc[3]]
		working = working[:loc[0]] + working[loc[1]:]
	}

	parts := strings.Fields(working)
	end := len(parts)
	for end > 0 {
		last := strings.ToLower(parts[end-1])
		if _, ok := s.colors[last]; ok || strings.Contains(last, "/") {
			end--
			continue
		}
		break
	}

	out := SplitName{
		BaseName: strings.TrimSpace(strings.Join(parts[:end], " ")),
		Colors:   strings.Join(parts[end:], " "),
		Size:     size,
	}
	if out.BaseName == "" {
		out.BaseName = trimmed
	}
	switch {
	case out.Colors != "" && out.Size != "":
		out.Detail = out.Colors + " • " + out.Size
	case out.Colors != "":
		out.Detail = out.Colors
	default:
		out.Detail = out.Size
	}
	return out
}
