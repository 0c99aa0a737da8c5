package catalog

import (
	"strings"

	"storefront.GO/config"
)

// Attributes are the store-specific attribute codes of the four facets.
// Each facet also accepts a fixed list of generic codes.
type Attributes struct {
	Color    string
	Room     string
	Material string
	Size     string
}

// AttributesFromConfig takes the attribute codes configured for the store.
func AttributesFromConfig(cfg config.MagentoConfig) Attributes {
	return Attributes{
		Color:    cfg.ColorAttribute,
		Room:     cfg.RoomAttribute,
		Material: cfg.MaterialAttribute,
		Size:     cfg.SizeAttribute,
	}
}

func withFallbacks(custom string, generic ...string) []string {
	out := make([]string, 0, len(generic)+1)
	if custom = strings.TrimSpace(custom); custom != "" {
		out = append(out, custom)
	}
	return append(out, generic...)
}

func (a Attributes) ColorCodes() []string {
	return withFallbacks(a.Color, "color", "farbe")
}

func (a Attributes) RoomCodes() []string {
	return withFallbacks(a.Room, "room", "room_filter", "living_area")
}

func (a Attributes) MaterialCodes() []string {
	return withFallbacks(a.Material, "material", "material_filter", "materialgruppe")
}

func (a Attributes) SizeCodes() []string {
	return withFallbacks(a.Size, "size", "size_filter", "groesse", "shape")
}

// VariantColorCodes are the codes that carry a variant's color, both in
// configurable_options and in variant attributes.
func (a Attributes) VariantColorCodes() []string {
	out := []string{"color"}
	if c := strings.TrimSpace(a.Color); c != "" && !strings.EqualFold(c, "color") {
		out = append(out, c)
	}
	return out
}

func hasCode(codes []string, code string) bool {
	if code == "" {
		return false
	}
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}
