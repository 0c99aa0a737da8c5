package catalog

import (
	"fmt"
	"strings"

	"storefront.GO/magento"
)

// Mapper maps upstream product nodes onto catalog models.
type Mapper struct {
	attrs Attributes
	names *NameSplitter
}

// NewMapper creates a mapper. A nil splitter uses DefaultVocabulary.
func NewMapper(attrs Attributes, names *NameSplitter) *Mapper {
	if names == nil {
		names = NewNameSplitter(DefaultVocabulary())
	}
	return &Mapper{attrs: attrs, names: names}
}

// Names returns the splitter used by m.
func (m *Mapper) Names() *NameSplitter {
	return m.names
}

// MapVariants maps the variants of a configurable product, one per color.
func (m *Mapper) MapVariants(p *magento.Product) []ProductVariant {
	return m.mapVariants(p, func(v ProductVariant) string {
		return colorKey(v, "no-color")
	})
}

// MapVariantsWithSizes maps the variants of a configurable product keeping
// every size of a color as its own entry.
func (m *Mapper) MapVariantsWithSizes(p *magento.Product) []ProductVariant {
	return m.mapVariants(p, func(v ProductVariant) string {
		switch {
		case v.SKU != "":
			return v.SKU
		case v.URLKey != "":
			return v.URLKey
		}
		return colorKey(v, "variant")
	})
}

func colorKey(v ProductVariant, fallback string) string {
	switch {
	case v.ColorValue != nil:
		return fmt.Sprintf("color-%d", *v.ColorValue)
	case v.ColorLabel != "":
		return "label-" + strings.ToLower(v.ColorLabel)
	}
	return fallback
}

func isSampleVariant(name string) bool {
	return strings.Contains(strings.ToLower(name), "sample")
}

func (m *Mapper) colorLabels(p *magento.Product) map[int]string {
	labels := map[int]string{}
	codes := m.attrs.VariantColorCodes()
	for _, opt := range p.ConfigurableOptions {
		if !hasCode(codes, opt.AttributeCode) {
			continue
		}
		for _, val := range opt.Values {
			if val != nil && val.ValueIndex != nil && val.Label != "" {
				labels[*val.ValueIndex] = val.Label
			}
		}
		break
	}
	return labels
}

func (m *Mapper) mapVariants(p *magento.Product, key func(ProductVariant) string) []ProductVariant {
	if p == nil {
		return nil
	}
	labels := m.colorLabels(p)
	codes := m.attrs.VariantColorCodes()

	parentGallery := CleanGallery(p.MediaGallery)
	parentPrimary := PickPrimaryImage(imageURL(p.SmallImage), parentGallery)
	parentHover := hoverImage(parentGallery, parentPrimary)

	out := make([]ProductVariant, 0, len(p.Variants))
	seen := map[string]struct{}{}
	for _, raw := range p.Variants {
		child := raw.Product
		if child == nil {
			child = &magento.Product{}
		}
		if isSampleVariant(child.Name) {
			continue
		}

		var colorValue *int
		for _, attr := range raw.Attributes {
			if hasCode(codes, attr.Code) {
				colorValue = attr.ValueIndex
				break
			}
		}
		colorLabel := m.names.Split(child.Name).Colors
		if colorValue != nil {
			if l, ok := labels[*colorValue]; ok {
				colorLabel = l
			}
		}

		gallery := CleanGallery(child.MediaGallery)
		img := PickPrimaryImage(imageURL(child.SmallImage), gallery)
		if img == "" {
			img = parentPrimary
		}
		hover := hoverImage(gallery, img)
		if hover == "" {
			hover = parentHover
		}
		price, original := prices(child.MinimumPrice())

		v := ProductVariant{
			Name:          child.Name,
			SKU:           child.SKU,
			URLKey:        child.URLKey,
			ColorLabel:    colorLabel,
			ColorValue:    colorValue,
			ImageURL:      img,
			HoverImageURL: hover,
			Price:         price,
			OriginalPrice: original,
		}
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
