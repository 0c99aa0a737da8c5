package catalog

import (
	"fmt"
	"strings"
)

// BestsellerDiscount is the discount percentage from which a sale also earns
// the bestseller badge.
const BestsellerDiscount = 20.0

// BuildBadges returns "Sale" when price is below original, followed by
// "Bestseller" for discounts of at least BestsellerDiscount percent.
func BuildBadges(price, original *Money) []string {
	badges := []string{}
	if price == nil || original == nil || price.Value >= original.Value {
		return badges
	}
	badges = append(badges, BadgeSale)
	if (original.Value-price.Value)/original.Value*100 >= BestsellerDiscount {
		badges = append(badges, BadgeBestseller)
	}
	return badges
}

// VariantKey is the identity of a variant: sku, url key, color value, color
// label, then name.
func VariantKey(v ProductVariant) string {
	switch {
	case v.SKU != "":
		return v.SKU
	case v.URLKey != "":
		return v.URLKey
	case v.ColorValue != nil:
		return fmt.Sprintf("color-%d", *v.ColorValue)
	case v.ColorLabel != "":
		return "label-" + strings.ToLower(v.ColorLabel)
	}
	return v.Name
}

// DedupeVariants keeps the first variant of every VariantKey.
func DedupeVariants(variants []ProductVariant) []ProductVariant {
	seen := make(map[string]struct{}, len(variants))
	out := make([]ProductVariant, 0, len(variants))
	for _, v := range variants {
		k := VariantKey(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

func fallbackVariant(s ProductSummary) ProductVariant {
	return ProductVariant{
		Name:          s.Name,
		SKU:           s.SKU,
		URLKey:        s.URLKey,
		ImageURL:      s.ImageURL,
		HoverImageURL: s.HoverImageURL,
		Price:         s.Price,
		OriginalPrice: s.OriginalPrice,
	}
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// GroupProductsByName merges summaries sharing a case-insensitive trimmed name,
// in first-seen order. A summary without variants contributes itself as a
// variant. Scalars missing on the first summary are filled from later ones.
func GroupProductsByName(items []ProductSummary) []ProductSummary {
	index := map[string]int{}
	out := make([]ProductSummary, 0, len(items))

	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Name))
		if key == "" {
			continue
		}
		incoming := item.Variants
		if len(incoming) == 0 {
			incoming = []ProductVariant{fallbackVariant(item)}
		}
		incoming = DedupeVariants(incoming)
		badges := item.Badges
		if badges == nil {
			badges = []string{}
		}

		i, ok := index[key]
		if !ok {
			g := item
			g.Variants = incoming
			g.Badges = unionStrings(badges, nil)
			index[key] = len(out)
			out = append(out, g)
			continue
		}

		g := &out[i]
		if g.ImageURL == "" {
			g.ImageURL = item.ImageURL
		}
		if g.HoverImageURL == "" {
			g.HoverImageURL = item.HoverImageURL
		}
		if g.Price == nil {
			g.Price = item.Price
		}
		if g.OriginalPrice == nil {
			g.OriginalPrice = item.OriginalPrice
		}
		merged := make([]ProductVariant, 0, len(g.Variants)+len(incoming))
		merged = append(merged, g.Variants...)
		g.Variants = DedupeVariants(append(merged, incoming...))
		g.Badges = unionStrings(g.Badges, badges)
	}
	return out
}

// HasBadge reports whether s carries badge, ignoring case.
func (s ProductSummary) HasBadge(badge string) bool {
	for _, b := range s.Badges {
		if strings.EqualFold(b, badge) {
			return true
		}
	}
	return false
}
