package catalog

import "strings"

func snapshotKey(v ProductVariant) string {
	switch {
	case v.URLKey != "":
		return v.URLKey
	case v.SKU != "":
		return v.SKU
	case v.ColorLabel != "":
		return "color-" + v.ColorLabel
	}
	return v.Name
}

// MergeVariants returns primary followed by the entries of fallback whose key
// (url key, sku, color label, then name) is not yet present.
func MergeVariants(primary, fallback []ProductVariant) []ProductVariant {
	seen := make(map[string]struct{}, len(primary)+len(fallback))
	out := make([]ProductVariant, 0, len(primary)+len(fallback))
	for _, list := range [][]ProductVariant{primary, fallback} {
		for _, v := range list {
			k := snapshotKey(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// MergeSnapshot folds a previously seen listing snapshot into a fresh detail.
// Snapshot variants are unioned in only when the snapshot has strictly more of
// them. Live variant choices win unless empty. live is not modified.
func MergeSnapshot(live *ProductDetail, snap *ProductDetail) *ProductDetail {
	if live == nil {
		return nil
	}
	out := *live
	if snap == nil {
		return &out
	}
	if len(snap.Variants) > len(live.Variants) {
		out.Variants = MergeVariants(live.Variants, snap.Variants)
	}
	if len(live.VariantChoices) == 0 {
		switch {
		case len(snap.VariantChoices) > 0:
			out.VariantChoices = snap.VariantChoices
		case len(snap.Variants) > 0:
			out.VariantChoices = snap.Variants
		}
	}
	return &out
}

// SelectInitialVariant picks the variant a product page opens with: an exact
// url key or sku match of slug, then a variant whose url key or sku is part of
// slug, then the variant sharing the product's url key, then the first one.
func SelectInitialVariant(d *ProductDetail, slug string) *ProductVariant {
	if d == nil {
		return nil
	}
	source := d.VariantChoices
	if len(source) == 0 {
		source = d.Variants
	}
	if len(source) == 0 {
		return nil
	}
	pick := func(match func(ProductVariant) bool) *ProductVariant {
		for i := range source {
			if match(source[i]) {
				v := source[i]
				return &v
			}
		}
		return nil
	}

	if slug != "" {
		lower := strings.ToLower(slug)
		if v := pick(func(v ProductVariant) bool {
			return (v.URLKey != "" && strings.ToLower(v.URLKey) == lower) ||
				(v.SKU != "" && strings.ToLower(v.SKU) == lower)
		}); v != nil {
			return v
		}
		if v := pick(func(v ProductVariant) bool {
			return (v.URLKey != "" && strings.Contains(lower, strings.ToLower(v.URLKey))) ||
				(v.SKU != "" && strings.Contains(lower, strings.ToLower(v.SKU)))
		}); v != nil {
			return v
		}
	}
	if v := pick(func(v ProductVariant) bool {
		return v.URLKey != "" && v.URLKey == d.URLKey
	}); v != nil {
		return v
	}
	v := source[0]
	return &v
}
