package catalog

import "storefront.GO/magento"

// FindAggregation returns the first bucket whose attribute code is one of
// codes. Bucket order decides, codes only define what matches.
func FindAggregation(aggs []magento.Aggregation, codes []string) *magento.Aggregation {
	for i := range aggs {
		if hasCode(codes, aggs[i].AttributeCode) {
			return &aggs[i]
		}
	}
	return nil
}

// MapAggregationOptions dedupes options by value. The first label is kept,
// the count is the last non-nil one seen. Options without label or value are skipped.
func MapAggregationOptions(options []*magento.AggregationOption) []FilterOption {
	index := map[string]int{}
	out := make([]FilterOption, 0, len(options))
	for _, opt := range options {
		if opt == nil || opt.Label == "" || opt.Value == "" {
			continue
		}
		var count *int
		if opt.Count != nil {
			c := *opt.Count
			count = &c
		}
		if i, ok := index[opt.Value]; ok {
			if count != nil {
				out[i].Count = count
			}
			continue
		}
		index[opt.Value] = len(out)
		out = append(out, FilterOption{Label: opt.Label, Value: opt.Value, Count: count})
	}
	return out
}

// Aggregator builds facet option lists for a store's attribute codes.
type Aggregator struct {
	attrs Attributes
}

func NewAggregator(attrs Attributes) *Aggregator {
	return &Aggregator{attrs: attrs}
}

func (a *Aggregator) options(aggs []magento.Aggregation, codes []string) []FilterOption {
	agg := FindAggregation(aggs, codes)
	if agg == nil {
		return []FilterOption{}
	}
	return MapAggregationOptions(agg.Options)
}

// Facets maps aggregation buckets onto the color, room, material and size lists.
func (a *Aggregator) Facets(aggs []magento.Aggregation) Facets {
	return Facets{
		ColorOptions:    a.options(aggs, a.attrs.ColorCodes()),
		RoomOptions:     a.options(aggs, a.attrs.RoomCodes()),
		MaterialOptions: a.options(aggs, a.attrs.MaterialCodes()),
		SizeOptions:     a.options(aggs, a.attrs.SizeCodes()),
	}
}

// CategoryOptions flattens a category tree two levels deep. Children are
// labeled "Parent / Child"; entries without uid or name are skipped.
func CategoryOptions(categories []*magento.Category) []FilterOption {
	out := []FilterOption{}
	for _, c := range categories {
		if c == nil || c.UID == "" || c.Name == "" {
			continue
		}
		out = append(out, FilterOption{Label: c.Name, Value: c.UID})
		for _, child := range c.Children {
			if child == nil || child.UID == "" || child.Name == "" {
				continue
			}
			out = append(out, FilterOption{Label: c.Name + " / " + child.Name, Value: child.UID})
		}
	}
	return out
}
