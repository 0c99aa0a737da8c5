package storefront

import (
	"strconv"
	"strings"

	"storefront.GO/catalog"
	"storefront.GO/magento"
)

// Listing defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	DefaultSort     = "price_asc"
)

// ProductQuery are the listing parameters of the catalog page.
type ProductQuery struct {
	Page          int      `json:"page" validate:"min=1"`
	PageSize      int      `json:"pageSize" validate:"min=1,max=100"`
	Sort          string   `json:"sort" validate:"omitempty,oneof=price_asc price_desc"`
	Color         string   `json:"color,omitempty"`
	PriceFrom     *float64 `json:"priceFrom,omitempty" validate:"omitempty,gte=0"`
	PriceTo       *float64 `json:"priceTo,omitempty" validate:"omitempty,gte=0"`
	Rooms         []string `json:"rooms,omitempty"`
	Materials     []string `json:"materials,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	CategoryUIDs  []string `json:"categoryUids,omitempty"`
	SearchKeyword string   `json:"searchKeyword,omitempty"`
}

// WithDefaults fills unset paging and sorting.
func (q ProductQuery) WithDefaults() ProductQuery {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	return q
}

// Ascending reports whether results are sorted by ascending price.
func (q ProductQuery) Ascending() bool {
	return q.Sort == "price_asc"
}

// SplitList splits a comma separated query value, dropping blanks.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func bound(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	return &s
}

// BuildFilter maps q onto the upstream filter input.
func BuildFilter(q ProductQuery, attrs catalog.Attributes) magento.Filter {
	f := magento.Filter{}
	if q.Color != "" {
		f.In(attrs.Color, q.Color)
	}
	f.Range("price", bound(q.PriceFrom), bound(q.PriceTo))
	f.Match("name", q.SearchKeyword)
	f.In(attrs.Room, q.Rooms...)
	f.In(attrs.Material, q.Materials...)
	f.In(attrs.Size, q.Sizes...)
	f.In("category_uid", q.CategoryUIDs...)
	return f
}
