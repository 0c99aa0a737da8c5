// Package models holds the graphql-go view types of the storefront schema.
// Field names match schema fields case-insensitively (UseFieldResolvers).
package models

type Money struct {
	Value    float64
	Currency string
}

type FilterOption struct {
	Label string
	Value string
	Count *int32
}

type ProductVariant struct {
	Name          string
	SKU           string
	URLKey        string
	ColorLabel    string
	ColorValue    *int32
	ImageURL      string
	HoverImageURL string
	Price         *Money
	OriginalPrice *Money
}

type ProductSummary struct {
	Name             string
	SKU              string
	URLKey           string
	ImageURL         string
	HoverImageURL    string
	Price            *Money
	OriginalPrice    *Money
	Badges           []string
	ShortDescription string
	InStock          *bool
	Variants         []*ProductVariant
}

// ProductDetail repeats the summary fields. graphql-go does not resolve
// through embedded structs.
type ProductDetail struct {
	Name             string
	SKU              string
	URLKey           string
	ImageURL         string
	HoverImageURL    string
	Price            *Money
	OriginalPrice    *Money
	Badges           []string
	ShortDescription string
	InStock          *bool
	Variants         []*ProductVariant
	DescriptionHTML  string
	Gallery          []string
	RelatedProducts  []*ProductSummary
	VariantChoices   []*ProductVariant
	SelectedVariant  *ProductVariant
}

type Facets struct {
	ColorOptions    []*FilterOption
	RoomOptions     []*FilterOption
	MaterialOptions []*FilterOption
	SizeOptions     []*FilterOption
}

type ProductList struct {
	Items           []*ProductSummary
	SaleItems       []*ProductSummary
	TotalCount      int32
	ColorOptions    []*FilterOption
	RoomOptions     []*FilterOption
	MaterialOptions []*FilterOption
	SizeOptions     []*FilterOption
}
