// Package catalog turns the raw upstream product graph into the flat models
// served to the storefront: prices, names, galleries, variants, badges and
// facet options.
package catalog

// Badge labels.
const (
	BadgeSale       = "Sale"
	BadgeBestseller = "Bestseller"
)

// Money is a sanitized, strictly positive price.
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// FilterOption is one selectable facet value.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count *int   `json:"count,omitempty"`
}

// ProductVariant is one purchasable variant of a product.
type ProductVariant struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	URLKey        string `json:"urlKey"`
	ColorLabel    string `json:"colorLabel"`
	ColorValue    *int   `json:"colorValue"`
	ImageURL      string `json:"imageUrl"`
	HoverImageURL string `json:"hoverImageUrl"`
	Price         *Money `json:"price"`
	OriginalPrice *Money `json:"originalPrice"`
}

// ProductSummary is a listing entry.
type ProductSummary struct {
	Name             string           `json:"name"`
	SKU              string           `json:"sku"`
	URLKey           string           `json:"urlKey"`
	ImageURL         string           `json:"imageUrl"`
	HoverImageURL    string           `json:"hoverImageUrl,omitempty"`
	Price            *Money           `json:"price"`
	OriginalPrice    *Money           `json:"originalPrice,omitempty"`
	Badges           []string         `json:"badges"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	InStock          *bool            `json:"inStock,omitempty"`
	Variants         []ProductVariant `json:"variants,omitempty"`
}

// ProductDetail is the payload of a product page. VariantChoices is the set
// of selectable variants, Variants may be coarser.
type ProductDetail struct {
	ProductSummary
	DescriptionHTML string           `json:"descriptionHtml,omitempty"`
	Gallery         []string         `json:"gallery"`
	RelatedProducts []ProductSummary `json:"relatedProducts,omitempty"`
	VariantChoices  []ProductVariant `json:"variantChoices,omitempty"`
	SelectedVariant *ProductVariant  `json:"selectedVariant,omitempty"`
}

// Facets are the four filter option lists of a catalog view.
type Facets struct {
	ColorOptions    []FilterOption `json:"colorOptions"`
	RoomOptions     []FilterOption `json:"roomOptions"`
	MaterialOptions []FilterOption `json:"materialOptions"`
	SizeOptions     []FilterOption `json:"sizeOptions"`
}
