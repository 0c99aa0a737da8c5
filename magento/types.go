package magento

// TypeConfigurable is the __typename of products that carry variants.
const TypeConfigurable = "ConfigurableProduct"

// StockInStock is the stock_status of a sellable product.
const StockInStock = "IN_STOCK"

type Money struct {
	Value    *float64 `json:"value"`
	Currency string   `json:"currency"`
}

type ProductPrice struct {
	FinalPrice   *Money `json:"final_price"`
	RegularPrice *Money `json:"regular_price"`
}

type PriceRange struct {
	MinimumPrice *ProductPrice `json:"minimum_price"`
}

type Image struct {
	URL string `json:"url"`
}

type HTML struct {
	HTML string `json:"html"`
}

type ConfigurableOptionValue struct {
	ValueIndex *int   `json:"value_index"`
	Label      string `json:"label"`
}

type ConfigurableOption struct {
	AttributeCode string                     `json:"attribute_code"`
	Label         string                     `json:"label"`
	Values        []*ConfigurableOptionValue `json:"values"`
}

type VariantAttribute struct {
	Code       string `json:"code"`
	ValueIndex *int   `json:"value_index"`
}

type Variant struct {
	Product    *Product           `json:"product"`
	Attributes []VariantAttribute `json:"attributes"`
}

// Product is one node of the upstream product graph. Simple and configurable
// products share the type; configurable-only fields stay empty otherwise.
type Product struct {
	Typename            string               `json:"__typename"`
	Name                string               `json:"name"`
	SKU                 string               `json:"sku"`
	URLKey              string               `json:"url_key"`
	URLSuffix           string               `json:"url_suffix"`
	SmallImage          *Image               `json:"small_image"`
	MediaGallery        []*Image             `json:"media_gallery"`
	PriceRange          *PriceRange          `json:"price_range"`
	StockStatus         string               `json:"stock_status"`
	ShortDescription    *HTML                `json:"short_description"`
	Description         *HTML                `json:"description"`
	ConfigurableOptions []ConfigurableOption `json:"configurable_options"`
	Variants            []Variant            `json:"variants"`
	RelatedProducts     []*Product           `json:"related_products"`
}

// IsConfigurable reports whether p is a configurable product.
func (p *Product) IsConfigurable() bool {
	return p != nil && p.Typename == TypeConfigurable
}

// IsConfigurableWithVariants reports whether p is configurable and has at least one variant.
func (p *Product) IsConfigurableWithVariants() bool {
	return p.IsConfigurable() && len(p.Variants) > 0
}

// MinimumPrice returns the minimum price block or nil.
func (p *Product) MinimumPrice() *ProductPrice {
	if p == nil || p.PriceRange == nil {
		return nil
	}
	return p.PriceRange.MinimumPrice
}

type AggregationOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count *int   `json:"count"`
}

type Aggregation struct {
	AttributeCode string               `json:"attribute_code"`
	Label         string               `json:"label"`
	Options       []*AggregationOption `json:"options"`
}

type ProductsResult struct {
	Items        []*Product    `json:"items"`
	TotalCount   int           `json:"total_count"`
	Aggregations []Aggregation `json:"aggregations"`
}

type URLResolution struct {
	CanonicalURL string `json:"canonical_url"`
	RelativeURL  string `json:"relative_url"`
	Type         string `json:"type"`
}

type Category struct {
	UID      string      `json:"uid"`
	Name     string      `json:"name"`
	Children []*Category `json:"children"`
}
