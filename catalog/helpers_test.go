package catalog

import "storefront.GO/magento"

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func eur(v float64) *magento.Money {
	return &magento.Money{Value: fp(v), Currency: "EUR"}
}

func priceRange(final, regular float64) *magento.PriceRange {
	return &magento.PriceRange{MinimumPrice: &magento.ProductPrice{FinalPrice: eur(final), RegularPrice: eur(regular)}}
}

func images(urls ...string) []*magento.Image {
	out := make([]*magento.Image, 0, len(urls))
	for _, u := range urls {
		out = append(out, &magento.Image{URL: u})
	}
	return out
}

func colorOption(labels map[int]string) []magento.ConfigurableOption {
	opt := magento.ConfigurableOption{AttributeCode: "color", Label: "Farbe"}
	for idx, l := range labels {
		opt.Values = append(opt.Values, &magento.ConfigurableOptionValue{ValueIndex: ip(idx), Label: l})
	}
	return []magento.ConfigurableOption{opt}
}

func variant(name, sku string, color *int, price float64) magento.Variant {
	v := magento.Variant{Product: &magento.Product{Name: name, SKU: sku, URLKey: "", PriceRange: priceRange(price, price)}}
	if color != nil {
		v.Attributes = []magento.VariantAttribute{{Code: "color", ValueIndex: color}}
	}
	return v
}

func testMapper() *Mapper {
	return NewMapper(Attributes{Color: "benuta_color_filter"}, nil)
}
