package catalog

import "storefront.GO/magento"

// MapProductToSummary maps one listing node. It returns nil when the node has
// no name, or when neither the product nor any of its variants has a price.
func (m *Mapper) MapProductToSummary(p *magento.Product) *ProductSummary {
	if p == nil || p.Name == "" {
		return nil
	}
	gallery := CleanGallery(p.MediaGallery)
	primary := PickPrimaryImage(imageURL(p.SmallImage), gallery)
	price, original := prices(p.MinimumPrice())
	inStock := p.StockStatus == magento.StockInStock

	s := &ProductSummary{
		Name:          m.names.Split(p.Name).BaseName,
		SKU:           p.SKU,
		URLKey:        p.URLKey,
		ImageURL:      primary,
		HoverImageURL: hoverImage(gallery, primary),
		Price:         price,
		OriginalPrice: original,
		Badges:        BuildBadges(price, original),
		InStock:       &inStock,
	}
	if p.ShortDescription != nil {
		s.ShortDescription = p.ShortDescription.HTML
	}
	if p.IsConfigurable() && p.Variants != nil {
		s.Variants = m.MapVariants(p)
	}

	if s.Price == nil && !hasPricedVariant(s.Variants) {
		return nil
	}
	return s
}

// MapProducts maps every node, dropping the ones that map to nil.
func (m *Mapper) MapProducts(items []*magento.Product) []ProductSummary {
	out := make([]ProductSummary, 0, len(items))
	for _, item := range items {
		if s := m.MapProductToSummary(item); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func hasPricedVariant(variants []ProductVariant) bool {
	for _, v := range variants {
		if v.Price != nil && v.Price.Value > 0 {
			return true
		}
	}
	return false
}

// MapProductToDetail builds the product page payload. Configurable products
// keep one variant choice per size.
func (m *Mapper) MapProductToDetail(p *magento.Product) *ProductDetail {
	base := m.MapProductToSummary(p)
	if base == nil {
		return nil
	}
	d := &ProductDetail{
		ProductSummary: *base,
		Gallery:        CleanGallery(p.MediaGallery),
	}
	if len(d.Gallery) == 0 {
		d.Gallery = []string{PlaceholderImage}
	}
	switch {
	case p.Description != nil && p.Description.HTML != "":
		d.DescriptionHTML = p.Description.HTML
	case p.ShortDescription != nil:
		d.DescriptionHTML = p.ShortDescription.HTML
	}
	if p.IsConfigurable() {
		d.VariantChoices = m.MapVariantsWithSizes(p)
	} else {
		d.VariantChoices = base.Variants
	}
	d.RelatedProducts = m.MapProducts(p.RelatedProducts)
	return d
}
