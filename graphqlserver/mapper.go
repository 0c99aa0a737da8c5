package graphqlserver

import (
	"storefront.GO/catalog"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/service/storefront"
)

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func list(l *[]string) []string {
	if l == nil {
		return nil
	}
	return *l
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapMoney(m *catalog.Money) *gqlmodels.Money {
	if m == nil {
		return nil
	}
	return &gqlmodels.Money{Value: m.Value, Currency: m.Currency}
}

func mapOptions(opts []catalog.FilterOption) []*gqlmodels.FilterOption {
	out := make([]*gqlmodels.FilterOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, &gqlmodels.FilterOption{Label: o.Label, Value: o.Value, Count: int32Ptr(o.Count)})
	}
	return out
}

func mapFacets(f *catalog.Facets) *gqlmodels.Facets {
	if f == nil {
		f = &catalog.Facets{}
	}
	return &gqlmodels.Facets{
		ColorOptions:    mapOptions(f.ColorOptions),
		RoomOptions:     mapOptions(f.RoomOptions),
		MaterialOptions: mapOptions(f.MaterialOptions),
		SizeOptions:     mapOptions(f.SizeOptions),
	}
}

func mapVariant(v *catalog.ProductVariant) *gqlmodels.ProductVariant {
	if v == nil {
		return nil
	}
	return &gqlmodels.ProductVariant{
		Name:          v.Name,
		SKU:           v.SKU,
		URLKey:        v.URLKey,
		ColorLabel:    v.ColorLabel,
		ColorValue:    int32Ptr(v.ColorValue),
		ImageURL:      v.ImageURL,
		HoverImageURL: v.HoverImageURL,
		Price:         mapMoney(v.Price),
		OriginalPrice: mapMoney(v.OriginalPrice),
	}
}

func mapVariants(vs []catalog.ProductVariant) []*gqlmodels.ProductVariant {
	out := make([]*gqlmodels.ProductVariant, 0, len(vs))
	for i := range vs {
		out = append(out, mapVariant(&vs[i]))
	}
	return out
}

func mapSummary(p catalog.ProductSummary) *gqlmodels.ProductSummary {
	return &gqlmodels.ProductSummary{
		Name:             p.Name,
		SKU:              p.SKU,
		URLKey:           p.URLKey,
		ImageURL:         p.ImageURL,
		HoverImageURL:    p.HoverImageURL,
		Price:            mapMoney(p.Price),
		OriginalPrice:    mapMoney(p.OriginalPrice),
		Badges:           nonNil(p.Badges),
		ShortDescription: p.ShortDescription,
		InStock:          p.InStock,
		Variants:         mapVariants(p.Variants),
	}
}

func mapSummaries(ps []catalog.ProductSummary) []*gqlmodels.ProductSummary {
	out := make([]*gqlmodels.ProductSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, mapSummary(p))
	}
	return out
}

func mapDetail(d *catalog.ProductDetail) *gqlmodels.ProductDetail {
	s := mapSummary(d.ProductSummary)
	return &gqlmodels.ProductDetail{
		Name:             s.Name,
		SKU:              s.SKU,
		URLKey:           s.URLKey,
		ImageURL:         s.ImageURL,
		HoverImageURL:    s.HoverImageURL,
		Price:            s.Price,
		OriginalPrice:    s.OriginalPrice,
		Badges:           s.Badges,
		ShortDescription: s.ShortDescription,
		InStock:          s.InStock,
		Variants:         s.Variants,
		DescriptionHTML:  d.DescriptionHTML,
		Gallery:          nonNil(d.Gallery),
		RelatedProducts:  mapSummaries(d.RelatedProducts),
		VariantChoices:   mapVariants(d.VariantChoices),
		SelectedVariant:  mapVariant(d.SelectedVariant),
	}
}

func mapProductList(res *storefront.ProductsResponse) *gqlmodels.ProductList {
	f := mapFacets(&res.Facets)
	return &gqlmodels.ProductList{
		Items:           mapSummaries(res.Items),
		SaleItems:       mapSummaries(res.SaleItems),
		TotalCount:      int32(res.TotalCount),
		ColorOptions:    f.ColorOptions,
		RoomOptions:     f.RoomOptions,
		MaterialOptions: f.MaterialOptions,
		SizeOptions:     f.SizeOptions,
	}
}
