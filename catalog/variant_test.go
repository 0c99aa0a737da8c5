package catalog

import (
	"testing"

	"storefront.GO/magento"
)

func configurable() *magento.Product {
	return &magento.Product{
		Typename:            magento.TypeConfigurable,
		Name:                "Teppich Blau 120x170",
		SKU:                 "T",
		URLKey:              "teppich-blau-120x170",
		SmallImage:          &magento.Image{URL: "/parent.jpg"},
		MediaGallery:        images("/parent.jpg", "/parent-2.jpg"),
		PriceRange:          priceRange(80, 100),
		StockStatus:         magento.StockInStock,
		ConfigurableOptions: colorOption(map[int]string{1: "Blau", 2: "Rot"}),
		Variants: []magento.Variant{
			variant("Teppich Blau 120x170", "SKU-A", ip(1), 80),
			variant("Teppich Blau 160x230", "SKU-A2", ip(1), 120),
			variant("Teppich Rot 120x170", "SKU-B", ip(2), 80),
			variant("Teppich Sample Blau", "SKU-S", ip(1), 5),
		},
	}
}

func TestMapVariants_OnePerColor(t *testing.T) {
	got := testMapper().MapVariants(configurable())
	if len(got) != 2 {
		t.Fatalf("MapVariants len = %d, want 2", len(got))
	}
	if got[0].SKU != "SKU-A" || got[0].ColorLabel != "Blau" {
		t.Errorf("first = %+v, want SKU-A Blau", got[0])
	}
	if got[1].SKU != "SKU-B" || got[1].ColorLabel != "Rot" {
		t.Errorf("second = %+v, want SKU-B Rot", got[1])
	}
}

func TestMapVariantsWithSizes_KeepsSizes(t *testing.T) {
	got := testMapper().MapVariantsWithSizes(configurable())
	if len(got) != 3 {
		t.Fatalf("MapVariantsWithSizes len = %d, want 3", len(got))
	}
	for _, v := range got {
		if v.SKU == "SKU-S" {
			t.Error("sample variant must be skipped")
		}
	}
}

func TestMapVariants_ImageFallbackToParent(t *testing.T) {
	got := testMapper().MapVariants(configurable())
	if got[0].ImageURL != "/parent.jpg" {
		t.Errorf("ImageURL = %q, want /parent.jpg", got[0].ImageURL)
	}
	if got[0].HoverImageURL != "/parent-2.jpg" {
		t.Errorf("HoverImageURL = %q, want /parent-2.jpg", got[0].HoverImageURL)
	}

	p := configurable()
	p.Variants[0].Product.MediaGallery = images("/own.jpg", "/own-2.jpg")
	got = testMapper().MapVariants(p)
	if got[0].ImageURL != "/own.jpg" || got[0].HoverImageURL != "/own-2.jpg" {
		t.Errorf("images = %q/%q, want own gallery", got[0].ImageURL, got[0].HoverImageURL)
	}
}

func TestMapVariants_ColorLabelFromName(t *testing.T) {
	p := configurable()
	p.ConfigurableOptions = nil
	p.Variants = []magento.Variant{variant("Teppich Grau 80x150", "SKU-G", nil, 40)}
	got := testMapper().MapVariants(p)
	if len(got) != 1 || got[0].ColorLabel != "Grau" {
		t.Errorf("MapVariants = %+v, want color label Grau", got)
	}
}

func TestMapVariants_StoreColorAttribute(t *testing.T) {
	p := configurable()
	p.ConfigurableOptions[0].AttributeCode = "Benuta_Color_Filter"
	for i := range p.Variants {
		p.Variants[i].Attributes[0].Code = "benuta_color_filter"
	}
	got := testMapper().MapVariants(p)
	if len(got) != 2 || got[1].ColorLabel != "Rot" {
		t.Errorf("MapVariants = %+v, want Blau and Rot", got)
	}
}

func TestMapVariants_SizeOnlyNameHasNoColorLabel(t *testing.T) {
	p := configurable()
	// value 9 has no option label, so the label falls back to the name
	p.Variants = []magento.Variant{variant("Teppich 120x170", "SKU-N", ip(9), 80)}
	got := testMapper().MapVariants(p)
	if len(got) != 1 {
		t.Fatalf("MapVariants len = %d, want 1", len(got))
	}
	if got[0].ColorLabel != "" {
		t.Errorf("ColorLabel = %q, want empty for a size-only name", got[0].ColorLabel)
	}
	if got[0].ColorValue == nil || *got[0].ColorValue != 9 {
		t.Errorf("ColorValue = %v, want 9", got[0].ColorValue)
	}
}
