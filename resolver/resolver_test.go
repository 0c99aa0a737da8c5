package resolver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storefront.GO/catalog"
	"storefront.GO/magento"
)

type fakeUpstream struct {
	resolve     map[string]*magento.URLResolution
	resolveErr  error
	byURLKey    map[string][]*magento.Product
	byURLKeyErr error
	search      map[string][]*magento.Product
	searchErr   error
	calls       []string
}

func (f *fakeUpstream) ResolveURL(_ context.Context, url string) (*magento.URLResolution, error) {
	f.calls = append(f.calls, "resolve:"+url)
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.resolve[url], nil
}

func (f *fakeUpstream) ProductsByURLKey(_ context.Context, urlKey string) ([]*magento.Product, error) {
	f.calls = append(f.calls, "url_key:"+urlKey)
	if f.byURLKeyErr != nil {
		return nil, f.byURLKeyErr
	}
	return f.byURLKey[urlKey], nil
}

func (f *fakeUpstream) SearchProducts(_ context.Context, term string, pageSize int) ([]*magento.Product, error) {
	f.calls = append(f.calls, fmt.Sprintf("search:%s:%d", term, pageSize))
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.search[term], nil
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func priced(v float64) *magento.PriceRange {
	m := &magento.Money{Value: fp(v), Currency: "EUR"}
	return &magento.PriceRange{MinimumPrice: &magento.ProductPrice{FinalPrice: m, RegularPrice: m}}
}

func configurableWith(name string, variants int) *magento.Product {
	p := &magento.Product{
		Typename:     magento.TypeConfigurable,
		Name:         name,
		SKU:          "CONF",
		URLKey:       "conf",
		MediaGallery: []*magento.Image{{URL: "/conf.jpg"}},
		PriceRange:   priced(100),
	}
	for i := 0; i < variants; i++ {
		p.Variants = append(p.Variants, magento.Variant{
			Product:    &magento.Product{Name: fmt.Sprintf("%s %d", name, i), SKU: fmt.Sprintf("V-%d", i), PriceRange: priced(100)},
			Attributes: []magento.VariantAttribute{{Code: "color", ValueIndex: ip(i)}},
		})
	}
	return p
}

func newResolver(up Upstream) *Resolver {
	return New(up, catalog.NewMapper(catalog.Attributes{Color: "benuta_color_filter"}, nil), nil)
}

func TestResolve_DirectConfigurable(t *testing.T) {
	p := &magento.Product{
		Typename:     magento.TypeConfigurable,
		Name:         "Teppich Blau 120x170",
		SKU:          "T",
		URLKey:       "teppich-blau-120x170",
		MediaGallery: []*magento.Image{{URL: "/t.jpg"}},
		PriceRange:   priced(99),
		ConfigurableOptions: []magento.ConfigurableOption{{
			AttributeCode: "color",
			Values: []*magento.ConfigurableOptionValue{
				{ValueIndex: ip(1), Label: "Blau"},
				{ValueIndex: ip(2), Label: "Rot"},
			},
		}},
		Variants: []magento.Variant{
			{Product: &magento.Product{Name: "Teppich 120x170", SKU: "SKU-A", PriceRange: priced(99)}, Attributes: []magento.VariantAttribute{{Code: "color", ValueIndex: ip(1)}}},
			{Product: &magento.Product{Name: "Teppich 120x170", SKU: "SKU-B", PriceRange: priced(99)}, Attributes: []magento.VariantAttribute{{Code: "color", ValueIndex: ip(2)}}},
		},
	}
	up := &fakeUpstream{
		resolve:  map[string]*magento.URLResolution{"teppich-blau-120x170": {RelativeURL: "teppich-blau-120x170.html"}},
		byURLKey: map[string][]*magento.Product{"teppich-blau-120x170": {p}},
	}

	d, err := newResolver(up).Resolve(context.Background(), "teppich-blau-120x170")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(d.VariantChoices) != 2 {
		t.Fatalf("VariantChoices len = %d, want 2", len(d.VariantChoices))
	}
	if d.VariantChoices[0].ColorLabel != "Blau" || d.VariantChoices[1].ColorLabel != "Rot" {
		t.Errorf("color labels = %q/%q, want Blau/Rot", d.VariantChoices[0].ColorLabel, d.VariantChoices[1].ColorLabel)
	}
	if len(d.Gallery) == 0 {
		t.Error("Gallery is empty")
	}
	if len(up.calls) != 2 {
		t.Errorf("calls = %v, want resolve and one direct lookup", up.calls)
	}
}

func TestResolve_SearchHintFindsConfigurable(t *testing.T) {
	single := &magento.Product{Typename: "SimpleProduct", Name: "Teppich Vintage Rund Blau", SKU: "SINGLE", URLKey: "vintage-blau", PriceRange: priced(50)}
	rich := configurableWith("Teppich Vintage Rund", 5)
	up := &fakeUpstream{
		resolveErr: errors.New("resolver down"),
		byURLKey:   map[string][]*magento.Product{"vintage-blau": {single}},
		search:     map[string][]*magento.Product{"Teppich Vintage Rund": {single, rich}},
	}

	d, err := newResolver(up).Resolve(context.Background(), "vintage-blau")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.SKU != "CONF" {
		t.Errorf("SKU = %q, want CONF", d.SKU)
	}
	if len(d.VariantChoices) != 5 {
		t.Errorf("VariantChoices len = %d, want 5", len(d.VariantChoices))
	}
	last := up.calls[len(up.calls)-1]
	if last != "search:Teppich Vintage Rund:30" {
		t.Errorf("last call = %q, want search on the name hint", last)
	}
}

func TestResolve_UnknownIdentifier(t *testing.T) {
	up := &fakeUpstream{resolveErr: errors.New("boom"), searchErr: errors.New("search down")}
	_, err := newResolver(up).Resolve(context.Background(), "nothing-here")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolve_NotConfiguredIsFatal(t *testing.T) {
	up := &fakeUpstream{resolveErr: magento.ErrNotConfigured}
	_, err := newResolver(up).Resolve(context.Background(), "x")
	if !errors.Is(err, magento.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestResolve_URLKeyFailuresSwallowed(t *testing.T) {
	up := &fakeUpstream{
		byURLKeyErr: &magento.TransportError{Err: errors.New("connection reset")},
		search:      map[string][]*magento.Product{"teppich-vintage-rund": {configurableWith("Teppich Vintage Rund", 5)}},
	}
	d, err := newResolver(up).Resolve(context.Background(), "teppich-vintage-rund")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.SKU != "CONF" || len(d.VariantChoices) != 5 {
		t.Errorf("detail = %s with %d choices, want CONF with 5", d.SKU, len(d.VariantChoices))
	}
	want := []string{"resolve:teppich-vintage-rund", "url_key:teppich-vintage-rund", "url_key:teppich-vintage-rund", "search:teppich-vintage-rund:30"}
	if fmt.Sprint(up.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", up.calls, want)
	}
}

func TestResolve_URLKeyNotConfiguredIsFatal(t *testing.T) {
	up := &fakeUpstream{byURLKeyErr: magento.ErrNotConfigured}
	_, err := newResolver(up).Resolve(context.Background(), "kissen")
	if !errors.Is(err, magento.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	if len(up.calls) != 2 {
		t.Errorf("calls = %v, want chain to stop after the direct lookup", up.calls)
	}
}

func TestResolve_ThinVariantsEscalate(t *testing.T) {
	thin := configurableWith("Läufer Classic", 1)
	thin.URLKey = "laeufer"
	rich := configurableWith("Läufer Classic", 3)
	up := &fakeUpstream{
		byURLKey: map[string][]*magento.Product{"laeufer": {thin}},
		search:   map[string][]*magento.Product{"Läufer Classic": {rich}},
	}
	p, err := newResolver(up).ResolveProduct(context.Background(), "laeufer")
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if len(p.Variants) != 3 {
		t.Errorf("Variants len = %d, want 3", len(p.Variants))
	}
}

func TestResolve_ThinVariantsKeptWithoutRicherMatch(t *testing.T) {
	thin := configurableWith("Läufer Classic", 1)
	up := &fakeUpstream{
		byURLKey: map[string][]*magento.Product{"laeufer": {thin}},
		search:   map[string][]*magento.Product{"Läufer Classic": {configurableWith("Läufer Classic", 1)}},
	}
	p, err := newResolver(up).ResolveProduct(context.Background(), "laeufer")
	if err != nil {
		t.Fatalf("ResolveProduct: %v", err)
	}
	if p != thin {
		t.Error("thin product should be kept when no richer match exists")
	}
}

func TestResolve_NonConfigurableKeptWhenNothingBetter(t *testing.T) {
	single := &magento.Product{Typename: "SimpleProduct", Name: "Kissen", SKU: "K", URLKey: "kissen", PriceRange: priced(20)}
	up := &fakeUpstream{byURLKey: map[string][]*magento.Product{"kissen": {single}}}
	d, err := newResolver(up).Resolve(context.Background(), "kissen")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.SKU != "K" {
		t.Errorf("SKU = %q, want K", d.SKU)
	}
}

func TestRun_StrategyOrder(t *testing.T) {
	r := newResolver(&fakeUpstream{})
	var order []string
	mk := func(name string, hit bool) Strategy {
		return Strategy{Name: name, Run: func(_ context.Context, term string) (Result, error) {
			order = append(order, name+":"+term)
			if hit {
				return Found(&magento.Product{Name: term}), nil
			}
			return NotFound, nil
		}}
	}
	res, err := r.run(context.Background(), []string{"a", "b"}, []Strategy{mk("one", false), mk("two", false)}, func(*magento.Product) bool { return true })
	if err != nil || res.OK() {
		t.Fatalf("run = %+v, %v, want NotFound", res, err)
	}
	want := []string{"one:a", "two:a", "one:b", "two:b"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newResolver(&fakeUpstream{})
	failing := Strategy{Name: "x", Run: func(context.Context, string) (Result, error) {
		return NotFound, errors.New("transport")
	}}
	_, err := r.run(ctx, []string{"a"}, []Strategy{failing}, func(*magento.Product) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
