package catalog

import "storefront.GO/magento"

// SanitizeMoney returns nil for a missing amount or a value <= 0.
func SanitizeMoney(m *magento.Money) *Money {
	if m == nil || m.Value == nil || *m.Value <= 0 {
		return nil
	}
	return &Money{Value: *m.Value, Currency: m.Currency}
}

// prices returns the sanitized final price (falling back to the regular
// price) and the sanitized regular price.
func prices(p *magento.ProductPrice) (price, original *Money) {
	if p == nil {
		return nil, nil
	}
	original = SanitizeMoney(p.RegularPrice)
	price = SanitizeMoney(p.FinalPrice)
	if price == nil {
		price = original
	}
	return price, original
}

func priceValue(m *Money) float64 {
	if m == nil {
		return 0
	}
	return m.Value
}
