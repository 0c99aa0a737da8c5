package magento

const moneyFields = `
	price_range {
		minimum_price {
			final_price { value currency }
			regular_price { value currency }
		}
	}`

const configurableFields = `
	... on ConfigurableProduct {
		configurable_options {
			attribute_code
			label
			values { value_index label }
		}
		variants {
			product {
				name
				sku
				url_key
				small_image { url }
				media_gallery { url }` + moneyFields + `
			}
			attributes { code value_index }
		}
	}`

const summaryFields = `
	__typename
	name
	sku
	url_key
	small_image { url }
	media_gallery { url }` + moneyFields + `
	stock_status
	short_description { html }` + configurableFields

const aggregationFields = `
	aggregations {
		attribute_code
		label
		options { label value count }
	}`

const productsQuery = `
query Products(
	$pageSize: Int
	$currentPage: Int
	$sort: ProductAttributeSortInput
	$filter: ProductAttributeFilterInput
) {
	products(pageSize: $pageSize, currentPage: $currentPage, sort: $sort, filter: $filter) {
		items {` + summaryFields + `
		}
		total_count` + aggregationFields + `
	}
}`

const facetsQuery = `
query Facets($pageSize: Int, $currentPage: Int, $search: String, $filter: ProductAttributeFilterInput) {
	products(pageSize: $pageSize, currentPage: $currentPage, search: $search, filter: $filter) {` + aggregationFields + `
	}
}`

const productDetailQuery = `
query ProductDetail($urlKey: String) {
	products(filter: { url_key: { eq: $urlKey } }) {
		items {` + summaryFields + `
			url_suffix
			description { html }
			related_products {` + summaryFields + `
			}
		}
	}
}`

const searchQuery = `
query SearchConfigurable($search: String, $pageSize: Int) {
	products(search: $search, pageSize: $pageSize) {
		items {` + summaryFields + `
		}
	}
}`

const urlResolverQuery = `
query ResolveUrl($url: String!) {
	urlResolver(url: $url) {
		canonical_url
		relative_url
		type
	}
}`

const categoryTreeQuery = `
query CategoryTree {
	categoryList(filters: { ids: { eq: "2" } }) {
		children {
			uid
			name
			children { uid name }
		}
	}
}`
