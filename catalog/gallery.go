package catalog

import (
	"strings"

	"storefront.GO/magento"
)

// PlaceholderImage is served when a product has no usable image.
const PlaceholderImage = "/images/placeholder.png"

func isPlaceholder(url string) bool {
	if url == "" {
		return true
	}
	lower := strings.ToLower(url)
	return strings.Contains(lower, "placeholder") || strings.Contains(lower, "no_selection")
}

// CleanGallery drops missing and placeholder URLs, keeping order.
func CleanGallery(images []*magento.Image) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img == nil || isPlaceholder(img.URL) {
			continue
		}
		out = append(out, img.URL)
	}
	return out
}

// PickPrimaryImage returns the first usable URL of small followed by gallery, or "".
func PickPrimaryImage(small string, gallery []string) string {
	if !isPlaceholder(small) {
		return small
	}
	for _, u := range gallery {
		if !isPlaceholder(u) {
			return u
		}
	}
	return ""
}

func hoverImage(gallery []string, primary string) string {
	for _, u := range gallery {
		if u != "" && u != primary {
			return u
		}
	}
	return ""
}

func imageURL(img *magento.Image) string {
	if img == nil {
		return ""
	}
	return img.URL
}
