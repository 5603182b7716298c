package model

import "fmt"

// VariantKind tags a product variant. The tag set is open: unknown
// tags coming off the wire are treated as generic.
type VariantKind string

const (
	KindGeneric  VariantKind = "generic"
	KindClothing VariantKind = "clothing"
)

// Product is one catalog entry. Products are created in bulk when the
// catalog loads and are immutable afterwards; a refresh replaces the
// whole snapshot instead of mutating entries in place.
type Product struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ImageRef     string      `json:"image"`
	Rating       Rating      `json:"rating"`
	PriceCents   int64       `json:"price_cents"`
	Kind         VariantKind `json:"kind"`
	SizeChartRef string      `json:"size_chart_ref,omitempty"`
}

type Rating struct {
	Stars float64 `json:"stars"`
	Count int     `json:"count"`
}

// StarsImageRef returns the asset ref for the rating star image,
// e.g. 4.5 stars -> images/ratings/rating-45.png.
func (p Product) StarsImageRef() string {
	return fmt.Sprintf("images/ratings/rating-%d.png", int(p.Rating.Stars*10))
}

// extraInfoByKind resolves variant-specific display info per kind.
// A dispatch table keeps Product a plain value type.
var extraInfoByKind = map[VariantKind]func(Product) map[string]string{
	KindClothing: func(p Product) map[string]string {
		return map[string]string{"size_chart_ref": p.SizeChartRef}
	},
}

// ExtraInfo returns variant-specific display data, or nil for kinds
// that carry none.
func (p Product) ExtraInfo() map[string]string {
	if fn, ok := extraInfoByKind[p.Kind]; ok {
		return fn(p)
	}
	return nil
}
