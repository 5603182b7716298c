package catalog

// ProductRecord mirrors one raw product object as served by the catalog
// endpoint. PriceCents is a pointer so a record missing the field can be
// told apart from a free product. Mapping into the typed domain model
// happens in the catalog service, not here.
type ProductRecord struct {
	ID            string       `json:"id"`
	Image         string       `json:"image"`
	Name          string       `json:"name"`
	Rating        RatingRecord `json:"rating"`
	PriceCents    *int64       `json:"priceCents"`
	Type          string       `json:"type"`
	SizeChartLink string       `json:"sizeChartLink,omitempty"`
}

// RatingRecord is the raw rating object.
type RatingRecord struct {
	Stars float64 `json:"stars"`
	Count int     `json:"count"`
}
