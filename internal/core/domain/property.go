package domain

import "time"

// Property is the central listing record. TypeSpecific carries the variant
// selected by PropertyType and never fields of another variant.
type Property struct {
	ID                   int64
	Title                string
	PropertyType         PropertyType
	ProvinceID           int64
	DistrictID           int64
	NeighborhoodID       int64
	IntermediaryFullName string
	IntermediaryPhone    string
	Status               PropertyStatus
	Notes                string
	CustomerID           int64
	TypeSpecific         VariantAttributes
	CreatedAt            time.Time
}

// PriceHistoryEntry is a display-only record from the price-history endpoint,
// most recent first.
type PriceHistoryEntry struct {
	ID        int64
	Price     float64
	Date      time.Time
	CreatedAt time.Time
}
