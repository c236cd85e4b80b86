package domain

import "time"

// Filter specs mirror what the screens send: free-text search plus
// exact-match field filters, with client-side pagination.

type PropertyFilters struct {
	Search         string
	PropertyType   *PropertyType
	Status         *PropertyStatus
	ProvinceID     *int64
	DistrictID     *int64
	NeighborhoodID *int64
	MinPrice       *float64
	MaxPrice       *float64
	HasShareholder *bool
	Page           int
	Limit          int
}

type SaleFilters struct {
	Search       string
	Status       *SaleStatus
	PropertyType *PropertyType
	DateFrom     *time.Time
	DateTo       *time.Time
	MinPrice     *float64
	MaxPrice     *float64
	Page         int
	Limit        int
}

type CustomerFilters struct {
	Search       string
	CustomerType *CustomerType
	InterestType *InterestType
	MinBudget    *float64
	MaxBudget    *float64
	Page         int
	Limit        int
}

type UserFilters struct {
	Search   string
	Role     *string
	IsActive *bool
	Page     int
	Limit    int
}
