package backend

import (
	"time"

	"github.com/olgudulger/emlakfe/internal/contracts"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// DTOs of the estate backend. Status fields arrive as integers or Turkish
// strings; mapping to the domain goes through the reconciler exactly once,
// here at the boundary.

type propertyDTO struct {
	ID                     int64          `json:"id"`
	Title                  string         `json:"title"`
	PropertyType           int            `json:"propertyType"`
	ProvinceID             int64          `json:"provinceId"`
	DistrictID             int64          `json:"districtId"`
	NeighborhoodID         int64          `json:"neighborhoodId"`
	IntermediaryFullName   string         `json:"intermediaryFullName"`
	IntermediaryPhone      string         `json:"intermediaryPhone"`
	Status                 any            `json:"status"`
	Notes                  string         `json:"notes"`
	CustomerID             int64          `json:"customerId"`
	TypeSpecificProperties map[string]any `json:"typeSpecificProperties"`
	CreatedAt              string         `json:"createdAt"`
}

func (d propertyDTO) toDomain(logger port.LoggerPort) domain.Property {
	status, ok := domain.NormalizePropertyStatus(d.Status)
	if !ok {
		logger.Warn("Unrecognized property status, falling back to Satılık", port.Fields{
			"property_id": d.ID,
			"raw_status":  d.Status,
		})
	}

	kind := domain.PropertyType(d.PropertyType)
	variant, err := contracts.Coerce(kind, d.TypeSpecificProperties)
	if err != nil {
		logger.Warn("Could not coerce type-specific attributes, keeping empty variant", port.Fields{
			"property_id": d.ID,
			"error":       err.Error(),
		})
		variant = domain.NewVariant(kind)
	}

	return domain.Property{
		ID:                   d.ID,
		Title:                d.Title,
		PropertyType:         kind,
		ProvinceID:           d.ProvinceID,
		DistrictID:           d.DistrictID,
		NeighborhoodID:       d.NeighborhoodID,
		IntermediaryFullName: d.IntermediaryFullName,
		IntermediaryPhone:    d.IntermediaryPhone,
		Status:               status,
		Notes:                d.Notes,
		CustomerID:           d.CustomerID,
		TypeSpecific:         variant,
		CreatedAt:            parseTime(d.CreatedAt),
	}
}

// propertyWriteDTO is the write shape: status is always an integer.
type propertyWriteDTO struct {
	ID                     int64                    `json:"id,omitempty"`
	Title                  string                   `json:"title"`
	PropertyType           int                      `json:"propertyType"`
	ProvinceID             int64                    `json:"provinceId"`
	DistrictID             int64                    `json:"districtId"`
	NeighborhoodID         int64                    `json:"neighborhoodId"`
	IntermediaryFullName   string                   `json:"intermediaryFullName"`
	IntermediaryPhone      string                   `json:"intermediaryPhone"`
	Status                 int                      `json:"status"`
	Notes                  string                   `json:"notes"`
	CustomerID             int64                    `json:"customerId"`
	TypeSpecificProperties domain.VariantAttributes `json:"typeSpecificProperties"`
}

func propertyToWire(p domain.Property) propertyWriteDTO {
	return propertyWriteDTO{
		ID:                     p.ID,
		Title:                  p.Title,
		PropertyType:           int(p.PropertyType),
		ProvinceID:             p.ProvinceID,
		DistrictID:             p.DistrictID,
		NeighborhoodID:         p.NeighborhoodID,
		IntermediaryFullName:   p.IntermediaryFullName,
		IntermediaryPhone:      p.IntermediaryPhone,
		Status:                 p.Status.WireValue(),
		Notes:                  p.Notes,
		CustomerID:             p.CustomerID,
		TypeSpecificProperties: p.TypeSpecific,
	}
}

type priceHistoryDTO struct {
	ID        int64   `json:"id"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

func (d priceHistoryDTO) toDomain() domain.PriceHistoryEntry {
	return domain.PriceHistoryEntry{
		ID:        d.ID,
		Price:     d.Price,
		Date:      parseTime(d.Date),
		CreatedAt: parseTime(d.CreatedAt),
	}
}

type saleDTO struct {
	ID                 int64   `json:"id"`
	PropertyID         int64   `json:"propertyId"`
	PropertyTitle      string  `json:"propertyTitle"`
	PropertyTypeName   string  `json:"propertyType"`
	BuyerCustomerID    int64   `json:"buyerCustomerId"`
	BuyerCustomerName  string  `json:"buyerCustomerName"`
	SellerCustomerName string  `json:"sellerCustomerName"`
	SalePrice          float64 `json:"salePrice"`
	Commission         float64 `json:"commission"`
	Expenses           float64 `json:"expenses"`
	CommissionRate     float64 `json:"commissionRate"`
	NetProfit          float64 `json:"netProfit"`
	SaleDate           string  `json:"saleDate"`
	Notes              string  `json:"notes"`
	Status             int     `json:"status"`
	CreatedBy          string  `json:"createdBy"`
	CreatedAt          string  `json:"createdAt"`
}

func (d saleDTO) toDomain() domain.Sale {
	s := domain.Sale{
		ID:                 d.ID,
		PropertyID:         d.PropertyID,
		PropertyTitle:      d.PropertyTitle,
		PropertyTypeName:   d.PropertyTypeName,
		BuyerCustomerID:    d.BuyerCustomerID,
		BuyerCustomerName:  d.BuyerCustomerName,
		SellerCustomerName: d.SellerCustomerName,
		SalePrice:          d.SalePrice,
		Commission:         d.Commission,
		Expenses:           d.Expenses,
		SaleDate:           parseTime(d.SaleDate),
		Notes:              d.Notes,
		Status:             domain.SaleStatus(d.Status),
		CreatedBy:          d.CreatedBy,
		CreatedAt:          parseTime(d.CreatedAt),
	}
	// derived fields are never trusted from the wire
	s.RecomputeDerived()
	return s
}

type saleWriteDTO struct {
	ID              int64   `json:"id,omitempty"`
	PropertyID      int64   `json:"propertyId"`
	BuyerCustomerID int64   `json:"buyerCustomerId"`
	SalePrice       float64 `json:"salePrice"`
	Commission      float64 `json:"commission"`
	Expenses        float64 `json:"expenses"`
	CommissionRate  float64 `json:"commissionRate"`
	SaleDate        string  `json:"saleDate"`
	Notes           string  `json:"notes,omitempty"`
	Status          int     `json:"status"`
}

func saleToWire(s domain.Sale) saleWriteDTO {
	return saleWriteDTO{
		ID:              s.ID,
		PropertyID:      s.PropertyID,
		BuyerCustomerID: s.BuyerCustomerID,
		SalePrice:       s.SalePrice,
		Commission:      s.Commission,
		Expenses:        s.Expenses,
		CommissionRate:  s.CommissionRate,
		SaleDate:        s.SaleDate.UTC().Format(time.RFC3339),
		Notes:           s.Notes,
		Status:          s.Status.WireValue(),
	}
}

type customerDTO struct {
	ID                       int64   `json:"id"`
	FullName                 string  `json:"fullName"`
	Phone                    string  `json:"phone"`
	Budget                   float64 `json:"budget"`
	Notes                    string  `json:"notes"`
	InterestType             int     `json:"interestType"`
	CustomerType             int     `json:"customerType"`
	ProvincePreferencesCount int     `json:"provincePreferencesCount"`
	CreatedAt                string  `json:"createdAt"`
}

func (d customerDTO) toDomain() domain.Customer {
	return domain.Customer{
		ID:                       d.ID,
		FullName:                 d.FullName,
		Phone:                    d.Phone,
		Budget:                   d.Budget,
		Notes:                    d.Notes,
		InterestType:             domain.InterestType(d.InterestType),
		CustomerType:             domain.CustomerType(d.CustomerType),
		ProvincePreferencesCount: d.ProvincePreferencesCount,
		CreatedAt:                parseTime(d.CreatedAt),
	}
}

type customerWriteDTO struct {
	ID           int64   `json:"id,omitempty"`
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	Budget       float64 `json:"budget"`
	Notes        string  `json:"notes,omitempty"`
	InterestType int     `json:"interestType"`
	CustomerType int     `json:"customerType"`
}

func customerToWire(c domain.Customer) customerWriteDTO {
	return customerWriteDTO{
		ID:           c.ID,
		FullName:     c.FullName,
		Phone:        c.Phone,
		Budget:       c.Budget,
		Notes:        c.Notes,
		InterestType: int(c.InterestType),
		CustomerType: int(c.CustomerType),
	}
}

type userDTO struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	LockoutEnd *string `json:"lockoutEnd"`
	CreatedAt  string  `json:"createdAt"`
}

func (d userDTO) toDomain() domain.User {
	u := domain.User{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		Role:      d.Role,
		CreatedAt: parseTime(d.CreatedAt),
	}
	if d.LockoutEnd != nil && *d.LockoutEnd != "" {
		t := parseTime(*d.LockoutEnd)
		u.LockoutEnd = &t
	}
	return u
}

type provinceDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type districtDTO struct {
	ID         int64  `json:"id"`
	ProvinceID int64  `json:"provinceId"`
	Name       string `json:"name"`
}

type neighborhoodDTO struct {
	ID         int64  `json:"id"`
	DistrictID int64  `json:"districtId"`
	Name       string `json:"name"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
