package rest

import (
	"time"

	"github.com/olgudulger/emlakfe/internal/contracts"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

// pagedResponse is the envelope every list endpoint returns.
type pagedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func pageOf[In, Out any](result query.Result[In], convert func(In) Out) pagedResponse[Out] {
	out := make([]Out, len(result.Data))
	for i, item := range result.Data {
		out[i] = convert(item)
	}
	return pagedResponse[Out]{Data: out, Total: result.Total, TotalPages: result.TotalPages}
}

type propertyRequest struct {
	Title                string         `json:"title"`
	PropertyType         int            `json:"propertyType"`
	ProvinceID           int64          `json:"provinceId"`
	DistrictID           int64          `json:"districtId"`
	NeighborhoodID       int64          `json:"neighborhoodId"`
	IntermediaryFullName string         `json:"intermediaryFullName"`
	IntermediaryPhone    string         `json:"intermediaryPhone"`
	Status               int            `json:"status"`
	Notes                string         `json:"notes"`
	CustomerID           int64          `json:"customerId"`
	TypeSpecific         map[string]any `json:"typeSpecificProperties"`
}

// toDomain coerces the loose attribute map into the typed variant for the
// declared property type; unknown keys are dropped and enum labels resolved.
func (r propertyRequest) toDomain(id int64) (domain.Property, error) {
	kind := domain.PropertyType(r.PropertyType)
	variant, err := contracts.Coerce(kind, r.TypeSpecific)
	if err != nil {
		return domain.Property{}, err
	}

	status, _ := domain.NormalizePropertyStatus(r.Status)
	return domain.Property{
		ID:                   id,
		Title:                r.Title,
		PropertyType:         kind,
		ProvinceID:           r.ProvinceID,
		DistrictID:           r.DistrictID,
		NeighborhoodID:       r.NeighborhoodID,
		IntermediaryFullName: r.IntermediaryFullName,
		IntermediaryPhone:    r.IntermediaryPhone,
		Status:               status,
		Notes:                r.Notes,
		CustomerID:           r.CustomerID,
		TypeSpecific:         variant,
	}, nil
}

type propertyResponse struct {
	ID                   int64                    `json:"id"`
	Title                string                   `json:"title"`
	PropertyType         int                      `json:"propertyType"`
	PropertyTypeName     string                   `json:"propertyTypeName"`
	ProvinceID           int64                    `json:"provinceId"`
	DistrictID           int64                    `json:"districtId"`
	NeighborhoodID       int64                    `json:"neighborhoodId"`
	IntermediaryFullName string                   `json:"intermediaryFullName"`
	IntermediaryPhone    string                   `json:"intermediaryPhone"`
	Status               int                      `json:"status"`
	StatusName           string                   `json:"statusName"`
	Notes                string                   `json:"notes"`
	CustomerID           int64                    `json:"customerId"`
	TotalPrice           float64                  `json:"totalPrice"`
	TypeSpecific         domain.VariantAttributes `json:"typeSpecificProperties"`
	CreatedAt            time.Time                `json:"createdAt"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	resp := propertyResponse{
		ID:                   p.ID,
		Title:                p.Title,
		PropertyType:         int(p.PropertyType),
		PropertyTypeName:     p.PropertyType.String(),
		ProvinceID:           p.ProvinceID,
		DistrictID:           p.DistrictID,
		NeighborhoodID:       p.NeighborhoodID,
		IntermediaryFullName: p.IntermediaryFullName,
		IntermediaryPhone:    p.IntermediaryPhone,
		Status:               p.Status.WireValue(),
		StatusName:           p.Status.String(),
		Notes:                p.Notes,
		CustomerID:           p.CustomerID,
		TypeSpecific:         p.TypeSpecific,
		CreatedAt:            p.CreatedAt,
	}
	if p.TypeSpecific != nil {
		resp.TotalPrice = p.TypeSpecific.Total()
	}
	return resp
}

type priceHistoryResponse struct {
	ID        int64     `json:"id"`
	Price     float64   `json:"price"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type saleRequest struct {
	PropertyID      int64     `json:"propertyId"`
	BuyerCustomerID int64     `json:"buyerCustomerId"`
	SalePrice       float64   `json:"salePrice"`
	Commission      float64   `json:"commission"`
	Expenses        float64   `json:"expenses"`
	SaleDate        time.Time `json:"saleDate"`
	Notes           string    `json:"notes"`
	Status          int       `json:"status"`
}

func (r saleRequest) toDomain(id int64) domain.Sale {
	return domain.Sale{
		ID:              id,
		PropertyID:      r.PropertyID,
		BuyerCustomerID: r.BuyerCustomerID,
		SalePrice:       r.SalePrice,
		Commission:      r.Commission,
		Expenses:        r.Expenses,
		SaleDate:        r.SaleDate,
		Notes:           r.Notes,
		Status:          domain.SaleStatus(r.Status),
	}
}

type saleResponse struct {
	ID                 int64     `json:"id"`
	PropertyID         int64     `json:"propertyId"`
	PropertyTitle      string    `json:"propertyTitle"`
	PropertyTypeName   string    `json:"propertyTypeName"`
	BuyerCustomerID    int64     `json:"buyerCustomerId"`
	BuyerCustomerName  string    `json:"buyerCustomerName"`
	SellerCustomerName string    `json:"sellerCustomerName"`
	SalePrice          float64   `json:"salePrice"`
	Commission         float64   `json:"commission"`
	Expenses           float64   `json:"expenses"`
	CommissionRate     float64   `json:"commissionRate"`
	NetProfit          float64   `json:"netProfit"`
	SaleDate           time.Time `json:"saleDate"`
	Notes              string    `json:"notes"`
	Status             int       `json:"status"`
	StatusName         string    `json:"statusName"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
}

func toSaleResponse(s domain.Sale) saleResponse {
	return saleResponse{
		ID:                 s.ID,
		PropertyID:         s.PropertyID,
		PropertyTitle:      s.PropertyTitle,
		PropertyTypeName:   s.PropertyTypeName,
		BuyerCustomerID:    s.BuyerCustomerID,
		BuyerCustomerName:  s.BuyerCustomerName,
		SellerCustomerName: s.SellerCustomerName,
		SalePrice:          s.SalePrice,
		Commission:         s.Commission,
		Expenses:           s.Expenses,
		CommissionRate:     s.CommissionRate,
		NetProfit:          s.NetProfit,
		SaleDate:           s.SaleDate,
		Notes:              s.Notes,
		Status:             s.Status.WireValue(),
		StatusName:         s.Status.String(),
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
	}
}

type saleStatisticsResponse struct {
	TotalSales       int     `json:"totalSales"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCommission  float64 `json:"totalCommission"`
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalNetProfit   float64 `json:"totalNetProfit"`
	AverageSalePrice float64 `json:"averageSalePrice"`
	SalesThisMonth   int     `json:"salesThisMonth"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`
}

type customerRequest struct {
	FullName     string  `json:"fullName"`
	Phone        string  `json:"phone"`
	Budget       float64 `json:"budget"`
	Notes        string  `json:"notes"`
	InterestType int     `json:"interestType"`
	CustomerType int     `json:"customerType"`
}

func (r customerRequest) toDomain(id int64) domain.Customer {
	return domain.Customer{
		ID:           id,
		FullName:     r.FullName,
		Phone:        r.Phone,
		Budget:       r.Budget,
		Notes:        r.Notes,
		InterestType: domain.InterestType(r.InterestType),
		CustomerType: domain.CustomerType(r.CustomerType),
	}
}

type customerResponse struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Budget       float64   `json:"budget"`
	Notes        string    `json:"notes"`
	InterestType int       `json:"interestType"`
	CustomerType int       `json:"customerType"`
	CanBuy       bool      `json:"canBuy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID,
		FullName:     c.FullName,
		Phone:        c.Phone,
		Budget:       c.Budget,
		Notes:        c.Notes,
		InterestType: int(c.InterestType),
		CustomerType: int(c.CustomerType),
		CanBuy:       c.CustomerType.CanBuy(),
		CreatedAt:    c.CreatedAt,
	}
}

type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

type userResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	IsOnline  bool       `json:"isOnline"`
	LockedTo  *time.Time `json:"lockoutEnd,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive(),
		IsOnline:  u.IsOnline,
		LockedTo:  u.LockoutEnd,
		CreatedAt: u.CreatedAt,
	}
}

type provinceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type districtResponse struct {
	ID         int64  `json:"id"`
	ProvinceID int64  `json:"provinceId"`
	Name       string `json:"name"`
}

type neighborhoodResponse struct {
	ID         int64  `json:"id"`
	DistrictID int64  `json:"districtId"`
	Name       string `json:"name"`
}
