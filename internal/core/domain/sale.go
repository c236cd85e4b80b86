package domain

import (
	"math"
	"time"
)

// Sale records one sale or rental transaction of a property.
//
// CommissionRate and NetProfit are derived and never independently settable:
// RecomputeDerived must run whenever price, commission or expenses change.
type Sale struct {
	ID                 int64
	PropertyID         int64
	PropertyTitle      string
	PropertyTypeName   string
	BuyerCustomerID    int64
	BuyerCustomerName  string
	SellerCustomerName string
	SalePrice          float64
	Commission         float64
	Expenses           float64
	CommissionRate     float64
	NetProfit          float64
	SaleDate           time.Time
	Notes              string
	Status             SaleStatus
	CreatedBy          string
	CreatedAt          time.Time
}

// RecomputeDerived refreshes the derived fields from their inputs.
// The rate is rounded to one decimal; a zero price yields a zero rate.
func (s *Sale) RecomputeDerived() {
	if s.SalePrice > 0 {
		s.CommissionRate = math.Round(s.Commission/s.SalePrice*100*10) / 10
	} else {
		s.CommissionRate = 0
	}
	s.NetProfit = s.Commission - s.Expenses
}

// SaleStatistics is an aggregate over the sale collection.
type SaleStatistics struct {
	TotalSales       int
	TotalRevenue     float64
	TotalCommission  float64
	TotalExpenses    float64
	TotalNetProfit   float64
	AverageSalePrice float64
	SalesThisMonth   int
	RevenueThisMonth float64
}
