package usecase

import (
	"context"
	"time"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

type SaleStatisticsUseCase struct {
	sales port.CollectionPort[domain.Sale]
	now   func() time.Time
}

func NewSaleStatisticsUseCase(sales port.CollectionPort[domain.Sale]) *SaleStatisticsUseCase {
	return &SaleStatisticsUseCase{sales: sales, now: time.Now}
}

// Execute aggregates the cached sale collection. Cancelled sales are excluded
// from every figure; "this month" is the calendar month of the server clock.
func (uc *SaleStatisticsUseCase) Execute(ctx context.Context) (domain.SaleStatistics, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SaleStatistics",
	})

	sales, err := uc.sales.GetAll(ctx)
	if err != nil {
		logger.Error("Failed to load sale collection", err, nil)
		return domain.SaleStatistics{}, err
	}

	now := uc.now()
	var stats domain.SaleStatistics
	for _, s := range sales {
		if s.Status == domain.SaleCancelled {
			continue
		}
		stats.TotalSales++
		stats.TotalRevenue += s.SalePrice
		stats.TotalCommission += s.Commission
		stats.TotalExpenses += s.Expenses
		stats.TotalNetProfit += s.NetProfit

		if s.SaleDate.Year() == now.Year() && s.SaleDate.Month() == now.Month() {
			stats.SalesThisMonth++
			stats.RevenueThisMonth += s.SalePrice
		}
	}
	if stats.TotalSales > 0 {
		stats.AverageSalePrice = stats.TotalRevenue / float64(stats.TotalSales)
	}

	logger.Debug("Use case finished", port.Fields{"total_sales": stats.TotalSales})
	return stats, nil
}
