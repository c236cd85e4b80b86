package usecases_port

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/query"
)

// Use-case contracts consumed by the REST handlers. Handlers depend on these
// instead of the concrete use cases so they can be tested with fakes.

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) (query.Result[domain.Property], error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id int64) (domain.Property, error)
}

type SavePropertyUseCase interface {
	Execute(ctx context.Context, p domain.Property) (domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id int64) error
}

type UpdatePropertyStatusUseCase interface {
	Execute(ctx context.Context, id int64, status domain.PropertyStatus) error
}

type PropertyPriceHistoryUseCase interface {
	Execute(ctx context.Context, id int64) ([]domain.PriceHistoryEntry, error)
}

type ListSalesUseCase interface {
	Execute(ctx context.Context, filters domain.SaleFilters) (query.Result[domain.Sale], error)
}

type GetSaleUseCase interface {
	Execute(ctx context.Context, id int64) (domain.Sale, error)
}

type SaveSaleUseCase interface {
	Execute(ctx context.Context, s domain.Sale) (domain.Sale, error)
}

type CancelSaleUseCase interface {
	Execute(ctx context.Context, id int64) (domain.Sale, error)
}

type DeleteSaleUseCase interface {
	Execute(ctx context.Context, id int64) error
}

type SaleStatisticsUseCase interface {
	Execute(ctx context.Context) (domain.SaleStatistics, error)
}

type SalesByPropertyUseCase interface {
	Execute(ctx context.Context, propertyID int64) ([]domain.Sale, error)
}

type CanSellPropertyUseCase interface {
	Execute(ctx context.Context, propertyID int64) (bool, error)
}

type ListCustomersUseCase interface {
	Execute(ctx context.Context, filters domain.CustomerFilters) (query.Result[domain.Customer], error)
}

type GetCustomerUseCase interface {
	Execute(ctx context.Context, id int64) (domain.Customer, error)
}

type SaveCustomerUseCase interface {
	Execute(ctx context.Context, c domain.Customer) (domain.Customer, error)
}

type DeleteCustomerUseCase interface {
	Execute(ctx context.Context, id int64) error
}

type ListUsersUseCase interface {
	Execute(ctx context.Context, filters domain.UserFilters) (query.Result[domain.User], error)
}

type SaveUserUseCase interface {
	Execute(ctx context.Context, u domain.User, password string) (domain.User, error)
}

type ChangeUserPasswordUseCase interface {
	Execute(ctx context.Context, id, newPassword string) error
}

type ChangeUserRoleUseCase interface {
	Execute(ctx context.Context, id, role string) (domain.User, error)
}

type ToggleUserLockUseCase interface {
	Execute(ctx context.Context, id string, locked bool) error
}

type ListLocationsUseCase interface {
	Provinces(ctx context.Context) ([]domain.Province, error)
	Districts(ctx context.Context, provinceID int64) ([]domain.District, error)
	Neighborhoods(ctx context.Context, districtID int64) ([]domain.Neighborhood, error)
}
