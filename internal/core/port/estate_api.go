package port

import (
	"context"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

// Ports onto the external estate backend. List reads recover locally: a
// network or endpoint failure yields an empty collection and a nil error so
// one failing list never blocks the rest of the screen. Writes surface their
// errors to the caller.

type PropertyAPIPort interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (domain.Property, error)
	Create(ctx context.Context, p domain.Property) (domain.Property, error)
	Update(ctx context.Context, p domain.Property) (domain.Property, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error
	PriceHistory(ctx context.Context, id int64) ([]domain.PriceHistoryEntry, error)
}

type SaleAPIPort interface {
	List(ctx context.Context) ([]domain.Sale, error)
	GetByID(ctx context.Context, id int64) (domain.Sale, error)
	Create(ctx context.Context, s domain.Sale) (domain.Sale, error)
	Update(ctx context.Context, s domain.Sale) (domain.Sale, error)
	Delete(ctx context.Context, id int64) error
	ListByProperty(ctx context.Context, propertyID int64) ([]domain.Sale, error)
	CanSell(ctx context.Context, propertyID int64) (bool, error)
}

type CustomerAPIPort interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type UserAPIPort interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u domain.User, password string) (domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
	ChangePassword(ctx context.Context, id, newPassword string) error
	ChangeRole(ctx context.Context, id, role string) (domain.User, error)
	ToggleLock(ctx context.Context, id string, locked bool) (domain.User, error)
	OnlineUserIDs(ctx context.Context) ([]string, error)
}

type LocationAPIPort interface {
	Provinces(ctx context.Context) ([]domain.Province, error)
	Districts(ctx context.Context) ([]domain.District, error)
	Neighborhoods(ctx context.Context) ([]domain.Neighborhood, error)
}
