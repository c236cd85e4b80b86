package store

import (
	"github.com/olgudulger/emlakfe/internal/core/domain"
	"github.com/olgudulger/emlakfe/internal/core/port"
)

// Store bundles the per-kind collections for one session. It is built once in
// the composition root and injected; there are no package-level singletons.
type Store struct {
	Properties    *Collection[domain.Property]
	Sales         *Collection[domain.Sale]
	Customers     *Collection[domain.Customer]
	Users         *Collection[domain.User]
	Provinces     *Collection[domain.Province]
	Districts     *Collection[domain.District]
	Neighborhoods *Collection[domain.Neighborhood]
}

func New(
	properties port.PropertyAPIPort,
	sales port.SaleAPIPort,
	customers port.CustomerAPIPort,
	users port.UserAPIPort,
	locations port.LocationAPIPort,
	logger port.LoggerPort,
) *Store {
	return &Store{
		Properties:    NewCollection("properties", properties.List, logger),
		Sales:         NewCollection("sales", sales.List, logger),
		Customers:     NewCollection("customers", customers.List, logger),
		Users:         NewCollection("users", users.List, logger),
		Provinces:     NewCollection("provinces", locations.Provinces, logger),
		Districts:     NewCollection("districts", locations.Districts, logger),
		Neighborhoods: NewCollection("neighborhoods", locations.Neighborhoods, logger),
	}
}
