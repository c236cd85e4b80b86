package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgudulger/emlakfe/internal/core/domain"
)

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, FullName: "Ahmet Yılmaz", Phone: "0532 111 22 33", Budget: 100_000,
			CustomerType: domain.CustomerBuyer, InterestType: domain.InterestLand},
		{ID: 2, FullName: "Ayşe Demir", Phone: "0533 444 55 66", Budget: 40_000,
			CustomerType: domain.CustomerSeller, InterestType: domain.InterestApartment},
		{ID: 3, FullName: "İsmail Kaya", Phone: "0542 777 88 99", Budget: 250_000,
			CustomerType: domain.CustomerBuyerAndSeller, InterestType: domain.InterestLand},
	}
}

func TestListCustomersBudgetRange(t *testing.T) {
	uc := NewListCustomersUseCase(&fakeCollection[domain.Customer]{items: sampleCustomers()})

	minBudget := 50_000.0
	result, err := uc.Execute(context.Background(), domain.CustomerFilters{MinBudget: &minBudget})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	for _, c := range result.Data {
		assert.GreaterOrEqual(t, c.Budget, minBudget)
	}
}

func TestListCustomersSearch(t *testing.T) {
	uc := NewListCustomersUseCase(&fakeCollection[domain.Customer]{items: sampleCustomers()})

	// Turkish-folded name search
	byName, err := uc.Execute(context.Background(), domain.CustomerFilters{Search: "ismail"})
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, int64(3), byName.Data[0].ID)

	// phone is matched as a raw substring
	byPhone, err := uc.Execute(context.Background(), domain.CustomerFilters{Search: "444 55"})
	require.NoError(t, err)
	require.Equal(t, 1, byPhone.Total)
	assert.Equal(t, int64(2), byPhone.Data[0].ID)
}

func TestListCustomersTypeAndInterest(t *testing.T) {
	uc := NewListCustomersUseCase(&fakeCollection[domain.Customer]{items: sampleCustomers()})

	seller := domain.CustomerSeller
	byType, err := uc.Execute(context.Background(), domain.CustomerFilters{CustomerType: &seller})
	require.NoError(t, err)
	assert.Equal(t, 1, byType.Total)

	land := domain.InterestLand
	byInterest, err := uc.Execute(context.Background(), domain.CustomerFilters{InterestType: &land})
	require.NoError(t, err)
	assert.Equal(t, 2, byInterest.Total)

	// the "all" interest matches everyone
	all := domain.InterestAll
	byAll, err := uc.Execute(context.Background(), domain.CustomerFilters{InterestType: &all})
	require.NoError(t, err)
	assert.Equal(t, 3, byAll.Total)
}

func TestListUsersMergesPresenceAndFilters(t *testing.T) {
	users := &fakeCollection[domain.User]{items: []domain.User{
		{ID: "a", Username: "admin", Email: "admin@ofis.com", Role: domain.RoleAdmin},
		{ID: "b", Username: "berna", Email: "berna@ofis.com", Role: domain.RoleUser},
	}}
	api := &fakeUserAPI{online: []string{"b"}}

	uc := NewListUsersUseCase(users, api)
	result, err := uc.Execute(context.Background(), domain.UserFilters{})
	require.NoError(t, err)

	require.Equal(t, 2, result.Total)
	byID := map[string]domain.User{}
	for _, u := range result.Data {
		byID[u.ID] = u
	}
	assert.False(t, byID["a"].IsOnline)
	assert.True(t, byID["b"].IsOnline)

	role := domain.RoleAdmin
	admins, err := uc.Execute(context.Background(), domain.UserFilters{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, 1, admins.Total)
}
