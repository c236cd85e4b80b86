package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePropertyStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   PropertyStatus
		wantOK bool
	}{
		{"wire integer", float64(4), StatusSold, true},
		{"wire integer zero", float64(0), StatusForSale, true},
		{"turkish name", "Kiralandı", StatusRented, true},
		{"turkish name combined", "SatılıkKiralık", StatusForSaleOrRent, true},
		{"go int", 3, StatusReserved, true},
		{"json number", json.Number("1"), StatusForRent, true},
		{"out of range integer", float64(42), StatusForSale, false},
		{"negative integer", -1, StatusForSale, false},
		{"unknown string", "Bilinmeyen", StatusForSale, false},
		{"fractional number", 1.5, StatusForSale, false},
		{"nil", nil, StatusForSale, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePropertyStatus(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPropertyStatusRoundTrip(t *testing.T) {
	// every status must survive string form -> normalize -> wire value
	for status, name := range propertyStatusNames {
		fromName, ok := NormalizePropertyStatus(name)
		require.True(t, ok, name)
		assert.Equal(t, status, fromName)

		fromWire, ok := NormalizePropertyStatus(float64(status.WireValue()))
		require.True(t, ok)
		assert.Equal(t, status, fromWire)
	}
}

func TestPropertyStatusSortPriority(t *testing.T) {
	assert.Equal(t, 1, StatusReserved.SortPriority())
	assert.Equal(t, 2, StatusForSale.SortPriority())
	assert.Equal(t, 3, StatusForRent.SortPriority())
	assert.Equal(t, 4, StatusForSaleOrRent.SortPriority())
	assert.Equal(t, 5, StatusSold.SortPriority())
	assert.Equal(t, 6, StatusRented.SortPriority())
	assert.Equal(t, 7, PropertyStatus(99).SortPriority())
}

func TestSaleStatusStrings(t *testing.T) {
	assert.Equal(t, "Tamamlandı", SaleCompleted.String())
	assert.Equal(t, "Beklemede", SalePending.String())
	assert.Equal(t, "İptal Edildi", SaleCancelled.String())
	assert.Equal(t, "Ertelendi", SalePostponed.String())
	assert.Equal(t, "", SaleStatus(0).String())
}
