package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeDerivedTotalPrice(t *testing.T) {
	land := &LandAttributes{TotalArea: 500, PricePerSquareMeter: 1200}
	RecomputeDerived(land)
	assert.Equal(t, 600_000.0, land.TotalPrice)

	// apartments keep their manual price
	flat := &ApartmentAttributes{TotalAreaNet: 120, TotalPrice: 2_000_000}
	RecomputeDerived(flat)
	assert.Equal(t, 2_000_000.0, flat.TotalPrice)

	// missing inputs leave the stored price alone
	parcel := &SharedParcelAttributes{TotalArea: 300, TotalPrice: 90_000}
	RecomputeDerived(parcel)
	assert.Equal(t, 90_000.0, parcel.TotalPrice)
}

func TestEnumValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want EnumValue
		out  string
	}{
		{"number", `3`, EnumValue{Ordinal: 3}, `3`},
		{"numeric string", `"2"`, EnumValue{Ordinal: 2}, `2`},
		{"unknown label survives", `"Gelecek Deger"`, EnumValue{Unknown: "Gelecek Deger"}, `"Gelecek Deger"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v EnumValue
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v)

			b, err := json.Marshal(v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.out, string(b))
		})
	}
}

func TestNewVariantMatchesKind(t *testing.T) {
	for _, typ := range []PropertyType{TypeLand, TypeField, TypeApartment, TypeCommercial, TypeSharedParcel} {
		v := NewVariant(typ)
		require.NotNil(t, v)
		assert.Equal(t, typ, v.Kind())
	}
}
