package domain

import (
	"encoding/json"
	"strconv"
)

// PropertyType is the discriminant that selects which attribute variant a
// property carries. It is immutable after creation.
type PropertyType int

const (
	TypeLand PropertyType = iota
	TypeField
	TypeApartment
	TypeCommercial
	TypeSharedParcel
)

func (t PropertyType) String() string {
	switch t {
	case TypeLand:
		return "Arsa"
	case TypeField:
		return "Tarla"
	case TypeApartment:
		return "Daire"
	case TypeCommercial:
		return "İşyeri"
	case TypeSharedParcel:
		return "Hisseli Parsel"
	}
	return "Bilinmiyor"
}

// EnumValue holds one value of a closed attribute enumeration (zoning status,
// heating type and so on). Known labels coerce to their ordinal; a wire string
// we do not recognize is carried through untouched so a server-added value
// survives a round trip instead of being destroyed.
type EnumValue struct {
	Ordinal int
	Unknown string
}

func (v EnumValue) MarshalJSON() ([]byte, error) {
	if v.Unknown != "" {
		return json.Marshal(v.Unknown)
	}
	return json.Marshal(v.Ordinal)
}

func (v *EnumValue) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*v = EnumValue{Ordinal: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if n, err := strconv.Atoi(s); err == nil {
		*v = EnumValue{Ordinal: n}
		return nil
	}
	*v = EnumValue{Unknown: s}
	return nil
}

// VariantAttributes is the tagged union of the five property shapes. The
// unexported method closes the set to this package.
type VariantAttributes interface {
	Kind() PropertyType
	// Total reports the asking price of the record, whichever variant it is.
	Total() float64
	recomputeDerived()
}

type LandAttributes struct {
	BlockNumber         string    `json:"BlockNumber,omitempty"`
	ParcelNumber        string    `json:"ParcelNumber,omitempty"`
	TotalArea           float64   `json:"TotalArea,omitempty"`
	PricePerSquareMeter float64   `json:"PricePerSquareMeter,omitempty"`
	TotalPrice          float64   `json:"TotalPrice,omitempty"`
	ZoningStatus        EnumValue `json:"ZoningStatus"`
	LandType            EnumValue `json:"LandType"`
}

func (a *LandAttributes) Kind() PropertyType { return TypeLand }
func (a *LandAttributes) Total() float64     { return a.TotalPrice }

func (a *LandAttributes) recomputeDerived() {
	if a.TotalArea > 0 && a.PricePerSquareMeter > 0 {
		a.TotalPrice = a.TotalArea * a.PricePerSquareMeter
	}
}

type FieldAttributes struct {
	BlockNumber         string    `json:"BlockNumber,omitempty"`
	ParcelNumber        string    `json:"ParcelNumber,omitempty"`
	TotalArea           float64   `json:"TotalArea,omitempty"`
	PricePerSquareMeter float64   `json:"PricePerSquareMeter,omitempty"`
	TotalPrice          float64   `json:"TotalPrice,omitempty"`
	RoadStatus          string    `json:"RoadStatus,omitempty"`
	FieldType           EnumValue `json:"FieldType"`
	HasShareholder      *bool     `json:"HasShareholder,omitempty"`
}

func (a *FieldAttributes) Kind() PropertyType { return TypeField }
func (a *FieldAttributes) Total() float64     { return a.TotalPrice }

func (a *FieldAttributes) recomputeDerived() {
	if a.TotalArea > 0 && a.PricePerSquareMeter > 0 {
		a.TotalPrice = a.TotalArea * a.PricePerSquareMeter
	}
}

type ApartmentAttributes struct {
	Floor            string    `json:"Floor,omitempty"`
	RoomCount        int       `json:"RoomCount,omitempty"`
	BathroomCount    int       `json:"BathroomCount,omitempty"`
	BalconyCount     int       `json:"BalconyCount,omitempty"`
	LivingRoomCount  int       `json:"LivingRoomCount,omitempty"`
	ParkingCount     string    `json:"ParkingCount,omitempty"`
	HeatingType      EnumValue `json:"HeatingType"`
	ElevatorType     EnumValue `json:"ElevatorType"`
	// Elevator is the free-text predecessor of ElevatorType; old records
	// still carry it.
	Elevator         string    `json:"Elevator,omitempty"`
	ParkingType      EnumValue `json:"ParkingType"`
	FornitureStatus  EnumValue `json:"FornitureStatus"`
	TotalAreaGross   float64   `json:"TotalAreaGross,omitempty"`
	TotalAreaNet     float64   `json:"TotalAreaNet,omitempty"`
	TotalPrice       float64   `json:"TotalPrice,omitempty"`
}

func (a *ApartmentAttributes) Kind() PropertyType { return TypeApartment }
func (a *ApartmentAttributes) Total() float64     { return a.TotalPrice }

// Apartments have no per-area pricing; TotalPrice is entered by hand.
func (a *ApartmentAttributes) recomputeDerived() {}

type CommercialAttributes struct {
	WorkplaceType   EnumValue `json:"WorkplaceType"`
	TotalAreaGross  float64   `json:"TotalAreaGross,omitempty"`
	TotalAreaNet    float64   `json:"TotalAreaNet,omitempty"`
	RoomCount       int       `json:"RoomCount,omitempty"`
	BathroomCount   int       `json:"BathroomCount,omitempty"`
	TotalPrice      float64   `json:"TotalPrice,omitempty"`
	HeatingType     EnumValue `json:"HeatingType"`
	MezzanineStatus EnumValue `json:"MezzanineStatus"`
	BasementStatus  EnumValue `json:"BasementStatus"`
	UsageStatus     EnumValue `json:"UsageStatus"`
}

func (a *CommercialAttributes) Kind() PropertyType { return TypeCommercial }
func (a *CommercialAttributes) Total() float64     { return a.TotalPrice }
func (a *CommercialAttributes) recomputeDerived()  {}

type SharedParcelAttributes struct {
	BlockNumber         string  `json:"BlockNumber,omitempty"`
	ParcelNumber        string  `json:"ParcelNumber,omitempty"`
	TotalArea           float64 `json:"TotalArea,omitempty"`
	PricePerSquareMeter float64 `json:"PricePerSquareMeter,omitempty"`
	TotalPrice          float64 `json:"TotalPrice,omitempty"`
	ShareRatio          float64 `json:"ShareRatio,omitempty"`
}

func (a *SharedParcelAttributes) Kind() PropertyType { return TypeSharedParcel }
func (a *SharedParcelAttributes) Total() float64     { return a.TotalPrice }

func (a *SharedParcelAttributes) recomputeDerived() {
	if a.TotalArea > 0 && a.PricePerSquareMeter > 0 {
		a.TotalPrice = a.TotalArea * a.PricePerSquareMeter
	}
}

// RecomputeDerived refreshes the derived pricing of a variant after either of
// its inputs changed. Variants without per-area pricing are left alone.
func RecomputeDerived(v VariantAttributes) {
	if v != nil {
		v.recomputeDerived()
	}
}

// NewVariant returns the zero attribute record for a property type.
func NewVariant(t PropertyType) VariantAttributes {
	switch t {
	case TypeLand:
		return &LandAttributes{}
	case TypeField:
		return &FieldAttributes{}
	case TypeApartment:
		return &ApartmentAttributes{}
	case TypeCommercial:
		return &CommercialAttributes{}
	case TypeSharedParcel:
		return &SharedParcelAttributes{}
	}
	return nil
}
