package contracts

import "github.com/olgudulger/emlakfe/internal/core/domain"

// Label tables for the closed attribute enumerations. The backend sometimes
// serves these as localized strings instead of ordinals; coercion maps the
// known labels and passes anything else through untouched.

var zoningLabels = map[string]int{
	"Var": 0, "Yok": 1, "Belirsiz": 2,
}

var landTypeLabels = map[string]int{
	"Arsa": 0, "Sanayi": 1, "Çiftlik": 2, "Belirsiz": 3,
}

var fieldTypeLabels = map[string]int{
	"Tarla": 0, "Bağ": 1, "Bahçe": 2, "Belirsiz": 3,
}

var heatingLabels = map[string]int{
	"Merkezi": 0, "MerkeziPayölçer": 1, "Kalorifer": 2, "Kombi": 3,
	"Elektrikli": 4, "Soba": 5, "Klima": 6, "YerdenIsıtma": 7,
	"Yok": 8, "Belirsiz": 9,
}

var elevatorLabels = map[string]int{
	"Var": 0, "Yok": 1, "Belirsiz": 2,
}

var parkingLabels = map[string]int{
	"VarAçık": 0, "VarKapalı": 1, "Yok": 2, "Belirsiz": 3,
}

var furnishingLabels = map[string]int{
	"Eşyalı": 0, "Eşyasız": 1, "KısmenEşyalı": 2, "Belirsiz": 3,
}

var workplaceLabels = map[string]int{
	"Satılık": 0, "Kiralık": 1, "DevrenKiralık": 2, "DevrenSatılık": 3, "Belirsiz": 4,
}

var mezzanineLabels = map[string]int{
	"Var": 0, "Yok": 1, "Belirsiz": 2,
}

var basementLabels = map[string]int{
	"Var": 0, "Yok": 1, "Belirsiz": 2,
}

var usageLabels = map[string]int{
	"Boş": 0, "Dolu": 1, "DoluKiracılı": 2, "Belirsiz": 3,
}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldFlag
	fieldEnum
)

type fieldSpec struct {
	name   string
	kind   fieldKind
	labels map[string]int // only for fieldEnum
}

// variantFields declares, per property type, the attribute set the variant
// owns. Coercion drops everything outside this set.
var variantFields = map[domain.PropertyType][]fieldSpec{
	domain.TypeLand: {
		{name: "BlockNumber", kind: fieldText},
		{name: "ParcelNumber", kind: fieldText},
		{name: "TotalArea", kind: fieldNumber},
		{name: "PricePerSquareMeter", kind: fieldNumber},
		{name: "TotalPrice", kind: fieldNumber},
		{name: "ZoningStatus", kind: fieldEnum, labels: zoningLabels},
		{name: "LandType", kind: fieldEnum, labels: landTypeLabels},
	},
	domain.TypeField: {
		{name: "BlockNumber", kind: fieldText},
		{name: "ParcelNumber", kind: fieldText},
		{name: "TotalArea", kind: fieldNumber},
		{name: "PricePerSquareMeter", kind: fieldNumber},
		{name: "TotalPrice", kind: fieldNumber},
		{name: "RoadStatus", kind: fieldText},
		{name: "FieldType", kind: fieldEnum, labels: fieldTypeLabels},
		{name: "HasShareholder", kind: fieldFlag},
	},
	domain.TypeApartment: {
		{name: "Floor", kind: fieldText},
		{name: "RoomCount", kind: fieldNumber},
		{name: "BathroomCount", kind: fieldNumber},
		{name: "BalconyCount", kind: fieldNumber},
		{name: "LivingRoomCount", kind: fieldNumber},
		{name: "ParkingCount", kind: fieldText},
		{name: "HeatingType", kind: fieldEnum, labels: heatingLabels},
		{name: "ElevatorType", kind: fieldEnum, labels: elevatorLabels},
		{name: "Elevator", kind: fieldText},
		{name: "ParkingType", kind: fieldEnum, labels: parkingLabels},
		{name: "FornitureStatus", kind: fieldEnum, labels: furnishingLabels},
		{name: "TotalAreaGross", kind: fieldNumber},
		{name: "TotalAreaNet", kind: fieldNumber},
		{name: "TotalPrice", kind: fieldNumber},
	},
	domain.TypeCommercial: {
		{name: "WorkplaceType", kind: fieldEnum, labels: workplaceLabels},
		{name: "TotalAreaGross", kind: fieldNumber},
		{name: "TotalAreaNet", kind: fieldNumber},
		{name: "RoomCount", kind: fieldNumber},
		{name: "BathroomCount", kind: fieldNumber},
		{name: "TotalPrice", kind: fieldNumber},
		{name: "HeatingType", kind: fieldEnum, labels: heatingLabels},
		{name: "MezzanineStatus", kind: fieldEnum, labels: mezzanineLabels},
		{name: "BasementStatus", kind: fieldEnum, labels: basementLabels},
		{name: "UsageStatus", kind: fieldEnum, labels: usageLabels},
	},
	domain.TypeSharedParcel: {
		{name: "BlockNumber", kind: fieldText},
		{name: "ParcelNumber", kind: fieldText},
		{name: "TotalArea", kind: fieldNumber},
		{name: "PricePerSquareMeter", kind: fieldNumber},
		{name: "TotalPrice", kind: fieldNumber},
		{name: "ShareRatio", kind: fieldNumber},
	},
}
