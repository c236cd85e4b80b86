package domain

import "encoding/json"

// PropertyStatus is the canonical in-memory representation of a property's
// sale/rental state. The wire format is positional: 0=Satılık .. 5=Kiralandı.
type PropertyStatus int

const (
	StatusForSale       PropertyStatus = iota // Satılık
	StatusForRent                             // Kiralık
	StatusForSaleOrRent                       // SatılıkKiralık
	StatusReserved                            // Rezerv
	StatusSold                                // Satıldı
	StatusRented                              // Kiralandı
)

var propertyStatusNames = map[PropertyStatus]string{
	StatusForSale:       "Satılık",
	StatusForRent:       "Kiralık",
	StatusForSaleOrRent: "SatılıkKiralık",
	StatusReserved:      "Rezerv",
	StatusSold:          "Satıldı",
	StatusRented:        "Kiralandı",
}

var propertyStatusByName = map[string]PropertyStatus{
	"Satılık":        StatusForSale,
	"Kiralık":        StatusForRent,
	"SatılıkKiralık": StatusForSaleOrRent,
	"Rezerv":         StatusReserved,
	"Satıldı":        StatusSold,
	"Kiralandı":      StatusRented,
}

func (s PropertyStatus) String() string {
	if name, ok := propertyStatusNames[s]; ok {
		return name
	}
	return "Satılık"
}

// WireValue returns the integer the backend expects on every write,
// regardless of how the status was read.
func (s PropertyStatus) WireValue() int {
	return int(s)
}

// SortPriority orders listings so reserved/active records surface before
// completed ones. Unknown values sink to the bottom.
func (s PropertyStatus) SortPriority() int {
	switch s {
	case StatusReserved:
		return 1
	case StatusForSale:
		return 2
	case StatusForRent:
		return 3
	case StatusForSaleOrRent:
		return 4
	case StatusSold:
		return 5
	case StatusRented:
		return 6
	default:
		return 7
	}
}

// NormalizePropertyStatus reconciles the two wire representations the backend
// uses for the same value: a positional integer or a Turkish status string.
// Unrecognized input falls back to Satılık rather than failing, so one bad
// record can never take down a list view; ok reports whether the input was
// recognized so the caller can log the occurrence.
func NormalizePropertyStatus(raw any) (status PropertyStatus, ok bool) {
	switch v := raw.(type) {
	case PropertyStatus:
		return v, true
	case string:
		if s, found := propertyStatusByName[v]; found {
			return s, true
		}
	case float64:
		if v >= 0 && v <= 5 && v == float64(int(v)) {
			return PropertyStatus(int(v)), true
		}
	case int:
		if v >= 0 && v <= 5 {
			return PropertyStatus(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil && n >= 0 && n <= 5 {
			return PropertyStatus(n), true
		}
	}
	return StatusForSale, false
}

// SaleStatus values are small positive integers on both read and write;
// there is no string form and no fallback requirement.
type SaleStatus int

const (
	SaleCompleted SaleStatus = iota + 1 // Tamamlandı
	SalePending                         // Beklemede
	SaleCancelled                       // İptal Edildi
	SalePostponed                       // Ertelendi
)

func (s SaleStatus) String() string {
	switch s {
	case SaleCompleted:
		return "Tamamlandı"
	case SalePending:
		return "Beklemede"
	case SaleCancelled:
		return "İptal Edildi"
	case SalePostponed:
		return "Ertelendi"
	}
	return ""
}

func (s SaleStatus) WireValue() int {
	return int(s)
}
